package export

import (
	"bytes"
	"image/png"
	"net/url"
	"strings"
	"testing"
	"time"

	"furniquote/internal/config"
	"furniquote/internal/quote"
)

var issued = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func strp(s string) *string    { return &s }
func ratep(f float64) *float64 { return &f }

func testCatalog() *quote.Catalog {
	return quote.NewCatalog([]quote.ProjectType{{
		ID: "kitchen", Name: "Kitchen",
		Materials: []quote.Material{{ID: "oak-wood", Name: "Oak Wood", RatePerSqft: 950}},
	}})
}

func testBusiness() config.Business {
	return config.Business{Name: "RESTOMATT Furniture Solutions", Phone: "+91 96364 77399", Email: "info@restomatt.com", WhatsApp: "919636477399", QuoteValidDays: 30}
}

func testProject() *quote.Project {
	return &quote.Project{
		ID: "5f2c9a-abcdef12", Name: "Main Kitchen", TypeID: "kitchen",
		CustomerName: strp("Asha Rao"),
		Items: []quote.ProjectItem{
			{ID: "i1", Name: "Base cabinet", Length: 600, Width: 400, Depth: 24, MaterialID: "oak-wood", Quantity: 2, Sqft: 2.58, Amount: 4902},
			{ID: "i2", Name: "Shelf", Length: 100, Width: 100, MaterialID: "gone", Quantity: 1, CustomRate: ratep(0), Sqft: 0.11, Amount: 0},
		},
		ExtraCosts: []quote.ExtraCost{
			{ID: "e1", Name: "Installation", Amount: 1000},
			{ID: "e2", Name: "Discount", Amount: -500, Note: strp("festival")},
		},
	}
}

func TestBuildQuotation(t *testing.T) {
	q, err := BuildQuotation(testProject(), testCatalog(), testBusiness(), issued)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if q.Number != "QCDEF12" {
		t.Fatalf("number = %q", q.Number)
	}
	if !q.ValidUntil.Equal(issued.AddDate(0, 0, 30)) {
		t.Fatalf("valid until = %v", q.ValidUntil)
	}
	if q.TypeName != "Kitchen" || q.BillTo.Name != "Asha Rao" || q.BillTo.Mobile != "" {
		t.Fatalf("header wrong: %+v", q)
	}
	if q.Items[0].Rate != 950 || q.Items[0].MaterialName != "Oak Wood" {
		t.Fatalf("line 0 wrong: %+v", q.Items[0])
	}
	if q.Items[1].Rate != 0 || q.Items[1].MaterialName != unknownMaterial {
		t.Fatalf("custom-rate line wrong: %+v", q.Items[1])
	}
	if q.Totals.ItemsTotal != 4902 || q.Totals.ExtraCostsTotal != 500 || q.Totals.FinalTotal != 5402 {
		t.Fatalf("totals wrong: %+v", q.Totals)
	}
	if len(q.Terms) != 6 || !strings.Contains(q.Terms[5], "30 days") {
		t.Fatalf("terms wrong: %v", q.Terms)
	}
}

func TestBuildQuotation_MissingMaterial(t *testing.T) {
	p := testProject()
	p.Items[1].CustomRate = nil
	if _, err := BuildQuotation(p, testCatalog(), testBusiness(), issued); !quote.IsDataIntegrity(err) {
		t.Fatalf("want data integrity error, got %v", err)
	}
}

func TestBuildQuotation_EmptyProject(t *testing.T) {
	p := &quote.Project{ID: "x", Name: "Empty", TypeID: "unknown"}
	q, err := BuildQuotation(p, testCatalog(), testBusiness(), issued)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if q.Totals.FinalTotal != 0 || q.TypeName != defaultTypeName || q.Number != "QX" {
		t.Fatalf("unexpected: %+v", q)
	}
}

func TestRenderText(t *testing.T) {
	q, _ := BuildQuotation(testProject(), testCatalog(), testBusiness(), issued)
	out := RenderText(q)
	for _, want := range []string{
		"Quotation #: QCDEF12",
		"Date: 10/06/2025",
		"Customer: Asha Rao",
		`400" × 600" × 24"`,
		"Subtotal: Rs 4902.00",
		"Additional Costs: Rs 500.00",
		"GRAND TOTAL: Rs 5402.00",
		"-500.00",
		"Quote valid for 30 days",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("text missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	q, _ := BuildQuotation(testProject(), testCatalog(), testBusiness(), issued)
	raw, err := RenderPNG(q)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != sheetWidth {
		t.Fatalf("width = %d", img.Bounds().Dx())
	}
}

func TestBookingMessageAndLink(t *testing.T) {
	q, _ := BuildQuotation(testProject(), testCatalog(), testBusiness(), issued)
	msg := BookingMessage(q)
	for _, want := range []string{
		"*Project:* Main Kitchen",
		"*Customer:* Asha Rao",
		"*Final Total:* ₹5402.00",
		"*Items (2):*",
		`• Base cabinet - 400"×600"×24" (2x) - ₹4902.00`,
		"• Discount - -₹500.00",
		"• Installation - +₹1000.00",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "*Mobile:*") {
		t.Fatalf("absent mobile must be omitted")
	}

	link := BookingLink("+91 96364-77399", "a b&c+d")
	if !strings.HasPrefix(link, "https://wa.me/919636477399?text=") {
		t.Fatalf("link = %q", link)
	}
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := u.Query().Get("text"); got != "a b&c+d" {
		t.Fatalf("text round trip = %q", got)
	}
	if strings.Contains(link, "+") {
		t.Fatalf("spaces must be %%20 encoded: %q", link)
	}
}

func TestFileName(t *testing.T) {
	q := Quotation{ProjectName: "Kitchen/Phase 1"}
	if got := FileName(q, "png"); got != "Client_Kitchen-Phase 1_quotation.png" {
		t.Fatalf("got %q", got)
	}
	q.BillTo.Name = "Asha"
	if got := FileName(q, ".txt"); got != "Asha_Kitchen-Phase 1_quotation.txt" {
		t.Fatalf("got %q", got)
	}
}
