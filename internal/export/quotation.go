// Package export turns a project into customer-facing artifacts: the
// quotation document in text or PNG form and the booking message link.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"furniquote/internal/config"
	"furniquote/internal/pricing"
	"furniquote/internal/quote"
)

const (
	unknownMaterial = "Unknown Material"
	defaultTypeName = "Custom Furniture"
)

type BillTo struct {
	Name    string `json:"name,omitempty"`
	Mobile  string `json:"mobile,omitempty"`
	Address string `json:"address,omitempty"`
}

func (b BillTo) Empty() bool { return b.Name == "" && b.Mobile == "" && b.Address == "" }

type Line struct {
	Name         string  `json:"name"`
	Width        float64 `json:"width"`
	Length       float64 `json:"length"`
	Depth        float64 `json:"depth"`
	MaterialName string  `json:"material_name"`
	Rate         float64 `json:"rate"`
	Quantity     int     `json:"quantity"`
	Sqft         float64 `json:"sqft"`
	Amount       float64 `json:"amount"`
}

// Dimensions renders W × L × D in inches.
func (l Line) Dimensions() string {
	return fmt.Sprintf(`%s" × %s" × %s"`, num(l.Width), num(l.Length), num(l.Depth))
}

type Cost struct {
	Name   string  `json:"name"`
	Note   string  `json:"note,omitempty"`
	Amount float64 `json:"amount"`
}

// Quotation is the resolved, presentation-ready view of a project.
type Quotation struct {
	Number      string          `json:"number"`
	ProjectID   string          `json:"project_id"`
	ProjectName string          `json:"project_name"`
	TypeName    string          `json:"type_name"`
	Business    config.Business `json:"business"`
	IssuedAt    time.Time       `json:"issued_at"`
	ValidUntil  time.Time       `json:"valid_until"`
	BillTo      BillTo          `json:"bill_to"`
	Items       []Line          `json:"items"`
	ExtraCosts  []Cost          `json:"extra_costs"`
	Totals      pricing.Summary `json:"totals"`
	Terms       []string        `json:"terms"`
}

// BuildQuotation resolves names and rates against cat. Totals come from the
// stored item amounts so that the document matches what the project shows.
// An item without a custom rate whose material is gone yields a
// *quote.DataIntegrityError.
func BuildQuotation(p *quote.Project, cat *quote.Catalog, biz config.Business, now time.Time) (Quotation, error) {
	days := lo.Ternary(biz.QuoteValidDays > 0, biz.QuoteValidDays, 30)
	q := Quotation{
		Number:      QuoteNumber(p.ID),
		ProjectID:   p.ID,
		ProjectName: p.Name,
		TypeName:    defaultTypeName,
		Business:    biz,
		IssuedAt:    now,
		ValidUntil:  now.AddDate(0, 0, days),
		BillTo: BillTo{
			Name:    deref(p.CustomerName),
			Mobile:  deref(p.CustomerMobile),
			Address: deref(p.CustomerAddress),
		},
		Items:      make([]Line, 0, len(p.Items)),
		ExtraCosts: make([]Cost, 0, len(p.ExtraCosts)),
		Totals:     p.Summary(),
		Terms:      Terms(days),
	}
	if t, ok := cat.Type(p.TypeID); ok {
		q.TypeName = t.Name
	}
	for _, it := range p.Items {
		rate, err := cat.ResolveRate(it)
		if err != nil {
			return Quotation{}, err
		}
		name := unknownMaterial
		if m, ok := cat.Material(it.MaterialID); ok {
			name = m.Name
		}
		q.Items = append(q.Items, Line{
			Name: it.Name, Width: it.Width, Length: it.Length, Depth: it.Depth,
			MaterialName: name, Rate: rate, Quantity: it.Quantity,
			Sqft: it.Sqft, Amount: it.Amount,
		})
	}
	for _, ec := range p.ExtraCosts {
		q.ExtraCosts = append(q.ExtraCosts, Cost{Name: ec.Name, Note: deref(ec.Note), Amount: ec.Amount})
	}
	return q, nil
}

// QuoteNumber is "Q" followed by the last six characters of the project id.
func QuoteNumber(projectID string) string {
	s := projectID
	if len(s) > 6 {
		s = s[len(s)-6:]
	}
	return "Q" + strings.ToUpper(s)
}

func Terms(validDays int) []string {
	return []string{
		"50% advance payment required to commence work",
		"Balance payment due upon completion",
		"Installation included in the quoted price",
		"Warranty: 2 years on workmanship, 1 year on materials",
		"Free delivery within city limits",
		fmt.Sprintf("Quote valid for %d days from issue date", validDays),
	}
}

// FileName is "<customer or Client>_<project>_quotation.<ext>" with path
// separators and quotes replaced.
func FileName(q Quotation, ext string) string {
	customer := lo.Ternary(q.BillTo.Name != "", q.BillTo.Name, "Client")
	name := fmt.Sprintf("%s_%s_quotation.%s", customer, q.ProjectName, strings.TrimPrefix(ext, "."))
	return strings.NewReplacer("/", "-", `\`, "-", `"`, "", "\n", " ", "\r", " ").Replace(name)
}

func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

// signed is the sign shown in front of an absolute amount.
func signed(v float64) string {
	return lo.Ternary(v >= 0, "+", "-")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
