package export

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	sheetWidth = 1240
	margin     = 60.0
	rowHeight  = 34.0
)

var (
	fontsOnce           sync.Once
	regularTTF, boldTTF *truetype.Font
	fontsErr            error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		if regularTTF, fontsErr = truetype.Parse(goregular.TTF); fontsErr != nil {
			return
		}
		boldTTF, fontsErr = truetype.Parse(gobold.TTF)
	})
	return fontsErr
}

func face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone})
}

// RenderPNG draws the quotation sheet and returns the encoded image.
func RenderPNG(q Quotation) ([]byte, error) {
	if err := loadFonts(); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	height := 620 + rowHeight*float64(len(q.Items)+len(q.ExtraCosts)+len(q.Terms)+6)
	dc := gg.NewContext(sheetWidth, int(height))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// header band
	dc.SetRGB255(217, 119, 6)
	dc.DrawRectangle(0, 0, sheetWidth, 110)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(face(boldTTF, 40))
	dc.DrawString(q.Business.Name, margin, 62)
	dc.SetFontFace(face(regularTTF, 18))
	dc.DrawStringAnchored(fmt.Sprintf("Phone: %s | Email: %s", q.Business.Phone, q.Business.Email), sheetWidth-margin, 96, 1, 0)

	dc.SetRGB255(240, 240, 240)
	dc.DrawRectangle(0, 120, sheetWidth, 50)
	dc.Fill()
	dc.SetRGB255(33, 33, 33)
	dc.SetFontFace(face(boldTTF, 30))
	dc.DrawStringAnchored("QUOTATION", sheetWidth/2, 145, 0.5, 0.5)

	y := 210.0
	dc.SetFontFace(face(regularTTF, 18))
	dc.DrawString("Quotation #: "+q.Number, margin, y)
	dc.DrawString("Date: "+q.IssuedAt.Format(dateLayout), margin, y+26)
	dc.DrawString("Valid Until: "+q.ValidUntil.Format(dateLayout), margin, y+52)
	if !q.BillTo.Empty() {
		x := float64(sheetWidth) / 2
		dc.SetFontFace(face(boldTTF, 18))
		dc.DrawString("Bill To:", x, y)
		dc.SetFontFace(face(regularTTF, 18))
		for i, l := range billToLines(q.BillTo) {
			dc.DrawString(l, x, y+26*float64(i+1))
		}
	}

	y += 140
	dc.SetFontFace(face(boldTTF, 22))
	dc.DrawString("Project: "+q.ProjectName, margin, y)
	dc.SetFontFace(face(regularTTF, 18))
	dc.DrawString("Type: "+q.TypeName, margin, y+28)
	y += 70

	if len(q.Items) > 0 {
		cols := []float64{margin, 380, 640, 840, 990, sheetWidth - margin}
		rows := make([][]string, 0, len(q.Items))
		for _, it := range q.Items {
			rows = append(rows, []string{it.Name, it.Dimensions(), it.MaterialName, "Rs " + money(it.Rate), fmt.Sprint(it.Quantity), "Rs " + money(it.Amount)})
		}
		y = drawTable(dc, y, cols, []string{"Item Description", "Dimensions (WxLxD)", "Material", "Rate/Sq Ft", "Qty", "Amount"}, rows)
	}
	if len(q.ExtraCosts) > 0 {
		cols := []float64{margin, 460, sheetWidth - margin}
		rows := make([][]string, 0, len(q.ExtraCosts))
		for _, ec := range q.ExtraCosts {
			rows = append(rows, []string{ec.Name, ec.Note, signed(ec.Amount) + "Rs " + money(abs(ec.Amount))})
		}
		y = drawTable(dc, y, cols, []string{"Additional Service", "Description", "Amount"}, rows)
	}

	right := float64(sheetWidth) - margin
	dc.SetRGB255(33, 33, 33)
	dc.SetFontFace(face(regularTTF, 18))
	dc.DrawStringAnchored("Subtotal: Rs "+money(q.Totals.ItemsTotal), right, y, 1, 0)
	y += 28
	if q.Totals.ExtraCostsTotal != 0 {
		dc.DrawStringAnchored("Additional Costs: Rs "+money(q.Totals.ExtraCostsTotal), right, y, 1, 0)
		y += 28
	}
	dc.SetLineWidth(1.5)
	dc.DrawLine(margin, y-8, right, y-8)
	dc.Stroke()
	dc.SetRGB255(217, 119, 6)
	dc.SetFontFace(face(boldTTF, 24))
	dc.DrawStringAnchored("GRAND TOTAL: Rs "+money(q.Totals.FinalTotal), right, y+24, 1, 0)
	y += 80

	dc.SetRGB255(33, 33, 33)
	dc.SetFontFace(face(boldTTF, 18))
	dc.DrawString("Terms & Conditions:", margin, y)
	dc.SetFontFace(face(regularTTF, 15))
	for i, t := range q.Terms {
		dc.DrawString("• "+t, margin+16, y+26*float64(i+1))
	}

	dc.SetRGB255(217, 119, 6)
	dc.DrawRectangle(0, height-70, sheetWidth, 70)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(face(regularTTF, 16))
	dc.DrawStringAnchored("Thank you for your business!", sheetWidth/2, height-42, 0.5, 0.5)
	dc.DrawStringAnchored("Quote ID: "+q.Number, sheetWidth/2, height-18, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawTable renders a header row and body rows starting at y; the last column
// is right-aligned at cols[len(cols)-1]. Returns the y below the table.
func drawTable(dc *gg.Context, y float64, cols []float64, head []string, rows [][]string) float64 {
	last := len(head) - 1
	dc.SetRGB255(217, 119, 6)
	dc.DrawRectangle(cols[0]-10, y-24, cols[len(cols)-1]-cols[0]+20, rowHeight)
	dc.Fill()
	dc.SetRGB255(33, 33, 33)
	dc.SetFontFace(face(boldTTF, 16))
	for i, h := range head {
		if i == last {
			dc.DrawStringAnchored(h, cols[len(cols)-1], y, 1, 0)
			continue
		}
		dc.DrawString(h, cols[i], y)
	}
	dc.SetFontFace(face(regularTTF, 16))
	for _, r := range rows {
		y += rowHeight
		for i, cell := range r {
			if i == last {
				dc.DrawStringAnchored(cell, cols[len(cols)-1], y, 1, 0)
				continue
			}
			dc.DrawString(cell, cols[i], y)
		}
	}
	return y + rowHeight + 16
}
