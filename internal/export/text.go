package export

import (
	"fmt"
	"strings"
)

const dateLayout = "02/01/2006"

// RenderText lays the quotation out as plain text.
func RenderText(q Quotation) string {
	var b strings.Builder
	rule := strings.Repeat("=", 72)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, q.Business.Name)
	fmt.Fprintf(&b, "Phone: %s | Email: %s\n", q.Business.Phone, q.Business.Email)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "QUOTATION")
	fmt.Fprintf(&b, "Quotation #: %s\n", q.Number)
	fmt.Fprintf(&b, "Date: %s\n", q.IssuedAt.Format(dateLayout))
	fmt.Fprintf(&b, "Valid Until: %s\n", q.ValidUntil.Format(dateLayout))

	if !q.BillTo.Empty() {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Bill To:")
		for _, l := range billToLines(q.BillTo) {
			fmt.Fprintf(&b, "  %s\n", l)
		}
	}

	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Project: %s\n", q.ProjectName)
	fmt.Fprintf(&b, "Type: %s\n", q.TypeName)

	if len(q.Items) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "%-24s %-22s %-16s %12s %4s %14s\n", "Item", "Dimensions (WxLxD)", "Material", "Rate/Sq Ft", "Qty", "Amount (Rs)")
		for _, it := range q.Items {
			fmt.Fprintf(&b, "%-24s %-22s %-16s %12s %4d %14s\n",
				it.Name, it.Dimensions(), it.MaterialName, money(it.Rate), it.Quantity, money(it.Amount))
		}
	}

	if len(q.ExtraCosts) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "%-30s %-26s %14s\n", "Additional Service", "Description", "Amount (Rs)")
		for _, ec := range q.ExtraCosts {
			fmt.Fprintf(&b, "%-30s %-26s %14s\n", ec.Name, ec.Note, signed(ec.Amount)+money(abs(ec.Amount)))
		}
	}

	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Subtotal: Rs %s\n", money(q.Totals.ItemsTotal))
	if q.Totals.ExtraCostsTotal != 0 {
		fmt.Fprintf(&b, "Additional Costs: Rs %s\n", money(q.Totals.ExtraCostsTotal))
	}
	fmt.Fprintf(&b, "GRAND TOTAL: Rs %s\n", money(q.Totals.FinalTotal))

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Terms & Conditions:")
	for _, t := range q.Terms {
		fmt.Fprintf(&b, "  • %s\n", t)
	}
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Thank you for your business!")
	return b.String()
}

func billToLines(b BillTo) []string {
	var out []string
	if b.Name != "" {
		out = append(out, "Customer: "+b.Name)
	}
	if b.Mobile != "" {
		out = append(out, "Phone: "+b.Mobile)
	}
	if b.Address != "" {
		out = append(out, "Address: "+b.Address)
	}
	return out
}
