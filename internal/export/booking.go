package export

import (
	"fmt"
	"net/url"
	"strings"
)

// BookingMessage is the pre-filled chat message asking the business to book
// the project.
func BookingMessage(q Quotation) string {
	var b strings.Builder
	b.WriteString("Hi! I'd like to book the following project:\n\n")
	fmt.Fprintf(&b, "*Project:* %s\n", q.ProjectName)
	fmt.Fprintf(&b, "*Type:* %s\n", q.TypeName)
	if q.BillTo.Name != "" {
		fmt.Fprintf(&b, "*Customer:* %s\n", q.BillTo.Name)
	}
	if q.BillTo.Mobile != "" {
		fmt.Fprintf(&b, "*Mobile:* %s\n", q.BillTo.Mobile)
	}
	if q.BillTo.Address != "" {
		fmt.Fprintf(&b, "*Address:* %s\n", q.BillTo.Address)
	}

	fmt.Fprintf(&b, "\n*Project Items Total:* ₹%s\n", money(q.Totals.ItemsTotal))
	fmt.Fprintf(&b, "*Additional Costs:* %s₹%s\n", plus(q.Totals.ExtraCostsTotal), money(q.Totals.ExtraCostsTotal))
	fmt.Fprintf(&b, "*Final Total:* ₹%s\n", money(q.Totals.FinalTotal))

	fmt.Fprintf(&b, "\n*Items (%d):*\n", len(q.Items))
	for _, it := range q.Items {
		fmt.Fprintf(&b, "• %s - %s\"×%s\"×%s\" (%dx) - ₹%s\n",
			it.Name, num(it.Width), num(it.Length), num(it.Depth), it.Quantity, money(it.Amount))
	}
	if len(q.ExtraCosts) > 0 {
		fmt.Fprintf(&b, "\n*Extra Costs (%d):*\n", len(q.ExtraCosts))
		for _, ec := range q.ExtraCosts {
			fmt.Fprintf(&b, "• %s - %s₹%s\n", ec.Name, signed(ec.Amount), money(abs(ec.Amount)))
		}
	}
	b.WriteString("\nPlease confirm the booking and next steps.")
	return b.String()
}

// BookingLink builds the wa.me deep link. Non-digits in number are dropped.
func BookingLink(number, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	return "https://wa.me/" + digits + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

func plus(v float64) string {
	if v >= 0 {
		return "+"
	}
	return ""
}
