// Package pricing computes item area, amounts and project totals.
//
// Everything here is a pure function of its inputs. Callers validate
// dimensions and quantities before invoking it.
package pricing

import "math"

// AreaDivisor converts length×width (in the catalog's linear unit) to sqft.
// Existing quotes depend on this exact value.
const AreaDivisor = 92903

// Metrics are the derived values of a single priced line.
type Metrics struct {
	Sqft   float64 `json:"sqft"`
	Amount float64 `json:"amount"`
}

// Summary is the totals block of a project.
type Summary struct {
	ItemsTotal      float64 `json:"items_total"`
	ExtraCostsTotal float64 `json:"extra_costs_total"`
	FinalTotal      float64 `json:"final_total"`
}

// Round2 rounds to cents, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ComputeItemMetrics returns sqft and amount for one line. Depth is not part of the area.
func ComputeItemMetrics(length, width float64, quantity int, rate float64) Metrics {
	sqft := Round2(length * width / AreaDivisor)
	return Metrics{
		Sqft:   sqft,
		Amount: Round2(sqft * rate * float64(quantity)),
	}
}

// EffectiveRate picks the per-item override when set, else the catalog rate.
// An explicit zero override is honoured.
func EffectiveRate(customRate *float64, materialRate float64) float64 {
	if customRate != nil && *customRate >= 0 {
		return *customRate
	}
	return materialRate
}

// ItemsTotal sums item amounts in the given order.
func ItemsTotal(amounts []float64) float64 {
	return sum(amounts)
}

// ExtraCostsTotal sums signed extra cost amounts in the given order.
func ExtraCostsTotal(amounts []float64) float64 {
	return sum(amounts)
}

// FinalTotal is items plus extra costs.
func FinalTotal(itemsTotal, extraCostsTotal float64) float64 {
	return itemsTotal + extraCostsTotal
}

// Summarize builds the totals block from item and extra cost amounts.
func Summarize(itemAmounts, extraAmounts []float64) Summary {
	items := ItemsTotal(itemAmounts)
	extras := ExtraCostsTotal(extraAmounts)
	return Summary{
		ItemsTotal:      items,
		ExtraCostsTotal: extras,
		FinalTotal:      FinalTotal(items, extras),
	}
}

func sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}
	return total
}
