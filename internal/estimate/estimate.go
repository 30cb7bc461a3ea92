// Package estimate computes job price estimates from loosely typed inputs.
package estimate

import (
	"math"
	"strconv"

	"github.com/rcase/plumbjobs/internal/model"
)

// Totals breaks an estimate down into its three terms plus the sum.
type Totals struct {
	Labor     float64 `json:"labor"`
	Materials float64 `json:"materials"`
	TripFee   float64 `json:"trip_fee"`
	Total     float64 `json:"total"`
}

// Num coerces a user-entered value to a float. Blank, unparseable, or
// non-finite input counts as zero, so downstream arithmetic is always finite.
func Num(s string) float64 {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0
	}
	return n
}

// Calculate evaluates the estimate formula:
//
//	total = laborHours*laborRate + materialsSubtotal*(1 + markupPct/100) + tripFee
func Calculate(e model.Estimate) Totals {
	labor := Num(e.LaborHours) * Num(e.LaborRate)
	materials := Num(e.MaterialsSubtotal) * (1 + Num(e.MarkupPct)/100)
	trip := Num(e.TripFee)
	return Totals{
		Labor:     labor,
		Materials: materials,
		TripFee:   trip,
		Total:     labor + materials + trip,
	}
}

// Canonicalize returns the estimate with every field coerced and re-encoded
// as a canonical decimal string. These coerced inputs, not the total, are
// what gets persisted on the job.
func Canonicalize(e model.Estimate) model.Estimate {
	return model.Estimate{
		LaborHours:        FormatNumber(Num(e.LaborHours)),
		LaborRate:         FormatNumber(Num(e.LaborRate)),
		MaterialsSubtotal: FormatNumber(Num(e.MaterialsSubtotal)),
		MarkupPct:         FormatNumber(Num(e.MarkupPct)),
		TripFee:           FormatNumber(Num(e.TripFee)),
	}
}

// FormatMoney renders an amount with exactly two decimal places.
func FormatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatNumber renders a value with the shortest exact decimal form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
