// Package scoring computes deterministic 0-100 fit scores between project intakes
// and funding program records.
package scoring

// budgetBandEstimates maps each intake budget band to a representative dollar amount.
var budgetBandEstimates = map[string]float64{
	"<$50k":     25_000,
	"$50–250k":  150_000,
	"$250k–1M":  500_000,
	">1M":       1_500_000,
}

// EstimateBudget maps a budget band label to a representative numeric value.
// The second return value is false for unrecognized labels ("unknown").
func EstimateBudget(band string) (float64, bool) {
	amount, ok := budgetBandEstimates[band]
	return amount, ok
}
