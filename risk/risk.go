package risk

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Weights assigns a fixed importance to each danger category. High-severity
// categories (terrorism, natural disasters) dominate low-severity ones
// (over-tourism). Editing a weight here is the only change needed; the
// denominator is derived from the table.
var Weights = map[string]int64{
	"terrorism":         5,
	"meteo":             2,
	"health_issues":     4,
	"poison":            4,
	"natural_disasters": 5,
	"political_unrest":  3,
	"economic_crisis":   2,
	"car_crashes":       2,
	"fires":             4,
	"carnivors_zones":   3,
	"robberies":         3,
	"scams":             2,
	"over_tourism":      1,
}

// WeightTotal returns the sum of all category weights.
func WeightTotal() int64 {
	var total int64
	for _, w := range Weights {
		total += w
	}
	return total
}

// Aggregate computes the weighted average of the category scores and formats
// it with exactly two fraction digits. Scores that do not parse as integers
// (including missing categories) contribute zero; bad historical data lowers
// the average instead of failing the save.
func Aggregate(scores map[string]string) string {
	var weighted int64
	for category, weight := range Weights {
		v, err := strconv.ParseInt(scores[category], 10, 64)
		if err != nil {
			v = 0
		}
		weighted += v * weight
	}
	return decimal.NewFromInt(weighted).
		Div(decimal.NewFromInt(WeightTotal())).
		StringFixed(2)
}
