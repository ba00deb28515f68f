package validator

import (
	"math"
	"strconv"
	"strings"
)

// PositiveAmountString validates a decimal amount supplied as text, e.g. a
// picker value like "1000" or "500.00". NaN, infinities and non-positive
// values fail.
func PositiveAmountString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
				return false
			}
			return amount > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "amount must be positive",
			TranslationKey: "validation.positive_amount",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
