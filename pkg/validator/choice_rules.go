package validator

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// NotInListString validates that value is none of forbiddenValues.
func NotInListString(field, value string, forbiddenValues []string) Rule {
	return Rule{
		Check: func() bool {
			return !slices.Contains(forbiddenValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "value is not allowed",
			TranslationKey: "validation.not_in_list",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// InListFold validates list membership under Unicode case folding, so "new delhi"
// matches "New Delhi". Surrounding whitespace is ignored.
func InListFold(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			folder := cases.Fold()
			needle := folder.String(strings.TrimSpace(value))
			for _, allowed := range allowedValues {
				if folder.String(strings.TrimSpace(allowed)) == needle {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(allowedValues, ", ")),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

// EqualString validates that value equals expected exactly.
func EqualString(field, value, expected string) Rule {
	return Rule{
		Check: func() bool {
			return value == expected
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be %s", expected),
			TranslationKey: "validation.equal",
			TranslationValues: map[string]any{
				"field":    field,
				"expected": expected,
			},
		},
	}
}
