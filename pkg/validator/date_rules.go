package validator

import (
	"fmt"
	"time"
)

// AgeAt returns the age in whole years on the calendar day of now.
// Each time is read in its own location, so a birthdate parsed as UTC midnight
// keeps its calendar day regardless of the server time zone.
func AgeAt(birthdate, now time.Time) int {
	by, bm, bd := birthdate.Date()
	ny, nm, nd := now.Date()

	age := ny - by
	// Birthday hasn't occurred yet this year
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	return age
}

// NotFutureDate validates that value's calendar day is not after the calendar day of now.
// Today passes.
func NotFutureDate(field string, value, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !dayAfter(value, now)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "date cannot be in the future",
			TranslationKey: "validation.date_not_future",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinAgeAt validates minimum age at the reference time now.
func MinAgeAt(field string, birthdate time.Time, minAge int, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			return AgeAt(birthdate, now) >= minAge
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("minimum age of %d years required", minAge),
			TranslationKey: "validation.min_age",
			TranslationValues: map[string]any{
				"field":   field,
				"min_age": minAge,
			},
		},
	}
}

// MaxAgeAt validates maximum age at the reference time now.
func MaxAgeAt(field string, birthdate time.Time, maxAge int, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			return AgeAt(birthdate, now) <= maxAge
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("maximum age of %d years exceeded", maxAge),
			TranslationKey: "validation.max_age",
			TranslationValues: map[string]any{
				"field":   field,
				"max_age": maxAge,
			},
		},
	}
}

func dayAfter(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad > bd
}
