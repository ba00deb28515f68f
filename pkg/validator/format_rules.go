package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// local@domain.tld with no whitespace and at least one dot after the @
	emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// MaxEmailLength is the RFC 5321 limit on a forward path.
const MaxEmailLength = 254

// ValidEmail validates the local@domain.tld shape: valid UTF-8, no
// whitespace, exactly one @, a dot inside the domain, no consecutive or
// trailing dots and at most MaxEmailLength characters. Looser than RFC 5322.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" || !utf8.ValidString(value) {
				return false
			}
			if utf8.RuneCountInString(value) > MaxEmailLength {
				return false
			}
			if strings.Contains(value, "..") || strings.HasSuffix(value, ".") {
				return false
			}
			return emailShapeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ExactDigits validates that value consists of exactly n ASCII digits.
func ExactDigits(field, value string, n int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) == n && numericStringRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %d digits", n),
			TranslationKey: "validation.exact_digits",
			TranslationValues: map[string]any{
				"field":  field,
				"digits": n,
			},
		},
	}
}

// NotRepeatedDigit rejects strings made of a single repeated character,
// such as "9999999999". Empty strings pass; pair with RequiredString.
func NotRepeatedDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) < 2 {
				return true
			}
			return strings.Count(value, value[:1]) != len(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not repeat a single digit",
			TranslationKey: "validation.repeated_digit",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
