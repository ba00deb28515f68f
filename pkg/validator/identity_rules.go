package validator

import (
	"regexp"
	"strings"

	"github.com/goldsaver/memberkit/pkg/verhoeff"
)

var panRegex = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)

// PANHolderTypes are the codes allowed in the 4th character of a PAN:
// individual, firm, company, HUF, association of persons, trust, body of
// individuals, local authority, artificial juridical person, government.
var PANHolderTypes = []byte{'P', 'F', 'C', 'H', 'A', 'T', 'B', 'L', 'J', 'G'}

// ValidPAN validates the layout of an Indian Permanent Account Number:
// five letters, four digits, one letter. Input must already be upper-case.
func ValidPAN(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return panRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid PAN like ABCDE1234F",
			TranslationKey: "validation.pan",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PANHolderType validates the 4th character of a PAN against PANHolderTypes.
// Values shorter than 4 characters fail.
func PANHolderType(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) < 4 {
				return false
			}
			return strings.IndexByte(string(PANHolderTypes), value[3]) >= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must carry a valid PAN holder type in the 4th character",
			TranslationKey: "validation.pan_holder_type",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": string(PANHolderTypes),
			},
		},
	}
}

// VerhoeffChecksum validates the trailing Verhoeff check digit of value.
func VerhoeffChecksum(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return verhoeff.Validate(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "checksum validation failed",
			TranslationKey: "validation.verhoeff",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
