package validator

import "regexp"

var (
	indianMobileRegex  = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	indianPincodeRegex = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// IndianMobile validates a 10-digit Indian mobile number starting with 6-9.
// Input must already be reduced to digits.
func IndianMobile(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return indianMobileRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a 10-digit mobile number starting with 6-9",
			TranslationKey: "validation.mobile_in",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// IndianPincode validates a 6-digit Indian postal code. No valid code starts with 0.
func IndianPincode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return indianPincodeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid 6-digit pincode",
			TranslationKey: "validation.pincode_in",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NoLeadingZero rejects values whose first character is '0'.
func NoLeadingZero(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return len(value) == 0 || value[0] != '0'
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not start with 0",
			TranslationKey: "validation.no_leading_zero",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
