package kyc

import (
	"strings"

	"github.com/goldsaver/memberkit/pkg/sanitizer"
	"github.com/goldsaver/memberkit/pkg/validator"
)

const (
	fieldAadhaar  = "aadhaar"
	aadhaarLength = 12
)

// DefaultAadhaarDenylist returns the patterned numbers that are never issued:
// every single-digit repetition plus the two ascending runs.
func DefaultAadhaarDenylist() []string {
	list := make([]string, 0, 12)
	for d := '0'; d <= '9'; d++ {
		list = append(list, strings.Repeat(string(d), aadhaarLength))
	}
	return append(list, "123456789012", "012345678901")
}

// Aadhaar validates a 12-digit Aadhaar number. Spaces and hyphens are
// ignored. Checks run in order: presence, length, repeated digit, denylist
// and finally the Verhoeff check digit.
func (v *Validator) Aadhaar(value string) string {
	number := sanitizer.NormalizeAadhaar(value)

	return validator.FirstMessage(
		validator.RequiredString(fieldAadhaar, number).WithMessage(MsgAadhaarRequired),
		validator.ExactDigits(fieldAadhaar, number, aadhaarLength).WithMessage(MsgAadhaarLength),
		validator.NotRepeatedDigit(fieldAadhaar, number).WithMessage(MsgAadhaarInvalid),
		validator.NotInListString(fieldAadhaar, number, v.denylist).WithMessage(MsgAadhaarInvalid),
		validator.VerhoeffChecksum(fieldAadhaar, number).WithMessage(MsgAadhaarChecksum),
	)
}
