package kyc

import (
	"github.com/goldsaver/memberkit/pkg/sanitizer"
	"github.com/goldsaver/memberkit/pkg/validator"
)

const fieldPAN = "pan"

// PAN validates a Permanent Account Number. Input is upper-cased and
// stripped of whitespace, so "abcde 1234f" is accepted.
func (v *Validator) PAN(value string) string {
	pan := sanitizer.NormalizePAN(value)

	rules := []validator.Rule{
		validator.RequiredString(fieldPAN, pan).WithMessage(MsgPANRequired),
		validator.ValidPAN(fieldPAN, pan).WithMessage(MsgPANFormat),
	}
	if v.strictPAN {
		rules = append(rules, validator.PANHolderType(fieldPAN, pan).WithMessage(MsgPANHolderType))
	}

	return validator.FirstMessage(rules...)
}
