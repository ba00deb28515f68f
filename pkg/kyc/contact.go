package kyc

import (
	"github.com/goldsaver/memberkit/pkg/sanitizer"
	"github.com/goldsaver/memberkit/pkg/validator"
)

const (
	fieldMobile  = "mobile"
	fieldEmail   = "email"
	fieldPincode = "pincode"

	pincodeLength = 6
)

// Mobile validates a 10-digit Indian mobile number. Non-digit characters are
// dropped first, so "98765-43210" passes while "+91 98765 43210" does not.
func (v *Validator) Mobile(value string) string {
	mobile := sanitizer.NormalizeMobile(value)

	return validator.FirstMessage(
		validator.RequiredString(fieldMobile, value).WithMessage(MsgMobileRequired),
		validator.IndianMobile(fieldMobile, mobile).WithMessage(MsgMobileFormat),
		validator.NotRepeatedDigit(fieldMobile, mobile).WithMessage(MsgMobileInvalid),
	)
}

// Email validates the local@domain.tld shape of an address.
func (v *Validator) Email(value string) string {
	email := sanitizer.NormalizeEmail(value)

	return validator.FirstMessage(
		validator.RequiredString(fieldEmail, email).WithMessage(MsgEmailRequired),
		validator.MaxLenString(fieldEmail, email, validator.MaxEmailLength).WithMessage(MsgEmailTooLong),
		validator.ValidEmail(fieldEmail, email).WithMessage(MsgEmailFormat),
	)
}

// Pincode validates a 6-digit Indian postal code.
func (v *Validator) Pincode(value string) string {
	pin := sanitizer.NormalizePincode(value)

	return validator.FirstMessage(
		validator.RequiredString(fieldPincode, value).WithMessage(MsgPincodeRequired),
		validator.ExactDigits(fieldPincode, pin, pincodeLength).WithMessage(MsgPincodeFormat),
		validator.NoLeadingZero(fieldPincode, pin).WithMessage(MsgPincodeLeadingZero),
		validator.IndianPincode(fieldPincode, pin).WithMessage(MsgPincodeFormat),
	)
}
