package kyc

import "errors"

var (
	// ErrInvalidDate is returned when a date of birth matches none of the accepted layouts.
	ErrInvalidDate = errors.New("kyc: invalid date")

	// ErrInvalidAgeBounds is returned for a negative minimum age or a maximum below the minimum.
	ErrInvalidAgeBounds = errors.New("kyc: invalid age bounds")
)
