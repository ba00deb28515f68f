package pincode

import "errors"

var (
	ErrInvalidPincode = errors.New("pincode: invalid pincode")
	ErrNotFound       = errors.New("pincode: not found")
	ErrLookupFailed   = errors.New("pincode: lookup failed")
	ErrCircuitOpen    = errors.New("pincode: upstream temporarily disabled")
	ErrLoadDirectory  = errors.New("pincode: failed to load directory file")
)
