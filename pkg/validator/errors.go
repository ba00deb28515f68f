package validator

import "errors"

// ErrValidationFailed matches any ValidationErrors under errors.Is.
var ErrValidationFailed = errors.New("validation failed")
