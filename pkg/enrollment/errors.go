package enrollment

import "errors"

var (
	ErrUnknownStep      = errors.New("enrollment: unknown step")
	ErrUnknownField     = errors.New("enrollment: unknown field")
	ErrInvalidLabels    = errors.New("enrollment: invalid label catalog")
	ErrFailedToDecode   = errors.New("enrollment: failed to decode form")
	ErrFailedToReadFile = errors.New("enrollment: failed to read label file")
)
