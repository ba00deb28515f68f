package kyc

import (
	"fmt"
	"strings"
	"time"

	"github.com/goldsaver/memberkit/pkg/validator"
)

const fieldDOB = "dob"

// DateLayouts are the accepted text forms of a date of birth, tried in order.
var DateLayouts = []string{
	time.DateOnly,
	"02/01/2006",
	"02-01-2006",
	time.RFC3339,
}

// ParseDate parses a date of birth typed or sent by a client.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// DateOfBirth validates a birth date against the current day and the
// configured age bounds. A nil date is reported as missing.
func (v *Validator) DateOfBirth(dob *time.Time) string {
	if dob == nil || dob.IsZero() {
		return MsgDOBRequired
	}

	now := v.now()
	return validator.FirstMessage(
		validator.NotFutureDate(fieldDOB, *dob, now).WithMessage(MsgDOBFuture),
		validator.MinAgeAt(fieldDOB, *dob, v.minAge, now).WithMessage(v.minAgeMessage()),
		validator.MaxAgeAt(fieldDOB, *dob, v.maxAge, now).WithMessage(MsgDOBInvalid),
	)
}

// DateOfBirthString parses raw with ParseDate and validates the result.
// Text that is not a date gets the generic invalid-date message.
func (v *Validator) DateOfBirthString(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return MsgDOBRequired
	}
	dob, err := ParseDate(raw)
	if err != nil {
		return MsgDOBInvalid
	}
	return v.DateOfBirth(&dob)
}

func (v *Validator) minAgeMessage() string {
	return fmt.Sprintf("Member must be at least %d years old", v.minAge)
}
