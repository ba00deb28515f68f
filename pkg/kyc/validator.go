package kyc

import (
	"fmt"
	"slices"
	"time"

	"github.com/goldsaver/memberkit/pkg/sanitizer"
)

const (
	// DefaultMinAge is the youngest age at which a member may enroll.
	DefaultMinAge = 18
	// DefaultMaxAge is the sanity bound above which a birth date is treated as a typo.
	DefaultMaxAge = 120
)

// Func validates one raw form value and returns the message to display, or "".
type Func func(value string) string

// Validator applies the identity checks with a fixed policy.
type Validator struct {
	strictPAN bool
	minAge    int
	maxAge    int
	denylist  []string
	now       func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithStrictPAN enables the holder-type check on the 4th PAN character.
func WithStrictPAN(strict bool) Option {
	return func(v *Validator) {
		v.strictPAN = strict
	}
}

// WithAgeBounds sets the inclusive age range accepted for a date of birth.
// Panics if minAge is negative or maxAge is below minAge.
func WithAgeBounds(minAge, maxAge int) Option {
	if minAge < 0 || maxAge < minAge {
		panic("kyc: invalid age bounds")
	}
	return func(v *Validator) {
		v.minAge = minAge
		v.maxAge = maxAge
	}
}

// WithAadhaarDenylist adds numbers to the built-in Aadhaar denylist.
// Separators are stripped before the numbers are stored.
func WithAadhaarDenylist(numbers ...string) Option {
	return func(v *Validator) {
		for _, n := range numbers {
			if n = sanitizer.NormalizeAadhaar(n); n != "" && !slices.Contains(v.denylist, n) {
				v.denylist = append(v.denylist, n)
			}
		}
	}
}

// WithClock overrides the time source used for date of birth checks.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// New creates a Validator. Without options it is lenient on PAN, accepts
// ages 18 to 120 and uses the built-in Aadhaar denylist.
func New(opts ...Option) *Validator {
	v := &Validator{
		minAge:   DefaultMinAge,
		maxAge:   DefaultMaxAge,
		denylist: DefaultAadhaarDenylist(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewFromConfig creates a Validator from cfg. Zero age values fall back to
// the defaults; a negative minimum or a maximum below the minimum returns
// ErrInvalidAgeBounds. Options are applied after cfg and win over it.
func NewFromConfig(cfg Config, opts ...Option) (*Validator, error) {
	minAge, maxAge := cfg.MinAge, cfg.MaxAge
	if minAge == 0 {
		minAge = DefaultMinAge
	}
	if maxAge == 0 {
		maxAge = DefaultMaxAge
	}
	if minAge < 0 || maxAge < minAge {
		return nil, fmt.Errorf("%w: min %d, max %d", ErrInvalidAgeBounds, minAge, maxAge)
	}

	base := []Option{
		WithStrictPAN(cfg.StrictPAN),
		WithAgeBounds(minAge, maxAge),
		WithAadhaarDenylist(cfg.AadhaarDenylist...),
	}
	return New(append(base, opts...)...), nil
}

// StrictPAN reports whether the PAN holder-type check is enabled.
func (v *Validator) StrictPAN() bool {
	return v.strictPAN
}

// AgeBounds returns the accepted inclusive age range.
func (v *Validator) AgeBounds() (minAge, maxAge int) {
	return v.minAge, v.maxAge
}
