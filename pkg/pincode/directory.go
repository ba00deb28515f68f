package pincode

import (
	"context"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goldsaver/memberkit/pkg/sanitizer"
	"github.com/goldsaver/memberkit/pkg/validator"
)

// Directory resolves the localities served by an Indian postal code.
type Directory interface {
	// Cities returns the place names for pin. It returns ErrNotFound when
	// the pincode is well-formed but unknown, ErrInvalidPincode when it is
	// not a 6-digit pincode and ErrLookupFailed on transport errors.
	Cities(ctx context.Context, pin string) ([]string, error)
}

// DirectoryFunc adapts a function to the Directory interface.
type DirectoryFunc func(ctx context.Context, pin string) ([]string, error)

// Cities calls f.
func (f DirectoryFunc) Cities(ctx context.Context, pin string) ([]string, error) {
	return f(ctx, pin)
}

// Normalize reduces pin to its digits and checks that it is a valid Indian pincode.
func Normalize(pin string) (string, error) {
	pin = sanitizer.NormalizePincode(pin)
	if err := validator.Apply(validator.IndianPincode("pincode", pin)); err != nil {
		return "", ErrInvalidPincode
	}
	return pin, nil
}

// normalizeCities title-cases place names, drops blanks and removes
// duplicates while keeping first-seen order.
func normalizeCities(names []string) []string {
	// Casers keep state between calls, so each lookup gets its own.
	title := cases.Title(language.Und)
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, title.String(sanitizer.NormalizeWhitespace(name)))
	}
	return slices.Clip(sanitizer.UniqueFold(out))
}
