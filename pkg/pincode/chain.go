package pincode

import (
	"context"
	"errors"
)

// Chain asks each directory in order and returns the first answer.
// ErrNotFound moves on to the next directory. If no directory knows the
// pincode the result is ErrNotFound, unless one of them failed, in which
// case that failure is returned so callers do not treat an outage as an
// unknown pincode.
func Chain(dirs ...Directory) Directory {
	return DirectoryFunc(func(ctx context.Context, pin string) ([]string, error) {
		var failure error
		for _, d := range dirs {
			if d == nil {
				continue
			}
			cities, err := d.Cities(ctx, pin)
			switch {
			case err == nil:
				return cities, nil
			case errors.Is(err, ErrInvalidPincode):
				return nil, err
			case !errors.Is(err, ErrNotFound):
				failure = err
			}
		}
		if failure != nil {
			return nil, failure
		}
		return nil, ErrNotFound
	})
}
