package pincode

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/goldsaver/memberkit/pkg/cache"
)

type cachedLookup struct {
	cities   []string
	notFound bool
}

// Cached keeps recent answers of another Directory in an in-process LRU.
// Unknown pincodes are cached too; lookup failures are not.
type Cached struct {
	next  Directory
	cache *cache.LRU[string, cachedLookup]
}

// NewCached wraps next with an LRU of size entries, each kept for ttl
// (zero keeps entries until evicted).
func NewCached(next Directory, size int, ttl time.Duration) *Cached {
	return &Cached{
		next:  next,
		cache: cache.NewLRU(size, cache.WithTTL[string, cachedLookup](ttl)),
	}
}

// Cities implements Directory.
func (c *Cached) Cities(ctx context.Context, pin string) ([]string, error) {
	pin, err := Normalize(pin)
	if err != nil {
		return nil, err
	}

	if hit, ok := c.cache.Get(pin); ok {
		if hit.notFound {
			return nil, ErrNotFound
		}
		return slices.Clone(hit.cities), nil
	}

	cities, err := c.next.Cities(ctx, pin)
	switch {
	case err == nil:
		c.cache.Put(pin, cachedLookup{cities: slices.Clone(cities)})
	case errors.Is(err, ErrNotFound):
		c.cache.Put(pin, cachedLookup{notFound: true})
	}
	return cities, err
}

// Forget drops pin from the cache.
func (c *Cached) Forget(pin string) {
	if pin, err := Normalize(pin); err == nil {
		c.cache.Remove(pin)
	}
}
