package pincode_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldsaver/memberkit/pkg/pincode"
)

const mylaporeJSON = `{
  "post code": "600004",
  "country": "India",
  "country abbreviation": "IN",
  "places": [
    {"place name": "MYLAPORE", "state": "Tamil Nadu", "state abbreviation": "TN"},
    {"place name": "mandaveli", "state": "Tamil Nadu", "state abbreviation": "TN"},
    {"place name": "Mylapore", "state": "Tamil Nadu", "state abbreviation": "TN"},
    {"place name": "  ", "state": "Tamil Nadu", "state abbreviation": "TN"}
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...pincode.ClientOption) (*pincode.Client, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	base := []pincode.ClientOption{
		pincode.WithBaseURL(srv.URL + "/in/"),
		pincode.WithHTTPClient(srv.Client()),
		pincode.WithBackoff(time.Millisecond, 5*time.Millisecond),
	}
	return pincode.NewClient(append(base, opts...)...), &hits
}

func TestClient_Cities(t *testing.T) {
	t.Parallel()

	t.Run("normalizes place names", func(t *testing.T) {
		t.Parallel()

		var path string
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, mylaporeJSON)
		})

		cities, err := c.Cities(context.Background(), "600 004")
		require.NoError(t, err)
		assert.Equal(t, []string{"Mylapore", "Mandaveli"}, cities)
		assert.Equal(t, "/in/600004", path)
	})

	t.Run("404 is not found", func(t *testing.T) {
		t.Parallel()

		c, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, "{}")
		})

		_, err := c.Cities(context.Background(), "999999")
		assert.ErrorIs(t, err, pincode.ErrNotFound)
		assert.Equal(t, int32(1), hits.Load(), "not found is not retried")
	})

	t.Run("empty places is not found", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"post code": "999999", "places": []}`)
		})

		_, err := c.Cities(context.Background(), "999999")
		assert.ErrorIs(t, err, pincode.ErrNotFound)
	})

	t.Run("invalid pincode skips request", func(t *testing.T) {
		t.Parallel()

		c, hits := newTestClient(t, func(http.ResponseWriter, *http.Request) {})

		for _, pin := range []string{"", "060004", "6000", "abcdef"} {
			_, err := c.Cities(context.Background(), pin)
			assert.ErrorIs(t, err, pincode.ErrInvalidPincode, "pin %q", pin)
		}
		assert.Zero(t, hits.Load())
	})

	t.Run("retries server errors", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		c, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			fmt.Fprint(w, mylaporeJSON)
		}, pincode.WithRetries(2))

		cities, err := c.Cities(context.Background(), "600004")
		require.NoError(t, err)
		assert.Len(t, cities, 2)
		assert.Equal(t, int32(3), hits.Load())
	})

	t.Run("gives up after retries", func(t *testing.T) {
		t.Parallel()

		c, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}, pincode.WithRetries(1))

		_, err := c.Cities(context.Background(), "600004")
		assert.ErrorIs(t, err, pincode.ErrLookupFailed)
		assert.NotErrorIs(t, err, pincode.ErrNotFound)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		t.Parallel()

		c, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}, pincode.WithRetries(3))

		_, err := c.Cities(context.Background(), "600004")
		assert.ErrorIs(t, err, pincode.ErrLookupFailed)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "<html>")
		}, pincode.WithRetries(0))

		_, err := c.Cities(context.Background(), "600004")
		assert.ErrorIs(t, err, pincode.ErrLookupFailed)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}, pincode.WithRetries(5), pincode.WithBackoff(time.Hour, time.Hour))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := c.Cities(ctx, "600004")
		assert.ErrorIs(t, err, pincode.ErrLookupFailed)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestClient_Breaker(t *testing.T) {
	t.Parallel()

	c, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, pincode.WithRetries(0), pincode.WithBreaker(2, time.Hour))

	for range 2 {
		_, err := c.Cities(context.Background(), "600004")
		require.ErrorIs(t, err, pincode.ErrLookupFailed)
	}
	require.Equal(t, int32(2), hits.Load())

	_, err := c.Cities(context.Background(), "600004")
	assert.ErrorIs(t, err, pincode.ErrCircuitOpen)
	assert.ErrorIs(t, err, pincode.ErrLookupFailed)
	assert.Equal(t, int32(2), hits.Load(), "open breaker short-circuits")
}

func TestClient_BreakerIgnoresCallerCancellation(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, mylaporeJSON)
	}, pincode.WithBreaker(3, time.Minute))

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	for range 3 {
		_, err := c.Cities(cancelled, "600004")
		require.ErrorIs(t, err, context.Canceled)
	}

	cities, err := c.Cities(context.Background(), "600004")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mylapore", "Mandaveli"}, cities)
}

func TestNewClientFromConfig(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, mylaporeJSON)
	}))
	t.Cleanup(srv.Close)

	c := pincode.NewClientFromConfig(pincode.Config{
		BaseURL:          srv.URL,
		Timeout:          time.Second,
		RetryAttempts:    1,
		BreakerThreshold: 0,
	})

	cities, err := c.Cities(context.Background(), "600004")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mylapore", "Mandaveli"}, cities)
}
