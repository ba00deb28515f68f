package pincode_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldsaver/memberkit/pkg/pincode"
)

// countingDirectory answers from a fixed table and counts lookups.
type countingDirectory struct {
	calls   atomic.Int32
	entries map[string][]string
	err     error
}

func (d *countingDirectory) Cities(_ context.Context, pin string) ([]string, error) {
	d.calls.Add(1)
	if d.err != nil {
		return nil, d.err
	}
	cities, ok := d.entries[pin]
	if !ok {
		return nil, pincode.ErrNotFound
	}
	return cities, nil
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "600004", want: "600004"},
		{in: " 600 004 ", want: "600004"},
		{in: "110-001", want: "110001"},
		{in: "", wantErr: true},
		{in: "060004", wantErr: true},
		{in: "60004", wantErr: true},
		{in: "6000041", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := pincode.Normalize(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, pincode.ErrInvalidPincode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectoryFunc(t *testing.T) {
	t.Parallel()

	var got string
	d := pincode.DirectoryFunc(func(_ context.Context, pin string) ([]string, error) {
		got = pin
		return []string{"Fort"}, nil
	})

	cities, err := d.Cities(context.Background(), "400001")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fort"}, cities)
	assert.Equal(t, "400001", got)
}

func TestStatic(t *testing.T) {
	t.Parallel()

	t.Run("parse yaml", func(t *testing.T) {
		t.Parallel()

		s, err := pincode.ParseStatic([]byte(`
"600004": [MYLAPORE, mandaveli, Mylapore]
"110001":
  - Connaught Place
  - Parliament House
"400001": []
`))
		require.NoError(t, err)
		assert.Equal(t, 2, s.Len(), "entries without places are dropped")

		cities, err := s.Cities(context.Background(), "600004")
		require.NoError(t, err)
		assert.Equal(t, []string{"Mylapore", "Mandaveli"}, cities)

		_, err = s.Cities(context.Background(), "400001")
		assert.ErrorIs(t, err, pincode.ErrNotFound)

		_, err = s.Cities(context.Background(), "12345")
		assert.ErrorIs(t, err, pincode.ErrInvalidPincode)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		t.Parallel()

		s, err := pincode.NewStatic(map[string][]string{"110001": {"Connaught Place"}})
		require.NoError(t, err)

		cities, err := s.Cities(context.Background(), "110001")
		require.NoError(t, err)
		cities[0] = "Changed"

		again, err := s.Cities(context.Background(), "110001")
		require.NoError(t, err)
		assert.Equal(t, "Connaught Place", again[0])
	})

	t.Run("bad pincode key", func(t *testing.T) {
		t.Parallel()

		_, err := pincode.NewStatic(map[string][]string{"011001": {"Nowhere"}})
		assert.ErrorIs(t, err, pincode.ErrInvalidPincode)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := pincode.ParseStatic([]byte("- just\n- a list\n"))
		assert.ErrorIs(t, err, pincode.ErrLoadDirectory)
	})

	t.Run("load file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "pincodes.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`"682001": [Ernakulam]`), 0o600))

		s, err := pincode.LoadStatic(path)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Len())

		_, err = pincode.LoadStatic(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, pincode.ErrLoadDirectory)
	})
}

func TestChain(t *testing.T) {
	t.Parallel()

	local := &countingDirectory{entries: map[string][]string{"600004": {"Mylapore"}}}
	remote := &countingDirectory{entries: map[string][]string{"110001": {"Connaught Place"}}}
	down := &countingDirectory{err: errors.Join(pincode.ErrLookupFailed, errors.New("connection refused"))}

	t.Run("first answer wins", func(t *testing.T) {
		t.Parallel()

		cities, err := pincode.Chain(local, nil, remote).Cities(context.Background(), "110001")
		require.NoError(t, err)
		assert.Equal(t, []string{"Connaught Place"}, cities)
	})

	t.Run("all unknown", func(t *testing.T) {
		t.Parallel()

		_, err := pincode.Chain(local, remote).Cities(context.Background(), "999999")
		assert.ErrorIs(t, err, pincode.ErrNotFound)
	})

	t.Run("failure beats not found", func(t *testing.T) {
		t.Parallel()

		_, err := pincode.Chain(local, down).Cities(context.Background(), "999999")
		assert.ErrorIs(t, err, pincode.ErrLookupFailed)
		assert.NotErrorIs(t, err, pincode.ErrNotFound)
	})

	t.Run("later success hides failure", func(t *testing.T) {
		t.Parallel()

		cities, err := pincode.Chain(down, local).Cities(context.Background(), "600004")
		require.NoError(t, err)
		assert.Equal(t, []string{"Mylapore"}, cities)
	})

	t.Run("invalid pincode stops the chain", func(t *testing.T) {
		t.Parallel()

		invalid := pincode.DirectoryFunc(func(context.Context, string) ([]string, error) {
			return nil, pincode.ErrInvalidPincode
		})
		after := &countingDirectory{}

		_, err := pincode.Chain(invalid, after).Cities(context.Background(), "abc")
		assert.ErrorIs(t, err, pincode.ErrInvalidPincode)
		assert.Zero(t, after.calls.Load())
	})
}

func TestCached(t *testing.T) {
	t.Parallel()

	t.Run("caches hits and misses", func(t *testing.T) {
		t.Parallel()

		inner := &countingDirectory{entries: map[string][]string{"600004": {"Mylapore"}}}
		c := pincode.NewCached(inner, 16, time.Hour)
		ctx := context.Background()

		for range 3 {
			cities, err := c.Cities(ctx, "600 004")
			require.NoError(t, err)
			assert.Equal(t, []string{"Mylapore"}, cities)

			_, err = c.Cities(ctx, "999999")
			assert.ErrorIs(t, err, pincode.ErrNotFound)
		}
		assert.Equal(t, int32(2), inner.calls.Load())

		c.Forget("600004")
		_, err := c.Cities(ctx, "600004")
		require.NoError(t, err)
		assert.Equal(t, int32(3), inner.calls.Load())
	})

	t.Run("failures are not cached", func(t *testing.T) {
		t.Parallel()

		inner := &countingDirectory{err: pincode.ErrLookupFailed}
		c := pincode.NewCached(inner, 16, time.Hour)

		for range 2 {
			_, err := c.Cities(context.Background(), "600004")
			assert.ErrorIs(t, err, pincode.ErrLookupFailed)
		}
		assert.Equal(t, int32(2), inner.calls.Load())
	})

	t.Run("invalid pincode skips inner", func(t *testing.T) {
		t.Parallel()

		inner := &countingDirectory{}
		c := pincode.NewCached(inner, 16, 0)

		_, err := c.Cities(context.Background(), "12")
		assert.ErrorIs(t, err, pincode.ErrInvalidPincode)
		assert.Zero(t, inner.calls.Load())
	})
}
