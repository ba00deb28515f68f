package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goldsaver/memberkit/pkg/sanitizer"
)

func TestNormalizePAN(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ABCDE1234F", sanitizer.NormalizePAN("abcde1234f"))
	assert.Equal(t, "ABCDE1234F", sanitizer.NormalizePAN(" ABCDE 1234F "))
}

func TestNormalizeAadhaar(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"234123412346", "2341 2341 2346", "2341-2341-2346", " 2341 - 2341 - 2346 "} {
		assert.Equal(t, "234123412346", sanitizer.NormalizeAadhaar(in), "input %q", in)
	}
	// letters survive so the format check can reject them
	assert.Equal(t, "2341A2341B2346", sanitizer.NormalizeAadhaar("2341A 2341B-2346"))
}

func TestNormalizeMobileAndPincode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "9876543210", sanitizer.NormalizeMobile("98765 43210"))
	assert.Equal(t, "110001", sanitizer.NormalizePincode("110 001"))
	assert.Equal(t, "member@example.com", sanitizer.NormalizeEmail("  member@example.com "))
}

func TestMasking(t *testing.T) {
	t.Parallel()

	t.Run("aadhaar", func(t *testing.T) {
		assert.Equal(t, "XXXXXXXX2346", sanitizer.MaskAadhaar("2341 2341 2346"))
		assert.Equal(t, "XXX", sanitizer.MaskAadhaar("123"))
	})

	t.Run("pan", func(t *testing.T) {
		assert.Equal(t, "AB******4F", sanitizer.MaskPAN("abcde1234f"))
	})

	t.Run("mobile", func(t *testing.T) {
		assert.Equal(t, "******3210", sanitizer.MaskMobile("98765 43210"))
		assert.Equal(t, "**", sanitizer.MaskMobile("12"))
	})

	t.Run("generic", func(t *testing.T) {
		assert.Equal(t, "ab***fg", sanitizer.MaskString("abcdefg", 2))
		assert.Equal(t, "****", sanitizer.MaskString("abcd", 2))
		assert.Equal(t, "", sanitizer.MaskString("", 2))
	})
}
