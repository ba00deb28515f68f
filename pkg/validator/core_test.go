package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldsaver/memberkit/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "Lakshmi"),
			validator.ExactDigits("pincode", "600028", 6),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", ""),
			validator.ExactDigits("pincode", "6000", 6),
			validator.RequiredString("surname", "Iyer"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"name", "pincode"}, verrs.Fields())
		assert.True(t, verrs.Has("pincode"))
		assert.False(t, verrs.Has("surname"))
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
	})

	t.Run("wrapped errors are still detected", func(t *testing.T) {
		err := validator.Apply(validator.RequiredString("name", " "))
		wrapped := fmt.Errorf("enroll: %w", err)

		assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
		assert.NotErrorIs(t, errors.New("boom"), validator.ErrValidationFailed)
	})
}

func TestFirst(t *testing.T) {
	t.Parallel()

	t.Run("stops at first failure", func(t *testing.T) {
		calls := 0
		counting := validator.Rule{
			Check: func() bool { calls++; return false },
			Error: validator.ValidationError{Field: "x", Message: "second"},
		}

		err := validator.First(
			validator.RequiredString("x", "").WithMessage("first"),
			counting,
		)
		require.NotNil(t, err)
		assert.Equal(t, "first", err.Message)
		assert.Equal(t, 0, calls)
	})

	t.Run("nil when all pass", func(t *testing.T) {
		assert.Nil(t, validator.First(validator.RequiredString("x", "ok")))
		assert.Empty(t, validator.FirstMessage(validator.RequiredString("x", "ok")))
	})

	t.Run("with message keeps translation key", func(t *testing.T) {
		err := validator.First(validator.RequiredString("email", "").WithMessage("Email is required"))
		require.NotNil(t, err)
		assert.Equal(t, "Email is required", err.Message)
		assert.Equal(t, "validation.required", err.TranslationKey)
	})
}

func TestValidationErrors_MapRoundTrip(t *testing.T) {
	t.Parallel()

	m := map[string]string{
		"pincode": "Pincode is required",
		"email":   "Please enter a valid email address",
	}

	verrs := validator.FromMap(m)
	require.Len(t, verrs, 2)
	assert.Equal(t, "email", verrs[0].Field, "fields are sorted")
	assert.Equal(t, m, verrs.Map())
	assert.Contains(t, verrs.Error(), "pincode: Pincode is required")

	assert.Nil(t, validator.FromMap(nil))
	assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
}

func TestValidationErrors_MapLastWriterWins(t *testing.T) {
	t.Parallel()

	var verrs validator.ValidationErrors
	verrs.Add(validator.ValidationError{Field: "panNumber", Message: "PAN Number is required"})
	verrs.Add(validator.ValidationError{Field: "panNumber", Message: "Invalid PAN format. Should be like ABCDE1234F"})

	assert.Equal(t, "Invalid PAN format. Should be like ABCDE1234F", verrs.Map()["panNumber"])
	assert.True(t, verrs.Has("panNumber"))
	assert.Len(t, verrs, 2)
}
