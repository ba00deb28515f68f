package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/goldsaver/memberkit/pkg/validator"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeAt(t *testing.T) {
	t.Parallel()

	now := date(2026, time.October, 19)

	tests := []struct {
		name      string
		birthdate time.Time
		want      int
	}{
		{"birthday today", date(2008, time.October, 19), 18},
		{"birthday tomorrow", date(2008, time.October, 20), 17},
		{"birthday yesterday", date(2008, time.October, 18), 18},
		{"later month", date(2008, time.November, 1), 17},
		{"earlier month", date(2008, time.January, 31), 18},
		{"born this year", date(2026, time.January, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.AgeAt(tt.birthdate, now))
		})
	}

	t.Run("leap day birthdays", func(t *testing.T) {
		leap := date(2004, time.February, 29)
		assert.Equal(t, 20, validator.AgeAt(leap, date(2025, time.February, 28)))
		assert.Equal(t, 21, validator.AgeAt(leap, date(2025, time.March, 1)))
		assert.Equal(t, 20, validator.AgeAt(leap, date(2024, time.February, 29)))
	})

	t.Run("time of day does not matter", func(t *testing.T) {
		late := time.Date(2026, time.October, 18, 23, 59, 0, 0, time.UTC)
		assert.Equal(t, 17, validator.AgeAt(date(2008, time.October, 19), late))
	})
}

func TestNotFutureDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 19, 10, 30, 0, 0, time.UTC)

	assert.NoError(t, validator.Apply(validator.NotFutureDate("dob", date(2026, time.October, 19), now)), "today passes")
	assert.NoError(t, validator.Apply(validator.NotFutureDate("dob", date(1990, time.May, 4), now)))
	assert.Error(t, validator.Apply(validator.NotFutureDate("dob", date(2026, time.October, 20), now)))
	assert.Error(t, validator.Apply(validator.NotFutureDate("dob", date(2027, time.January, 1), now)))
}

func TestMinMaxAgeAt(t *testing.T) {
	t.Parallel()

	now := date(2026, time.October, 19)

	t.Run("min age boundary", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.MinAgeAt("dob", date(2008, time.October, 19), 18, now)))

		err := validator.Apply(validator.MinAgeAt("dob", date(2008, time.October, 20), 18, now))
		verrs := validator.ExtractValidationErrors(err)
		if assert.Len(t, verrs, 1) {
			assert.Equal(t, "validation.min_age", verrs[0].TranslationKey)
			assert.Equal(t, 18, verrs[0].TranslationValues["min_age"])
		}
	})

	t.Run("max age boundary", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.MaxAgeAt("dob", date(1906, time.October, 19), 120, now)))
		assert.Error(t, validator.Apply(validator.MaxAgeAt("dob", date(1905, time.October, 19), 120, now)))
	})
}
