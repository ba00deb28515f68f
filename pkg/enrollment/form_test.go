package enrollment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldsaver/memberkit/pkg/enrollment"
)

func TestMemberForm_Snapshot(t *testing.T) {
	t.Parallel()

	form := enrollment.MemberForm{
		Name:    "Meena",
		PAN:     "ABCPE1234F",
		Aadhaar: "234123412346",
		Amount:  "1000",
	}

	snap, err := form.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, "Meena", snap.Get(enrollment.FieldName))
	assert.Equal(t, "ABCPE1234F", snap.Get(enrollment.FieldPAN))
	assert.Equal(t, "234123412346", snap.Get(enrollment.FieldAadhaar))
	assert.Equal(t, "1000", snap.Get(enrollment.FieldAmount))
	assert.Equal(t, "", snap.Get(enrollment.FieldCity))
	assert.Contains(t, snap, enrollment.FieldCity, "every field is present")
	assert.Len(t, snap, 19)
}

func TestDecodeForm(t *testing.T) {
	t.Parallel()

	t.Run("weakly typed values", func(t *testing.T) {
		t.Parallel()

		form, err := enrollment.DecodeForm(map[string]any{
			"name":      "Meena",
			"panNumber": "ABCPE1234F",
			"amount":    5000,
			"schemeId":  float64(7),
			"unknown":   "ignored",
		})
		require.NoError(t, err)
		assert.Equal(t, "Meena", form.Name)
		assert.Equal(t, "ABCPE1234F", form.PAN)
		assert.Equal(t, "5000", form.Amount)
		assert.Equal(t, "7", form.SchemeID)
	})

	t.Run("nested object rejected", func(t *testing.T) {
		t.Parallel()

		_, err := enrollment.DecodeForm(map[string]any{
			"name": map[string]any{"first": "Meena"},
		})
		assert.ErrorIs(t, err, enrollment.ErrFailedToDecode)
	})
}

func TestRequiredFields(t *testing.T) {
	t.Parallel()

	fields, err := enrollment.RequiredFields(enrollment.StepPersonal)
	require.NoError(t, err)
	assert.Equal(t, enrollment.PersonalFields, fields)

	fields[0] = "changed"
	assert.Equal(t, enrollment.FieldInitial, enrollment.PersonalFields[0], "returns a copy")

	fields, err = enrollment.RequiredFields(enrollment.StepScheme)
	require.NoError(t, err)
	assert.Equal(t, enrollment.SchemeFields, fields)

	_, err = enrollment.RequiredFields("payment")
	assert.ErrorIs(t, err, enrollment.ErrUnknownStep)
}

func TestParseStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    enrollment.Step
		wantErr bool
	}{
		{"", enrollment.StepPersonal, false},
		{"personal", enrollment.StepPersonal, false},
		{" Scheme ", enrollment.StepScheme, false},
		{"payment", "", true},
	}
	for _, tt := range tests {
		got, err := enrollment.ParseStep(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, enrollment.ErrUnknownStep)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFormSnapshot_Clone(t *testing.T) {
	t.Parallel()

	orig := enrollment.FormSnapshot{"name": "Meena"}
	clone := orig.Clone()
	clone["name"] = "Ravi"

	assert.Equal(t, "Meena", orig.Get("name"))
	assert.Equal(t, "", orig.Get("missing"))
}
