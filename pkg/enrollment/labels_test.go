package enrollment_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldsaver/memberkit/pkg/enrollment"
)

func TestDefaultLabels(t *testing.T) {
	t.Parallel()

	l := enrollment.DefaultLabels()
	require.NotNil(t, l)
	assert.Same(t, l, enrollment.DefaultLabels())

	for _, field := range append(enrollment.PersonalFields, enrollment.SchemeFields...) {
		assert.NotEqual(t, field, l.Label(field), "missing label for %s", field)
	}

	assert.Equal(t, "PAN Number", l.Label(enrollment.FieldPAN))
	assert.Equal(t, "Mobile number is required", l.RequiredMessage(enrollment.FieldMobile))
	assert.Equal(t, "Please select a payment mode", l.RequiredMessage(enrollment.FieldAccCode))
	assert.Equal(t, "nickname is required", l.RequiredMessage("nickname"))
}

func TestParseLabels(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		l, err := enrollment.ParseLabels([]byte("fields:\n  name: Given Name\n"))
		require.NoError(t, err)
		assert.Equal(t, "Given Name is required", l.RequiredMessage("name"))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := enrollment.ParseLabels([]byte("fields: [unclosed"))
		assert.ErrorIs(t, err, enrollment.ErrInvalidLabels)
	})

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()
		_, err := enrollment.ParseLabels([]byte("required:\n  amount: Pick one\n"))
		assert.ErrorIs(t, err, enrollment.ErrInvalidLabels)
	})
}

func TestLoadLabels(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "labels.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fields:\n  name: Given Name\nrequired:\n  dob: Please pick your birth date\n"), 0o600))

	l, err := enrollment.LoadLabels(path)
	require.NoError(t, err)
	assert.Equal(t, "Given Name is required", l.RequiredMessage(enrollment.FieldName))
	assert.Equal(t, "Please pick your birth date", l.RequiredMessage(enrollment.FieldDOB))
	assert.Equal(t, "Surname is required", l.RequiredMessage(enrollment.FieldSurname), "built-in labels kept")

	assert.Equal(t, "First Name", enrollment.DefaultLabels().Label(enrollment.FieldName), "defaults untouched")

	_, err = enrollment.LoadLabels(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, enrollment.ErrFailedToReadFile)
}

func TestLabels_Merge(t *testing.T) {
	t.Parallel()

	base := &enrollment.Labels{Fields: map[string]string{"a": "A", "b": "B"}}
	merged := base.Merge(&enrollment.Labels{Fields: map[string]string{"b": "Bee"}})

	assert.Equal(t, "A", merged.Label("a"))
	assert.Equal(t, "Bee", merged.Label("b"))
	assert.Equal(t, "B", base.Label("b"))
	assert.Equal(t, "A", base.Merge(nil).Label("a"))
}

func TestValidate_CustomLabels(t *testing.T) {
	t.Parallel()

	l, err := enrollment.ParseLabels([]byte("fields:\n  surname: Family Name\n"))
	require.NoError(t, err)

	v := enrollment.New(enrollment.WithLabels(l))
	res := v.Validate(enrollment.Input{Form: enrollment.FormSnapshot{}, Required: []string{enrollment.FieldSurname}})
	assert.Equal(t, "Family Name is required", res.Errors[enrollment.FieldSurname])
	assert.Same(t, l, v.Labels())
}
