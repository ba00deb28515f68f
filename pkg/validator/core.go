package validator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) match.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Fields lists the failing fields in first-failure order, without repeats.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Map flattens the errors into field -> message. When a field failed more
// than once the later message wins.
func (ve ValidationErrors) Map() map[string]string {
	m := make(map[string]string, len(ve))
	for _, err := range ve {
		m[err.Field] = err.Message
	}
	return m
}

// FromMap builds ValidationErrors from a field -> message map, ordered by field name.
func FromMap(m map[string]string) ValidationErrors {
	if len(m) == 0 {
		return nil
	}
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	ve := make(ValidationErrors, 0, len(fields))
	for _, field := range fields {
		ve = append(ve, ValidationError{
			Field:          field,
			Message:        m[field],
			TranslationKey: "validation.field",
			TranslationValues: map[string]any{
				"field": field,
			},
		})
	}
	return ve
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of the rule that reports msg when it fails.
// The translation key is kept so callers can still localize.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// First evaluates rules in order and stops at the first failure.
// Returns nil when every rule passes.
func First(rules ...Rule) *ValidationError {
	for _, rule := range rules {
		if !rule.Check() {
			err := rule.Error
			return &err
		}
	}
	return nil
}

// FirstMessage is First reduced to the failing message, or "" when all rules pass.
func FirstMessage(rules ...Rule) string {
	if err := First(rules...); err != nil {
		return err.Message
	}
	return ""
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}
