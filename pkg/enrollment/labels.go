package enrollment

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed labels.yaml
var defaultLabelsYAML []byte

// Labels maps field names to the words shown to the member.
type Labels struct {
	Fields   map[string]string `yaml:"fields"`
	Required map[string]string `yaml:"required"`
}

var (
	defaultLabels     *Labels
	defaultLabelsOnce sync.Once
)

// DefaultLabels returns the built-in catalog. The result is shared and must
// not be modified.
func DefaultLabels() *Labels {
	defaultLabelsOnce.Do(func() {
		l, err := ParseLabels(defaultLabelsYAML)
		if err != nil {
			panic(err)
		}
		defaultLabels = l
	})
	return defaultLabels
}

// ParseLabels parses a YAML label catalog.
func ParseLabels(data []byte) (*Labels, error) {
	var l Labels
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, errors.Join(ErrInvalidLabels, err)
	}
	if len(l.Fields) == 0 {
		return nil, fmt.Errorf("%w: no field labels", ErrInvalidLabels)
	}
	return &l, nil
}

// LoadLabels reads a YAML label catalog from path and layers it over the
// built-in one, so a file only needs the entries it changes.
func LoadLabels(path string) (*Labels, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	var override Labels
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, errors.Join(ErrInvalidLabels, err)
	}
	return DefaultLabels().Merge(&override), nil
}

// Merge returns a new catalog with the entries of other replacing those of l.
func (l *Labels) Merge(other *Labels) *Labels {
	out := &Labels{
		Fields:   make(map[string]string, len(l.Fields)),
		Required: make(map[string]string, len(l.Required)),
	}
	for _, src := range []*Labels{l, other} {
		if src == nil {
			continue
		}
		for k, v := range src.Fields {
			out.Fields[k] = v
		}
		for k, v := range src.Required {
			out.Required[k] = v
		}
	}
	return out
}

// Label returns the human label for field, or field itself when unknown.
func (l *Labels) Label(field string) string {
	if label, ok := l.Fields[field]; ok && label != "" {
		return label
	}
	return field
}

// RequiredMessage returns the message for an empty required field.
func (l *Labels) RequiredMessage(field string) string {
	if msg, ok := l.Required[field]; ok && msg != "" {
		return msg
	}
	return l.Label(field) + " is required"
}
