package pincode

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Static is an in-memory directory, typically loaded from a YAML file
// mapping quoted pincodes to place names:
//
//	"600004": [Mylapore, Mandaveli]
//	"110001": [Connaught Place, Parliament House]
type Static struct {
	entries map[string][]string
}

// NewStatic builds a Static directory. Entries with malformed pincodes are
// rejected with ErrInvalidPincode.
func NewStatic(entries map[string][]string) (*Static, error) {
	s := &Static{entries: make(map[string][]string, len(entries))}
	for pin, cities := range entries {
		normalized, err := Normalize(pin)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPincode, pin)
		}
		if cities = normalizeCities(cities); len(cities) > 0 {
			s.entries[normalized] = cities
		}
	}
	return s, nil
}

// ParseStatic parses a YAML directory document.
func ParseStatic(data []byte) (*Static, error) {
	var entries map[string][]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Join(ErrLoadDirectory, err)
	}
	return NewStatic(entries)
}

// LoadStatic reads a YAML directory file.
func LoadStatic(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrLoadDirectory, err)
	}
	return ParseStatic(data)
}

// Len returns the number of known pincodes.
func (s *Static) Len() int {
	return len(s.entries)
}

// Cities implements Directory.
func (s *Static) Cities(_ context.Context, pin string) ([]string, error) {
	pin, err := Normalize(pin)
	if err != nil {
		return nil, err
	}
	cities, ok := s.entries[pin]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]string(nil), cities...), nil
}
