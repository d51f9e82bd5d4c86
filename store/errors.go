package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrAlreadyExists        = errors.New("already exists")
	ErrConflict             = errors.New("concurrent modification")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrSoldOut              = errors.New("show is sold out")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrOutOfStock           = errors.New("product is out of stock")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMediaTooLarge        = errors.New("media file too large")
)

// ValidationError lists the fields that failed validation. It matches
// ErrInvalidInput with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (v *ValidationError) add(field, problem string) {
	if v.Fields == nil {
		v.Fields = map[string]string{}
	}
	if _, exists := v.Fields[field]; !exists {
		v.Fields[field] = problem
	}
}

func (v *ValidationError) orNil() error {
	if len(v.Fields) == 0 {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	names := make([]string, 0, len(v.Fields))
	for name := range v.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, v.Fields[name]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (v *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
