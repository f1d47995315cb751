package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrValidation is matched by every input rejection, including batch
	// output sums that fall outside the accepted window.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is wrapped by the service level not-found errors.
	ErrNotFound = errors.New("not found")
)

// ValidationError collects per-field problems with a record.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = msg
	}
}

// Err returns nil when no field was flagged so callers can `return v.Err()`.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
