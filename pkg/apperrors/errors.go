package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// NotFound wraps ErrNotFound with the entity and lookup key that missed,
// so callers can report which resolution step failed.
func NotFound(entity, key string) error {
	return fmt.Errorf("%s %q: %w", entity, key, ErrNotFound)
}

// Validation wraps ErrValidation with a description of the bad input.
func Validation(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// Conflict wraps ErrConflict for rows concurrently modified or removed.
func Conflict(entity, key string) error {
	return fmt.Errorf("%s %q was modified concurrently: %w", entity, key, ErrConflict)
}
