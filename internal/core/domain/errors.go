package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPersistenceDecode indicates the persisted snapshot could not be read.
	// The record store recovers from it locally by loading the seed set.
	ErrPersistenceDecode = errors.New("persisted data is malformed")

	// ErrStoreUnavailable indicates the stored catalog could not be read, so
	// changes are refused to avoid overwriting it.
	ErrStoreUnavailable = errors.New("recipe storage is unavailable")
)

// ValidationError reports a required field that is empty or missing.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid recipe: %s %s", e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NotFoundError reports an operation on a recipe id that does not exist.
type NotFoundError struct {
	ID RecipeID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("recipe %d not found", e.ID)
}

// Unwrap allows errors.Is(err, ErrNotFound).
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// PersistenceDecodeError reports a malformed snapshot under a storage key.
type PersistenceDecodeError struct {
	Key string
	Err error
}

func (e *PersistenceDecodeError) Error() string {
	return fmt.Sprintf("decoding %q: %v", e.Key, e.Err)
}

// Is matches ErrPersistenceDecode.
func (e *PersistenceDecodeError) Is(target error) bool {
	return target == ErrPersistenceDecode
}

// Unwrap returns the underlying decode failure.
func (e *PersistenceDecodeError) Unwrap() error {
	return e.Err
}
