// Package models defines the data structures for the things service.
package models

import (
	"errors"
)

// Common errors
var (
	ErrMissingThing = errors.New("missing thing query parameter")
	ErrStorage      = errors.New("storage failure")
)

// StorageError wraps a database failure so it matches ErrStorage while
// keeping the underlying cause reachable through errors.Is and errors.As.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns both the sentinel and the cause.
func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}

// NewStorageError wraps err for the named operation. A nil err stays nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
