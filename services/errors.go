package services

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a point lookup by key found nothing. It is
// distinct from a present record holding a zero value.
var ErrNotFound = errors.New("record not found")

// ValidationError reports caller-supplied data that fails a
// precondition. It is raised before any write happens, so a failed
// validation never leaves a partial record behind.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// StorageError wraps an unexpected failure from the tracking store so
// callers can tell it apart from validation problems.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage: %s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

func storageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
