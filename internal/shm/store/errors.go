package store

import "errors"

var (
	ErrNotFound  = errors.New("store: not found")
	ErrIntegrity = errors.New("store: integrity violation")
	ErrStorage   = errors.New("store: storage failure")
)

// IntegrityError is returned when a write violates a uniqueness or foreign
// key constraint. It matches ErrIntegrity with errors.Is.
type IntegrityError struct {
	Op  string
	Err error
}

func (e *IntegrityError) Error() string {
	return "store: " + e.Op + ": integrity violation: " + e.Err.Error()
}

func (e *IntegrityError) Unwrap() error { return e.Err }

func (e *IntegrityError) Is(target error) bool { return target == ErrIntegrity }

// StorageError wraps any other driver failure (unreachable, corrupt, busy).
// It matches ErrStorage with errors.Is.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }
