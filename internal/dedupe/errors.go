package dedupe

import (
	"errors"
	"fmt"
)

// Custom error types
var (
	// ErrStoreRead is returned when reading names or records from the store fails
	ErrStoreRead = errors.New("store read error")

	// ErrStoreWrite is returned when persisting a rename fails
	ErrStoreWrite = errors.New("store write error")
)

// StoreReadError represents a failure while reading from the store
type StoreReadError struct {
	Operation string
	Cause     error
}

func (e *StoreReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store read error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("store read error during %s", e.Operation)
}

func (e *StoreReadError) Unwrap() error {
	return ErrStoreRead
}

// StoreWriteError represents a failure while persisting a single rename
type StoreWriteError struct {
	ID      uint
	NewName string
	Cause   error
}

func (e *StoreWriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store write error renaming record %d to '%s': %v", e.ID, e.NewName, e.Cause)
	}
	return fmt.Sprintf("store write error renaming record %d to '%s'", e.ID, e.NewName)
}

func (e *StoreWriteError) Unwrap() error {
	return ErrStoreWrite
}

// WrapStoreReadError wraps an error as a store read error
func WrapStoreReadError(operation string, cause error) error {
	return &StoreReadError{
		Operation: operation,
		Cause:     cause,
	}
}

// WrapStoreWriteError wraps an error as a store write error
func WrapStoreWriteError(id uint, newName string, cause error) error {
	return &StoreWriteError{
		ID:      id,
		NewName: newName,
		Cause:   cause,
	}
}

// IsStoreReadError checks if an error is a store read error
func IsStoreReadError(err error) bool {
	return errors.Is(err, ErrStoreRead)
}

// IsStoreWriteError checks if an error is a store write error
func IsStoreWriteError(err error) bool {
	return errors.Is(err, ErrStoreWrite)
}
