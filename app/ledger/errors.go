// Package ledger owns the fee ledger attached to student records: seeding
// the initial obligation at admission, reconciling batches of payment
// updates against the history, and deriving dashboard aggregates.
package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrNoUpdates is returned when a reconciliation batch is empty.
	ErrNoUpdates = errors.New("ledger: no updates provided")

	// ErrStudentNotFound is returned by Store implementations when a
	// student id does not identify an existing record.
	ErrStudentNotFound = errors.New("ledger: student not found")
)

// ValidationError reports a malformed or out-of-range value in a
// reconciliation batch. Index identifies the offending item.
type ValidationError struct {
	Index   int
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ledger: invalid %s at update %d: %s", e.Field, e.Index, e.Message)
}

// NotFoundError reports a batch item referencing a student that does not
// exist. The whole batch is rejected.
type NotFoundError struct {
	Index     int
	StudentID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("ledger: student %s at update %d not found", e.StudentID, e.Index)
}

func (e *NotFoundError) Unwrap() error {
	return ErrStudentNotFound
}

// StoreError wraps a failure of the underlying persistence layer. The
// batched commit is a single call, but the store may apply per-record
// updates independently, so a StoreError during commit means the batch is
// at most partially applied. Retries are the caller's decision.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("ledger: store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
