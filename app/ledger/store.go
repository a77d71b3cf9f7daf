package ledger

import (
	"context"

	"github.com/armughan418/EPS-MY-SMS/app/models"
)

// Store is the persistence contract the reconciliation service depends on.
// StudentFee looks a record up by id and returns ErrStudentNotFound when it
// does not exist. ApplyFeeUpdates commits a planned batch in one call;
// whether the per-record updates inside that call are atomic is a property
// of the implementation, not of this contract.
type Store interface {
	StudentFee(ctx context.Context, studentID string) (*models.Student, error)
	ApplyFeeUpdates(ctx context.Context, updates []PlannedUpdate) error
}

// PlannedUpdate is one validated mutation of a student's fee ledger:
// entries to append and the authoritative new balance. Planned updates are
// only handed to the store once every item in the batch has validated.
type PlannedUpdate struct {
	StudentID    string
	RemainingFee float64
	NewEntries   []models.FeeHistoryEntry
}
