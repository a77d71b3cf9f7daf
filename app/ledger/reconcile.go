package ledger

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// PaymentUpdate is one item of a reconciliation batch as submitted by the
// fee-marking page. RemainingFee is the caller-supplied new balance, not a
// delta: the service overwrites the stored balance with it.
type PaymentUpdate struct {
	StudentID    string  `json:"studentId"`
	PaidAmount   float64 `json:"paidAmount"`
	RemainingFee float64 `json:"remainingFee"`
}

// Service validates and applies reconciliation batches. Validation walks
// the whole batch, one lookup per item, before anything is written; the
// commit is then a single batched call into the store. Two concurrent
// batches touching the same student race on the balance (last write wins) —
// callers must serialize updates per student.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a reconciliation service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Reconcile validates every update in the batch and, only if all of them
// pass, commits the planned mutations in one store call. On any validation
// or lookup failure the batch is rejected whole and nothing is written.
func (s *Service) Reconcile(ctx context.Context, updates []PaymentUpdate) error {
	if len(updates) == 0 {
		return ErrNoUpdates
	}

	now := s.now()
	currentMonth := now.Month().String()
	nextMonth := now.AddDate(0, 1, 0).Month().String()

	planned := make([]PlannedUpdate, 0, len(updates))
	for i, u := range updates {
		if err := validateUpdate(i, u); err != nil {
			return err
		}

		if _, err := s.store.StudentFee(ctx, u.StudentID); err != nil {
			if errors.Is(err, ErrStudentNotFound) {
				return &NotFoundError{Index: i, StudentID: u.StudentID}
			}
			return &StoreError{Op: "lookup", Err: err}
		}

		plan := PlannedUpdate{
			StudentID:    u.StudentID,
			RemainingFee: u.RemainingFee,
		}
		if u.PaidAmount > 0 {
			plan.NewEntries = append(plan.NewEntries, paymentEntry(u.PaidAmount, now, currentMonth))
		}
		if u.RemainingFee > 0 {
			plan.NewEntries = append(plan.NewEntries, obligationEntry(u.RemainingFee, now, nextMonth))
		}
		planned = append(planned, plan)
	}

	if err := s.store.ApplyFeeUpdates(ctx, planned); err != nil {
		return &StoreError{Op: "commit", Err: err}
	}
	return nil
}

func validateUpdate(index int, u PaymentUpdate) error {
	if u.StudentID == "" {
		return &ValidationError{Index: index, Field: "studentId", Message: "student id is required"}
	}
	if _, err := uuid.Parse(u.StudentID); err != nil {
		return &ValidationError{Index: index, Field: "studentId", Message: "invalid student id"}
	}
	if math.IsNaN(u.PaidAmount) || u.PaidAmount < 0 {
		return &ValidationError{Index: index, Field: "paidAmount", Message: "amount must be a non-negative number"}
	}
	if math.IsNaN(u.RemainingFee) || u.RemainingFee < 0 {
		return &ValidationError{Index: index, Field: "remainingFee", Message: "amount must be a non-negative number"}
	}
	return nil
}
