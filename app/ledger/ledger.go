package ledger

import (
	"time"

	"github.com/armughan418/EPS-MY-SMS/app/models"
	"github.com/google/uuid"
)

// initialFeeDescription labels the seed entry created at admission.
const initialFeeDescription = "Initial fee"

// Seed establishes the admission-time ledger invariant on a candidate
// record: if no history was supplied, exactly one unpaid entry equal to the
// fee is created and the remaining balance is set to the full fee. Records
// that already carry history (migrated or pre-seeded data) are left alone,
// so seeding is idempotent. Persistence is the caller's responsibility.
func Seed(s *models.Student) {
	if len(s.FeeHistory) > 0 {
		return
	}

	s.FeeHistory = []models.FeeHistoryEntry{{
		Amount:      s.Fee,
		Status:      models.FeeUnpaid,
		Date:        time.Now(),
		Description: initialFeeDescription,
	}}
	s.RemainingFee = s.Fee
}

// NewStudentRecord builds a student record ready to be persisted: it
// assigns an id when missing, validates the fee obligation and seeds the
// ledger. The record is returned before any store interaction so the
// seeding invariant is visible and testable on its own.
func NewStudentRecord(s models.Student) (*models.Student, error) {
	if s.Fee < 0 {
		return nil, &ValidationError{Field: "fee", Message: "fee must not be negative"}
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	Seed(&s)
	return &s, nil
}
