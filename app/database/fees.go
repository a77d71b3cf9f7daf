package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/armughan418/EPS-MY-SMS/app/ledger"
	"github.com/armughan418/EPS-MY-SMS/app/models"
)

// FeeStore is the PostgreSQL implementation of the ledger's persistence
// contract. The batched commit runs inside one transaction, which is
// stronger than the contract requires; callers still must not rely on
// cross-record atomicity.
type FeeStore struct {
	db *sql.DB
}

func NewFeeStore(db *sql.DB) *FeeStore {
	return &FeeStore{db: db}
}

// StudentFee looks up a student's fee record for reconciliation. Only the
// ledger columns are needed during validation, the history is not loaded.
func (s *FeeStore) StudentFee(ctx context.Context, studentID string) (*models.Student, error) {
	query := `SELECT id, first_name, last_name, fee, remaining_fee FROM students WHERE id = $1`

	student := &models.Student{}
	err := s.db.QueryRowContext(ctx, query, studentID).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.Fee, &student.RemainingFee,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

// ApplyFeeUpdates commits a validated reconciliation batch: per student it
// overwrites the remaining balance and appends the planned history entries.
func (s *FeeStore) ApplyFeeUpdates(ctx context.Context, updates []ledger.PlannedUpdate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, update := range updates {
		result, err := tx.ExecContext(ctx,
			"UPDATE students SET remaining_fee = $1, updated_at = NOW() WHERE id = $2",
			update.RemainingFee, update.StudentID,
		)
		if err != nil {
			return fmt.Errorf("failed to update balance for student %s: %v", update.StudentID, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("student %s disappeared during commit: %w", update.StudentID, ledger.ErrStudentNotFound)
		}

		for _, entry := range update.NewEntries {
			if err := insertFeeEntry(ctx, tx, update.StudentID, entry); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func insertFeeEntry(ctx context.Context, ex execer, studentID string, entry models.FeeHistoryEntry) error {
	query := `INSERT INTO fee_history (student_id, amount, status, date, description)
	          VALUES ($1, $2, $3, $4, $5)`
	if _, err := ex.ExecContext(ctx, query, studentID, entry.Amount, string(entry.Status), entry.Date, entry.Description); err != nil {
		return fmt.Errorf("failed to insert fee history entry: %v", err)
	}
	return nil
}
