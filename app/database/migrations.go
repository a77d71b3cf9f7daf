package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createStudentsTable(db); err != nil {
		return err
	}
	if err := createFeeHistoryTable(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createStudentsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			b_form TEXT NOT NULL,
			father_name TEXT NOT NULL,
			father_cnic TEXT NOT NULL,
			address TEXT NOT NULL,
			contact TEXT NOT NULL,
			roll_no INTEGER NOT NULL,
			dob DATE NOT NULL,
			class_level VARCHAR(20) NOT NULL,
			gender VARCHAR(10) NOT NULL,
			nationality VARCHAR(20) NOT NULL,
			religion VARCHAR(20) NOT NULL,
			date_of_admission DATE NOT NULL,
			fee NUMERIC(12,2) NOT NULL CHECK (fee >= 0),
			remaining_fee NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (remaining_fee >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create students table: %v", err)
		return err
	}
	return nil
}

func createFeeHistoryTable(db *sql.DB) error {
	// BIGSERIAL id preserves insertion order; the history is append-only.
	query := `
		CREATE TABLE IF NOT EXISTS fee_history (
			id BIGSERIAL PRIMARY KEY,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			amount NUMERIC(12,2) NOT NULL CHECK (amount >= 0),
			status VARCHAR(10) NOT NULL CHECK (status IN ('paid', 'unpaid')),
			date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			description TEXT NOT NULL DEFAULT ''
		)
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create fee_history table: %v", err)
		return err
	}

	indexQuery := `CREATE INDEX IF NOT EXISTS idx_fee_history_student ON fee_history (student_id, id)`
	if _, err := db.Exec(indexQuery); err != nil {
		log.Printf("Failed to create fee_history index: %v", err)
		return err
	}
	return nil
}
