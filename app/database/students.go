package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/armughan418/EPS-MY-SMS/app/models"
)

const studentColumns = `id, first_name, last_name, b_form, father_name, father_cnic,
	address, contact, roll_no, dob, class_level, gender, nationality, religion,
	date_of_admission, fee, remaining_fee, created_at, updated_at`

// CreateStudent persists a seeded student record together with its initial
// fee history in one transaction. The record must already carry the ledger
// seed; this function does not establish it.
func CreateStudent(ctx context.Context, db *sql.DB, s *models.Student) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO students (id, first_name, last_name, b_form, father_name, father_cnic,
	          address, contact, roll_no, dob, class_level, gender, nationality, religion,
	          date_of_admission, fee, remaining_fee)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	          RETURNING created_at, updated_at`
	err = tx.QueryRowContext(ctx, query,
		s.ID, s.FirstName, s.LastName, s.BForm, s.FatherName, s.FatherCNIC,
		s.Address, s.Contact, s.RollNo, s.DOB, string(s.ClassLevel), string(s.Gender),
		string(s.Nationality), string(s.Religion), s.DateOfAdmission, s.Fee, s.RemainingFee,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert student: %v", err)
	}

	for _, entry := range s.FeeHistory {
		if err := insertFeeEntry(ctx, tx, s.ID, entry); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetStudentByID retrieves a student with the full fee history. Returns
// sql.ErrNoRows when no such student exists.
func GetStudentByID(ctx context.Context, db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	s, err := scanStudent(db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	history, err := getFeeHistory(ctx, db, id)
	if err != nil {
		return nil, err
	}
	s.FeeHistory = history
	return s, nil
}

// GetAllStudents retrieves every student with their fee histories. History
// rows are fetched in one query and merged in memory, preserving insertion
// order per student.
func GetAllStudents(ctx context.Context, db *sql.DB) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	byID := make(map[string]*models.Student)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
		byID[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	historyQuery := `SELECT student_id, amount, status, date, description
	                 FROM fee_history ORDER BY id`
	historyRows, err := db.QueryContext(ctx, historyQuery)
	if err != nil {
		return nil, err
	}
	defer historyRows.Close()

	for historyRows.Next() {
		var studentID, status string
		var entry models.FeeHistoryEntry
		if err := historyRows.Scan(&studentID, &entry.Amount, &status, &entry.Date, &entry.Description); err != nil {
			return nil, err
		}
		entry.Status = models.FeeStatus(status)
		if s, ok := byID[studentID]; ok {
			s.FeeHistory = append(s.FeeHistory, entry)
		}
	}
	return students, historyRows.Err()
}

// StudentUpdate carries the demographic fields a PUT may change. Nil
// pointers leave the stored value untouched. The fee ledger is not
// reachable from here; it changes only through reconciliation.
type StudentUpdate struct {
	FirstName       *string             `json:"firstName"`
	LastName        *string             `json:"lastName"`
	BForm           *string             `json:"bForm"`
	FatherName      *string             `json:"fatherName"`
	FatherCNIC      *string             `json:"fatherCNIC"`
	Address         *string             `json:"address"`
	Contact         *string             `json:"contact"`
	RollNo          *int                `json:"rollNo"`
	DOB             *models.CustomDate  `json:"dob"`
	ClassLevel      *models.ClassLevel  `json:"classLevel"`
	Gender          *models.Gender      `json:"gender"`
	Nationality     *models.Nationality `json:"nationality"`
	Religion        *models.Religion    `json:"religion"`
	DateOfAdmission *models.CustomDate  `json:"dateOfAdmission"`
	Fee             *float64            `json:"fee"`
}

// UpdateStudent applies the provided fields to an existing record. Returns
// sql.ErrNoRows when the student does not exist.
func UpdateStudent(ctx context.Context, db *sql.DB, id string, update StudentUpdate) error {
	var sets []string
	var args []interface{}
	argIndex := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if update.FirstName != nil {
		add("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		add("last_name", *update.LastName)
	}
	if update.BForm != nil {
		add("b_form", *update.BForm)
	}
	if update.FatherName != nil {
		add("father_name", *update.FatherName)
	}
	if update.FatherCNIC != nil {
		add("father_cnic", *update.FatherCNIC)
	}
	if update.Address != nil {
		add("address", *update.Address)
	}
	if update.Contact != nil {
		add("contact", *update.Contact)
	}
	if update.RollNo != nil {
		add("roll_no", *update.RollNo)
	}
	if update.DOB != nil {
		add("dob", *update.DOB)
	}
	if update.ClassLevel != nil {
		add("class_level", string(*update.ClassLevel))
	}
	if update.Gender != nil {
		add("gender", string(*update.Gender))
	}
	if update.Nationality != nil {
		add("nationality", string(*update.Nationality))
	}
	if update.Religion != nil {
		add("religion", string(*update.Religion))
	}
	if update.DateOfAdmission != nil {
		add("date_of_admission", *update.DateOfAdmission)
	}
	if update.Fee != nil {
		add("fee", *update.Fee)
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE students SET %s WHERE id = $%d", strings.Join(sets, ", "), argIndex)
	args = append(args, id)

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteStudent removes a student; the fee history cascades with the row.
// Returns sql.ErrNoRows when the student does not exist.
func DeleteStudent(ctx context.Context, db *sql.DB, id string) error {
	result, err := db.ExecContext(ctx, "DELETE FROM students WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStudent(row rowScanner) (*models.Student, error) {
	s := &models.Student{}
	var classLevel, gender, nationality, religion string
	err := row.Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.BForm, &s.FatherName, &s.FatherCNIC,
		&s.Address, &s.Contact, &s.RollNo, &s.DOB, &classLevel, &gender,
		&nationality, &religion, &s.DateOfAdmission, &s.Fee, &s.RemainingFee,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.ClassLevel = models.ClassLevel(classLevel)
	s.Gender = models.Gender(gender)
	s.Nationality = models.Nationality(nationality)
	s.Religion = models.Religion(religion)
	return s, nil
}

func getFeeHistory(ctx context.Context, db *sql.DB, studentID string) ([]models.FeeHistoryEntry, error) {
	query := `SELECT amount, status, date, description FROM fee_history
	          WHERE student_id = $1 ORDER BY id`

	rows, err := db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.FeeHistoryEntry
	for rows.Next() {
		var entry models.FeeHistoryEntry
		var status string
		if err := rows.Scan(&entry.Amount, &status, &entry.Date, &entry.Description); err != nil {
			return nil, err
		}
		entry.Status = models.FeeStatus(status)
		history = append(history, entry)
	}
	return history, rows.Err()
}
