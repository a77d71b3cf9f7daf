package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// CustomDate allows parsing dates in YYYY-MM-DD format.
type CustomDate struct {
	time.Time
}

// UnmarshalJSON parses dates in YYYY-MM-DD format.
func (cd *CustomDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == "" || s == `""` {
		cd.Time = time.Time{}
		return nil
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}

	cd.Time = t
	return nil
}

// MarshalJSON formats dates in YYYY-MM-DD format.
func (cd CustomDate) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, cd.Time.Format("2006-01-02"))), nil
}

// Scan implements the Scanner interface for database reading.
func (cd *CustomDate) Scan(value interface{}) error {
	if value == nil {
		cd.Time = time.Time{}
		return nil
	}

	if t, ok := value.(time.Time); ok {
		cd.Time = t
		return nil
	}

	return fmt.Errorf("cannot scan %T into CustomDate", value)
}

// Value implements the Valuer interface for database writing.
func (cd CustomDate) Value() (driver.Value, error) {
	return cd.Time, nil
}

// Student represents an enrolled student together with the fee ledger
// attached to the record. JSON field names match the wire shape consumed
// by the admission and fee pages.
type Student struct {
	ID              string      `json:"id"`
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	BForm           string      `json:"bForm"`
	FatherName      string      `json:"fatherName"`
	FatherCNIC      string      `json:"fatherCNIC"`
	Address         string      `json:"address"`
	Contact         string      `json:"contact"`
	RollNo          int         `json:"rollNo"`
	DOB             CustomDate  `json:"dob"`
	ClassLevel      ClassLevel  `json:"classLevel"`
	Gender          Gender      `json:"gender"`
	Nationality     Nationality `json:"nationality"`
	Religion        Religion    `json:"religion"`
	DateOfAdmission CustomDate  `json:"dateOfAdmission"`

	// Fee ledger. Fee is the total obligation set at admission and is not
	// changed by reconciliation; RemainingFee is the current outstanding
	// balance and never goes negative; FeeHistory is append-only and its
	// insertion order is the chronological audit trail.
	Fee          float64           `json:"fee"`
	RemainingFee float64           `json:"remainingFee"`
	FeeHistory   []FeeHistoryEntry `json:"feeHistory"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
