package models

import "time"

// FeeHistoryEntry is one immutable audit record of a payment or obligation
// event. Entries are never mutated or deleted once appended.
type FeeHistoryEntry struct {
	Amount      float64   `json:"amount"`
	Status      FeeStatus `json:"status"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// IsFullyPaid reports whether the student's balance is settled. This is the
// rule the dashboard counts use.
func (s *Student) IsFullyPaid() bool {
	return s.RemainingFee == 0
}

// HasAnyPayment reports whether at least one payment has been recorded in
// the fee history. Detail views use this together with IsFullyPaid to show
// partial payment; the two rules are intentionally kept separate.
func (s *Student) HasAnyPayment() bool {
	for _, entry := range s.FeeHistory {
		if entry.Status == FeePaid {
			return true
		}
	}
	return false
}

// LedgerState derives the payment state of the record: fully paid when the
// balance is zero, partially paid when money is still owed but at least one
// payment exists, pending otherwise.
func (s *Student) LedgerState() PaymentState {
	if s.IsFullyPaid() {
		return StateFullyPaid
	}
	if s.HasAnyPayment() {
		return StatePartiallyPaid
	}
	return StatePending
}

// DashboardStats holds the aggregate counts shown on the admin dashboard.
type DashboardStats struct {
	TotalStudents  int `json:"totalStudents"`
	MaleStudents   int `json:"maleStudents"`
	FemaleStudents int `json:"femaleStudents"`
	TotalClasses   int `json:"totalClasses"`
	FeePaid        int `json:"feePaid"`
	FeeNotPaid     int `json:"feeNotPaid"`
}
