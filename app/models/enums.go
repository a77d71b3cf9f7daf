package models

// FeeStatus defines the possible status values for a fee history entry.
type FeeStatus string

const (
	FeePaid   FeeStatus = "paid"
	FeeUnpaid FeeStatus = "unpaid"
)

// Valid reports whether the status is one of the known values.
func (s FeeStatus) Valid() bool {
	return s == FeePaid || s == FeeUnpaid
}

// PaymentState is the derived ledger state of a student record.
type PaymentState string

const (
	StateFullyPaid     PaymentState = "fully_paid"
	StatePartiallyPaid PaymentState = "partially_paid"
	StatePending       PaymentState = "pending"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Valid reports whether the gender is one of the known values.
func (g Gender) Valid() bool {
	return g == Male || g == Female
}

// ClassLevel defines the class a student is enrolled in.
type ClassLevel string

const (
	Nursery ClassLevel = "Nursery"
	KG1     ClassLevel = "KG-1"
	KG2     ClassLevel = "KG-2"
	Class1  ClassLevel = "Class 1"
	Class2  ClassLevel = "Class 2"
	Class3  ClassLevel = "Class 3"
	Class4  ClassLevel = "Class 4"
	Class5  ClassLevel = "Class 5"
	Class6  ClassLevel = "Class 6"
	Class7  ClassLevel = "Class 7"
	Class8  ClassLevel = "Class 8"
	Class9  ClassLevel = "Class 9"
	Class10 ClassLevel = "Class 10"
)

// ClassLevels lists every class level in ascending order.
func ClassLevels() []ClassLevel {
	return []ClassLevel{
		Nursery, KG1, KG2,
		Class1, Class2, Class3, Class4, Class5,
		Class6, Class7, Class8, Class9, Class10,
	}
}

// Valid reports whether the class level is one of the known values.
func (c ClassLevel) Valid() bool {
	for _, level := range ClassLevels() {
		if c == level {
			return true
		}
	}
	return false
}

// Nationality defines the possible nationality values for a student.
type Nationality string

const (
	Pakistan         Nationality = "Pakistan"
	OtherNationality Nationality = "Others"
)

// Valid reports whether the nationality is one of the known values.
func (n Nationality) Valid() bool {
	return n == Pakistan || n == OtherNationality
}

// Religion defines the possible religion values for a student.
type Religion string

const (
	Islam         Religion = "Islam"
	Christian     Religion = "Christian"
	Hindu         Religion = "Hindu"
	OtherReligion Religion = "Others"
)

// Valid reports whether the religion is one of the known values.
func (r Religion) Valid() bool {
	switch r {
	case Islam, Christian, Hindu, OtherReligion:
		return true
	}
	return false
}
