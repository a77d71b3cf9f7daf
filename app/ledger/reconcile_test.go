package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/armughan418/EPS-MY-SMS/app/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for exercising the reconciliation service
// without a database.
type memStore struct {
	students  map[string]*models.Student
	applied   [][]PlannedUpdate
	lookupErr error
	applyErr  error
}

func newMemStore(students ...*models.Student) *memStore {
	m := &memStore{students: make(map[string]*models.Student)}
	for _, s := range students {
		m.students[s.ID] = s
	}
	return m
}

func (m *memStore) StudentFee(_ context.Context, studentID string) (*models.Student, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	s, ok := m.students[studentID]
	if !ok {
		return nil, ErrStudentNotFound
	}
	clone := *s
	return &clone, nil
}

func (m *memStore) ApplyFeeUpdates(_ context.Context, updates []PlannedUpdate) error {
	if m.applyErr != nil {
		return m.applyErr
	}
	m.applied = append(m.applied, updates)
	for _, u := range updates {
		s := m.students[u.StudentID]
		s.RemainingFee = u.RemainingFee
		s.FeeHistory = append(s.FeeHistory, u.NewEntries...)
	}
	return nil
}

func seededStudent(fee float64) *models.Student {
	s, _ := NewStudentRecord(models.Student{ID: uuid.NewString(), Fee: fee})
	return s
}

func testService(store Store) *Service {
	svc := NewService(store)
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestReconcileEmptyBatch(t *testing.T) {
	svc := testService(newMemStore())

	err := svc.Reconcile(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNoUpdates)
}

func TestReconcilePartialPayment(t *testing.T) {
	student := seededStudent(5000)
	store := newMemStore(student)
	svc := testService(store)

	err := svc.Reconcile(context.Background(), []PaymentUpdate{
		{StudentID: student.ID, PaidAmount: 2000, RemainingFee: 3000},
	})

	require.NoError(t, err)
	assert.Equal(t, float64(3000), student.RemainingFee)
	require.Len(t, student.FeeHistory, 3)

	paid := student.FeeHistory[1]
	assert.Equal(t, float64(2000), paid.Amount)
	assert.Equal(t, models.FeePaid, paid.Status)
	assert.Equal(t, "Fee paid for March", paid.Description)

	carried := student.FeeHistory[2]
	assert.Equal(t, float64(3000), carried.Amount)
	assert.Equal(t, models.FeeUnpaid, carried.Status)
	assert.Equal(t, "Remaining fee for April", carried.Description)

	assert.Equal(t, models.StatePartiallyPaid, student.LedgerState())
}

func TestReconcileSettlesBalance(t *testing.T) {
	student := seededStudent(5000)
	store := newMemStore(student)
	svc := testService(store)

	require.NoError(t, svc.Reconcile(context.Background(), []PaymentUpdate{
		{StudentID: student.ID, PaidAmount: 2000, RemainingFee: 3000},
	}))
	require.NoError(t, svc.Reconcile(context.Background(), []PaymentUpdate{
		{StudentID: student.ID, PaidAmount: 3000, RemainingFee: 0},
	}))

	assert.Equal(t, float64(0), student.RemainingFee)
	assert.True(t, student.IsFullyPaid())
	assert.Equal(t, models.StateFullyPaid, student.LedgerState())
	// Settling adds only the payment entry, nothing is carried forward.
	require.Len(t, student.FeeHistory, 4)
	assert.Equal(t, models.FeePaid, student.FeeHistory[3].Status)
}

func TestReconcileAppendOnly(t *testing.T) {
	student := seededStudent(5000)
	before := make([]models.FeeHistoryEntry, len(student.FeeHistory))
	copy(before, student.FeeHistory)
	svc := testService(newMemStore(student))

	require.NoError(t, svc.Reconcile(context.Background(), []PaymentUpdate{
		{StudentID: student.ID, PaidAmount: 1000, RemainingFee: 4000},
	}))

	require.Len(t, student.FeeHistory, len(before)+2)
	assert.Equal(t, before, student.FeeHistory[:len(before)])
}

func TestReconcileZeroAmountsOverwriteBalanceOnly(t *testing.T) {
	student := seededStudent(5000)
	store := newMemStore(student)
	svc := testService(store)

	err := svc.Reconcile(context.Background(), []PaymentUpdate{
		{StudentID: student.ID, PaidAmount: 0, RemainingFee: 0},
	})

	require.NoError(t, err)
	assert.Equal(t, float64(0), student.RemainingFee)
	// No history entries are planned for zero amounts.
	require.Len(t, store.applied, 1)
	require.Len(t, store.applied[0], 1)
	assert.Empty(t, store.applied[0][0].NewEntries)
	require.Len(t, student.FeeHistory, 1)
}

func TestReconcileBatchIsSingleCommit(t *testing.T) {
	first := seededStudent(5000)
	second := seededStudent(8000)
	store := newMemStore(first, second)
	svc := testService(store)

	err := svc.Reconcile(context.Background(), []PaymentUpdate{
		{StudentID: first.ID, PaidAmount: 5000, RemainingFee: 0},
		{StudentID: second.ID, PaidAmount: 4000, RemainingFee: 4000},
	})

	require.NoError(t, err)
	require.Len(t, store.applied, 1)
	assert.Len(t, store.applied[0], 2)
	assert.Equal(t, float64(0), first.RemainingFee)
	assert.Equal(t, float64(4000), second.RemainingFee)
}

func TestReconcileAllOrNothing(t *testing.T) {
	first := seededStudent(5000)
	second := seededStudent(8000)
	store := newMemStore(first, second)
	svc := testService(store)

	err := svc.Reconcile(context.Background(), []PaymentUpdate{
		{StudentID: first.ID, PaidAmount: 2000, RemainingFee: 3000},
		{StudentID: second.ID, PaidAmount: -1, RemainingFee: 8000},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 1, validationErr.Index)
	assert.Equal(t, "paidAmount", validationErr.Field)

	// Nothing was written for either student.
	assert.Empty(t, store.applied)
	assert.Equal(t, float64(5000), first.RemainingFee)
	assert.Len(t, first.FeeHistory, 1)
	assert.Equal(t, float64(8000), second.RemainingFee)
	assert.Len(t, second.FeeHistory, 1)
}

func TestReconcileNegativeRemainingFee(t *testing.T) {
	student := seededStudent(5000)
	store := newMemStore(student)
	svc := testService(store)

	err := svc.Reconcile(context.Background(), []PaymentUpdate{
		{StudentID: student.ID, PaidAmount: 100, RemainingFee: -50},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "remainingFee", validationErr.Field)
	assert.Empty(t, store.applied)
}

func TestReconcileInvalidStudentID(t *testing.T) {
	svc := testService(newMemStore())

	err := svc.Reconcile(context.Background(), []PaymentUpdate{
		{StudentID: "not-a-uuid", PaidAmount: 100, RemainingFee: 0},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "studentId", validationErr.Field)
}

func TestReconcileUnknownStudent(t *testing.T) {
	student := seededStudent(5000)
	store := newMemStore(student)
	svc := testService(store)

	err := svc.Reconcile(context.Background(), []PaymentUpdate{
		{StudentID: student.ID, PaidAmount: 100, RemainingFee: 4900},
		{StudentID: uuid.NewString(), PaidAmount: 100, RemainingFee: 0},
	})

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, 1, notFoundErr.Index)
	assert.ErrorIs(t, err, ErrStudentNotFound)

	// The valid first item was not committed either.
	assert.Empty(t, store.applied)
	assert.Equal(t, float64(5000), student.RemainingFee)
}

func TestReconcileLookupFailure(t *testing.T) {
	store := newMemStore()
	store.lookupErr = errors.New("connection reset")
	svc := testService(store)

	err := svc.Reconcile(context.Background(), []PaymentUpdate{
		{StudentID: uuid.NewString(), PaidAmount: 100, RemainingFee: 0},
	})

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "lookup", storeErr.Op)
}

func TestReconcileCommitFailure(t *testing.T) {
	student := seededStudent(5000)
	store := newMemStore(student)
	store.applyErr = errors.New("write timeout")
	svc := testService(store)

	err := svc.Reconcile(context.Background(), []PaymentUpdate{
		{StudentID: student.ID, PaidAmount: 5000, RemainingFee: 0},
	})

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "commit", storeErr.Op)
}

func TestReconcileMonthRollsOverYearEnd(t *testing.T) {
	student := seededStudent(5000)
	store := newMemStore(student)
	svc := NewService(store)
	svc.now = func() time.Time {
		return time.Date(2026, time.December, 10, 9, 0, 0, 0, time.UTC)
	}

	require.NoError(t, svc.Reconcile(context.Background(), []PaymentUpdate{
		{StudentID: student.ID, PaidAmount: 1000, RemainingFee: 4000},
	}))

	assert.Equal(t, "Fee paid for December", student.FeeHistory[1].Description)
	assert.Equal(t, "Remaining fee for January", student.FeeHistory[2].Description)
}
