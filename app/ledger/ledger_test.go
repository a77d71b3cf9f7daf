package ledger

import (
	"testing"
	"time"

	"github.com/armughan418/EPS-MY-SMS/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCreatesInitialObligation(t *testing.T) {
	s := &models.Student{Fee: 5000}

	Seed(s)

	require.Len(t, s.FeeHistory, 1)
	assert.Equal(t, float64(5000), s.FeeHistory[0].Amount)
	assert.Equal(t, models.FeeUnpaid, s.FeeHistory[0].Status)
	assert.Equal(t, "Initial fee", s.FeeHistory[0].Description)
	assert.False(t, s.FeeHistory[0].Date.IsZero())
	assert.Equal(t, float64(5000), s.RemainingFee)
}

func TestSeedIsIdempotent(t *testing.T) {
	existing := []models.FeeHistoryEntry{
		{Amount: 5000, Status: models.FeeUnpaid, Date: time.Now(), Description: "Initial fee"},
		{Amount: 2000, Status: models.FeePaid, Date: time.Now(), Description: "Fee paid for March"},
	}
	s := &models.Student{Fee: 5000, RemainingFee: 3000, FeeHistory: existing}

	Seed(s)

	assert.Equal(t, existing, s.FeeHistory)
	assert.Equal(t, float64(3000), s.RemainingFee)
}

func TestSeedZeroFee(t *testing.T) {
	s := &models.Student{Fee: 0}

	Seed(s)

	require.Len(t, s.FeeHistory, 1)
	assert.Equal(t, float64(0), s.FeeHistory[0].Amount)
	assert.Equal(t, float64(0), s.RemainingFee)
}

func TestNewStudentRecord(t *testing.T) {
	s, err := NewStudentRecord(models.Student{
		FirstName: "Ahmed",
		LastName:  "Khan",
		Fee:       5000,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	require.Len(t, s.FeeHistory, 1)
	assert.Equal(t, float64(5000), s.RemainingFee)
}

func TestNewStudentRecordKeepsSuppliedID(t *testing.T) {
	s, err := NewStudentRecord(models.Student{ID: "pre-assigned", Fee: 100})

	require.NoError(t, err)
	assert.Equal(t, "pre-assigned", s.ID)
}

func TestNewStudentRecordRejectsNegativeFee(t *testing.T) {
	_, err := NewStudentRecord(models.Student{Fee: -1})

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "fee", validationErr.Field)
}
