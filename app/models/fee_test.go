package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerState(t *testing.T) {
	tests := []struct {
		name      string
		remaining float64
		history   []FeeHistoryEntry
		fullyPaid bool
		hasPaid   bool
		state     PaymentState
	}{
		{
			name:      "pending with only the initial obligation",
			remaining: 5000,
			history:   []FeeHistoryEntry{{Amount: 5000, Status: FeeUnpaid}},
			fullyPaid: false,
			hasPaid:   false,
			state:     StatePending,
		},
		{
			name:      "partially paid",
			remaining: 3000,
			history: []FeeHistoryEntry{
				{Amount: 5000, Status: FeeUnpaid},
				{Amount: 2000, Status: FeePaid},
				{Amount: 3000, Status: FeeUnpaid},
			},
			fullyPaid: false,
			hasPaid:   true,
			state:     StatePartiallyPaid,
		},
		{
			name:      "fully paid",
			remaining: 0,
			history: []FeeHistoryEntry{
				{Amount: 5000, Status: FeeUnpaid},
				{Amount: 5000, Status: FeePaid},
			},
			fullyPaid: true,
			hasPaid:   true,
			state:     StateFullyPaid,
		},
		{
			name:      "zero fee record is fully paid from the start",
			remaining: 0,
			history:   []FeeHistoryEntry{{Amount: 0, Status: FeeUnpaid}},
			fullyPaid: true,
			hasPaid:   false,
			state:     StateFullyPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Student{RemainingFee: tt.remaining, FeeHistory: tt.history}
			assert.Equal(t, tt.fullyPaid, s.IsFullyPaid())
			assert.Equal(t, tt.hasPaid, s.HasAnyPayment())
			assert.Equal(t, tt.state, s.LedgerState())
		})
	}
}

func TestFeeStatusValid(t *testing.T) {
	assert.True(t, FeePaid.Valid())
	assert.True(t, FeeUnpaid.Valid())
	assert.False(t, FeeStatus("refunded").Valid())
	assert.False(t, FeeStatus("").Valid())
}

func TestCustomDateJSON(t *testing.T) {
	var d CustomDate
	assert.NoError(t, d.UnmarshalJSON([]byte(`"2026-08-28"`)))
	assert.Equal(t, 2026, d.Year())

	out, err := d.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"2026-08-28"`, string(out))

	assert.NoError(t, d.UnmarshalJSON([]byte("null")))
	assert.True(t, d.IsZero())
}
