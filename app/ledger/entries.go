package ledger

import (
	"fmt"
	"time"

	"github.com/armughan418/EPS-MY-SMS/app/models"
)

// paymentEntry records money received for the current month.
func paymentEntry(amount float64, at time.Time, month string) models.FeeHistoryEntry {
	return models.FeeHistoryEntry{
		Amount:      amount,
		Status:      models.FeePaid,
		Date:        at,
		Description: fmt.Sprintf("Fee paid for %s", month),
	}
}

// obligationEntry records the balance carried into the next month.
func obligationEntry(amount float64, at time.Time, month string) models.FeeHistoryEntry {
	return models.FeeHistoryEntry{
		Amount:      amount,
		Status:      models.FeeUnpaid,
		Date:        at,
		Description: fmt.Sprintf("Remaining fee for %s", month),
	}
}
