package fees

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/armughan418/EPS-MY-SMS/app/cache"
	"github.com/armughan418/EPS-MY-SMS/app/database"
	"github.com/armughan418/EPS-MY-SMS/app/ledger"
	"github.com/armughan418/EPS-MY-SMS/app/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetFeeStudentsAPI returns all students with their ledgers for the
// fee-marking page.
func GetFeeStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetAllStudents(c.Context(), db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return c.JSON(fiber.Map{
		"students": students,
	})
}

// GetFeeHistoryAPI returns one student's fee ledger. The derived state here
// distinguishes partial payment, unlike the dashboard counts.
func GetFeeHistoryAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}

	student, err := database.GetStudentByID(c.Context(), db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee history")
	}

	return c.JSON(fiber.Map{
		"studentId":    student.ID,
		"studentName":  student.FullName(),
		"fee":          student.Fee,
		"remainingFee": student.RemainingFee,
		"state":        student.LedgerState(),
		"feeHistory":   student.FeeHistory,
	})
}

// MarkFeePaidAPI reconciles a batch of payment updates. The body may be a
// single update object or an array of them; the batch is validated whole
// and either fully applied or fully rejected.
func MarkFeePaidAPI(c *fiber.Ctx, svc *ledger.Service, statsCache *cache.StatsCache) error {
	updates, err := parseUpdates(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	start := time.Now()
	err = svc.Reconcile(c.Context(), updates)
	elapsed := time.Since(start)

	if err != nil {
		var validationErr *ledger.ValidationError
		var notFoundErr *ledger.NotFoundError
		switch {
		case errors.Is(err, ledger.ErrNoUpdates):
			metrics.ObserveReconcile(metrics.ResultRejected, 0, elapsed)
			return fiber.NewError(fiber.StatusBadRequest, "No updates provided")
		case errors.As(err, &validationErr):
			metrics.ObserveReconcile(metrics.ResultRejected, 0, elapsed)
			return fiber.NewError(fiber.StatusBadRequest, validationErr.Error())
		case errors.As(err, &notFoundErr):
			metrics.ObserveReconcile(metrics.ResultRejected, 0, elapsed)
			return fiber.NewError(fiber.StatusNotFound, notFoundErr.Error())
		default:
			log.Printf("Fee reconciliation failed: %v", err)
			metrics.ObserveReconcile(metrics.ResultError, 0, elapsed)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update fees")
		}
	}

	metrics.ObserveReconcile(metrics.ResultSuccess, appendedEntries(updates), elapsed)

	if statsCache != nil {
		if err := statsCache.Invalidate(c.Context()); err != nil {
			log.Printf("Failed to invalidate dashboard stats cache: %v", err)
		}
	}

	return c.JSON(fiber.Map{
		"message": "Fee updates processed successfully",
	})
}

// parseUpdates accepts both the array form and the legacy single-object
// form of the markFeePaid body.
func parseUpdates(body []byte) ([]ledger.PaymentUpdate, error) {
	var updates []ledger.PaymentUpdate
	if err := json.Unmarshal(body, &updates); err == nil {
		return updates, nil
	}

	var single ledger.PaymentUpdate
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, err
	}
	return []ledger.PaymentUpdate{single}, nil
}

func appendedEntries(updates []ledger.PaymentUpdate) int {
	n := 0
	for _, u := range updates {
		if u.PaidAmount > 0 {
			n++
		}
		if u.RemainingFee > 0 {
			n++
		}
	}
	return n
}
