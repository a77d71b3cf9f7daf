package students

import (
	"database/sql"
	"log"

	"github.com/armughan418/EPS-MY-SMS/app/cache"
	"github.com/armughan418/EPS-MY-SMS/app/database"
	"github.com/armughan418/EPS-MY-SMS/app/ledger"
	"github.com/armughan418/EPS-MY-SMS/app/metrics"
	"github.com/armughan418/EPS-MY-SMS/app/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateStudentAPI admits a new student. The fee ledger is seeded before
// the record is first persisted, so a stored record always carries its
// initial obligation entry.
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB, statsCache *cache.StatsCache) error {
	var req models.Student
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.FirstName == "" || req.LastName == "" || req.BForm == "" || req.FatherName == "" ||
		req.FatherCNIC == "" || req.Address == "" || req.Contact == "" || req.Fee == 0 ||
		req.RollNo == 0 || req.DOB.IsZero() || req.ClassLevel == "" || req.Gender == "" ||
		req.Nationality == "" || req.Religion == "" || req.DateOfAdmission.IsZero() {
		return fiber.NewError(fiber.StatusBadRequest, "All fields are required")
	}

	if !req.ClassLevel.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class level")
	}
	if !req.Gender.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid gender")
	}
	if !req.Nationality.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid nationality")
	}
	if !req.Religion.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid religion")
	}

	// Any client-supplied ledger state is discarded: seeding owns it.
	req.ID = ""
	req.FeeHistory = nil
	req.RemainingFee = 0

	student, err := ledger.NewStudentRecord(req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Fee must be a valid number")
	}

	if err := database.CreateStudent(c.Context(), db, student); err != nil {
		log.Printf("Error adding student: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add student")
	}

	metrics.StudentAdmitted()
	invalidateStats(c, statsCache)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Student added successfully!",
		"student": student,
	})
}

// GetStudentsAPI returns all student records with their fee ledgers.
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetAllStudents(c.Context(), db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

// UpdateStudentAPI updates demographic fields of an existing student. The
// fee ledger is not reachable from this endpoint.
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB, statsCache *cache.StatsCache) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid Student ID")
	}

	var update database.StudentUpdate
	if err := c.BodyParser(&update); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if update.ClassLevel != nil && !update.ClassLevel.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class level")
	}
	if update.Gender != nil && !update.Gender.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid gender")
	}
	if update.Nationality != nil && !update.Nationality.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid nationality")
	}
	if update.Religion != nil && !update.Religion.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid religion")
	}
	if update.Fee != nil && *update.Fee < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Fee must be a valid number")
	}

	if err := database.UpdateStudent(c.Context(), db, id, update); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	invalidateStats(c, statsCache)

	return c.JSON(fiber.Map{
		"message": "Student updated successfully",
	})
}

// DeleteStudentAPI removes a student record; the fee history is destroyed
// with it.
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB, statsCache *cache.StatsCache) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid Student ID")
	}

	if err := database.DeleteStudent(c.Context(), db, id); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}

	invalidateStats(c, statsCache)

	return c.JSON(fiber.Map{
		"message": "Student deleted successfully",
	})
}

func invalidateStats(c *fiber.Ctx, statsCache *cache.StatsCache) {
	if statsCache == nil {
		return
	}
	if err := statsCache.Invalidate(c.Context()); err != nil {
		log.Printf("Failed to invalidate dashboard stats cache: %v", err)
	}
}
