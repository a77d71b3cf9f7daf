package database

import (
	"context"
	"database/sql"

	"github.com/armughan418/EPS-MY-SMS/app/ledger"
	"github.com/armughan418/EPS-MY-SMS/app/models"
)

// GetDashboardStats scans the current student set and aggregates the
// dashboard counts. Only the columns the aggregation needs are loaded.
func GetDashboardStats(ctx context.Context, db *sql.DB) (*models.DashboardStats, error) {
	query := `SELECT gender, class_level, remaining_fee FROM students`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var gender, classLevel string
		s := &models.Student{}
		if err := rows.Scan(&gender, &classLevel, &s.RemainingFee); err != nil {
			return nil, err
		}
		s.Gender = models.Gender(gender)
		s.ClassLevel = models.ClassLevel(classLevel)
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stats := ledger.ComputeDashboardStats(students)
	return &stats, nil
}
