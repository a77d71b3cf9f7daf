package ledger

import "github.com/armughan418/EPS-MY-SMS/app/models"

// ComputeDashboardStats derives the dashboard counts from the full set of
// student records. It is a pure function of its input and returns all-zero
// counts for an empty set. The paid/unpaid split uses the balance rule only
// (remainingFee == 0); partial payment is not a separate bucket here.
func ComputeDashboardStats(students []*models.Student) models.DashboardStats {
	stats := models.DashboardStats{TotalStudents: len(students)}

	classes := make(map[models.ClassLevel]struct{})
	for _, s := range students {
		switch s.Gender {
		case models.Male:
			stats.MaleStudents++
		case models.Female:
			stats.FemaleStudents++
		}

		classes[s.ClassLevel] = struct{}{}

		if s.IsFullyPaid() {
			stats.FeePaid++
		} else {
			stats.FeeNotPaid++
		}
	}
	stats.TotalClasses = len(classes)

	return stats
}
