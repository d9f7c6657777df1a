package repository

import (
	"context"
	"database/sql"
)

// DashboardRepository handles dashboard data access.
type DashboardRepository struct {
	db *sql.DB
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(db *sql.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// GetSummaryCounts retrieves the four dashboard metrics in one round trip.
// Total fees paid sums the paid flag column, not the amount column.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context) (totalStudents, totalTeachers, booksIssued int, totalFeesPaid float64, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM teachers),
			(SELECT COUNT(*) FROM library),
			(SELECT COALESCE(SUM(paid), 0) FROM fees)`,
	).Scan(&totalStudents, &totalTeachers, &booksIssued, &totalFeesPaid)
	return
}
