package service

import (
	"context"

	"github.com/amberly/schoolbook-backend/internal/repository"
)

// DashboardData consolidates the summary metrics shown on the dashboard.
type DashboardData struct {
	TotalStudents int     `json:"total_students"`
	TotalTeachers int     `json:"total_teachers"`
	BooksIssued   int     `json:"books_issued"`
	TotalFeesPaid float64 `json:"total_fees_paid"`
}

// DashboardService handles dashboard aggregation. Metrics are recomputed
// from a fresh full-table fetch on every request; there is no caching.
type DashboardService struct {
	repo *repository.DashboardRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// GetDashboardData fetches the four summary metrics.
func (s *DashboardService) GetDashboardData(ctx context.Context) (*DashboardData, error) {
	students, teachers, books, feesPaid, err := s.repo.GetSummaryCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		TotalStudents: students,
		TotalTeachers: teachers,
		BooksIssued:   books,
		TotalFeesPaid: feesPaid,
	}, nil
}
