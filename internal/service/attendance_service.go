package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/amberly/schoolbook-backend/internal/model"
	"github.com/amberly/schoolbook-backend/internal/repository"
)

// AttendanceService implements the specialized mark action. Attendance is
// the only table with two insertion paths: this one, which stamps the
// current date, and the generic add panel over the same table.
type AttendanceService struct {
	tables *repository.TableRepository
	log    zerolog.Logger
}

func NewAttendanceService(tables *repository.TableRepository, log zerolog.Logger) *AttendanceService {
	return &AttendanceService{
		tables: tables,
		log:    log.With().Str("component", "attendance_service").Logger(),
	}
}

// MarkToday appends an attendance row stamped with today's date. The
// student id is not checked against the students table.
func (s *AttendanceService) MarkToday(ctx context.Context, req model.MarkAttendanceRequest) error {
	today := time.Now().Format("2006-01-02")

	err := s.tables.Insert(ctx, "attendance",
		[]string{"student_id", "date", "status"},
		[]any{req.StudentID, today, req.Status})
	if err != nil {
		return err
	}

	s.log.Debug().
		Str("student_id", req.StudentID).
		Str("status", req.Status).
		Msg("attendance marked")
	return nil
}
