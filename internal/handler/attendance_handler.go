package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amberly/schoolbook-backend/internal/model"
	"github.com/amberly/schoolbook-backend/internal/response"
	"github.com/amberly/schoolbook-backend/internal/service"
	"github.com/amberly/schoolbook-backend/internal/validator"
)

// AttendanceHandler serves the specialized mark action. The generic record
// routes over the attendance table stay available alongside it.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// Mark godoc
// POST /api/v1/attendance/mark
// Appends an attendance row stamped with today's date.
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req model.MarkAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}

	if err := h.attendanceService.MarkToday(c.Request.Context(), req); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "Attendance Marked!"})
}
