package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amberly/schoolbook-backend/internal/model"
	"github.com/amberly/schoolbook-backend/internal/response"
	"github.com/amberly/schoolbook-backend/internal/service"
	"github.com/amberly/schoolbook-backend/internal/validator"
)

// RecordHandler serves the generic record workflow for all seven modules.
// The entity is resolved per request from the :module path segment, so the
// same handler instance covers every table.
type RecordHandler struct {
	recordService *service.RecordService
}

func NewRecordHandler(recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// entity resolves the :module path segment against the registry. On an
// unknown module it writes the 404 itself and reports false.
func (h *RecordHandler) entity(c *gin.Context) (model.Entity, bool) {
	entity, ok := model.EntityByName(c.Param("module"))
	if !ok {
		response.Fail(c, http.StatusNotFound, response.ErrUnknownModule)
		return model.Entity{}, false
	}
	return entity, true
}

// List godoc
// GET /api/v1/modules/:module/records?search=q
// Returns the full table snapshot, filtered by the search query when given.
func (h *RecordHandler) List(c *gin.Context) {
	entity, ok := h.entity(c)
	if !ok {
		return
	}

	records, err := h.recordService.List(c.Request.Context(), entity, c.Query("search"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"records": records})
}

// Create godoc
// POST /api/v1/modules/:module/records
// Inserts one row from the field values. Always reports success once the
// insert executes, whatever the values were.
func (h *RecordHandler) Create(c *gin.Context) {
	entity, ok := h.entity(c)
	if !ok {
		return
	}

	values := map[string]string{}
	if fields := validator.Bind(c, &values); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}

	if err := h.recordService.Add(c.Request.Context(), entity, values); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "Record Added Successfully!"})
}

// Update godoc
// PUT /api/v1/modules/:module/records/:id
// Writes every non-empty field value to the row matching id. Reports
// success even when no row matched.
func (h *RecordHandler) Update(c *gin.Context) {
	entity, ok := h.entity(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	values := map[string]string{}
	if fields := validator.Bind(c, &values); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}

	if err := h.recordService.Update(c.Request.Context(), entity, id, values); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Record Updated!"})
}

// Delete godoc
// DELETE /api/v1/modules/:module/records/:id?confirm=true
// Requires the confirmation toggle; once confirmed, reports success even
// when no row matched.
func (h *RecordHandler) Delete(c *gin.Context) {
	entity, ok := h.entity(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if c.Query("confirm") != "true" {
		response.Fail(c, http.StatusBadRequest, response.ErrConfirmRequired)
		return
	}

	if err := h.recordService.Delete(c.Request.Context(), entity, id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Record Deleted!"})
}
