package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amberly/schoolbook-backend/internal/model"
	"github.com/amberly/schoolbook-backend/internal/response"
)

// ModuleHandler lists the sidebar destinations so the console can build
// its selector and form panels straight from the registry.
type ModuleHandler struct{}

func NewModuleHandler() *ModuleHandler {
	return &ModuleHandler{}
}

// moduleInfo is one sidebar destination.
type moduleInfo struct {
	Name   string        `json:"name"`
	Title  string        `json:"title"`
	Fields []model.Field `json:"fields,omitempty"`
}

// List godoc
// GET /api/v1/modules
// Returns Dashboard plus the seven record modules, in sidebar order.
func (h *ModuleHandler) List(c *gin.Context) {
	modules := []moduleInfo{{Name: "dashboard", Title: "Dashboard"}}
	for _, e := range model.Entities() {
		modules = append(modules, moduleInfo{Name: e.Name, Title: e.Title, Fields: e.Fields})
	}

	response.Success(c, http.StatusOK, gin.H{"modules": modules})
}
