package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corplearn/training-admin-api/internal/service"
	appErrors "github.com/corplearn/training-admin-api/pkg/errors"
	"github.com/corplearn/training-admin-api/pkg/response"
)

// StudentHandler exposes the student registry endpoints.
type StudentHandler struct {
	students  *service.StudentService
	dashboard *service.DashboardService
}

// NewStudentHandler constructs StudentHandler. dashboard may be nil when
// cache eviction is not wired.
func NewStudentHandler(students *service.StudentService, dashboard *service.DashboardService) *StudentHandler {
	return &StudentHandler{students: students, dashboard: dashboard}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List(c.Request.Context(), companyFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, nil)
}

// Get godoc
// @Summary Load one student for editing
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Load(c.Request.Context(), companyFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Save godoc
// @Summary Create or overwrite a student record
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body service.SaveStudentRequest true "Student payload"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [put]
func (h *StudentHandler) Save(c *gin.Context) {
	var req service.SaveStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	req.StudentID = c.Param("id")
	companyCode := companyFromContext(c)
	student, err := h.students.Save(c.Request.Context(), companyCode, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.dashboard != nil {
		h.dashboard.Evict(c.Request.Context(), companyCode, req.StudentID)
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Delete godoc
// @Summary Delete a student record
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 204
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	companyCode := companyFromContext(c)
	if err := h.students.Delete(c.Request.Context(), companyCode, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	if h.dashboard != nil {
		h.dashboard.Evict(c.Request.Context(), companyCode, c.Param("id"))
	}
	response.NoContent(c)
}
