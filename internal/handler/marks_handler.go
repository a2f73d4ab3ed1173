package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corplearn/training-admin-api/internal/dto"
	"github.com/corplearn/training-admin-api/internal/models"
	"github.com/corplearn/training-admin-api/internal/service"
	appErrors "github.com/corplearn/training-admin-api/pkg/errors"
	"github.com/corplearn/training-admin-api/pkg/response"
)

// MarksHandler exposes the marks editor endpoints.
type MarksHandler struct {
	marks     *service.MarksService
	dashboard *service.DashboardService
}

// NewMarksHandler constructs MarksHandler.
func NewMarksHandler(marks *service.MarksService, dashboard *service.DashboardService) *MarksHandler {
	return &MarksHandler{marks: marks, dashboard: dashboard}
}

type nextColumnRequest struct {
	Columns []string `json:"columns"`
}

type saveMarksRequest struct {
	Marks models.MarksMap `json:"marks"`
}

// Columns godoc
// @Summary Default editor columns
// @Tags Marks
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /marks/columns [get]
func (h *MarksHandler) Columns(c *gin.Context) {
	response.JSON(c, http.StatusOK, dto.MarksColumnsResponse{Columns: h.marks.DefaultColumns()}, nil)
}

// NextColumn godoc
// @Summary Compute the next module column label
// @Tags Marks
// @Accept json
// @Produce json
// @Param payload body nextColumnRequest true "Current column labels"
// @Success 200 {object} response.Envelope
// @Router /marks/columns/next [post]
func (h *MarksHandler) NextColumn(c *gin.Context) {
	var req nextColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	label := h.marks.NextColumnLabel(req.Columns)
	response.JSON(c, http.StatusOK, dto.NextColumnResponse{Label: label}, nil)
}

// Sheet godoc
// @Summary Marks sheet for every student
// @Tags Marks
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /marks/sheet [get]
func (h *MarksHandler) Sheet(c *gin.Context) {
	sheet, err := h.marks.Sheet(c.Request.Context(), companyFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sheet, nil)
}

// Save godoc
// @Summary Replace one student's marks map
// @Tags Marks
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body saveMarksRequest true "Marks payload"
// @Success 200 {object} response.Envelope
// @Router /marks/students/{id} [put]
func (h *MarksHandler) Save(c *gin.Context) {
	var req saveMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	companyCode := companyFromContext(c)
	student, err := h.marks.Save(c.Request.Context(), companyCode, c.Param("id"), req.Marks)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.dashboard != nil {
		h.dashboard.Evict(c.Request.Context(), companyCode, c.Param("id"))
	}
	response.JSON(c, http.StatusOK, student, nil)
}
