package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corplearn/training-admin-api/internal/middleware"
	"github.com/corplearn/training-admin-api/internal/service"
	"github.com/corplearn/training-admin-api/pkg/response"
)

// DashboardHandler exposes the read-only student dashboard. These routes
// carry the company code in the path instead of going through the tenant
// resolver, so students can open a shared link without an admin session.
type DashboardHandler struct {
	dashboard *service.DashboardService
	notes     *service.NoteService
	metrics   *service.MetricsService
}

// NewDashboardHandler constructs DashboardHandler. metrics may be nil.
func NewDashboardHandler(dashboard *service.DashboardService, notes *service.NoteService, metrics *service.MetricsService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, notes: notes, metrics: metrics}
}

// Get godoc
// @Summary Student dashboard
// @Tags Dashboard
// @Produce json
// @Param companyCode path string true "Company code"
// @Param studentId path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /dashboard/{companyCode}/students/{studentId} [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	payload, cached, err := h.dashboard.Load(c.Request.Context(), c.Param("companyCode"), c.Param("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.RecordCacheLookup(cached)
	}
	middleware.SetCacheHit(c, cached)
	response.JSON(c, http.StatusOK, payload, middleware.ExtractMeta(c))
}

// ViewNote godoc
// @Summary Classified note content
// @Tags Dashboard
// @Produce json
// @Param companyCode path string true "Company code"
// @Param noteId path string true "Note ID"
// @Success 200 {object} response.Envelope
// @Router /dashboard/{companyCode}/notes/{noteId}/view [get]
func (h *DashboardHandler) ViewNote(c *gin.Context) {
	payload, err := h.notes.View(c.Request.Context(), c.Param("companyCode"), c.Param("noteId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payload, nil)
}
