package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corplearn/training-admin-api/internal/service"
	"github.com/corplearn/training-admin-api/pkg/response"
)

// SummaryHandler exposes the email summary endpoints.
type SummaryHandler struct {
	summaries *service.SummaryService
	metrics   *service.MetricsService
}

// NewSummaryHandler constructs SummaryHandler. metrics may be nil.
func NewSummaryHandler(summaries *service.SummaryService, metrics *service.MetricsService) *SummaryHandler {
	return &SummaryHandler{summaries: summaries, metrics: metrics}
}

// ShareAttendance godoc
// @Summary Email the attendance summary to company admins
// @Tags Summaries
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /summaries/attendance/share [post]
func (h *SummaryHandler) ShareAttendance(c *gin.Context) {
	result, err := h.summaries.ShareAttendance(c.Request.Context(), companyFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.recordOutcomes(result.FailedCount, len(result.Recipients))
	response.JSON(c, http.StatusOK, result, nil)
}

// ShareMarks godoc
// @Summary Email the module marks summary to company admins
// @Tags Summaries
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /summaries/marks/share [post]
func (h *SummaryHandler) ShareMarks(c *gin.Context) {
	result, err := h.summaries.ShareMarks(c.Request.Context(), companyFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.recordOutcomes(result.FailedCount, len(result.Recipients))
	response.JSON(c, http.StatusOK, result, nil)
}

// PreviewAttendance godoc
// @Summary Preview the attendance summary email body
// @Tags Summaries
// @Produce html
// @Success 200
// @Router /summaries/attendance/preview [get]
func (h *SummaryHandler) PreviewAttendance(c *gin.Context) {
	html, err := h.summaries.PreviewAttendance(c.Request.Context(), companyFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// PreviewMarks godoc
// @Summary Preview the marks summary email body
// @Tags Summaries
// @Produce html
// @Success 200
// @Router /summaries/marks/preview [get]
func (h *SummaryHandler) PreviewMarks(c *gin.Context) {
	html, err := h.summaries.PreviewMarks(c.Request.Context(), companyFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// ExportAttendance godoc
// @Summary Download the attendance summary
// @Tags Summaries
// @Param format query string false "csv or pdf" default(csv)
// @Success 200
// @Router /summaries/attendance/export [get]
func (h *SummaryHandler) ExportAttendance(c *gin.Context) {
	payload, contentType, err := h.summaries.ExportAttendance(c.Request.Context(), companyFromContext(c), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveExport(c, "attendance-summary", contentType, payload)
}

// ExportMarks godoc
// @Summary Download the marks summary
// @Tags Summaries
// @Param format query string false "csv or pdf" default(csv)
// @Success 200
// @Router /summaries/marks/export [get]
func (h *SummaryHandler) ExportMarks(c *gin.Context) {
	payload, contentType, err := h.summaries.ExportMarks(c.Request.Context(), companyFromContext(c), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveExport(c, "marks-summary", contentType, payload)
}

func (h *SummaryHandler) recordOutcomes(failed, total int) {
	if h.metrics == nil {
		return
	}
	h.metrics.RecordEmailOutcomes(total-failed, failed)
}

func serveExport(c *gin.Context, baseName, contentType string, payload []byte) {
	ext := "csv"
	if contentType == "application/pdf" {
		ext = "pdf"
	}
	c.Header("Content-Disposition", `attachment; filename="`+baseName+`.`+ext+`"`)
	c.Data(http.StatusOK, contentType, payload)
}
