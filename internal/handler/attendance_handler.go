package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corplearn/training-admin-api/internal/service"
	appErrors "github.com/corplearn/training-admin-api/pkg/errors"
	"github.com/corplearn/training-admin-api/pkg/response"
)

// AttendanceHandler exposes the attendance editor endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
	dashboard  *service.DashboardService
}

// NewAttendanceHandler constructs AttendanceHandler.
func NewAttendanceHandler(attendance *service.AttendanceService, dashboard *service.DashboardService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, dashboard: dashboard}
}

// Sheet godoc
// @Summary Attendance sheet for one date
// @Tags Attendance
// @Produce json
// @Param date query string true "ISO date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /attendance/sheet [get]
func (h *AttendanceHandler) Sheet(c *gin.Context) {
	sheet, err := h.attendance.Sheet(c.Request.Context(), companyFromContext(c), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sheet, nil)
}

// Save godoc
// @Summary Save attendance for one date
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body service.SaveAttendanceRequest true "Attendance payload"
// @Success 200 {object} response.Envelope
// @Router /attendance [post]
func (h *AttendanceHandler) Save(c *gin.Context) {
	var req service.SaveAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	companyCode := companyFromContext(c)
	result, err := h.attendance.Save(c.Request.Context(), companyCode, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.dashboard != nil {
		for _, entry := range req.Entries {
			h.dashboard.Evict(c.Request.Context(), companyCode, entry.StudentID)
		}
	}
	response.JSON(c, http.StatusOK, result, nil)
}
