package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corplearn/training-admin-api/internal/dto"
	"github.com/corplearn/training-admin-api/internal/service"
	appErrors "github.com/corplearn/training-admin-api/pkg/errors"
	"github.com/corplearn/training-admin-api/pkg/response"
)

// CatalogHandler exposes the course and module catalog endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
	events  *service.CatalogEvents
}

// NewCatalogHandler constructs CatalogHandler. events may be nil, in which
// case Watch reports the stream as unavailable.
func NewCatalogHandler(catalog *service.CatalogService, events *service.CatalogEvents) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, events: events}
}

type createCourseRequest struct {
	CourseID string `json:"courseId"`
}

// ListCourses godoc
// @Summary List courses
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog/courses [get]
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	courses, err := h.catalog.ListCourses(c.Request.Context(), companyFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.CourseListResponse{Courses: courses}, nil)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body createCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Router /catalog/courses [post]
func (h *CatalogHandler) CreateCourse(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	course, err := h.catalog.CreateCourse(c.Request.Context(), companyFromContext(c), req.CourseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// ListModules godoc
// @Summary List modules of a course
// @Tags Catalog
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /catalog/courses/{courseId}/modules [get]
func (h *CatalogHandler) ListModules(c *gin.Context) {
	courseID := c.Param("courseId")
	modules, err := h.catalog.ListModules(c.Request.Context(), companyFromContext(c), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.ModuleListResponse{CourseID: courseID, Modules: modules}, nil)
}

// CreateModule godoc
// @Summary Add a module to a course
// @Tags Catalog
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param payload body service.SaveModuleRequest true "Module payload"
// @Success 201 {object} response.Envelope
// @Router /catalog/courses/{courseId}/modules [post]
func (h *CatalogHandler) CreateModule(c *gin.Context) {
	var req service.SaveModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	module, err := h.catalog.CreateModule(c.Request.Context(), companyFromContext(c), c.Param("courseId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, module)
}

// UpdateModule godoc
// @Summary Overwrite a module
// @Tags Catalog
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Param payload body service.SaveModuleRequest true "Module payload"
// @Success 200 {object} response.Envelope
// @Router /catalog/courses/{courseId}/modules/{moduleId} [put]
func (h *CatalogHandler) UpdateModule(c *gin.Context) {
	var req service.SaveModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	module, err := h.catalog.UpdateModule(c.Request.Context(), companyFromContext(c), c.Param("courseId"), c.Param("moduleId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, module, nil)
}

// DeleteModule godoc
// @Summary Remove a module from a course
// @Tags Catalog
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Success 204
// @Router /catalog/courses/{courseId}/modules/{moduleId} [delete]
func (h *CatalogHandler) DeleteModule(c *gin.Context) {
	if err := h.catalog.DeleteModule(c.Request.Context(), companyFromContext(c), c.Param("courseId"), c.Param("moduleId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Watch godoc
// @Summary Stream catalog change events
// @Description Server-sent events; one event per course or module mutation.
// @Tags Catalog
// @Produce text/event-stream
// @Success 200
// @Router /catalog/watch [get]
func (h *CatalogHandler) Watch(c *gin.Context) {
	if h.events == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrInternal, "catalog event stream unavailable"))
		return
	}
	events, cancel := h.events.Subscribe(c.Request.Context(), companyFromContext(c))
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("catalog", event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
