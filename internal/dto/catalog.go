package dto

import "github.com/corplearn/training-admin-api/internal/models"

// CourseListResponse lists course ids ordered by creation time.
type CourseListResponse struct {
	Courses []models.Course `json:"courses"`
}

// ModuleListResponse lists the named modules of one course.
type ModuleListResponse struct {
	CourseID string                 `json:"courseId"`
	Modules  []models.CatalogModule `json:"modules"`
}

// CatalogEvent is pushed to watchers whenever the course or module
// collections change.
type CatalogEvent struct {
	Kind     string `json:"kind"` // "course" or "module"
	Action   string `json:"action"`
	CourseID string `json:"courseId"`
	ModuleID string `json:"moduleId,omitempty"`
}
