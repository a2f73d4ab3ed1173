package models

import "time"

// Course groups catalog modules under a company. Courses are append-only:
// there is no update or delete path for them.
type Course struct {
	CompanyCode string    `db:"company_code" json:"company_code"`
	CourseID    string    `db:"course_id" json:"course_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ModuleStatus enumerates catalog module lifecycle states.
type ModuleStatus string

const (
	ModuleStatusCompleted  ModuleStatus = "Completed"
	ModuleStatusInProgress ModuleStatus = "In Progress"
	ModuleStatusInactive   ModuleStatus = "Inactive"
)

// Valid returns true when the status is a supported value.
func (s ModuleStatus) Valid() bool {
	switch s {
	case ModuleStatusCompleted, ModuleStatusInProgress, ModuleStatusInactive:
		return true
	default:
		return false
	}
}

// CatalogModule is a named, dated module owned by a course. Distinct from
// the marks sheet's numbered column labels, which are never persisted.
type CatalogModule struct {
	CompanyCode string       `db:"company_code" json:"company_code"`
	CourseID    string       `db:"course_id" json:"course_id"`
	ModuleID    string       `db:"module_id" json:"module_id"`
	Name        string       `db:"name" json:"name"`
	StartDate   string       `db:"start_date" json:"start_date"`
	EndDate     string       `db:"end_date" json:"end_date"`
	Description string       `db:"description" json:"description"`
	Status      ModuleStatus `db:"status" json:"status"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}
