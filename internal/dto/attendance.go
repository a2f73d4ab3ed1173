package dto

import "github.com/corplearn/training-admin-api/internal/models"

// AttendanceSheetEntry is one student's row for the selected date.
type AttendanceSheetEntry struct {
	StudentID string                  `json:"studentId"`
	Name      string                  `json:"name"`
	Email     string                  `json:"email"`
	Status    models.AttendanceStatus `json:"status"`
}

// AttendanceSheetResponse is the editable sheet for one date.
type AttendanceSheetResponse struct {
	Date    string                 `json:"date"`
	Entries []AttendanceSheetEntry `json:"entries"`
}

// AttendanceSaveFailure identifies a student whose write failed.
type AttendanceSaveFailure struct {
	StudentID string `json:"studentId"`
	Reason    string `json:"reason"`
}

// AttendanceSaveResult reports the outcome of a bulk save, listing the ids
// that failed instead of collapsing partial failure into a single boolean.
type AttendanceSaveResult struct {
	Date   string                  `json:"date"`
	Saved  int                     `json:"saved"`
	Failed []AttendanceSaveFailure `json:"failed"`
}
