package dto

import "github.com/corplearn/training-admin-api/internal/models"

// MarksColumnsResponse seeds the editor's client-local column list. Columns
// are numbered labels only; they are never persisted server-side.
type MarksColumnsResponse struct {
	Columns []string `json:"columns"`
}

// NextColumnResponse carries the computed next column label.
type NextColumnResponse struct {
	Label string `json:"label"`
}

// MarksSheetEntry is one student's row in the marks editor.
type MarksSheetEntry struct {
	StudentID string          `json:"studentId"`
	Name      string          `json:"name"`
	Marks     models.MarksMap `json:"marks"`
}

// MarksSheetResponse lists every student with their stored marks.
type MarksSheetResponse struct {
	Students []MarksSheetEntry `json:"students"`
}
