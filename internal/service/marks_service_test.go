package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/corplearn/training-admin-api/internal/models"
	appErrors "github.com/corplearn/training-admin-api/pkg/errors"
)

func (m *mockStudentRepo) ReplaceMarks(ctx context.Context, companyCode, studentID string, marks models.MarksMap) error {
	key := m.key(companyCode, studentID)
	student, ok := m.students[key]
	if !ok {
		return assert.AnError
	}
	student.Marks = marks
	m.students[key] = student
	return nil
}

func TestMarksDefaultColumns(t *testing.T) {
	svc := NewMarksService(&mockStudentRepo{}, zap.NewNop())
	assert.Equal(t, []string{"Module 1", "Module 2"}, svc.DefaultColumns())
}

func TestMarksNextColumnLabel(t *testing.T) {
	svc := NewMarksService(&mockStudentRepo{}, zap.NewNop())

	cases := []struct {
		name     string
		existing []string
		want     string
	}{
		{"gap in numbering", []string{"Module 1", "Module 3"}, "Module 4"},
		{"empty list", nil, "Module 1"},
		{"sequential", []string{"Module 1", "Module 2"}, "Module 3"},
		{"non-numeric suffix ignored", []string{"Module 1", "Module final"}, "Module 2"},
		{"catalog names ignored", []string{"Concurrency", "Module 2"}, "Module 3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.NextColumnLabel(tc.existing))
		})
	}
}

func TestMarksSheetFillsEmptyMaps(t *testing.T) {
	repo := &mockStudentRepo{}
	seedStudents(repo, models.Student{CompanyCode: "GSK2025A", StudentID: "a1", Name: "A"})
	svc := NewMarksService(repo, zap.NewNop())

	sheet, err := svc.Sheet(context.Background(), "GSK2025A")
	require.NoError(t, err)
	require.Len(t, sheet.Students, 1)
	assert.NotNil(t, sheet.Students[0].Marks)
}

func TestMarksSaveReplacesWholeMap(t *testing.T) {
	repo := &mockStudentRepo{}
	seedStudents(repo, models.Student{
		CompanyCode: "GSK2025A",
		StudentID:   "a1",
		Marks: models.MarksMap{
			"Golang": {"Module 1": {Assignment: 10, Quiz: 20}},
			"React":  {"Module 1": {Assignment: 30, Quiz: 40}},
		},
	})
	svc := NewMarksService(repo, zap.NewNop())

	student, err := svc.Save(context.Background(), "GSK2025A", "a1", models.MarksMap{
		"Golang": {"Module 2": {Assignment: 50, Quiz: 60}},
	})
	require.NoError(t, err)

	// Last write wins wholesale; the React entry is gone.
	assert.NotContains(t, student.Marks, "React")
	assert.NotContains(t, student.Marks["Golang"], "Module 1")
	assert.Equal(t, 50, student.Marks["Golang"]["Module 2"].Assignment.Int())
}

func TestMarksSaveUnknownStudent(t *testing.T) {
	svc := NewMarksService(&mockStudentRepo{}, zap.NewNop())

	_, err := svc.Save(context.Background(), "GSK2025A", "ghost", models.MarksMap{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
