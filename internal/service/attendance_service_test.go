package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/corplearn/training-admin-api/internal/models"
)

func (m *mockStudentRepo) SetAttendanceDate(ctx context.Context, companyCode, studentID, date string, status models.AttendanceStatus) error {
	key := m.key(companyCode, studentID)
	student, ok := m.students[key]
	if !ok {
		return errors.New("student " + studentID + " not found")
	}
	if student.Attendance == nil {
		student.Attendance = models.AttendanceMap{}
	}
	student.Attendance[date] = status
	m.students[key] = student
	return nil
}

func seedStudents(repo *mockStudentRepo, students ...models.Student) {
	if repo.students == nil {
		repo.students = make(map[string]models.Student)
	}
	for _, s := range students {
		repo.students[repo.key(s.CompanyCode, s.StudentID)] = s
	}
}

func TestAttendanceSheetDefaultsToPresent(t *testing.T) {
	repo := &mockStudentRepo{}
	seedStudents(repo,
		models.Student{CompanyCode: "GSK2025A", StudentID: "a1", Name: "A",
			Attendance: models.AttendanceMap{"2025-01-10": models.AttendanceStatusAbsent}},
		models.Student{CompanyCode: "GSK2025A", StudentID: "b2", Name: "B"},
	)
	svc := NewAttendanceService(repo, validator.New(), zap.NewNop())

	sheet, err := svc.Sheet(context.Background(), "GSK2025A", "2025-01-10")
	require.NoError(t, err)
	require.Len(t, sheet.Entries, 2)

	statuses := map[string]models.AttendanceStatus{}
	for _, entry := range sheet.Entries {
		statuses[entry.StudentID] = entry.Status
	}
	assert.Equal(t, models.AttendanceStatusAbsent, statuses["a1"])
	assert.Equal(t, models.AttendanceStatusPresent, statuses["b2"])
}

func TestAttendanceSheetRejectsBadDate(t *testing.T) {
	svc := NewAttendanceService(&mockStudentRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Sheet(context.Background(), "GSK2025A", "10/01/2025")
	require.Error(t, err)
}

func TestAttendanceSaveRejectsUnknownStatus(t *testing.T) {
	svc := NewAttendanceService(&mockStudentRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Save(context.Background(), "GSK2025A", SaveAttendanceRequest{
		Date: "2025-01-10",
		Entries: []SaveAttendanceEntry{
			{StudentID: "a1", Status: "Vacation"},
		},
	})
	require.Error(t, err)
}

func TestAttendanceSaveReportsPartialFailure(t *testing.T) {
	repo := &mockStudentRepo{}
	seedStudents(repo,
		models.Student{CompanyCode: "GSK2025A", StudentID: "a1", Attendance: models.AttendanceMap{}},
		models.Student{CompanyCode: "GSK2025A", StudentID: "b2", Attendance: models.AttendanceMap{}},
	)
	svc := NewAttendanceService(repo, validator.New(), zap.NewNop())

	result, err := svc.Save(context.Background(), "GSK2025A", SaveAttendanceRequest{
		Date: "2025-01-10",
		Entries: []SaveAttendanceEntry{
			{StudentID: "a1", Status: models.AttendanceStatusPresent},
			{StudentID: "ghost", Status: models.AttendanceStatusAbsent},
			{StudentID: "b2", Status: models.AttendanceStatusLateCame},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Saved)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "ghost", result.Failed[0].StudentID)

	// Writes that succeeded stay applied.
	assert.Equal(t, models.AttendanceStatusLateCame, repo.students[repo.key("GSK2025A", "b2")].Attendance["2025-01-10"])
}

func TestAttendanceSaveKeepsEntryOrderIndependent(t *testing.T) {
	repo := &mockStudentRepo{}
	seedStudents(repo, models.Student{CompanyCode: "GSK2025A", StudentID: "a1", Attendance: models.AttendanceMap{}})
	svc := NewAttendanceService(repo, validator.New(), zap.NewNop())

	result, err := svc.Save(context.Background(), "GSK2025A", SaveAttendanceRequest{
		Date:    "2025-01-11",
		Entries: []SaveAttendanceEntry{{StudentID: "a1", Status: models.AttendanceStatusEarlyLeave}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Saved)
	assert.Empty(t, result.Failed)

	stored := repo.students[repo.key("GSK2025A", "a1")].Attendance
	dates := make([]string, 0, len(stored))
	for d := range stored {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	assert.Equal(t, []string{"2025-01-11"}, dates)
}
