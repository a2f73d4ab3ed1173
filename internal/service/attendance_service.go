package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/corplearn/training-admin-api/internal/dto"
	"github.com/corplearn/training-admin-api/internal/models"
	appErrors "github.com/corplearn/training-admin-api/pkg/errors"
)

type attendanceStudentStore interface {
	ListByCompany(ctx context.Context, companyCode string) ([]models.Student, error)
	SetAttendanceDate(ctx context.Context, companyCode, studentID, date string, status models.AttendanceStatus) error
}

// SaveAttendanceEntry is one student's status for the selected date.
type SaveAttendanceEntry struct {
	StudentID string                  `json:"studentId" validate:"required"`
	Status    models.AttendanceStatus `json:"status" validate:"required"`
}

// SaveAttendanceRequest is the bulk save payload for one date.
type SaveAttendanceRequest struct {
	Date    string                `json:"date" validate:"required"`
	Entries []SaveAttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

// AttendanceService implements the per-date attendance editor.
type AttendanceService struct {
	students  attendanceStudentStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(students attendanceStudentStore, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{students: students, validator: validate, logger: logger}
}

// Sheet returns every student's status for the date, defaulting to Present
// where no entry is stored yet.
func (s *AttendanceService) Sheet(ctx context.Context, companyCode, date string) (*dto.AttendanceSheetResponse, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date must be YYYY-MM-DD")
	}
	students, err := s.students.ListByCompany(ctx, companyCode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	entries := make([]dto.AttendanceSheetEntry, 0, len(students))
	for _, student := range students {
		status := models.AttendanceStatusPresent
		if stored, ok := student.Attendance[date]; ok {
			status = stored
		}
		entries = append(entries, dto.AttendanceSheetEntry{
			StudentID: student.StudentID,
			Name:      student.Name,
			Email:     student.Email,
			Status:    status,
		})
	}
	return &dto.AttendanceSheetResponse{Date: date, Entries: entries}, nil
}

// Save writes attendance[date] for every entry, one update per student.
// Instead of collapsing the outcome into a single success flag, it reports
// exactly which students failed; writes that completed stay applied.
func (s *AttendanceService) Save(ctx context.Context, companyCode string, req SaveAttendanceRequest) (*dto.AttendanceSaveResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "date and entries are required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date must be YYYY-MM-DD")
	}
	for _, entry := range req.Entries {
		if !entry.Status.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown attendance status "+string(entry.Status))
		}
	}

	result := &dto.AttendanceSaveResult{Date: req.Date, Failed: []dto.AttendanceSaveFailure{}}
	for _, entry := range req.Entries {
		if err := s.students.SetAttendanceDate(ctx, companyCode, entry.StudentID, req.Date, entry.Status); err != nil {
			s.logger.Sugar().Errorw("attendance write failed",
				"company", companyCode, "student", entry.StudentID, "date", req.Date, "error", err)
			result.Failed = append(result.Failed, dto.AttendanceSaveFailure{
				StudentID: entry.StudentID,
				Reason:    err.Error(),
			})
			continue
		}
		result.Saved++
	}
	return result, nil
}
