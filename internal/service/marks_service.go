package service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/corplearn/training-admin-api/internal/dto"
	"github.com/corplearn/training-admin-api/internal/models"
	appErrors "github.com/corplearn/training-admin-api/pkg/errors"
)

const marksColumnPrefix = "Module "

type marksStudentStore interface {
	ListByCompany(ctx context.Context, companyCode string) ([]models.Student, error)
	FindByID(ctx context.Context, companyCode, studentID string) (*models.Student, error)
	ReplaceMarks(ctx context.Context, companyCode, studentID string, marks models.MarksMap) error
}

// MarksService implements the marks editor. Its numbered column labels are
// a client-scoped convention seeded fresh on every mount; they are not the
// catalog's named modules and are never persisted.
type MarksService struct {
	students marksStudentStore
	logger   *zap.Logger
}

// NewMarksService constructs the marks service.
func NewMarksService(students marksStudentStore, logger *zap.Logger) *MarksService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarksService{students: students, logger: logger}
}

// DefaultColumns seeds the editor with its two starting labels.
func (s *MarksService) DefaultColumns() []string {
	return []string{marksColumnPrefix + "1", marksColumnPrefix + "2"}
}

// NextColumnLabel computes the next numbered label: max numeric suffix + 1,
// ignoring labels whose suffix is not a number.
func (s *MarksService) NextColumnLabel(existing []string) string {
	max := 0
	for _, label := range existing {
		parts := strings.Fields(label)
		if len(parts) < 2 {
			continue
		}
		n, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil || n <= 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%d", marksColumnPrefix, max+1)
}

// Sheet lists every student with their stored marks map.
func (s *MarksService) Sheet(ctx context.Context, companyCode string) (*dto.MarksSheetResponse, error) {
	students, err := s.students.ListByCompany(ctx, companyCode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	entries := make([]dto.MarksSheetEntry, 0, len(students))
	for _, student := range students {
		marks := student.Marks
		if marks == nil {
			marks = models.MarksMap{}
		}
		entries = append(entries, dto.MarksSheetEntry{
			StudentID: student.StudentID,
			Name:      student.Name,
			Marks:     marks,
		})
	}
	return &dto.MarksSheetResponse{Students: entries}, nil
}

// Save replaces one student's entire marks map with the submitted one.
// This is a whole-map write: concurrent edits to different modules are not
// merged, the last full map wins.
func (s *MarksService) Save(ctx context.Context, companyCode, studentID string, marks models.MarksMap) (*models.Student, error) {
	if marks == nil {
		marks = models.MarksMap{}
	}
	if _, err := s.students.FindByID(ctx, companyCode, studentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if err := s.students.ReplaceMarks(ctx, companyCode, studentID, marks); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save marks")
	}
	s.logger.Sugar().Infow("marks saved", "company", companyCode, "student", studentID)
	student, err := s.students.FindByID(ctx, companyCode, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload student")
	}
	return student, nil
}
