package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/corplearn/training-admin-api/internal/models"
	appErrors "github.com/corplearn/training-admin-api/pkg/errors"
)

type studentRepository interface {
	ListByCompany(ctx context.Context, companyCode string) ([]models.Student, error)
	FindByID(ctx context.Context, companyCode, studentID string) (*models.Student, error)
	Upsert(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, companyCode, studentID string) error
}

// SaveStudentRequest holds the registration form payload. Attendance and
// marks carry whatever the form loaded: saving a never-loaded id registers
// the student with empty maps.
type SaveStudentRequest struct {
	StudentID  string               `json:"studentId" validate:"required"`
	Name       string               `json:"name" validate:"required"`
	Email      string               `json:"email" validate:"required,email"`
	Attendance models.AttendanceMap `json:"attendance"`
	Marks      models.MarksMap      `json:"marks"`
}

// StudentService implements the student registry use-cases.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// List returns all registered students in server order.
func (s *StudentService) List(ctx context.Context, companyCode string) ([]models.Student, error) {
	students, err := s.repo.ListByCompany(ctx, companyCode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}

// Load fetches a student for the edit form. An unknown id is not an error:
// the returned record keeps the requested id with cleared fields and empty
// attendance/marks, so typing an unused id starts a fresh registration.
func (s *StudentService) Load(ctx context.Context, companyCode, studentID string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, companyCode, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return &models.Student{
				CompanyCode: companyCode,
				StudentID:   studentID,
				Attendance:  models.AttendanceMap{},
				Marks:       models.MarksMap{},
			}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// Save validates the form and upserts the record keyed by student id.
func (s *StudentService) Save(ctx context.Context, companyCode string, req SaveStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "student id, name and email are required")
	}
	if req.Attendance == nil {
		req.Attendance = models.AttendanceMap{}
	}
	if req.Marks == nil {
		req.Marks = models.MarksMap{}
	}
	student := &models.Student{
		CompanyCode: companyCode,
		StudentID:   req.StudentID,
		Name:        req.Name,
		Email:       req.Email,
		Attendance:  req.Attendance,
		Marks:       req.Marks,
	}
	if err := s.repo.Upsert(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save student")
	}
	s.logger.Sugar().Infow("student saved", "company", companyCode, "student", req.StudentID)
	return student, nil
}

// Delete removes a student. Deleting an id that does not exist is a no-op.
func (s *StudentService) Delete(ctx context.Context, companyCode, studentID string) error {
	if err := s.repo.Delete(ctx, companyCode, studentID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	s.logger.Sugar().Infow("student deleted", "company", companyCode, "student", studentID)
	return nil
}
