package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/corplearn/training-admin-api/internal/dto"
	"github.com/corplearn/training-admin-api/internal/models"
	appErrors "github.com/corplearn/training-admin-api/pkg/errors"
)

type courseRepository interface {
	ListCourses(ctx context.Context, companyCode string) ([]models.Course, error)
	CourseExists(ctx context.Context, companyCode, courseID string) (bool, error)
	CreateCourse(ctx context.Context, course *models.Course) error
	ListModules(ctx context.Context, companyCode, courseID string) ([]models.CatalogModule, error)
	FindModule(ctx context.Context, companyCode, courseID, moduleID string) (*models.CatalogModule, error)
	ModuleExists(ctx context.Context, companyCode, courseID, moduleID string) (bool, error)
	UpsertModule(ctx context.Context, module *models.CatalogModule) error
	DeleteModule(ctx context.Context, companyCode, courseID, moduleID string) error
}

type catalogPublisher interface {
	Publish(ctx context.Context, companyCode string, event dto.CatalogEvent) error
}

// SaveModuleRequest is the module form payload, shared by the create and
// edit paths.
type SaveModuleRequest struct {
	ModuleID    string              `json:"moduleId" validate:"required"`
	Name        string              `json:"name" validate:"required"`
	StartDate   string              `json:"startDate" validate:"required"`
	EndDate     string              `json:"endDate" validate:"required"`
	Description string              `json:"description"`
	Status      models.ModuleStatus `json:"status"`
}

// CatalogService implements course and named-module management. Courses
// are create-only: the original product never grew an update or delete
// path for them and that asymmetry is kept.
type CatalogService struct {
	repo      courseRepository
	events    catalogPublisher
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCatalogService constructs the catalog service.
func NewCatalogService(repo courseRepository, events catalogPublisher, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, events: events, validator: validate, logger: logger}
}

// ListCourses returns the company's courses in creation order.
func (s *CatalogService) ListCourses(ctx context.Context, companyCode string) ([]models.Course, error) {
	courses, err := s.repo.ListCourses(ctx, companyCode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// CreateCourse registers a new course id, rejecting blanks and duplicates.
func (s *CatalogService) CreateCourse(ctx context.Context, companyCode, courseID string) (*models.Course, error) {
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "course id is required")
	}
	exists, err := s.repo.CourseExists(ctx, companyCode, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check course")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "course already exists")
	}
	course := &models.Course{CompanyCode: companyCode, CourseID: courseID}
	if err := s.repo.CreateCourse(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	s.publish(ctx, companyCode, dto.CatalogEvent{Kind: "course", Action: "created", CourseID: courseID})
	return course, nil
}

// ListModules returns the named modules of one course.
func (s *CatalogService) ListModules(ctx context.Context, companyCode, courseID string) ([]models.CatalogModule, error) {
	if strings.TrimSpace(courseID) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "course id is required")
	}
	modules, err := s.repo.ListModules(ctx, companyCode, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list modules")
	}
	if modules == nil {
		modules = []models.CatalogModule{}
	}
	return modules, nil
}

// CreateModule adds a module under a course. The create path checks for an
// existing id first so a typo cannot silently overwrite a sibling.
func (s *CatalogService) CreateModule(ctx context.Context, companyCode, courseID string, req SaveModuleRequest) (*models.CatalogModule, error) {
	module, err := s.buildModule(companyCode, courseID, req)
	if err != nil {
		return nil, err
	}
	exists, err := s.repo.ModuleExists(ctx, companyCode, courseID, module.ModuleID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check module")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "module with this id already exists")
	}
	if err := s.repo.UpsertModule(ctx, module); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save module")
	}
	s.publish(ctx, companyCode, dto.CatalogEvent{Kind: "module", Action: "created", CourseID: courseID, ModuleID: module.ModuleID})
	return module, nil
}

// UpdateModule overwrites a module unconditionally; the edit form already
// holds the document it is replacing.
func (s *CatalogService) UpdateModule(ctx context.Context, companyCode, courseID, moduleID string, req SaveModuleRequest) (*models.CatalogModule, error) {
	req.ModuleID = moduleID
	module, err := s.buildModule(companyCode, courseID, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpsertModule(ctx, module); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save module")
	}
	s.publish(ctx, companyCode, dto.CatalogEvent{Kind: "module", Action: "updated", CourseID: courseID, ModuleID: moduleID})
	return module, nil
}

// DeleteModule removes a module document.
func (s *CatalogService) DeleteModule(ctx context.Context, companyCode, courseID, moduleID string) error {
	if _, err := s.repo.FindModule(ctx, companyCode, courseID, moduleID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "module not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load module")
	}
	if err := s.repo.DeleteModule(ctx, companyCode, courseID, moduleID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete module")
	}
	s.publish(ctx, companyCode, dto.CatalogEvent{Kind: "module", Action: "deleted", CourseID: courseID, ModuleID: moduleID})
	return nil
}

func (s *CatalogService) buildModule(companyCode, courseID string, req SaveModuleRequest) (*models.CatalogModule, error) {
	if strings.TrimSpace(courseID) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "course must be selected")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "module id, name and dates are required")
	}
	status := req.Status
	if status == "" {
		status = models.ModuleStatusInProgress
	}
	if !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown module status "+string(req.Status))
	}
	return &models.CatalogModule{
		CompanyCode: companyCode,
		CourseID:    courseID,
		ModuleID:    strings.TrimSpace(req.ModuleID),
		Name:        req.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Status:      status,
	}, nil
}

func (s *CatalogService) publish(ctx context.Context, companyCode string, event dto.CatalogEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, companyCode, event); err != nil {
		s.logger.Sugar().Warnw("catalog event publish failed", "company", companyCode, "error", err)
	}
}
