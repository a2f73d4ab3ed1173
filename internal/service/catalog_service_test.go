package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/corplearn/training-admin-api/internal/dto"
	"github.com/corplearn/training-admin-api/internal/models"
	appErrors "github.com/corplearn/training-admin-api/pkg/errors"
)

type mockCourseRepo struct {
	courses map[string]models.Course
	modules map[string]models.CatalogModule
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{
		courses: make(map[string]models.Course),
		modules: make(map[string]models.CatalogModule),
	}
}

func (m *mockCourseRepo) courseKey(companyCode, courseID string) string {
	return companyCode + "/" + courseID
}

func (m *mockCourseRepo) moduleKey(companyCode, courseID, moduleID string) string {
	return companyCode + "/" + courseID + "/" + moduleID
}

func (m *mockCourseRepo) ListCourses(ctx context.Context, companyCode string) ([]models.Course, error) {
	var courses []models.Course
	for _, c := range m.courses {
		if c.CompanyCode == companyCode {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func (m *mockCourseRepo) CourseExists(ctx context.Context, companyCode, courseID string) (bool, error) {
	_, ok := m.courses[m.courseKey(companyCode, courseID)]
	return ok, nil
}

func (m *mockCourseRepo) CreateCourse(ctx context.Context, course *models.Course) error {
	m.courses[m.courseKey(course.CompanyCode, course.CourseID)] = *course
	return nil
}

func (m *mockCourseRepo) ListModules(ctx context.Context, companyCode, courseID string) ([]models.CatalogModule, error) {
	var modules []models.CatalogModule
	for _, mod := range m.modules {
		if mod.CompanyCode == companyCode && mod.CourseID == courseID {
			modules = append(modules, mod)
		}
	}
	return modules, nil
}

func (m *mockCourseRepo) FindModule(ctx context.Context, companyCode, courseID, moduleID string) (*models.CatalogModule, error) {
	if mod, ok := m.modules[m.moduleKey(companyCode, courseID, moduleID)]; ok {
		return &mod, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockCourseRepo) ModuleExists(ctx context.Context, companyCode, courseID, moduleID string) (bool, error) {
	_, ok := m.modules[m.moduleKey(companyCode, courseID, moduleID)]
	return ok, nil
}

func (m *mockCourseRepo) UpsertModule(ctx context.Context, module *models.CatalogModule) error {
	m.modules[m.moduleKey(module.CompanyCode, module.CourseID, module.ModuleID)] = *module
	return nil
}

func (m *mockCourseRepo) DeleteModule(ctx context.Context, companyCode, courseID, moduleID string) error {
	delete(m.modules, m.moduleKey(companyCode, courseID, moduleID))
	return nil
}

type mockPublisher struct {
	events []dto.CatalogEvent
}

func (m *mockPublisher) Publish(ctx context.Context, companyCode string, event dto.CatalogEvent) error {
	m.events = append(m.events, event)
	return nil
}

func TestCatalogCreateCourse(t *testing.T) {
	repo := newMockCourseRepo()
	events := &mockPublisher{}
	svc := NewCatalogService(repo, events, validator.New(), zap.NewNop())

	course, err := svc.CreateCourse(context.Background(), "GSK2025A", "  Golang  ")
	require.NoError(t, err)
	assert.Equal(t, "Golang", course.CourseID)
	require.Len(t, events.events, 1)
	assert.Equal(t, "course", events.events[0].Kind)
	assert.Equal(t, "created", events.events[0].Action)
}

func TestCatalogCreateCourseRejectsBlankAndDuplicate(t *testing.T) {
	repo := newMockCourseRepo()
	svc := NewCatalogService(repo, nil, validator.New(), zap.NewNop())

	_, err := svc.CreateCourse(context.Background(), "GSK2025A", "   ")
	require.Error(t, err)

	_, err = svc.CreateCourse(context.Background(), "GSK2025A", "Golang")
	require.NoError(t, err)

	_, err = svc.CreateCourse(context.Background(), "GSK2025A", "Golang")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestCatalogCreateModuleDefaultsStatus(t *testing.T) {
	repo := newMockCourseRepo()
	svc := NewCatalogService(repo, nil, validator.New(), zap.NewNop())

	module, err := svc.CreateModule(context.Background(), "GSK2025A", "Golang", SaveModuleRequest{
		ModuleID:  "concurrency",
		Name:      "Concurrency",
		StartDate: "2025-02-01",
		EndDate:   "2025-02-14",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ModuleStatusInProgress, module.Status)
}

func TestCatalogCreateModuleRejectsDuplicateID(t *testing.T) {
	repo := newMockCourseRepo()
	svc := NewCatalogService(repo, nil, validator.New(), zap.NewNop())

	req := SaveModuleRequest{ModuleID: "m1", Name: "One", StartDate: "2025-02-01", EndDate: "2025-02-14"}
	_, err := svc.CreateModule(context.Background(), "GSK2025A", "Golang", req)
	require.NoError(t, err)

	_, err = svc.CreateModule(context.Background(), "GSK2025A", "Golang", req)
	require.Error(t, err)
}

func TestCatalogUpdateModuleOverwritesUnconditionally(t *testing.T) {
	repo := newMockCourseRepo()
	events := &mockPublisher{}
	svc := NewCatalogService(repo, events, validator.New(), zap.NewNop())

	// Update without a prior create still lands: the path upserts.
	module, err := svc.UpdateModule(context.Background(), "GSK2025A", "Golang", "m1", SaveModuleRequest{
		ModuleID:  "ignored",
		Name:      "Renamed",
		StartDate: "2025-02-01",
		EndDate:   "2025-02-28",
		Status:    models.ModuleStatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", module.ModuleID)
	assert.Equal(t, models.ModuleStatusCompleted, module.Status)
	require.Len(t, events.events, 1)
	assert.Equal(t, "updated", events.events[0].Action)
}

func TestCatalogDeleteModuleUnknown(t *testing.T) {
	repo := newMockCourseRepo()
	svc := NewCatalogService(repo, nil, validator.New(), zap.NewNop())

	err := svc.DeleteModule(context.Background(), "GSK2025A", "Golang", "ghost")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCatalogDeleteModulePublishes(t *testing.T) {
	repo := newMockCourseRepo()
	events := &mockPublisher{}
	svc := NewCatalogService(repo, events, validator.New(), zap.NewNop())

	_, err := svc.CreateModule(context.Background(), "GSK2025A", "Golang", SaveModuleRequest{
		ModuleID: "m1", Name: "One", StartDate: "2025-02-01", EndDate: "2025-02-14",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteModule(context.Background(), "GSK2025A", "Golang", "m1"))
	require.Len(t, events.events, 2)
	assert.Equal(t, "deleted", events.events[1].Action)
	assert.Equal(t, "m1", events.events[1].ModuleID)
}
