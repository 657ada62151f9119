package services

import (
	"context"

	"github.com/admitpath/api-go/models"
	"github.com/admitpath/api-go/repository"
	"github.com/stretchr/testify/mock"
)

// MockAdminRepository is a mock implementation of repository.AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Stats(ctx context.Context) (*repository.StatsSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StatsSnapshot), args.Error(1)
}

func (m *MockAdminRepository) FindReports(ctx context.Context, filter repository.ReportFilter, page repository.PageParams) ([]models.Report, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Report), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminRepository) FindReportByID(ctx context.Context, id uint) (*models.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockAdminRepository) SaveReport(ctx context.Context, report *models.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockAdminRepository) DeleteReport(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminRepository) FindUsers(ctx context.Context, filter repository.UserFilter, page repository.PageParams) ([]repository.UserSummary, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]repository.UserSummary), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminRepository) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAdminRepository) SaveUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAdminRepository) SoftDeleteUser(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminRepository) FindAuditLogs(ctx context.Context, filter repository.AuditLogFilter, page repository.PageParams) ([]models.AuditLog, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.AuditLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminRepository) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAdminRepository) FindSchoolByID(ctx context.Context, id uint) (*models.School, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.School), args.Error(1)
}

func (m *MockAdminRepository) FindSchoolDeadlines(ctx context.Context, filter repository.DeadlineFilter, page repository.PageParams) ([]models.SchoolDeadline, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.SchoolDeadline), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminRepository) FindSchoolDeadlineByID(ctx context.Context, id uint) (*models.SchoolDeadline, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SchoolDeadline), args.Error(1)
}

func (m *MockAdminRepository) CreateSchoolDeadline(ctx context.Context, deadline *models.SchoolDeadline) error {
	args := m.Called(ctx, deadline)
	return args.Error(0)
}

func (m *MockAdminRepository) SaveSchoolDeadline(ctx context.Context, deadline *models.SchoolDeadline) error {
	args := m.Called(ctx, deadline)
	return args.Error(0)
}

func (m *MockAdminRepository) DeleteSchoolDeadline(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminRepository) FindGlobalEvents(ctx context.Context, filter repository.EventFilter, page repository.PageParams) ([]models.GlobalEvent, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.GlobalEvent), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminRepository) FindGlobalEventByID(ctx context.Context, id uint) (*models.GlobalEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GlobalEvent), args.Error(1)
}

func (m *MockAdminRepository) CreateGlobalEvent(ctx context.Context, event *models.GlobalEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAdminRepository) SaveGlobalEvent(ctx context.Context, event *models.GlobalEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAdminRepository) DeleteGlobalEvent(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
