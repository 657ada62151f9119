package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/admitpath/api-go/models"
	"github.com/admitpath/api-go/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(repo *MockAdminRepository) AdminService {
	return NewAdminService(repo, NewAuditSink(repo), nil, nil)
}

func serviceStatus(t *testing.T, err error) int {
	t.Helper()
	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	return serviceErr.Status
}

func TestUpdateUserRoleSelfForbidden(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	_, err := service.UpdateUserRole(context.Background(), 1, 1, models.RoleUser)

	assert.Equal(t, 403, serviceStatus(t, err))
	repo.AssertNotCalled(t, "FindUserByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateAuditLog", mock.Anything, mock.Anything)
}

func TestDeleteUserSelfForbidden(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	err := service.DeleteUser(context.Background(), 7, 7)

	assert.Equal(t, 403, serviceStatus(t, err))
	repo.AssertNotCalled(t, "FindUserByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SoftDeleteUser", mock.Anything, mock.Anything)
}

func TestUpdateUserRoleInvalidRole(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	_, err := service.UpdateUserRole(context.Background(), 1, 2, "SUPERUSER")

	assert.Equal(t, 400, serviceStatus(t, err))
	repo.AssertNotCalled(t, "FindUserByID", mock.Anything, mock.Anything)
}

func TestUpdateUserRoleNotFound(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	repo.On("FindUserByID", mock.Anything, uint(42)).Return(nil, repository.ErrNotFound)

	_, err := service.UpdateUserRole(context.Background(), 1, 42, models.RoleVerified)

	assert.Equal(t, 404, serviceStatus(t, err))
	repo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateAuditLog", mock.Anything, mock.Anything)
}

func TestUpdateUserRoleSuccess(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	target := &models.User{ID: 2, Email: "student@example.com", Role: models.RoleUser}
	var audited *models.AuditLog

	repo.On("FindUserByID", mock.Anything, uint(2)).Return(target, nil)
	repo.On("SaveUser", mock.Anything, target).Return(nil)
	repo.On("CreateAuditLog", mock.Anything, mock.AnythingOfType("*models.AuditLog")).
		Run(func(args mock.Arguments) { audited = args.Get(1).(*models.AuditLog) }).
		Return(nil)

	user, err := service.UpdateUserRole(context.Background(), 1, 2, models.RoleVerified)

	require.NoError(t, err)
	assert.Equal(t, models.RoleVerified, user.Role)
	repo.AssertNumberOfCalls(t, "CreateAuditLog", 1)
	require.NotNil(t, audited)
	assert.Equal(t, ActionUpdateUserRole, audited.Action)
	assert.Equal(t, ResourceUser, audited.Resource)
	assert.Equal(t, uint(1), audited.ActorID)
	assert.Contains(t, audited.Metadata, `"old_role":"USER"`)
	assert.Contains(t, audited.Metadata, `"new_role":"VERIFIED"`)
}

func TestDeleteUserSuccess(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	target := &models.User{ID: 2, Email: "student@example.com", Role: models.RoleUser}

	repo.On("FindUserByID", mock.Anything, uint(2)).Return(target, nil)
	repo.On("SoftDeleteUser", mock.Anything, uint(2)).Return(nil)
	repo.On("CreateAuditLog", mock.Anything, mock.AnythingOfType("*models.AuditLog")).Return(nil)

	err := service.DeleteUser(context.Background(), 1, 2)

	require.NoError(t, err)
	repo.AssertCalled(t, "SoftDeleteUser", mock.Anything, uint(2))
	repo.AssertNumberOfCalls(t, "CreateAuditLog", 1)
}

func TestUpdateReportStatusResolved(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	report := &models.Report{ID: 1, Status: models.ReportStatusPending, TargetType: models.ReportTargetUser, TargetID: 9}
	var audited *models.AuditLog

	repo.On("FindReportByID", mock.Anything, uint(1)).Return(report, nil)
	repo.On("SaveReport", mock.Anything, report).Return(nil)
	repo.On("CreateAuditLog", mock.Anything, mock.AnythingOfType("*models.AuditLog")).
		Run(func(args mock.Arguments) { audited = args.Get(1).(*models.AuditLog) }).
		Return(nil)

	updated, err := service.UpdateReportStatus(context.Background(), 5, 1, models.ReportStatusResolved, "fixed")

	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusResolved, updated.Status)
	assert.Equal(t, "fixed", updated.Resolution)
	require.NotNil(t, updated.ResolvedAt)
	require.NotNil(t, updated.ReviewedBy)
	assert.Equal(t, uint(5), *updated.ReviewedBy)

	repo.AssertNumberOfCalls(t, "CreateAuditLog", 1)
	require.NotNil(t, audited)
	assert.Equal(t, ActionUpdateReportStatus, audited.Action)
	assert.Contains(t, audited.Metadata, `"old_status":"PENDING"`)
	assert.Contains(t, audited.Metadata, `"new_status":"RESOLVED"`)
}

func TestUpdateReportStatusNoResolvedAtForReviewed(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	report := &models.Report{ID: 1, Status: models.ReportStatusPending}

	repo.On("FindReportByID", mock.Anything, uint(1)).Return(report, nil)
	repo.On("SaveReport", mock.Anything, report).Return(nil)
	repo.On("CreateAuditLog", mock.Anything, mock.AnythingOfType("*models.AuditLog")).Return(nil)

	updated, err := service.UpdateReportStatus(context.Background(), 5, 1, models.ReportStatusReviewed, "")

	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusReviewed, updated.Status)
	assert.Nil(t, updated.ResolvedAt)
}

func TestUpdateReportStatusInvalid(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	_, err := service.UpdateReportStatus(context.Background(), 5, 1, "ESCALATED", "")

	assert.Equal(t, 400, serviceStatus(t, err))
	repo.AssertNotCalled(t, "FindReportByID", mock.Anything, mock.Anything)
}

func TestUpdateReportStatusNotFound(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	repo.On("FindReportByID", mock.Anything, uint(99)).Return(nil, repository.ErrNotFound)

	_, err := service.UpdateReportStatus(context.Background(), 5, 99, models.ReportStatusResolved, "")

	assert.Equal(t, 404, serviceStatus(t, err))
	repo.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateAuditLog", mock.Anything, mock.Anything)
}

func TestDeleteReportNotFound(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	repo.On("FindReportByID", mock.Anything, uint(99)).Return(nil, repository.ErrNotFound)

	err := service.DeleteReport(context.Background(), 5, 99)

	assert.Equal(t, 404, serviceStatus(t, err))
	repo.AssertNotCalled(t, "DeleteReport", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateAuditLog", mock.Anything, mock.Anything)
}

func TestDeleteReportAuditFailureDoesNotFailAction(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	report := &models.Report{ID: 3, Status: models.ReportStatusPending}

	repo.On("FindReportByID", mock.Anything, uint(3)).Return(report, nil)
	repo.On("DeleteReport", mock.Anything, uint(3)).Return(nil)
	repo.On("CreateAuditLog", mock.Anything, mock.AnythingOfType("*models.AuditLog")).Return(errors.New("audit store down"))

	err := service.DeleteReport(context.Background(), 5, 3)

	assert.NoError(t, err)
}

func TestGetReportsPassesFilterAndPaginates(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	reports := []models.Report{{ID: 1, Status: models.ReportStatusPending}}
	filter := repository.ReportFilter{Status: models.ReportStatusPending}
	page := repository.PageParams{Page: 1, PageSize: 20}

	repo.On("FindReports", mock.Anything, filter, page).Return(reports, int64(45), nil)

	result, err := service.GetReports(context.Background(), filter, page)

	require.NoError(t, err)
	assert.Equal(t, int64(45), result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.PageSize)
	assert.Equal(t, 3, result.TotalPages)
}

func TestGetUsersPassesFilter(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	filter := repository.UserFilter{Search: "test@", Role: models.RoleAdmin}
	page := repository.PageParams{Page: 1, PageSize: 20}

	repo.On("FindUsers", mock.Anything, filter, page).Return([]repository.UserSummary{}, int64(0), nil)

	_, err := service.GetUsers(context.Background(), filter, page)

	require.NoError(t, err)
	repo.AssertCalled(t, "FindUsers", mock.Anything, filter, page)
}

func TestGetUsersPageBeyondRange(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	page := repository.PageParams{Page: 99, PageSize: 20}
	repo.On("FindUsers", mock.Anything, repository.UserFilter{}, page).Return([]repository.UserSummary{}, int64(5), nil)

	result, err := service.GetUsers(context.Background(), repository.UserFilter{}, page)

	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.Equal(t, int64(5), result.Total)
	assert.Equal(t, 1, result.TotalPages)
}

func TestGetStats(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	snapshot := &repository.StatsSnapshot{TotalUsers: 10, VerifiedUsers: 4, PendingReports: 2}
	repo.On("Stats", mock.Anything).Return(snapshot, nil)

	stats, err := service.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, snapshot, stats)
}

func TestCreateSchoolDeadlineSchoolMissing(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	repo.On("FindSchoolByID", mock.Anything, uint(8)).Return(nil, repository.ErrNotFound)

	_, err := service.CreateSchoolDeadline(context.Background(), 1, CreateDeadlineInput{SchoolID: 8, Year: 2027, Round: "ED"})

	assert.Equal(t, 404, serviceStatus(t, err))
	repo.AssertNotCalled(t, "CreateSchoolDeadline", mock.Anything, mock.Anything)
}

func TestCreateSchoolDeadlineDuplicate(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	repo.On("FindSchoolByID", mock.Anything, uint(8)).Return(&models.School{ID: 8, Name: "Stanford"}, nil)
	repo.On("CreateSchoolDeadline", mock.Anything, mock.AnythingOfType("*models.SchoolDeadline")).Return(repository.ErrDuplicate)

	_, err := service.CreateSchoolDeadline(context.Background(), 1, CreateDeadlineInput{SchoolID: 8, Year: 2027, Round: "ED"})

	assert.Equal(t, 409, serviceStatus(t, err))
	repo.AssertNotCalled(t, "CreateAuditLog", mock.Anything, mock.Anything)
}

func TestCreateSchoolDeadlineSuccess(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	var audited *models.AuditLog

	repo.On("FindSchoolByID", mock.Anything, uint(8)).Return(&models.School{ID: 8, Name: "Stanford"}, nil)
	repo.On("CreateSchoolDeadline", mock.Anything, mock.AnythingOfType("*models.SchoolDeadline")).Return(nil)
	repo.On("CreateAuditLog", mock.Anything, mock.AnythingOfType("*models.AuditLog")).
		Run(func(args mock.Arguments) { audited = args.Get(1).(*models.AuditLog) }).
		Return(nil)

	deadline, err := service.CreateSchoolDeadline(context.Background(), 1, CreateDeadlineInput{
		SchoolID: 8,
		Year:     2027,
		Round:    "ED",
		DueAt:    time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(8), deadline.SchoolID)
	assert.Equal(t, 2027, deadline.Year)
	require.NotNil(t, audited)
	assert.Equal(t, ActionCreateSchoolDeadline, audited.Action)
}

func TestUpdateSchoolDeadlineNotFound(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	repo.On("FindSchoolDeadlineByID", mock.Anything, uint(3)).Return(nil, repository.ErrNotFound)

	_, err := service.UpdateSchoolDeadline(context.Background(), 1, 3, UpdateDeadlineInput{})

	assert.Equal(t, 404, serviceStatus(t, err))
	repo.AssertNotCalled(t, "SaveSchoolDeadline", mock.Anything, mock.Anything)
}

func TestUpdateGlobalEventNotFound(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	repo.On("FindGlobalEventByID", mock.Anything, uint(3)).Return(nil, repository.ErrNotFound)

	_, err := service.UpdateGlobalEvent(context.Background(), 1, 3, UpdateEventInput{})

	assert.Equal(t, 404, serviceStatus(t, err))
	repo.AssertNotCalled(t, "SaveGlobalEvent", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateAuditLog", mock.Anything, mock.Anything)
}

func TestDeleteGlobalEventSuccess(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	event := &models.GlobalEvent{ID: 4, Title: "SAT October"}

	repo.On("FindGlobalEventByID", mock.Anything, uint(4)).Return(event, nil)
	repo.On("DeleteGlobalEvent", mock.Anything, uint(4)).Return(nil)
	repo.On("CreateAuditLog", mock.Anything, mock.AnythingOfType("*models.AuditLog")).Return(nil)

	err := service.DeleteGlobalEvent(context.Background(), 1, 4)

	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "CreateAuditLog", 1)
}

func TestCreateGlobalEventDefaultsCategory(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	repo.On("CreateGlobalEvent", mock.Anything, mock.AnythingOfType("*models.GlobalEvent")).Return(nil)
	repo.On("CreateAuditLog", mock.Anything, mock.AnythingOfType("*models.AuditLog")).Return(nil)

	event, err := service.CreateGlobalEvent(context.Background(), 1, CreateEventInput{
		Title:    "AMC 12",
		StartsAt: time.Date(2026, 11, 12, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, models.EventCategoryOther, event.Category)
	assert.True(t, event.Active)
}

type fakeObjectStore struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (f *fakeObjectStore) Put(ctx context.Context, key, contentType string, body []byte) error {
	f.key = key
	f.contentType = contentType
	f.body = body
	return f.err
}

func TestExportAuditLogs(t *testing.T) {
	repo := new(MockAdminRepository)
	store := &fakeObjectStore{}
	service := NewAdminService(repo, NewAuditSink(repo), nil, store)

	logs := []models.AuditLog{
		{EventID: "e1", ActorID: 1, Action: ActionDeleteUser, Resource: ResourceUser, ResourceID: 2, Metadata: "{}"},
		{EventID: "e2", ActorID: 1, Action: ActionDeleteReport, Resource: ResourceReport, ResourceID: 3, Metadata: "{}"},
	}

	repo.On("FindAuditLogs", mock.Anything, repository.AuditLogFilter{}, mock.AnythingOfType("repository.PageParams")).
		Return(logs, int64(2), nil)
	repo.On("CreateAuditLog", mock.Anything, mock.AnythingOfType("*models.AuditLog")).Return(nil)

	result, err := service.ExportAuditLogs(context.Background(), 1, repository.AuditLogFilter{})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.True(t, strings.HasPrefix(result.Key, "audit-exports/"))
	assert.Equal(t, "text/csv", store.contentType)

	lines := strings.Split(strings.TrimSpace(string(store.body)), "\n")
	require.Len(t, lines, 3) // header + two rows
	assert.Contains(t, lines[0], "event_id")
	assert.Contains(t, lines[1], "e1")
}

func TestExportAuditLogsWithoutStore(t *testing.T) {
	repo := new(MockAdminRepository)
	service := newTestService(repo)

	_, err := service.ExportAuditLogs(context.Background(), 1, repository.AuditLogFilter{})

	assert.Equal(t, 503, serviceStatus(t, err))
	repo.AssertNotCalled(t, "FindAuditLogs", mock.Anything, mock.Anything, mock.Anything)
}
