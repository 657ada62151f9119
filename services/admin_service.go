package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/admitpath/api-go/models"
	"github.com/admitpath/api-go/repository"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = time.Minute
)

type CreateDeadlineInput struct {
	SchoolID uint
	Year     int
	Round    string
	DueAt    time.Time
	Notes    string
}

type UpdateDeadlineInput struct {
	DueAt *time.Time
	Notes *string
}

type CreateEventInput struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	StartsAt    time.Time
	EndsAt      *time.Time
	Recurring   bool
}

type UpdateEventInput struct {
	Title       *string
	Description *string
	Category    *string
	Tags        []string
	StartsAt    *time.Time
	EndsAt      *time.Time
	Recurring   *bool
	Active      *bool
}

type ExportResult struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// AdminService implements the admin console operations. Every mutating call
// emits one audit record on success through the best-effort sink.
type AdminService interface {
	GetStats(ctx context.Context) (*repository.StatsSnapshot, error)

	GetReports(ctx context.Context, filter repository.ReportFilter, page repository.PageParams) (*Page, error)
	UpdateReportStatus(ctx context.Context, adminID, reportID uint, status, resolution string) (*models.Report, error)
	DeleteReport(ctx context.Context, adminID, reportID uint) error

	GetUsers(ctx context.Context, filter repository.UserFilter, page repository.PageParams) (*Page, error)
	UpdateUserRole(ctx context.Context, adminID, userID uint, role string) (*models.User, error)
	DeleteUser(ctx context.Context, adminID, userID uint) error

	GetAuditLogs(ctx context.Context, filter repository.AuditLogFilter, page repository.PageParams) (*Page, error)
	ExportAuditLogs(ctx context.Context, adminID uint, filter repository.AuditLogFilter) (*ExportResult, error)

	GetSchoolDeadlines(ctx context.Context, filter repository.DeadlineFilter, page repository.PageParams) (*Page, error)
	CreateSchoolDeadline(ctx context.Context, adminID uint, input CreateDeadlineInput) (*models.SchoolDeadline, error)
	UpdateSchoolDeadline(ctx context.Context, adminID, deadlineID uint, input UpdateDeadlineInput) (*models.SchoolDeadline, error)
	DeleteSchoolDeadline(ctx context.Context, adminID, deadlineID uint) error

	GetGlobalEvents(ctx context.Context, filter repository.EventFilter, page repository.PageParams) (*Page, error)
	CreateGlobalEvent(ctx context.Context, adminID uint, input CreateEventInput) (*models.GlobalEvent, error)
	UpdateGlobalEvent(ctx context.Context, adminID, eventID uint, input UpdateEventInput) (*models.GlobalEvent, error)
	DeleteGlobalEvent(ctx context.Context, adminID, eventID uint) error
}

type adminService struct {
	repo  repository.AdminRepository
	audit *AuditSink
	cache *redis.Client // optional, nil disables stats caching
	store ObjectStore   // optional, nil disables audit exports
}

func NewAdminService(repo repository.AdminRepository, audit *AuditSink, cache *redis.Client, store ObjectStore) AdminService {
	return &adminService{
		repo:  repo,
		audit: audit,
		cache: cache,
		store: store,
	}
}

func (s *adminService) GetStats(ctx context.Context) (*repository.StatsSnapshot, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, statsCacheKey).Result(); err == nil {
			var snapshot repository.StatsSnapshot
			if json.Unmarshal([]byte(raw), &snapshot) == nil {
				return &snapshot, nil
			}
		}
	}

	snapshot, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(snapshot); err == nil {
			// Cache failures are ignored, stats stay readable without Redis.
			s.cache.Set(ctx, statsCacheKey, raw, statsCacheTTL)
		}
	}

	return snapshot, nil
}

func (s *adminService) GetReports(ctx context.Context, filter repository.ReportFilter, page repository.PageParams) (*Page, error) {
	reports, total, err := s.repo.FindReports(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return NewPage(reports, total, page), nil
}

func (s *adminService) UpdateReportStatus(ctx context.Context, adminID, reportID uint, status, resolution string) (*models.Report, error) {
	if !models.ValidReportStatus(status) {
		return nil, Invalid("invalid report status")
	}

	report, err := s.repo.FindReportByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("report not found")
		}
		return nil, err
	}

	oldStatus := report.Status
	report.Status = status
	if resolution != "" {
		report.Resolution = resolution
	}
	reviewer := adminID
	report.ReviewedBy = &reviewer
	if status == models.ReportStatusResolved {
		now := time.Now()
		report.ResolvedAt = &now
	}

	if err := s.repo.SaveReport(ctx, report); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, adminID, ActionUpdateReportStatus, ResourceReport, report.ID, map[string]interface{}{
		"old_status": oldStatus,
		"new_status": status,
	})

	return report, nil
}

func (s *adminService) DeleteReport(ctx context.Context, adminID, reportID uint) error {
	report, err := s.repo.FindReportByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("report not found")
		}
		return err
	}

	if err := s.repo.DeleteReport(ctx, report.ID); err != nil {
		return err
	}

	s.audit.Record(ctx, adminID, ActionDeleteReport, ResourceReport, report.ID, map[string]interface{}{
		"target_type": report.TargetType,
		"target_id":   report.TargetID,
		"status":      report.Status,
	})

	return nil
}

func (s *adminService) GetUsers(ctx context.Context, filter repository.UserFilter, page repository.PageParams) (*Page, error) {
	users, total, err := s.repo.FindUsers(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return NewPage(users, total, page), nil
}

func (s *adminService) UpdateUserRole(ctx context.Context, adminID, userID uint, role string) (*models.User, error) {
	// Self-modification is barred before any lookup happens.
	if adminID == userID {
		return nil, Forbidden("admins cannot change their own role")
	}
	if !models.ValidRole(role) {
		return nil, Invalid("invalid role")
	}

	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("user not found")
		}
		return nil, err
	}

	oldRole := user.Role
	user.Role = role
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, adminID, ActionUpdateUserRole, ResourceUser, user.ID, map[string]interface{}{
		"old_role": oldRole,
		"new_role": role,
	})

	return user, nil
}

func (s *adminService) DeleteUser(ctx context.Context, adminID, userID uint) error {
	if adminID == userID {
		return Forbidden("admins cannot delete their own account")
	}

	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("user not found")
		}
		return err
	}

	if err := s.repo.SoftDeleteUser(ctx, user.ID); err != nil {
		return err
	}

	s.audit.Record(ctx, adminID, ActionDeleteUser, ResourceUser, user.ID, map[string]interface{}{
		"email": user.Email,
	})

	return nil
}

func (s *adminService) GetAuditLogs(ctx context.Context, filter repository.AuditLogFilter, page repository.PageParams) (*Page, error) {
	logs, total, err := s.repo.FindAuditLogs(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return NewPage(logs, total, page), nil
}

func (s *adminService) ExportAuditLogs(ctx context.Context, adminID uint, filter repository.AuditLogFilter) (*ExportResult, error) {
	if s.store == nil {
		return nil, Unavailable("object storage is not configured")
	}

	var all []models.AuditLog
	page := repository.PageParams{Page: 1, PageSize: repository.MaxPageSize}
	for {
		logs, total, err := s.repo.FindAuditLogs(ctx, filter, page)
		if err != nil {
			return nil, err
		}
		all = append(all, logs...)
		if len(logs) == 0 || int64(len(all)) >= total {
			break
		}
		page.Page++
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"event_id", "actor_id", "action", "resource", "resource_id", "metadata", "created_at"})
	for _, entry := range all {
		w.Write([]string{
			entry.EventID,
			strconv.FormatUint(uint64(entry.ActorID), 10),
			entry.Action,
			entry.Resource,
			strconv.FormatUint(uint64(entry.ResourceID), 10),
			entry.Metadata,
			entry.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("audit-exports/%s-%s.csv", time.Now().UTC().Format("20060102T150405"), uuid.NewString())
	if err := s.store.Put(ctx, key, "text/csv", buf.Bytes()); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, adminID, ActionExportAuditLogs, ResourceAuditLog, 0, map[string]interface{}{
		"key":   key,
		"count": len(all),
	})

	return &ExportResult{Key: key, Count: len(all)}, nil
}

func (s *adminService) GetSchoolDeadlines(ctx context.Context, filter repository.DeadlineFilter, page repository.PageParams) (*Page, error) {
	deadlines, total, err := s.repo.FindSchoolDeadlines(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return NewPage(deadlines, total, page), nil
}

func (s *adminService) CreateSchoolDeadline(ctx context.Context, adminID uint, input CreateDeadlineInput) (*models.SchoolDeadline, error) {
	if _, err := s.repo.FindSchoolByID(ctx, input.SchoolID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("school not found")
		}
		return nil, err
	}

	deadline := &models.SchoolDeadline{
		SchoolID: input.SchoolID,
		Year:     input.Year,
		Round:    input.Round,
		DueAt:    input.DueAt,
		Notes:    input.Notes,
	}

	if err := s.repo.CreateSchoolDeadline(ctx, deadline); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Conflict("a deadline already exists for this school, year and round")
		}
		return nil, err
	}

	s.audit.Record(ctx, adminID, ActionCreateSchoolDeadline, ResourceSchoolDeadline, deadline.ID, map[string]interface{}{
		"school_id": input.SchoolID,
		"year":      input.Year,
		"round":     input.Round,
	})

	return deadline, nil
}

func (s *adminService) UpdateSchoolDeadline(ctx context.Context, adminID, deadlineID uint, input UpdateDeadlineInput) (*models.SchoolDeadline, error) {
	deadline, err := s.repo.FindSchoolDeadlineByID(ctx, deadlineID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("deadline not found")
		}
		return nil, err
	}

	if input.DueAt != nil {
		deadline.DueAt = *input.DueAt
	}
	if input.Notes != nil {
		deadline.Notes = *input.Notes
	}

	if err := s.repo.SaveSchoolDeadline(ctx, deadline); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, adminID, ActionUpdateSchoolDeadline, ResourceSchoolDeadline, deadline.ID, map[string]interface{}{
		"school_id": deadline.SchoolID,
		"year":      deadline.Year,
		"round":     deadline.Round,
	})

	return deadline, nil
}

func (s *adminService) DeleteSchoolDeadline(ctx context.Context, adminID, deadlineID uint) error {
	deadline, err := s.repo.FindSchoolDeadlineByID(ctx, deadlineID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("deadline not found")
		}
		return err
	}

	if err := s.repo.DeleteSchoolDeadline(ctx, deadline.ID); err != nil {
		return err
	}

	s.audit.Record(ctx, adminID, ActionDeleteSchoolDeadline, ResourceSchoolDeadline, deadline.ID, map[string]interface{}{
		"school_id": deadline.SchoolID,
		"year":      deadline.Year,
		"round":     deadline.Round,
	})

	return nil
}

func (s *adminService) GetGlobalEvents(ctx context.Context, filter repository.EventFilter, page repository.PageParams) (*Page, error) {
	events, total, err := s.repo.FindGlobalEvents(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return NewPage(events, total, page), nil
}

func (s *adminService) CreateGlobalEvent(ctx context.Context, adminID uint, input CreateEventInput) (*models.GlobalEvent, error) {
	category := input.Category
	if category == "" {
		category = models.EventCategoryOther
	}

	event := &models.GlobalEvent{
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		Tags:        input.Tags,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Recurring:   input.Recurring,
		Active:      true,
	}

	if err := s.repo.CreateGlobalEvent(ctx, event); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, adminID, ActionCreateGlobalEvent, ResourceGlobalEvent, event.ID, map[string]interface{}{
		"title":    event.Title,
		"category": event.Category,
	})

	return event, nil
}

func (s *adminService) UpdateGlobalEvent(ctx context.Context, adminID, eventID uint, input UpdateEventInput) (*models.GlobalEvent, error) {
	event, err := s.repo.FindGlobalEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("event not found")
		}
		return nil, err
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Category != nil {
		event.Category = *input.Category
	}
	if input.Tags != nil {
		event.Tags = input.Tags
	}
	if input.StartsAt != nil {
		event.StartsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		event.EndsAt = input.EndsAt
	}
	if input.Recurring != nil {
		event.Recurring = *input.Recurring
	}
	if input.Active != nil {
		event.Active = *input.Active
	}

	if err := s.repo.SaveGlobalEvent(ctx, event); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, adminID, ActionUpdateGlobalEvent, ResourceGlobalEvent, event.ID, map[string]interface{}{
		"title": event.Title,
	})

	return event, nil
}

func (s *adminService) DeleteGlobalEvent(ctx context.Context, adminID, eventID uint) error {
	event, err := s.repo.FindGlobalEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("event not found")
		}
		return err
	}

	if err := s.repo.DeleteGlobalEvent(ctx, event.ID); err != nil {
		return err
	}

	s.audit.Record(ctx, adminID, ActionDeleteGlobalEvent, ResourceGlobalEvent, event.ID, map[string]interface{}{
		"title": event.Title,
	})

	return nil
}
