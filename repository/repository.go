package repository

import (
	"context"
	"errors"
	"time"

	"github.com/admitpath/api-go/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type PageParams struct {
	Page     int
	PageSize int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalize clamps page and pageSize to sane values.
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p PageParams) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}

func (p PageParams) Limit() int {
	return p.Normalize().PageSize
}

type ReportFilter struct {
	Status     string
	TargetType string
}

type UserFilter struct {
	Search string // case-insensitive email substring
	Role   string
}

type AuditLogFilter struct {
	ActorID  uint
	Action   string
	Resource string
	From     *time.Time
	To       *time.Time
}

type DeadlineFilter struct {
	SchoolID uint
	Year     int
}

type EventFilter struct {
	Category string
	Active   *bool
}

// UserSummary is the admin listing projection of a user.
type UserSummary struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	CaseCount     int64     `json:"case_count"`
	ReviewCount   int64     `json:"review_count"`
}

type StatsSnapshot struct {
	TotalUsers          int64 `json:"total_users"`
	VerifiedUsers       int64 `json:"verified_users"`
	TotalCases          int64 `json:"total_cases"`
	PendingReports      int64 `json:"pending_reports"`
	TotalReviews        int64 `json:"total_reviews"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
}

// AdminRepository covers every query the admin surface issues.
type AdminRepository interface {
	Stats(ctx context.Context) (*StatsSnapshot, error)

	FindReports(ctx context.Context, filter ReportFilter, page PageParams) ([]models.Report, int64, error)
	FindReportByID(ctx context.Context, id uint) (*models.Report, error)
	SaveReport(ctx context.Context, report *models.Report) error
	DeleteReport(ctx context.Context, id uint) error

	FindUsers(ctx context.Context, filter UserFilter, page PageParams) ([]UserSummary, int64, error)
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	SoftDeleteUser(ctx context.Context, id uint) error

	FindAuditLogs(ctx context.Context, filter AuditLogFilter, page PageParams) ([]models.AuditLog, int64, error)
	CreateAuditLog(ctx context.Context, entry *models.AuditLog) error

	FindSchoolByID(ctx context.Context, id uint) (*models.School, error)

	FindSchoolDeadlines(ctx context.Context, filter DeadlineFilter, page PageParams) ([]models.SchoolDeadline, int64, error)
	FindSchoolDeadlineByID(ctx context.Context, id uint) (*models.SchoolDeadline, error)
	CreateSchoolDeadline(ctx context.Context, deadline *models.SchoolDeadline) error
	SaveSchoolDeadline(ctx context.Context, deadline *models.SchoolDeadline) error
	DeleteSchoolDeadline(ctx context.Context, id uint) error

	FindGlobalEvents(ctx context.Context, filter EventFilter, page PageParams) ([]models.GlobalEvent, int64, error)
	FindGlobalEventByID(ctx context.Context, id uint) (*models.GlobalEvent, error)
	CreateGlobalEvent(ctx context.Context, event *models.GlobalEvent) error
	SaveGlobalEvent(ctx context.Context, event *models.GlobalEvent) error
	DeleteGlobalEvent(ctx context.Context, id uint) error
}
