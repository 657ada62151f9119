package repository

import (
	"context"
	"errors"

	"github.com/admitpath/api-go/models"
	"gorm.io/gorm"
)

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) AdminRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Stats(ctx context.Context) (*StatsSnapshot, error) {
	db := r.db.WithContext(ctx)
	var snapshot StatsSnapshot

	if err := db.Model(&models.User{}).Count(&snapshot.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleVerified).Count(&snapshot.VerifiedUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.AdmissionCase{}).Count(&snapshot.TotalCases).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Report{}).Where("status = ?", models.ReportStatusPending).Count(&snapshot.PendingReports).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Review{}).Count(&snapshot.TotalReviews).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Subscription{}).Where("status = ?", models.SubscriptionStatusActive).Count(&snapshot.ActiveSubscriptions).Error; err != nil {
		return nil, err
	}

	return &snapshot, nil
}

func (r *postgresRepository) FindReports(ctx context.Context, filter ReportFilter, page PageParams) ([]models.Report, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Report{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.TargetType != "" {
		query = query.Where("target_type = ?", filter.TargetType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []models.Report
	err := query.
		Preload("Reporter").
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

func (r *postgresRepository) FindReportByID(ctx context.Context, id uint) (*models.Report, error) {
	var report models.Report
	if err := r.db.WithContext(ctx).Preload("Reporter").First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *postgresRepository) SaveReport(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Save(report).Error
}

func (r *postgresRepository) DeleteReport(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Report{}, id).Error
}

func (r *postgresRepository) FindUsers(ctx context.Context, filter UserFilter, page PageParams) ([]UserSummary, int64, error) {
	db := r.db.WithContext(ctx)

	countQuery := db.Model(&models.User{})
	listQuery := db.Table("users").
		Select(`
			users.id,
			users.email,
			users.first_name,
			users.last_name,
			users.role,
			users.email_verified,
			users.created_at,
			COUNT(DISTINCT admission_cases.id) AS case_count,
			COUNT(DISTINCT reviews.id) AS review_count
		`).
		Joins("LEFT JOIN admission_cases ON admission_cases.user_id = users.id AND admission_cases.deleted_at IS NULL").
		Joins("LEFT JOIN reviews ON reviews.reviewer_id = users.id AND reviews.deleted_at IS NULL").
		Where("users.deleted_at IS NULL")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		countQuery = countQuery.Where("email ILIKE ?", pattern)
		listQuery = listQuery.Where("users.email ILIKE ?", pattern)
	}
	if filter.Role != "" {
		countQuery = countQuery.Where("role = ?", filter.Role)
		listQuery = listQuery.Where("users.role = ?", filter.Role)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []UserSummary
	err := listQuery.
		Group("users.id").
		Order("users.created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Scan(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *postgresRepository) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *postgresRepository) SaveUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *postgresRepository) SoftDeleteUser(ctx context.Context, id uint) error {
	// User.DeletedAt makes this a soft delete.
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

func (r *postgresRepository) FindAuditLogs(ctx context.Context, filter AuditLogFilter, page PageParams) ([]models.AuditLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditLog{})
	if filter.ActorID != 0 {
		query = query.Where("actor_id = ?", filter.ActorID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.Resource != "" {
		query = query.Where("resource = ?", filter.Resource)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func (r *postgresRepository) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *postgresRepository) FindSchoolByID(ctx context.Context, id uint) (*models.School, error) {
	var school models.School
	if err := r.db.WithContext(ctx).First(&school, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &school, nil
}

func (r *postgresRepository) FindSchoolDeadlines(ctx context.Context, filter DeadlineFilter, page PageParams) ([]models.SchoolDeadline, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.SchoolDeadline{})
	if filter.SchoolID != 0 {
		query = query.Where("school_id = ?", filter.SchoolID)
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var deadlines []models.SchoolDeadline
	err := query.
		Preload("School").
		Order("due_at ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&deadlines).Error
	if err != nil {
		return nil, 0, err
	}

	return deadlines, total, nil
}

func (r *postgresRepository) FindSchoolDeadlineByID(ctx context.Context, id uint) (*models.SchoolDeadline, error) {
	var deadline models.SchoolDeadline
	if err := r.db.WithContext(ctx).First(&deadline, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &deadline, nil
}

func (r *postgresRepository) CreateSchoolDeadline(ctx context.Context, deadline *models.SchoolDeadline) error {
	if err := r.db.WithContext(ctx).Create(deadline).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *postgresRepository) SaveSchoolDeadline(ctx context.Context, deadline *models.SchoolDeadline) error {
	if err := r.db.WithContext(ctx).Save(deadline).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *postgresRepository) DeleteSchoolDeadline(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.SchoolDeadline{}, id).Error
}

func (r *postgresRepository) FindGlobalEvents(ctx context.Context, filter EventFilter, page PageParams) ([]models.GlobalEvent, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.GlobalEvent{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.GlobalEvent
	err := query.
		Order("starts_at ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (r *postgresRepository) FindGlobalEventByID(ctx context.Context, id uint) (*models.GlobalEvent, error) {
	var event models.GlobalEvent
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *postgresRepository) CreateGlobalEvent(ctx context.Context, event *models.GlobalEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *postgresRepository) SaveGlobalEvent(ctx context.Context, event *models.GlobalEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *postgresRepository) DeleteGlobalEvent(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.GlobalEvent{}, id).Error
}
