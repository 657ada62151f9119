package services

import (
	"context"
	"encoding/json"

	"github.com/admitpath/api-go/models"
	"github.com/admitpath/api-go/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	ActionUpdateReportStatus   = "UPDATE_REPORT_STATUS"
	ActionDeleteReport         = "DELETE_REPORT"
	ActionUpdateUserRole       = "UPDATE_USER_ROLE"
	ActionDeleteUser           = "DELETE_USER"
	ActionCreateSchoolDeadline = "CREATE_SCHOOL_DEADLINE"
	ActionUpdateSchoolDeadline = "UPDATE_SCHOOL_DEADLINE"
	ActionDeleteSchoolDeadline = "DELETE_SCHOOL_DEADLINE"
	ActionCreateGlobalEvent    = "CREATE_GLOBAL_EVENT"
	ActionUpdateGlobalEvent    = "UPDATE_GLOBAL_EVENT"
	ActionDeleteGlobalEvent    = "DELETE_GLOBAL_EVENT"
	ActionExportAuditLogs      = "EXPORT_AUDIT_LOGS"
)

const (
	ResourceReport         = "report"
	ResourceUser           = "user"
	ResourceSchoolDeadline = "school_deadline"
	ResourceGlobalEvent    = "global_event"
	ResourceAuditLog       = "audit_log"
)

// AuditSink appends audit rows describing admin actions. Writes are
// best-effort: a failed write is logged and swallowed so the primary action
// still succeeds from the caller's perspective.
type AuditSink struct {
	repo repository.AdminRepository
}

func NewAuditSink(repo repository.AdminRepository) *AuditSink {
	return &AuditSink{repo: repo}
}

func (s *AuditSink) Record(ctx context.Context, actorID uint, action, resource string, resourceID uint, metadata map[string]interface{}) {
	payload := "{}"
	if metadata != nil {
		if raw, err := json.Marshal(metadata); err == nil {
			payload = string(raw)
		}
	}

	entry := &models.AuditLog{
		EventID:    uuid.NewString(),
		ActorID:    actorID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Metadata:   payload,
	}

	if err := s.repo.CreateAuditLog(ctx, entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"actor_id":    actorID,
			"action":      action,
			"resource":    resource,
			"resource_id": resourceID,
		}).Error("Failed to write audit log")
	}
}
