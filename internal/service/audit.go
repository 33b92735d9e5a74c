package service

import (
	"context"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/logger"
	"campreserv-backend/internal/repository"
)

type auditService struct {
	auditRepo repository.AuditLogRepository
}

func NewAuditService(auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// Record writes an audit row. Audit failures are logged and swallowed so a
// broken audit table never blocks the operation being audited.
func (s *auditService) Record(ctx context.Context, campgroundID, actorID, action, entityType, entityID, detail string) {
	entry := &domain.AuditLog{
		CampgroundID: campgroundID,
		ActorUserID:  actorID,
		Action:       action,
		EntityType:   entityType,
		EntityID:     entityID,
		Detail:       detail,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		logger.Error("Failed to write audit log", "action", action, "entity_id", entityID, "error", err)
	}
}
