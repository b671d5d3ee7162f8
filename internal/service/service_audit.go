package service

import (
	"context"

	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/internal/store"
	"github.com/sgalab/sga-server/internal/utils"
	"github.com/sgalab/sga-server/models"
)

// defaultAuditListLimit caps the audit listing when the caller does not
// supply a limit of its own.
const defaultAuditListLimit = 100

// auditService is the concrete implementation of AuditService.
type auditService struct {
	auditRepository store.AuditRepository
	logger          *logger.Logger
}

// NewAuditService constructs an AuditService over the given repository.
func NewAuditService(auditRepository store.AuditRepository, logger *logger.Logger) AuditService {
	return &auditService{
		auditRepository: auditRepository,
		logger:          logger,
	}
}

// Record appends one audit entry. When the entry carries no UserID and the
// context holds an authenticated principal, the entry is attributed to that
// principal.
//
// A failed insert is logged and swallowed: auditing must never fail the
// operation being audited.
func (a *auditService) Record(ctx context.Context, entry models.AuditEntry) {
	log := logger.FromContext(ctx)

	if entry.UserID == nil {
		if principal, ok := utils.GetPrincipalFromContext(ctx); ok {
			userID := principal.UserID
			entry.UserID = &userID
		}
	}

	if err := a.auditRepository.Insert(ctx, entry); err != nil {
		log.Err(err).
			Str("action", entry.Action).
			Str("entity_type", entry.EntityType).
			Msg("recording audit entry failed")
	}
}

// List returns the newest audit entries. A non-positive limit falls back to
// the default.
func (a *auditService) List(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	if limit <= 0 {
		limit = defaultAuditListLimit
	}

	return a.auditRepository.List(ctx, limit)
}
