package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/models"
)

// auditRepository is the PostgreSQL-backed implementation of
// [AuditRepository] over the append-only "audit_logs" table.
type auditRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuditRepository constructs an [AuditRepository] backed by the provided
// database connection and logger.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

// Insert appends one entry to the audit log. A zero EntryID is replaced
// with a fresh UUID so callers only fill in the descriptive fields.
func (r *auditRepository) Insert(ctx context.Context, entry models.AuditEntry) error {
	log := logger.FromContext(ctx)

	if entry.EntryID == uuid.Nil {
		entry.EntryID = uuid.New()
	}

	_, err := r.db.ExecContext(ctx, insertAuditEntry,
		entry.EntryID, entry.UserID, entry.Action, entry.EntityType, entry.EntityID, entry.Description, entry.IPAddress)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.Insert").Msg("error inserting audit entry")
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

// List returns the newest audit entries up to the given limit.
func (r *auditRepository) List(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAuditEntries, limit)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.List").Msg("error executing audit list query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.AuditEntry, 0, limit)
	for rows.Next() {
		var entry models.AuditEntry
		if scanErr := rows.Scan(&entry.EntryID, &entry.UserID, &entry.Action, &entry.EntityType, &entry.EntityID,
			&entry.Description, &entry.IPAddress, &entry.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*auditRepository.List").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return entries, nil
}
