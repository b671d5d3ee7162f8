package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sgalab/sga-server/internal/logger"
)

// referenceRepository is the PostgreSQL-backed implementation of
// [ReferenceRepository]. It runs existence checks against the "persons" and
// "records" tables owned by the records subsystem; this service never
// writes to either table.
type referenceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReferenceRepository constructs a [ReferenceRepository] backed by the
// provided database connection and logger.
func NewReferenceRepository(db *DB, logger *logger.Logger) ReferenceRepository {
	logger.Debug().Msg("creating reference repository")
	return &referenceRepository{
		db:     db,
		logger: logger,
	}
}

// PersonExists reports whether a person row with the given id exists.
func (r *referenceRepository) PersonExists(ctx context.Context, personID uuid.UUID) (bool, error) {
	return r.exists(ctx, personExists, personID, "*referenceRepository.PersonExists")
}

// RecordExists reports whether an incident record row with the given id exists.
func (r *referenceRepository) RecordExists(ctx context.Context, recordID uuid.UUID) (bool, error) {
	return r.exists(ctx, recordExists, recordID, "*referenceRepository.RecordExists")
}

func (r *referenceRepository) exists(ctx context.Context, query string, id uuid.UUID, funcName string) (bool, error) {
	log := logger.FromContext(ctx)

	var found bool
	row := r.db.QueryRowContext(ctx, query, id)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error: row is nil")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&found); err != nil {
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return false, err
	}

	return found, nil
}
