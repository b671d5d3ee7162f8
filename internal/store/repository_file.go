package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/models"
)

// fileRepository is the PostgreSQL-backed implementation of [FileRepository].
// It manages the "files" metadata table; encrypted payloads never pass
// through it.
type fileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFileRepository constructs a [FileRepository] backed by the provided
// database connection and logger.
func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new file metadata row and returns it with
// server-assigned fields (IsActive, CreatedAt, UpdatedAt) populated from
// the RETURNING clause.
func (r *fileRepository) Create(ctx context.Context, file models.File) (models.File, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createFile,
		file.FileID, file.OriginalFilename, file.EncryptedFilename, file.Category, file.SizeBytes, file.MimeType,
		file.EncryptionSalt, file.KeyHash, file.Description, file.PersonID, file.RecordID, file.UploadedBy)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*fileRepository.Create").Msg("error: row is nil")
		return models.File{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanFileRow(row)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.Create").Msg("error: scanning error")
		return models.File{}, errors.Join(ErrScanningRow, err)
	}

	return saved, nil
}

// GetByID retrieves one file metadata row by id. Inactive rows are
// returned too; the caller decides what soft-deleted means for its
// operation.
//
// Returns [ErrFileRecordNotFound] when no row matches.
func (r *fileRepository) GetByID(ctx context.Context, fileID uuid.UUID) (models.File, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getFileByID, fileID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*fileRepository.GetByID").Msg("error: row is nil")
		return models.File{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanFileRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.File{}, ErrFileRecordNotFound
		}
		log.Err(err).Str("func", "*fileRepository.GetByID").Msg("error: scanning error")
		return models.File{}, errors.Join(ErrScanningRow, err)
	}

	return found, nil
}

// ListByPerson returns the files attached to one person, newest first.
func (r *fileRepository) ListByPerson(ctx context.Context, personID uuid.UUID, includeInactive bool) ([]models.File, error) {
	return r.listByOwner(ctx, "person_id", personID, includeInactive)
}

// ListByRecord returns the files attached to one incident record, newest first.
func (r *fileRepository) ListByRecord(ctx context.Context, recordID uuid.UUID, includeInactive bool) ([]models.File, error) {
	return r.listByOwner(ctx, "record_id", recordID, includeInactive)
}

func (r *fileRepository) listByOwner(ctx context.Context, ownerColumn string, ownerID uuid.UUID, includeInactive bool) ([]models.File, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFilesQuery(ownerColumn, ownerID, includeInactive)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.listByOwner").Msg("error building list query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.listByOwner").Msg("error executing list query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	files := make([]models.File, 0)
	for rows.Next() {
		file, scanErr := scanFileRow(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*fileRepository.listByOwner").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, scanErr)
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return files, nil
}

// ListAll returns a page of every active file, newest first, optionally
// narrowed to one category.
func (r *fileRepository) ListAll(ctx context.Context, category models.FileCategory, limit, offset int) ([]models.File, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAllFilesQuery(category, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.ListAll").Msg("error building list query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.ListAll").Msg("error executing list query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	files := make([]models.File, 0)
	for rows.Next() {
		file, scanErr := scanFileRow(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*fileRepository.ListAll").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, scanErr)
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return files, nil
}

// UpdateDescription replaces the description of one file metadata row and
// returns the updated row. Description is the only mutable metadata field.
//
// Returns [ErrFileRecordNotFound] when no row matches.
func (r *fileRepository) UpdateDescription(ctx context.Context, fileID uuid.UUID, description string) (models.File, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateFileDescription, fileID, description)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*fileRepository.UpdateDescription").Msg("error: row is nil")
		return models.File{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanFileRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.File{}, ErrFileRecordNotFound
		}
		log.Err(err).Str("func", "*fileRepository.UpdateDescription").Msg("error: scanning error")
		return models.File{}, errors.Join(ErrScanningRow, err)
	}

	return updated, nil
}

// SoftDelete marks one active file metadata row inactive.
//
// Returns [ErrFileRecordNotFound] when the row does not exist or is
// already inactive.
func (r *fileRepository) SoftDelete(ctx context.Context, fileID uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, softDeleteFile, fileID)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.SoftDelete").Msg("error executing soft delete")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFileRecordNotFound
	}

	return nil
}

// HardDelete removes one file metadata row permanently.
//
// Returns [ErrFileRecordNotFound] when no row matches.
func (r *fileRepository) HardDelete(ctx context.Context, fileID uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, hardDeleteFile, fileID)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.HardDelete").Msg("error executing hard delete")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFileRecordNotFound
	}

	return nil
}

// Stats returns the aggregate counters over active file rows.
func (r *fileRepository) Stats(ctx context.Context) (models.FileStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildStatsQuery()
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.Stats").Msg("error building stats query")
		return models.FileStats{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	var stats models.FileStats
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*fileRepository.Stats").Msg("error: row is nil")
		return models.FileStats{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&stats.TotalActiveFiles, &stats.TotalPDFFiles, &stats.TotalImageFiles, &stats.TotalSizeBytes); err != nil {
		log.Err(err).Str("func", "*fileRepository.Stats").Msg("error: scanning error")
		return models.FileStats{}, errors.Join(ErrScanningRow, err)
	}

	return stats, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFileRow(row rowScanner) (models.File, error) {
	var file models.File
	err := row.Scan(
		&file.FileID, &file.OriginalFilename, &file.EncryptedFilename, &file.Category, &file.SizeBytes, &file.MimeType,
		&file.EncryptionSalt, &file.KeyHash, &file.Description, &file.IsActive, &file.PersonID, &file.RecordID, &file.UploadedBy,
		&file.CreatedAt, &file.UpdatedAt)
	return file, err
}
