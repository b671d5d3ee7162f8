package service

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/sgalab/sga-server/internal/crypto"
	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/internal/storage"
	"github.com/sgalab/sga-server/internal/store"
	"github.com/sgalab/sga-server/internal/validators"
	"github.com/sgalab/sga-server/models"
)

// fileService is the concrete implementation of FileService. It orchestrates
// the upload pipeline (validate, check references, encrypt, persist) and the
// read and delete paths over it.
//
// Ordering inside Upload is load-bearing: every cheap check runs before the
// expensive encryption step, and nothing touches the disk until the
// referenced person (and record, when given) is known to exist.
type fileService struct {
	fileRepository      store.FileRepository
	referenceRepository store.ReferenceRepository
	cipher              crypto.FileCipherService
	layout              *storage.Layout
	validator           *validators.FileValidator
	audit               AuditService
	logger              *logger.Logger
}

// NewFileService constructs a FileService wired to its repositories, the
// cipher, the disk layout, and the validator.
func NewFileService(
	fileRepository store.FileRepository,
	referenceRepository store.ReferenceRepository,
	cipher crypto.FileCipherService,
	layout *storage.Layout,
	validator *validators.FileValidator,
	audit AuditService,
	logger *logger.Logger,
) FileService {
	return &fileService{
		fileRepository:      fileRepository,
		referenceRepository: referenceRepository,
		cipher:              cipher,
		layout:              layout,
		validator:           validator,
		audit:               audit,
		logger:              logger,
	}
}

// Upload runs the full attachment pipeline for one file.
//
// Steps, in order:
//  1. Required-field validation.
//  2. Type validation: extension and MIME type must agree on an allow-listed
//     category (validators.ErrUnsupportedFileType otherwise).
//  3. Declared-size validation (validators.ErrFileTooLarge).
//  4. Existence checks on the referenced person and, when given, record.
//  5. Encryption to disk under the category directory.
//  6. Metadata INSERT. When the INSERT fails the just-written ciphertext is
//     removed so no orphaned blob survives the failed upload.
//
// The byte count actually read from the stream is re-checked against the
// size limit after encryption: a client that understates SizeBytes cannot
// smuggle an oversized payload past step 3.
func (s *fileService) Upload(ctx context.Context, req UploadRequest) (models.File, error) {
	log := logger.FromContext(ctx)

	if req.Content == nil || req.OriginalFilename == "" || req.PersonID == uuid.Nil {
		log.Error().Str("filename", req.OriginalFilename).Msg("invalid upload data provided")
		return models.File{}, ErrInvalidDataProvided
	}

	category, err := s.validator.ValidateFileType(req.OriginalFilename, req.MimeType)
	if err != nil {
		log.Err(err).Str("filename", req.OriginalFilename).Str("mime", req.MimeType).Msg("upload rejected: file type")
		return models.File{}, err
	}

	if err := s.validator.ValidateFileSize(req.SizeBytes); err != nil {
		log.Err(err).Int64("size", req.SizeBytes).Msg("upload rejected: file size")
		return models.File{}, err
	}

	if err := s.checkReferences(ctx, req.PersonID, req.RecordID); err != nil {
		return models.File{}, err
	}

	encrypted, err := s.cipher.EncryptToDisk(req.Content, s.layout.PathFor(category), req.OriginalFilename)
	if err != nil {
		log.Err(err).Str("filename", req.OriginalFilename).Msg("encrypting upload failed")
		return models.File{}, fmt.Errorf("encrypting upload failed: %w", err)
	}

	ciphertextPath := s.layout.FullPath(category, encrypted.EncryptedFilename)

	if err := s.validator.ValidateFileSize(encrypted.Size); err != nil {
		s.removeCiphertext(ctx, ciphertextPath)
		log.Err(err).Int64("size", encrypted.Size).Msg("upload rejected: actual size over limit")
		return models.File{}, err
	}

	file := models.File{
		FileID:            uuid.New(),
		OriginalFilename:  req.OriginalFilename,
		EncryptedFilename: encrypted.EncryptedFilename,
		Category:          category,
		SizeBytes:         encrypted.Size,
		MimeType:          req.MimeType,
		EncryptionSalt:    encrypted.Salt,
		KeyHash:           encrypted.KeyHash,
		Description:       req.Description,
		PersonID:          req.PersonID,
		RecordID:          req.RecordID,
		UploadedBy:        req.UploadedBy,
	}

	saved, err := s.fileRepository.Create(ctx, file)
	if err != nil {
		s.removeCiphertext(ctx, ciphertextPath)
		log.Err(err).Str("filename", req.OriginalFilename).Msg("saving file metadata failed")
		return models.File{}, fmt.Errorf("saving file metadata failed: %w", err)
	}

	s.recordFileAudit(ctx, saved.FileID, "FILE_UPLOADED", saved.OriginalFilename)
	return saved, nil
}

// Download loads a file's metadata and decrypts its payload from disk.
//
// Only active files are downloadable. A soft-deleted file keeps its metadata
// queryable through Get, but its payload is treated as gone.
func (s *fileService) Download(ctx context.Context, fileID uuid.UUID) (models.File, []byte, error) {
	log := logger.FromContext(ctx)

	file, err := s.fileRepository.GetByID(ctx, fileID)
	if err != nil {
		return models.File{}, nil, err
	}
	if !file.IsActive {
		return models.File{}, nil, store.ErrFileRecordNotFound
	}

	path := s.layout.FullPath(file.Category, file.EncryptedFilename)
	plaintext, err := s.cipher.DecryptFromDisk(path, file.EncryptionSalt, file.KeyHash)
	if err != nil {
		log.Err(err).Str("file_id", fileID.String()).Msg("decrypting stored file failed")
		return models.File{}, nil, fmt.Errorf("decrypting stored file failed: %w", err)
	}

	return file, plaintext, nil
}

// Get returns a file's metadata without touching the payload.
func (s *fileService) Get(ctx context.Context, fileID uuid.UUID) (models.File, error) {
	return s.fileRepository.GetByID(ctx, fileID)
}

// defaultListLimit is the page size used when the caller does not ask for
// one.
const defaultListLimit = 100

// List returns a page of every active file in the system, newest first,
// optionally narrowed to one category. Out-of-range limit and offset values
// fall back to the defaults.
func (s *fileService) List(ctx context.Context, category models.FileCategory, limit, offset int) ([]models.File, error) {
	if category != "" && category != models.CategoryPDF && category != models.CategoryImage {
		return nil, ErrInvalidDataProvided
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.fileRepository.ListAll(ctx, category, limit, offset)
}

// ListByPerson returns a person's attachments, newest first. The person must
// exist: listing an unknown id is an error, not an empty result.
func (s *fileService) ListByPerson(ctx context.Context, personID uuid.UUID, includeInactive bool) ([]models.File, error) {
	found, err := s.referenceRepository.PersonExists(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("person existence check failed: %w", err)
	}
	if !found {
		return nil, ErrPersonNotFound
	}

	return s.fileRepository.ListByPerson(ctx, personID, includeInactive)
}

// ListByRecord returns an incident record's attachments, newest first.
func (s *fileService) ListByRecord(ctx context.Context, recordID uuid.UUID, includeInactive bool) ([]models.File, error) {
	found, err := s.referenceRepository.RecordExists(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("record existence check failed: %w", err)
	}
	if !found {
		return nil, ErrRecordNotFound
	}

	return s.fileRepository.ListByRecord(ctx, recordID, includeInactive)
}

// UpdateDescription replaces the only mutable metadata field.
func (s *fileService) UpdateDescription(ctx context.Context, fileID uuid.UUID, description string) (models.File, error) {
	updated, err := s.fileRepository.UpdateDescription(ctx, fileID, description)
	if err != nil {
		return models.File{}, err
	}

	s.recordFileAudit(ctx, fileID, "FILE_METADATA_UPDATED", updated.OriginalFilename)
	return updated, nil
}

// SoftDelete hides a file from listings. The ciphertext and the metadata row
// both survive; a permanent delete is the only operation that removes them.
func (s *fileService) SoftDelete(ctx context.Context, fileID uuid.UUID) error {
	if err := s.fileRepository.SoftDelete(ctx, fileID); err != nil {
		return err
	}

	s.recordFileAudit(ctx, fileID, "FILE_SOFT_DELETED", "")
	return nil
}

// HardDelete removes a file permanently: the metadata row first, then the
// ciphertext. A missing blob is not an error here, the row is authoritative.
func (s *fileService) HardDelete(ctx context.Context, fileID uuid.UUID) error {
	log := logger.FromContext(ctx)

	file, err := s.fileRepository.GetByID(ctx, fileID)
	if err != nil {
		return err
	}

	if err := s.fileRepository.HardDelete(ctx, fileID); err != nil {
		return err
	}

	path := s.layout.FullPath(file.Category, file.EncryptedFilename)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Err(err).Str("path", path).Msg("removing ciphertext after hard delete failed")
	}

	s.recordFileAudit(ctx, fileID, "FILE_PERMANENTLY_DELETED", file.OriginalFilename)
	return nil
}

// Stats returns the aggregate counters over active files.
func (s *fileService) Stats(ctx context.Context) (models.FileStats, error) {
	return s.fileRepository.Stats(ctx)
}

// checkReferences verifies the referenced person and optional record exist
// before any ciphertext is written.
func (s *fileService) checkReferences(ctx context.Context, personID uuid.UUID, recordID uuid.NullUUID) error {
	log := logger.FromContext(ctx)

	personFound, err := s.referenceRepository.PersonExists(ctx, personID)
	if err != nil {
		log.Err(err).Str("person_id", personID.String()).Msg("person existence check failed")
		return fmt.Errorf("person existence check failed: %w", err)
	}
	if !personFound {
		return ErrPersonNotFound
	}

	if recordID.Valid {
		recordFound, err := s.referenceRepository.RecordExists(ctx, recordID.UUID)
		if err != nil {
			log.Err(err).Str("record_id", recordID.UUID.String()).Msg("record existence check failed")
			return fmt.Errorf("record existence check failed: %w", err)
		}
		if !recordFound {
			return ErrRecordNotFound
		}
	}

	return nil
}

// removeCiphertext is the compensating action for a failed upload: the blob
// written by EncryptToDisk must not outlive the operation that produced it.
func (s *fileService) removeCiphertext(ctx context.Context, path string) {
	log := logger.FromContext(ctx)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Err(err).Str("path", path).Msg("removing orphaned ciphertext failed")
	}
}

// recordFileAudit appends a FILE audit entry attributed to the request
// principal, when one is present in the context.
func (s *fileService) recordFileAudit(ctx context.Context, fileID uuid.UUID, action, description string) {
	entityID := fileID
	s.audit.Record(ctx, models.AuditEntry{
		Action:      action,
		EntityType:  models.AuditEntityFile,
		EntityID:    &entityID,
		Description: description,
	})
}
