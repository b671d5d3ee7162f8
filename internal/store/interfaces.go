package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/sgalab/sga-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

// UserRepository persists and retrieves user accounts together with their
// resolved role names.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	GetRoleName(ctx context.Context, roleID int64) (string, error)
}

// FileRepository persists attachment metadata. The encrypted payloads live
// on disk; only their descriptive rows go through this interface.
type FileRepository interface {
	Create(ctx context.Context, file models.File) (models.File, error)
	GetByID(ctx context.Context, fileID uuid.UUID) (models.File, error)
	ListAll(ctx context.Context, category models.FileCategory, limit, offset int) ([]models.File, error)
	ListByPerson(ctx context.Context, personID uuid.UUID, includeInactive bool) ([]models.File, error)
	ListByRecord(ctx context.Context, recordID uuid.UUID, includeInactive bool) ([]models.File, error)
	UpdateDescription(ctx context.Context, fileID uuid.UUID, description string) (models.File, error)
	SoftDelete(ctx context.Context, fileID uuid.UUID) error
	HardDelete(ctx context.Context, fileID uuid.UUID) error
	Stats(ctx context.Context) (models.FileStats, error)
}

// ReferenceRepository answers existence checks against the person and
// record tables. Uploads are rejected up front when the referenced owner
// does not exist, before any ciphertext is written.
type ReferenceRepository interface {
	PersonExists(ctx context.Context, personID uuid.UUID) (bool, error)
	RecordExists(ctx context.Context, recordID uuid.UUID) (bool, error)
}

// AuditRepository appends to and reads from the audit log. The log is
// insert-only: the interface deliberately offers no update or delete.
type AuditRepository interface {
	Insert(ctx context.Context, entry models.AuditEntry) error
	List(ctx context.Context, limit int) ([]models.AuditEntry, error)
}
