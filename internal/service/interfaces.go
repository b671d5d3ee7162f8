package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/sgalab/sga-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// UploadRequest carries everything one upload needs: the payload stream plus
// the untrusted metadata the client declared about it.
type UploadRequest struct {
	Content          io.Reader
	OriginalFilename string
	MimeType         string
	SizeBytes        int64
	Description      string
	PersonID         uuid.UUID
	RecordID         uuid.NullUUID
	UploadedBy       int64
}

// AuthService handles credential verification, the JWT token lifecycle, and
// principal resolution for the access gate.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ResolvePrincipal(ctx context.Context, token models.Token) (models.Principal, error)
}

// FileService owns the attachment pipeline: validation, encryption, disk
// placement, and the metadata lifecycle from upload to permanent removal.
type FileService interface {
	Upload(ctx context.Context, req UploadRequest) (models.File, error)
	Download(ctx context.Context, fileID uuid.UUID) (models.File, []byte, error)
	Get(ctx context.Context, fileID uuid.UUID) (models.File, error)
	List(ctx context.Context, category models.FileCategory, limit, offset int) ([]models.File, error)
	ListByPerson(ctx context.Context, personID uuid.UUID, includeInactive bool) ([]models.File, error)
	ListByRecord(ctx context.Context, recordID uuid.UUID, includeInactive bool) ([]models.File, error)
	UpdateDescription(ctx context.Context, fileID uuid.UUID, description string) (models.File, error)
	SoftDelete(ctx context.Context, fileID uuid.UUID) error
	HardDelete(ctx context.Context, fileID uuid.UUID) error
	Stats(ctx context.Context) (models.FileStats, error)
}

// AuditService records security-relevant events and serves the admin-only
// audit listing. Record is best-effort: a failed insert is logged, never
// propagated, so auditing cannot take the primary operation down with it.
type AuditService interface {
	Record(ctx context.Context, entry models.AuditEntry)
	List(ctx context.Context, limit int) ([]models.AuditEntry, error)
}
