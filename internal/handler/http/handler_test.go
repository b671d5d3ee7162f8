package http

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/internal/service"
	"github.com/sgalab/sga-server/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn            func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn      func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn       func(ctx context.Context, tokenString string) (models.Token, error)
	resolvePrincipalFn func(ctx context.Context, token models.Token) (models.Principal, error)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ResolvePrincipal(ctx context.Context, token models.Token) (models.Principal, error) {
	return m.resolvePrincipalFn(ctx, token)
}

// mockFileService implements service.FileService for unit tests.
type mockFileService struct {
	uploadFn            func(ctx context.Context, req service.UploadRequest) (models.File, error)
	downloadFn          func(ctx context.Context, fileID uuid.UUID) (models.File, []byte, error)
	getFn               func(ctx context.Context, fileID uuid.UUID) (models.File, error)
	listFn              func(ctx context.Context, category models.FileCategory, limit, offset int) ([]models.File, error)
	listByPersonFn      func(ctx context.Context, personID uuid.UUID, includeInactive bool) ([]models.File, error)
	listByRecordFn      func(ctx context.Context, recordID uuid.UUID, includeInactive bool) ([]models.File, error)
	updateDescriptionFn func(ctx context.Context, fileID uuid.UUID, description string) (models.File, error)
	softDeleteFn        func(ctx context.Context, fileID uuid.UUID) error
	hardDeleteFn        func(ctx context.Context, fileID uuid.UUID) error
	statsFn             func(ctx context.Context) (models.FileStats, error)
}

func (m *mockFileService) Upload(ctx context.Context, req service.UploadRequest) (models.File, error) {
	return m.uploadFn(ctx, req)
}

func (m *mockFileService) Download(ctx context.Context, fileID uuid.UUID) (models.File, []byte, error) {
	return m.downloadFn(ctx, fileID)
}

func (m *mockFileService) Get(ctx context.Context, fileID uuid.UUID) (models.File, error) {
	return m.getFn(ctx, fileID)
}

func (m *mockFileService) List(ctx context.Context, category models.FileCategory, limit, offset int) ([]models.File, error) {
	return m.listFn(ctx, category, limit, offset)
}

func (m *mockFileService) ListByPerson(ctx context.Context, personID uuid.UUID, includeInactive bool) ([]models.File, error) {
	return m.listByPersonFn(ctx, personID, includeInactive)
}

func (m *mockFileService) ListByRecord(ctx context.Context, recordID uuid.UUID, includeInactive bool) ([]models.File, error) {
	return m.listByRecordFn(ctx, recordID, includeInactive)
}

func (m *mockFileService) UpdateDescription(ctx context.Context, fileID uuid.UUID, description string) (models.File, error) {
	return m.updateDescriptionFn(ctx, fileID, description)
}

func (m *mockFileService) SoftDelete(ctx context.Context, fileID uuid.UUID) error {
	return m.softDeleteFn(ctx, fileID)
}

func (m *mockFileService) HardDelete(ctx context.Context, fileID uuid.UUID) error {
	return m.hardDeleteFn(ctx, fileID)
}

func (m *mockFileService) Stats(ctx context.Context) (models.FileStats, error) {
	return m.statsFn(ctx)
}

// mockAuditService records entries in memory so tests can assert on them.
type mockAuditService struct {
	recorded []models.AuditEntry
	listFn   func(ctx context.Context, limit int) ([]models.AuditEntry, error)
}

func (m *mockAuditService) Record(_ context.Context, entry models.AuditEntry) {
	m.recorded = append(m.recorded, entry)
}

func (m *mockAuditService) List(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	return m.listFn(ctx, limit)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks. Any nil
// mock is replaced with an empty one so routing still works.
func newTestHandler(t *testing.T, auth service.AuthService, files service.FileService, audit service.AuditService) *Handler {
	t.Helper()
	if auth == nil {
		auth = &mockAuthService{}
	}
	if files == nil {
		files = &mockFileService{}
	}
	if audit == nil {
		audit = &mockAuditService{}
	}
	svcs := &service.Services{
		AuthService:  auth,
		FileService:  files,
		AuditService: audit,
	}
	return NewHandler(svcs, logger.Nop())
}

// principalOf builds an auth service mock that accepts any bearer token and
// resolves it to the given principal. Used to drive role-gated routes.
func principalOf(p models.Principal) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Username: p.Username, UserID: p.UserID}, nil
		},
		resolvePrincipalFn: func(_ context.Context, _ models.Token) (models.Principal, error) {
			return p, nil
		},
	}
}
