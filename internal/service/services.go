package service

import (
	"github.com/sgalab/sga-server/internal/config"
	"github.com/sgalab/sga-server/internal/crypto"
	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/internal/storage"
	"github.com/sgalab/sga-server/internal/store"
	"github.com/sgalab/sga-server/internal/validators"
)

// Services bundles every service behind one value passed down from main.
type Services struct {
	AuthService  AuthService
	FileService  FileService
	AuditService AuditService
}

// NewServices wires all services to the repositories, the cipher, the disk
// layout, and the validator.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, layout *storage.Layout, logger *logger.Logger) *Services {
	cipher := crypto.NewFileCipherService(cfg.App.FileEncryptionKey)
	validator := validators.NewFileValidator(cfg.Storage.Files.MaxFileSizeBytes)
	auditService := NewAuditService(storages.AuditRepository, logger)

	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.App, logger),
		FileService:  NewFileService(storages.FileRepository, storages.ReferenceRepository, cipher, layout, validator, auditService, logger),
		AuditService: auditService,
	}
}
