package store

import (
	"github.com/sgalab/sga-server/internal/logger"
)

// Storages bundles every repository behind one value passed down from main.
type Storages struct {
	UserRepository      UserRepository
	FileRepository      FileRepository
	ReferenceRepository ReferenceRepository
	AuditRepository     AuditRepository
}

// NewStorages wires all repositories to the shared database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		FileRepository:      NewFileRepository(db, log),
		ReferenceRepository: NewReferenceRepository(db, log),
		AuditRepository:     NewAuditRepository(db, log),
	}
}
