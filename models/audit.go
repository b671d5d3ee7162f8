package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit entity types. Every audit entry is tagged with the subsystem that
// produced it.
const (
	AuditEntityAuthentication = "AUTHENTICATION"
	AuditEntityAuthorization  = "AUTHORIZATION"
	AuditEntityFile           = "FILE"
)

// AuditEntry is one row of the append-only audit log. Entries are written
// on authentication failures, authorization denials, and every file
// mutation; they are never updated or deleted by the application.
type AuditEntry struct {
	EntryID uuid.UUID `json:"id"`

	// UserID is the acting user, when one could be identified.
	// Authentication failures are recorded without a user.
	UserID *int64 `json:"user_id,omitempty"`

	// Action is a short human-readable description of what happened.
	Action string `json:"action"`

	// EntityType is one of the AuditEntity* constants.
	EntityType string `json:"entity_type"`

	// EntityID optionally references the affected entity (e.g. a file id).
	EntityID *uuid.UUID `json:"entity_id,omitempty"`

	Description string `json:"description,omitempty"`
	IPAddress   string `json:"ip_address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the AuditEntry model.
func (a AuditEntry) TableName() string {
	return "audit_logs"
}
