package service

// DefaultAuditListLimit re-exports defaultAuditListLimit for external tests.
const DefaultAuditListLimit = defaultAuditListLimit
