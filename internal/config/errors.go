package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrNoFileEncryptionKey indicates that the master secret for per-file
	// key derivation is unset. The server never falls back to a built-in
	// value for it.
	ErrNoFileEncryptionKey = errors.New("no file encryption key configured")

	// ErrNoTokenSignKey indicates that the JWT signing secret is unset.
	ErrNoTokenSignKey = errors.New("no token signing key configured")

	// ErrNoPasswordHashKey indicates that the password HMAC key is unset.
	ErrNoPasswordHashKey = errors.New("no password hash key configured")

	// ErrNoAdminPassword indicates that the seed administrator password is
	// unset. The account is never created with a well-known default.
	ErrNoAdminPassword = errors.New("no admin password configured")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN, empty base directory, or a non-positive
	// file size cap).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
