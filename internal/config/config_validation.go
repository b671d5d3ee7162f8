package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Secrets are deliberately strict: the server refuses to start without a
// file-encryption master secret, a token signing key, a password hash key,
// and a seed administrator password. There are no fallback values for any
// of them.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.FileEncryptionKey == "" {
		return ErrNoFileEncryptionKey
	}

	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if cfg.App.PasswordHashKey == "" {
		return ErrNoPasswordHashKey
	}

	if cfg.Admin.Password == "" {
		return ErrNoAdminPassword
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Files.BaseDir == "" || cfg.Storage.Files.MaxFileSizeBytes <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
