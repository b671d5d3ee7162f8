package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			FileEncryptionKey: "master-secret",
			PasswordHashKey:   "hash-key",
			TokenSignKey:      "sign-key",
			TokenIssuer:       "sga-server",
			TokenDuration:     time.Hour,
		},
		Storage: Storage{
			DB:    DB{DSN: "postgres://localhost:5432/sga"},
			Files: Files{BaseDir: "/var/lib/sga/storage", MaxFileSizeBytes: 50 * 1024 * 1024},
		},
		Server: Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
		Admin:  Admin{Username: "admin", Password: "s3cret"},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate_MissingSecretsFailFast(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:    "no file encryption key",
			mutate:  func(c *StructuredConfig) { c.App.FileEncryptionKey = "" },
			wantErr: ErrNoFileEncryptionKey,
		},
		{
			name:    "no token sign key",
			mutate:  func(c *StructuredConfig) { c.App.TokenSignKey = "" },
			wantErr: ErrNoTokenSignKey,
		},
		{
			name:    "no password hash key",
			mutate:  func(c *StructuredConfig) { c.App.PasswordHashKey = "" },
			wantErr: ErrNoPasswordHashKey,
		},
		{
			name:    "no admin password",
			mutate:  func(c *StructuredConfig) { c.Admin.Password = "" },
			wantErr: ErrNoAdminPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestValidate_StorageAndServer(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = validConfig()
	cfg.Storage.Files.MaxFileSizeBytes = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = validConfig()
	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}
