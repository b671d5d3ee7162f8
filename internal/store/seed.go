package store

import (
	"context"
	"fmt"

	"github.com/sgalab/sga-server/internal/config"
	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/internal/utils"
	"github.com/sgalab/sga-server/models"
)

const (
	seedRole = `INSERT INTO roles (name)
    VALUES ($1)
    ON CONFLICT (name) DO NOTHING;`

	seedAdminUser = `INSERT INTO users (username, name, password_hash, role_id)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (username) DO NOTHING;`

	findRoleIDByName = `SELECT role_id
    FROM roles
    WHERE name = $1;`
)

// Seed makes sure the canonical roles and the bootstrap admin account exist.
// It is idempotent: every statement is a no-op when the row is already
// there, so it runs unconditionally on startup right after migrations.
func Seed(ctx context.Context, db *DB, cfg *config.StructuredConfig, log *logger.Logger) error {
	for _, roleName := range models.AllRoleNames() {
		if _, err := db.ExecContext(ctx, seedRole, roleName); err != nil {
			log.Err(err).Str("func", "Seed").Str("role", roleName).Msg("error seeding role")
			return fmt.Errorf("error seeding role %q: %w", roleName, err)
		}
	}

	var adminRoleID int64
	if err := db.QueryRowContext(ctx, findRoleIDByName, models.RoleAdmin).Scan(&adminRoleID); err != nil {
		log.Err(err).Str("func", "Seed").Msg("error resolving admin role id")
		return fmt.Errorf("error resolving admin role id: %w", err)
	}

	passwordHash := utils.HashString(cfg.Admin.Password, cfg.App.PasswordHashKey)
	if _, err := db.ExecContext(ctx, seedAdminUser, cfg.Admin.Username, "Administrator", passwordHash, adminRoleID); err != nil {
		log.Err(err).Str("func", "Seed").Msg("error seeding admin user")
		return fmt.Errorf("error seeding admin user: %w", err)
	}

	log.Info().Str("func", "Seed").Msg("roles and admin account seeded")
	return nil
}
