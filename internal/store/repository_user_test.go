package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:     "john",
		Name:         "John",
		PasswordHash: "hash",
		RoleID:       3,
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "username", "name", "password_hash", "role_id", "is_active", "created_at"}).
		AddRow(1, user.Username, user.Name, user.PasswordHash, user.RoleID, true, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Name, user.PasswordHash, user.RoleID).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if !created.IsActive {
		t.Error("expected created user to be active")
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "john"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Errorf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "username", "name", "password_hash", "role_id", "role_name", "is_active", "created_at"}).
		AddRow(7, "john", "John", "hash", 1, models.RoleAdmin, true, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("john").
		WillReturnRows(rows)

	found, err := repo.FindUserByUsername(ctx, "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", found.UserID)
	}
	if found.RoleName != models.RoleAdmin {
		t.Errorf("expected role %s, got %s", models.RoleAdmin, found.RoleName)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "name", "password_hash", "role_id", "role_name", "is_active", "created_at"}))

	_, err := repo.FindUserByUsername(ctx, "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Errorf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestGetRoleName(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"name"}).AddRow(models.RoleModerate)
	mock.ExpectQuery("SELECT name").
		WithArgs(int64(2)).
		WillReturnRows(rows)

	roleName, err := repo.GetRoleName(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roleName != models.RoleModerate {
		t.Errorf("expected %s, got %s", models.RoleModerate, roleName)
	}
}

func TestGetRoleName_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT name").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	_, err := repo.GetRoleName(ctx, 99)
	if !errors.Is(err, ErrRoleNotFound) {
		t.Errorf("expected ErrRoleNotFound, got %v", err)
	}
}
