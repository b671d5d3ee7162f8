package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sgalab/sga-server/internal/config"
	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/internal/store"
	"github.com/sgalab/sga-server/internal/utils"
	"github.com/sgalab/sga-server/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification, the JWT token lifecycle, and role
// resolution using a UserRepository for persistence and HMAC-SHA256 for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to look up accounts and
	// resolve role names.
	userRepository store.UserRepository

	// hashKey is the HMAC secret used when hashing user passwords before
	// comparison. Must match the value used when the account was created.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashKey:        cfg.PasswordHashKey,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates an existing user.
//
// It validates that both username and password are non-empty, hashes the
// supplied password with the configured HMAC key, looks up the account, and
// compares the hashes.
//
// Returns the authenticated user record (with RoleName resolved) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. user not found —
//     see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the hashed passwords do not match.
//   - ErrUserInactive if the account is deactivated.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if foundUser.PasswordHash != utils.HashString(password, a.hashKey) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	if !foundUser.IsActive {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("login attempt on inactive account")
		return models.User{}, ErrUserInactive
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the signing algorithm, the expiry, and the issuer claim. Any validation
// failure is normalised to ErrTokenIsExpiredOrInvalid so that callers do not
// need to inspect low-level JWT errors. A token that verifies but carries no
// subject is reported separately as ErrTokenMalformed.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, utils.ErrEmptySubject) {
			return models.Token{}, ErrTokenMalformed
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolvePrincipal turns a verified token into the request principal by
// loading the current account state from the database.
//
// The role is read fresh on every request rather than trusted from the token
// payload: a role change or account deactivation takes effect immediately,
// not at token expiry.
//
// Returns ErrTokenMalformed when the token's subject no longer matches an
// account, and ErrUserInactive when the account has been deactivated.
func (a *authService) ResolvePrincipal(ctx context.Context, token models.Token) (models.Principal, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, token.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("username", token.Username).Msg("token subject has no matching account")
			return models.Principal{}, ErrTokenMalformed
		}
		log.Err(err).Str("username", token.Username).Msg("principal resolution failed")
		return models.Principal{}, fmt.Errorf("principal resolution failed: %w", err)
	}

	if !foundUser.IsActive {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("token presented for inactive account")
		return models.Principal{}, ErrUserInactive
	}

	return models.Principal{
		UserID:   foundUser.UserID,
		Username: foundUser.Username,
		RoleName: foundUser.RoleName,
	}, nil
}
