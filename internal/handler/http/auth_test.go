package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgalab/sga-server/internal/service"
	"github.com/sgalab/sga-server/models"
)

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, password string) (models.User, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "secret", password)
			return models.User{UserID: 1, Username: "alice", RoleName: models.RoleAdmin, IsActive: true}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-token"}, nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"alice","password":"secret"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "signed-token", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_WrongPassword_RecordsAudit(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}
	audit := &mockAuditService{}
	h := newTestHandler(t, auth, nil, audit)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"alice","password":"wrong"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Len(t, audit.recorded, 1)
	assert.Equal(t, "LOGIN_FAILED", audit.recorded[0].Action)
	assert.Equal(t, models.AuditEntityAuthentication, audit.recorded[0].EntityType)
}

func TestMe_ReturnsPrincipal(t *testing.T) {
	principal := models.Principal{UserID: 7, Username: "alice", RoleName: models.RoleView}
	h := newTestHandler(t, principalOf(principal), nil, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer any-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Principal
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, principal, got)
}

func TestMe_NoToken(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
