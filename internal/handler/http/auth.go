package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/internal/service"
	"github.com/sgalab/sga-server/internal/store"
	"github.com/sgalab/sga-server/internal/utils"
	"github.com/sgalab/sga-server/models"
)

// loginRequest is the JSON body accepted by the login endpoint.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound),
			errors.Is(err, service.ErrWrongPassword),
			errors.Is(err, service.ErrUserInactive):
			log.Err(err).Str("username", req.Username).Msg("login rejected")
			h.services.AuditService.Record(ctx, models.AuditEntry{
				Action:      "LOGIN_FAILED",
				EntityType:  models.AuditEntityAuthentication,
				Description: "failed login attempt for " + req.Username,
				IPAddress:   r.RemoteAddr,
			})
			http.Error(w, "invalid username/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, models.LoginResponse{AccessToken: token.SignedString, TokenType: "bearer"}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing login response failed")
	}
}

// me returns the caller's resolved principal: who the token belongs to and
// which role the account currently carries.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if _, err := utils.WriteJSON(w, principal, http.StatusOK); err != nil {
		log.Err(err).Msg("writing principal response failed")
	}
}
