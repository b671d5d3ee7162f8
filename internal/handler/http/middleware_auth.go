// Package http implements the HTTP transport layer of the records server.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, role-based authorization, logging, and
// tracing concerns are all handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/internal/utils"
	"github.com/sgalab/sga-server/models"
)

// auth is the authentication half of the access gate.
//
// It extracts the bearer token from the "Authorization" header, validates
// it via the auth service, resolves the current account state into a
// [models.Principal], and stores the principal in the request context under
// [utils.PrincipalCtxKey] before delegating to the next handler.
//
// Every identity failure is a 401: missing or malformed header, expired or
// tampered token, token subject with no matching account, deactivated
// account. This middleware never produces a 403; that is the role check's
// answer, and it requires an established identity first.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		principal, err := h.services.AuthService.ResolvePrincipal(ctx, token)
		if err != nil {
			log.Err(err).Str("username", token.Username).Msg("principal resolution rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRoles is the authorization half of the access gate. It assumes
// auth has already run and placed a principal in the context; a request
// reaching it without one is a routing mistake and is rejected with 401.
//
// A principal whose role is not in the allowed set gets a 403, and the
// denial is written to the audit log with the attempted path.
func (h *Handler) requireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)
			ctx := r.Context()

			principal, ok := utils.GetPrincipalFromContext(ctx)
			if !ok {
				log.Error().Str("path", r.URL.Path).Msg("role check reached without principal")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			if !principal.HasAnyRole(roles...) {
				log.Error().
					Str("username", principal.Username).
					Str("role", principal.RoleName).
					Str("path", r.URL.Path).
					Msg("access denied")

				h.services.AuditService.Record(ctx, models.AuditEntry{
					Action:      "ACCESS_DENIED",
					EntityType:  models.AuditEntityAuthorization,
					Description: fmt.Sprintf("role %s denied on %s %s", principal.RoleName, r.Method, r.URL.Path),
					IPAddress:   r.RemoteAddr,
				})

				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
