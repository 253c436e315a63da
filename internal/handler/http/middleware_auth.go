// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/secrets-api/internal/logger"
	"github.com/MKhiriev/secrets-api/internal/service"
	"github.com/MKhiriev/secrets-api/internal/utils"
)

const (
	sessionCookieName = "session"
	bearerScheme      = "Bearer"
)

// authenticate resolves the session token carried by the request, if any,
// and attaches the safe view of its user to the request context.
//
// It never rejects a request for lack of credentials. Missing, unknown,
// destroyed or expired tokens, and tokens whose user no longer exists, leave
// the request unauthenticated; the route guards decide what that means.
// Only storage failures end the request, with 500.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		token, err := sessionTokenFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Msg("ignoring malformed credentials")
		}
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok, err := h.services.SessionService.ResolveSession(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.UserService.FindByID(ctx, userID)
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			log.Debug().Str("user_id", userID).Msg("session belongs to a missing user")
			next.ServeHTTP(w, r)
			return
		case err != nil:
			writeError(w, r, err)
			return
		}

		ctx = utils.WithUser(ctx, user)
		ctx = utils.WithSessionToken(ctx, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireUser rejects unauthenticated requests with 401.
func requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.UserFromContext(r.Context()); !ok {
			writeError(w, r, ErrNoUserInContext)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin rejects unauthenticated requests with 401 and non-admin users
// with 403.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.UserFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrNoUserInContext)
			return
		}
		if !user.IsAdmin() {
			writeError(w, r, service.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sessionTokenFromRequest reads the session cookie, falling back to the
// "Authorization: Bearer <token>" header. An empty token and a nil error
// mean the request carries no credentials.
func sessionTokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", nil
	}

	return getTokenFromAuthHeader(authHeader)
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization" value
// of the form
//
//	Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
//
// The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) == 0 || len(parts) > 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}
	if len(parts) == 1 {
		return "", ErrEmptyToken
	}

	return parts[1], nil
}
