// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/secrets-api/internal/utils"
	"github.com/MKhiriev/secrets-api/models"
)

// signIn checks the credentials and starts a session. The token is returned
// both as the session cookie and in the Authorization header.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	credentials, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.Authenticate(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.SessionService.CreateSession(ctx, user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token))
	w.Header().Set("Authorization", bearerScheme+" "+token.String())
	utils.WriteJSON(w, user, http.StatusOK)
}

// signOut destroys the session the request was authenticated with.
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.SessionTokenFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	if err := h.services.SessionService.DestroySession(r.Context(), token); err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, h.expiredSessionCookie())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sessionCookie(token models.Token) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}
	return cookie
}

func (h *Handler) expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
