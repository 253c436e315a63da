// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/secrets-api/internal/logger"
	"github.com/MKhiriev/secrets-api/internal/service"
	"github.com/MKhiriev/secrets-api/internal/store"
)

// errorStatuses lists errors whose text is safe to show to clients. An error
// wrapping several targets gets the status of the first one listed, so
// service errors come before the store errors they wrap.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrEmailAlreadyExists, http.StatusConflict},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrUserNotFound, http.StatusUnauthorized},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusUnauthorized},
	{store.ErrSessionNotFound, http.StatusUnauthorized},

	{ErrNoUserInContext, http.StatusUnauthorized},
}

// statusFromError returns the HTTP status and the client-facing message for
// err. Unknown errors become a bare 500.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			if e.status == http.StatusUnauthorized {
				return e.status, http.StatusText(e.status)
			}
			return e.status, e.target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and answers with the mapped status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	http.Error(w, message, status)
}
