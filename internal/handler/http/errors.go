// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used when reading the session token from a request.
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not follow the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header carries the
	// Bearer scheme but no token value.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrNoUserInContext is returned by handlers that expect an authenticated
	// request but find no user in its context.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)
