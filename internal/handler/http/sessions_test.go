// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/secrets-api/internal/service"
	"github.com/MKhiriev/secrets-api/models"
)

func signInRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/v1/users/sessions", strings.NewReader(body))
}

func TestSignIn(t *testing.T) {
	const credentials = `{"email":"dndfreak@gmail.com","password":"fourfour44"}`

	t.Run("sets cookie and header", func(t *testing.T) {
		services, users, sessions := newStubServices()
		users.authenticateFn = func(_ context.Context, c models.Credentials) (models.User, error) {
			assert.Equal(t, "fourfour44", c.Password)
			return regularSession.user, nil
		}
		expires := time.Now().Add(time.Hour).Truncate(time.Second)
		sessions.createFn = func(_ context.Context, userID string) (models.Token, error) {
			assert.Equal(t, regularSession.user.ID, userID)
			return models.Token{
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expires)},
				SignedString:     "signed.jwt.value",
			}, nil
		}

		rec := serve(newTestHandler(services), signInRequest(credentials))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":"u-1","email":"dndfreak@gmail.com"}`, rec.Body.String())
		assert.Equal(t, "Bearer signed.jwt.value", rec.Header().Get("Authorization"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sessionCookieName, cookies[0].Name)
		assert.Equal(t, "signed.jwt.value", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, expires.Equal(cookies[0].Expires))
	})

	t.Run("wrong password", func(t *testing.T) {
		services, users, _ := newStubServices()
		users.authenticateFn = func(context.Context, models.Credentials) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		}

		rec := serve(newTestHandler(services), signInRequest(credentials))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("session creation failure", func(t *testing.T) {
		services, users, sessions := newStubServices()
		users.authenticateFn = func(context.Context, models.Credentials) (models.User, error) {
			return regularSession.user, nil
		}
		sessions.createFn = func(context.Context, string) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		}

		rec := serve(newTestHandler(services), signInRequest(credentials))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("broken json", func(t *testing.T) {
		services, _, _ := newStubServices()
		rec := serve(newTestHandler(services), signInRequest("not json"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSignOut(t *testing.T) {
	t.Run("destroys the presented session", func(t *testing.T) {
		services, _, sessions := newStubServices()
		var destroyed string
		sessions.destroyFn = func(_ context.Context, token string) error {
			destroyed = token
			return nil
		}

		rec := serve(newTestHandler(services), withBearer(httptest.NewRequest(http.MethodDelete, "/api/v1/users/sessions", nil), regularSession.token))

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, regularSession.token, destroyed)
		assert.Empty(t, rec.Body.String())

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sessionCookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("anonymous", func(t *testing.T) {
		services, _, _ := newStubServices()
		rec := serve(newTestHandler(services), httptest.NewRequest(http.MethodDelete, "/api/v1/users/sessions", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		services, _, sessions := newStubServices()
		sessions.destroyFn = func(context.Context, string) error {
			return errors.New("disk full")
		}

		rec := serve(newTestHandler(services), withBearer(httptest.NewRequest(http.MethodDelete, "/api/v1/users/sessions", nil), regularSession.token))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
