// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/MKhiriev/secrets-api/internal/config"
	"github.com/MKhiriev/secrets-api/internal/logger"
	"github.com/MKhiriev/secrets-api/internal/service"
	"github.com/MKhiriev/secrets-api/models"
)

// stubUserService implements service.UserService. Unset fields panic, which
// fails the test that unexpectedly reached them.
type stubUserService struct {
	createFn       func(ctx context.Context, c models.Credentials) (models.User, error)
	findByEmailFn  func(ctx context.Context, email string) (models.User, error)
	findByIDFn     func(ctx context.Context, id string) (models.User, error)
	authenticateFn func(ctx context.Context, c models.Credentials) (models.User, error)
	listFn         func(ctx context.Context) ([]models.User, error)
}

func (s *stubUserService) Create(ctx context.Context, c models.Credentials) (models.User, error) {
	return s.createFn(ctx, c)
}

func (s *stubUserService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserService) FindByID(ctx context.Context, id string) (models.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserService) Authenticate(ctx context.Context, c models.Credentials) (models.User, error) {
	return s.authenticateFn(ctx, c)
}

func (s *stubUserService) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}

type stubSessionService struct {
	createFn  func(ctx context.Context, userID string) (models.Token, error)
	resolveFn func(ctx context.Context, token string) (string, bool, error)
	destroyFn func(ctx context.Context, token string) error
}

func (s *stubSessionService) CreateSession(ctx context.Context, userID string) (models.Token, error) {
	return s.createFn(ctx, userID)
}

func (s *stubSessionService) ResolveSession(ctx context.Context, token string) (string, bool, error) {
	return s.resolveFn(ctx, token)
}

func (s *stubSessionService) DestroySession(ctx context.Context, token string) error {
	return s.destroyFn(ctx, token)
}

type stubSecretService struct {
	listFn func(ctx context.Context) ([]models.Secret, error)
}

func (s *stubSecretService) List(ctx context.Context) ([]models.Secret, error) {
	return s.listFn(ctx)
}

type stubAppInfoService struct {
	version string
}

func (s *stubAppInfoService) GetAppVersion(context.Context) string {
	return s.version
}

// sessionFixture resolves exactly one token to one user.
type sessionFixture struct {
	token string
	user  models.User
}

var (
	regularSession = sessionFixture{token: "regular-token", user: models.User{ID: "u-1", Email: "dndfreak@gmail.com"}}
	adminSession   = sessionFixture{token: "admin-token", user: models.User{ID: "u-admin", Email: models.AdminEmail}}
)

// newStubServices returns services whose session and user lookups know the
// regular and admin fixtures.
func newStubServices() (*service.Services, *stubUserService, *stubSessionService) {
	fixtures := []sessionFixture{regularSession, adminSession}

	users := &stubUserService{
		findByIDFn: func(_ context.Context, id string) (models.User, error) {
			for _, f := range fixtures {
				if f.user.ID == id {
					return f.user, nil
				}
			}
			return models.User{}, service.ErrUserNotFound
		},
	}
	sessions := &stubSessionService{
		resolveFn: func(_ context.Context, token string) (string, bool, error) {
			for _, f := range fixtures {
				if f.token == token {
					return f.user.ID, true, nil
				}
			}
			return "", false, nil
		},
	}

	return &service.Services{
		UserService:    users,
		SessionService: sessions,
		SecretService:  &stubSecretService{},
		AppInfoService: &stubAppInfoService{version: "test"},
	}, users, sessions
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, config.Server{HTTPAddress: ":0"}, logger.Nop())
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func withBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

