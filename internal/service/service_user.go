// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/secrets-api/internal/crypto"
	"github.com/MKhiriev/secrets-api/internal/logger"
	"github.com/MKhiriev/secrets-api/internal/store"
	"github.com/MKhiriev/secrets-api/internal/utils"
	"github.com/MKhiriev/secrets-api/models"
)

// dummyDigest is a well-formed argon2id digest that matches no password.
// Verifying against it on an unknown email costs the same as a real check.
const dummyDigest = "$argon2id$v=19$m=65536,t=1,p=4$c29tZXNhbHRzb21lc2FsdA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// userService is the concrete implementation of [UserService].
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks password digests.
	hasher crypto.PasswordHasher

	// idGenerator assigns identifiers to new users.
	idGenerator utils.IDGenerator

	now func() time.Time

	logger *logger.Logger
}

// NewUserService constructs a [UserService]. The returned service is safe for
// concurrent use; all state is read-only after construction.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, idGenerator utils.IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		idGenerator:    idGenerator,
		now:            time.Now,
		logger:         logger,
	}
}

// Create registers a new user.
//
// Returns the safe view of the stored user or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrEmailAlreadyExists if the email is taken.
//   - A wrapped error if hashing or the repository call fails.
func (s *userService) Create(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Debug().Str("email", credentials.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	digest, err := s.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		ID:           s.idGenerator.Generate(),
		Email:        credentials.Email,
		PasswordHash: digest,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Debug().Str("email", credentials.Email).Msg("email already registered")
			return models.User{}, fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
		}
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	return user.Safe(), nil
}

func (s *userService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, s.lookupError(err)
	}
	return user.Safe(), nil
}

func (s *userService) FindByID(ctx context.Context, id string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, s.lookupError(err)
	}
	return user.Safe(), nil
}

func (s *userService) lookupError(err error) error {
	if errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	return fmt.Errorf("user search failed: %w", err)
}

// Authenticate checks an email/password pair.
//
// An empty field, an unknown email and a wrong password all return
// ErrInvalidCredentials. Unknown emails still pay for one digest verification.
func (s *userService) Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Debug().Msg("sign-in with empty credentials")
		return models.User{}, ErrInvalidCredentials
	}

	user, err := s.userRepository.FindUserByEmail(ctx, credentials.Email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		s.hasher.Verify(credentials.Password, dummyDigest)
		log.Debug().Msg("sign-in with unknown email")
		return models.User{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !s.hasher.Verify(credentials.Password, user.PasswordHash) {
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user.Safe(), nil
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	for i := range users {
		users[i] = users[i].Safe()
	}
	return users, nil
}
