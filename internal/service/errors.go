// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrForbidden           = errors.New("forbidden")
	ErrUserNotFound        = errors.New("user not found")

	ErrTokenCreationFailed   = errors.New("session token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
