// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names come from
// the group prefixes on [StructuredConfig], so the session sign key is read
// from APP_TOKEN_SIGN_KEY and the database DSN from STORAGE_DB_DATABASE_URI.
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvWith(cfg, env.Options{})
}

// parseEnvFrom fills cfg from environ instead of the process environment.
func parseEnvFrom(cfg *StructuredConfig, environ map[string]string) error {
	return parseEnvWith(cfg, env.Options{Environment: environ})
}

func parseEnvWith(cfg *StructuredConfig, opts env.Options) error {
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
