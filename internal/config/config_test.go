// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey: "sign",
			TokenIssuer:  "secrets-api",
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres, DSN: "postgres://localhost/db"},
		},
		Server: Server{HTTPAddress: "localhost:8080"},
	}
}

// ── env ───────────────────────────────────────────────────────────────────────

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG":                         "/etc/secrets-api.json",
		"APP_TOKEN_SIGN_KEY":             "jwt_secret",
		"APP_TOKEN_ISSUER":               "issuer",
		"APP_SESSION_DURATION":           "2h",
		"APP_LOG_LEVEL":                  "info",
		"APP_VERSION":                    "1.0.0",
		"STORAGE_DB_DRIVER":              "sqlite3",
		"STORAGE_DB_DATABASE_URI":        "file:test.db",
		"STORAGE_REDIS_ADDRESS":          "localhost:6379",
		"STORAGE_REDIS_PASSWORD":         "pw",
		"STORAGE_REDIS_DB":               "3",
		"SERVER_ADDRESS":                 "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":         "30s",
		"SERVER_COOKIE_SECURE":           "true",
		"WORKERS_SESSION_PURGE_INTERVAL": "5m",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/etc/secrets-api.json", cfg.JSONFilePath)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, "pw", cfg.Storage.Redis.Password)
	assert.Equal(t, 3, cfg.Storage.Redis.DB)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.CookieSecure)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SessionPurgeInterval)
}

func TestParseEnv_Defaults(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "secrets-api", cfg.App.TokenIssuer)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_SESSION_DURATION", "forever")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnvFrom_GroupPrefixes(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnvFrom(cfg, map[string]string{
		"APP_TOKEN_SIGN_KEY":             "from-map",
		"STORAGE_DB_DATABASE_URI":        "file:secrets.db",
		"STORAGE_REDIS_ADDRESS":          "localhost:6379",
		"SERVER_COOKIE_SECURE":           "true",
		"WORKERS_SESSION_PURGE_INTERVAL": "5m",
		"TOKEN_SIGN_KEY":                 "unprefixed-is-ignored",
	}))

	assert.Equal(t, "from-map", cfg.App.TokenSignKey)
	assert.Equal(t, "secrets-api", cfg.App.TokenIssuer)
	assert.Equal(t, "file:secrets.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.True(t, cfg.Server.CookieSecure)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SessionPurgeInterval)
}

// ── flags ─────────────────────────────────────────────────────────────────────

func TestParseFlags_AllFields(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-d", "postgres://db",
		"-db-driver", "pgx",
		"-redis-address", "localhost:6379",
		"-config", "/tmp/cfg.json",
		"-token-sign-key", "key",
		"-token-issuer", "iss",
		"-session-duration", "1h",
		"-request-timeout", "10s",
		"-cookie-secure",
		"-session-purge-interval", "1m",
		"-log-level", "warn",
		"-app-version", "2.0.0",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://db", cfg.Storage.DB.DSN)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.CookieSecure)
	assert.Equal(t, time.Minute, cfg.Workers.SessionPurgeInterval)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "2.0.0", cfg.App.Version)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_BadAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	require.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip", input: "127.0.0.1:9090", want: "127.0.0.1:9090"},
		{name: "any host", input: ":8080", want: ":8080"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "port not a number", input: "localhost:http", wantErr: true},
		{name: "port zero", input: "localhost:0", wantErr: true},
		{name: "port too big", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}

// ── json ──────────────────────────────────────────────────────────────────────

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempFile(t, `{
		"app": {"token_sign_key": "k", "token_issuer": "i", "session_duration": "90m", "log_level": "error", "version": "3"},
		"storage": {
			"db": {"driver": "sqlite3", "dsn": "file::memory:"},
			"redis": {"address": "r:6379", "password": "p", "db": 2}
		},
		"server": {"http_address": "localhost:80", "request_timeout": "5s", "cookie_secure": true},
		"workers": {"session_purge_interval": 60000000000}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, "i", cfg.App.TokenIssuer)
	assert.Equal(t, 90*time.Minute, cfg.App.SessionDuration)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "3", cfg.App.Version)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file::memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, "r:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, "p", cfg.Storage.Redis.Password)
	assert.Equal(t, 2, cfg.Storage.Redis.DB)
	assert.Equal(t, "localhost:80", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.CookieSecure)
	assert.Equal(t, time.Minute, cfg.Workers.SessionPurgeInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := parseJSON(writeTempFile(t, `{"app": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_RoundTrip(t *testing.T) {
	d := Duration(45 * time.Second)
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"45s"`, string(b))

	var parsed Duration
	require.NoError(t, parsed.UnmarshalJSON(b))
	assert.Equal(t, d, parsed)

	require.Error(t, parsed.UnmarshalJSON([]byte(`true`)))
	require.Error(t, parsed.UnmarshalJSON([]byte(`"soon"`)))
}

// ── builder ───────────────────────────────────────────────────────────────────

func TestBuild_LaterSourcesOverride(t *testing.T) {
	path := writeTempFile(t, `{"server": {"http_address": "localhost:9999"}}`)

	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env-key",
		"STORAGE_DB_DATABASE_URI": "postgres://env",
		"SERVER_ADDRESS":          "localhost:8080",
	})

	b := newConfigBuilder()
	b.args = []string{"-d", "postgres://flags", "-c", path}

	cfg, err := b.withEnv().withFlags().withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "secrets-api", cfg.App.TokenIssuer)
	assert.Equal(t, "postgres://flags", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
}

func TestBuild_PropagatesSourceErrors(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-c", filepath.Join(t.TempDir(), "absent.json")}

	cfg, err := b.withFlags().withJSON().build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error occurred during building config")
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-a", "localhost:8080"}

	cfg, err := b.withFlags().build()
	require.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.Nil(t, cfg)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "sqlite driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = DriverSQLite }},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no issuer", mutate: func(c *StructuredConfig) { c.App.TokenIssuer = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative session duration", mutate: func(c *StructuredConfig) { c.App.SessionDuration = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "negative timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = -1 }, wantErr: ErrInvalidServerConfigs},
		{name: "negative purge interval", mutate: func(c *StructuredConfig) { c.Workers.SessionPurgeInterval = -1 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
