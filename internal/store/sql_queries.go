// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/secrets-api/models"
)

var (
	userColumns    = []string{"id", "email", "password_hash", "created_at"}
	sessionColumns = []string{"token_hash", "user_id", "created_at", "expires_at"}
	secretColumns  = []string{"id", "title", "description", "created_at"}
)

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, user.CreatedAt.UTC()).
		ToSql()
}

func (db *DB) selectUserQuery(where squirrel.Eq) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
}

func (db *DB) listUsersQuery() (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("created_at", "id").
		ToSql()
}

func (db *DB) insertSessionQuery(session models.Session) (string, []any, error) {
	return db.builder.
		Insert(session.TableName()).
		Columns(sessionColumns...).
		Values(session.TokenHash, session.UserID, session.CreatedAt.UTC(), nullTime(session.ExpiresAt)).
		ToSql()
}

func (db *DB) selectSessionQuery(tokenHash string) (string, []any, error) {
	return db.builder.
		Select(sessionColumns...).
		From(models.Session{}.TableName()).
		Where(squirrel.Eq{"token_hash": tokenHash}).
		ToSql()
}

func (db *DB) deleteSessionQuery(tokenHash string) (string, []any, error) {
	return db.builder.
		Delete(models.Session{}.TableName()).
		Where(squirrel.Eq{"token_hash": tokenHash}).
		ToSql()
}

func (db *DB) deleteExpiredSessionsQuery(now time.Time) (string, []any, error) {
	return db.builder.
		Delete(models.Session{}.TableName()).
		Where(squirrel.And{
			squirrel.NotEq{"expires_at": nil},
			squirrel.LtOrEq{"expires_at": now.UTC()},
		}).
		ToSql()
}

func (db *DB) listSecretsQuery() (string, []any, error) {
	return db.builder.
		Select(secretColumns...).
		From(models.Secret{}.TableName()).
		OrderBy("created_at", "id").
		ToSql()
}

// nullTime stores the zero time as NULL.
func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
