// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Secret is a read-only record served to authenticated users.
// Rows are seeded by migrations; the service never writes them.
type Secret struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Secret model.
func (s Secret) TableName() string {
	return "secrets"
}
