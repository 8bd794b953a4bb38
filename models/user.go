// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account in the ledger. The caller-supplied identifier is never
// stored; PseudonymousID is the one-way token derived from it.
type User struct {
	// ID is the storage sequence number. Internal only.
	ID int64 `json:"-"`

	// PseudonymousID is the anonymised identifier used as the join key for
	// consent and assessment rows.
	PseudonymousID string `json:"pseudonymous_id"`

	// DisplayName is the optional name shown in the UI.
	DisplayName string `json:"name,omitempty"`

	// Email is the optional contact address.
	Email string `json:"email,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password. Empty for
	// accounts created through passwordless login.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// HasPassword reports whether the account was registered with a password.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
