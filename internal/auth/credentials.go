// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// adminUserID is the subject id of the single admin identity.
const adminUserID int64 = 1

// CredentialStore verifies login credentials against the configured admin
// identity. The password is bcrypt-hashed once at startup so no plaintext
// copy is kept in memory and no plaintext comparison ever happens.
type CredentialStore struct {
	username     string
	passwordHash []byte
}

// NewCredentialStore creates a credential store for the admin identity,
// hashing the password at initialization (bcrypt cost 12).
func NewCredentialStore(username, password string) (*CredentialStore, error) {
	if username == "" {
		return nil, fmt.Errorf("admin username is required")
	}
	if password == "" {
		return nil, fmt.Errorf("admin password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &CredentialStore{
		username:     username,
		passwordHash: hash,
	}, nil
}

// Verify checks a username/password pair and returns the authenticated
// user id, or ErrInvalidCredentials. Username comparison is constant-time
// and the password check runs regardless of the username result, so timing
// reveals nothing about which half failed.
func (s *CredentialStore) Verify(username, password string) (int64, error) {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil

	if !usernameMatch || !passwordMatch {
		return 0, ErrInvalidCredentials
	}

	return adminUserID, nil
}

// Username returns the configured admin username.
func (s *CredentialStore) Username() string {
	return s.username
}
