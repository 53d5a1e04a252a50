// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

// Package auth provides JWT token management, credential verification and
// the bearer-token middleware guarding write endpoints.
package auth

import "errors"

// Authentication failure sentinels. Handlers and middleware map these to
// HTTP statuses: the first two to 401, ErrInvalidToken to 403,
// ErrInvalidCredentials to 401.
var (
	// ErrMissingAuthHeader indicates the Authorization header was absent.
	ErrMissingAuthHeader = errors.New("authorization header missing")

	// ErrMissingToken indicates the Authorization header carried no token
	// segment.
	ErrMissingToken = errors.New("token missing")

	// ErrInvalidToken indicates the token failed signature or expiry
	// verification.
	ErrInvalidToken = errors.New("token invalid or expired")

	// ErrInvalidCredentials indicates a username/password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
