// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package config

import (
	"errors"
	"fmt"
)

// minJWTSecretLength is the minimum length of the token signing secret.
// 32 characters gives 256 bits of entropy when randomly generated, matching
// the HS256 key size.
const minJWTSecretLength = 32

// minPasswordLength is the minimum admin password length.
const minPasswordLength = 8

// Validate checks the configuration for missing or unsafe values.
// It returns an error describing the first problem found.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return errors.New("server timeout must be positive")
	}

	if c.Database.Host == "" {
		return errors.New("DB_HOST is required")
	}
	if c.Database.User == "" {
		return errors.New("DB_USER is required")
	}
	if c.Database.Name == "" {
		return errors.New("DB_NAME is required")
	}
	if c.Database.MaxOpenConns < 1 {
		return errors.New("database max_open_conns must be at least 1")
	}
	if c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return errors.New("database max_idle_conns must be between 0 and max_open_conns")
	}

	// No fallback secret. Refusing to start beats silently signing tokens
	// with a literal anyone can read in the source.
	if c.Security.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if len(c.Security.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters, got %d",
			minJWTSecretLength, len(c.Security.JWTSecret))
	}
	if c.Security.TokenTTL <= 0 {
		return errors.New("token TTL must be positive")
	}
	if c.Security.AdminUsername == "" {
		return errors.New("ADMIN_USERNAME is required")
	}
	if c.Security.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD is required")
	}
	if len(c.Security.AdminPassword) < minPasswordLength {
		return fmt.Errorf("ADMIN_PASSWORD must be at least %d characters", minPasswordLength)
	}

	return nil
}
