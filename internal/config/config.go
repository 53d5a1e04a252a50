// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

// Package config provides layered configuration for Pointsboard using Koanf v2.
//
// Configuration is loaded from three sources (highest priority wins):
//
//  1. Environment variables (JWT_SECRET, DB_HOST, PORT, ...)
//  2. Config file (config.yaml, path overridable via CONFIG_PATH)
//  3. Built-in defaults
//
// Security-sensitive settings have no fallback values: startup fails when
// JWT_SECRET or the admin credentials are missing. There is deliberately no
// insecure default secret.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	CORSOrigins []string      `koanf:"cors_origins"`
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds MySQL connection and pool settings.
type DatabaseConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`

	// Connection pool tuning. A managed pool replaces the single
	// long-lived connection handle of earlier designs.
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// DSN builds the MySQL data source name for the configured database.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// SecurityConfig holds authentication and rate limiting settings.
type SecurityConfig struct {
	// JWTSecret signs issued tokens. Required, minimum 32 characters.
	JWTSecret string `koanf:"jwt_secret"`

	// TokenTTL is the lifetime of issued tokens.
	TokenTTL time.Duration `koanf:"token_ttl"`

	// AdminUsername and AdminPassword define the single admin identity.
	// The password is bcrypt-hashed at startup and never compared in
	// plaintext.
	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// Login gets a stricter limiter for brute force prevention.
	LoginRateLimitReqs   int           `koanf:"login_rate_limit_reqs"`
	LoginRateLimitWindow time.Duration `koanf:"login_rate_limit_window"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and environment variables.
// Credentials and the JWT secret have no defaults.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			Timeout:     30 * time.Second,
			CORSOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Host:            "127.0.0.1",
			Port:            3306,
			User:            "",
			Password:        "",
			Name:            "pointsboard",
			MaxOpenConns:    100,
			MaxIdleConns:    10,
			ConnMaxLifetime: time.Hour,
		},
		Security: SecurityConfig{
			JWTSecret:            "",
			TokenTTL:             time.Hour,
			AdminUsername:        "",
			AdminPassword:        "",
			RateLimitReqs:        100,
			RateLimitWindow:      time.Minute,
			RateLimitDisabled:    false,
			LoginRateLimitReqs:   5,
			LoginRateLimitWindow: 5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
