// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package config

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "config_test_secret_with_at_least_32_characters"

// setRequiredEnv sets the minimal environment for a valid configuration.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "admin123#@0369")
	t.Setenv("DB_USER", "pointsboard")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("addr = %q, want %q", cfg.Server.Addr(), "0.0.0.0:8080")
	}
	if cfg.Database.MaxOpenConns != 100 {
		t.Errorf("max open conns = %d, want 100", cfg.Database.MaxOpenConns)
	}
	if cfg.Security.TokenTTL != time.Hour {
		t.Errorf("token ttl = %v, want 1h", cfg.Security.TokenTTL)
	}
	if cfg.Security.LoginRateLimitReqs != 5 {
		t.Errorf("login rate limit = %d, want 5", cfg.Security.LoginRateLimitReqs)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("db host = %q, want %q", cfg.Database.Host, "db.internal")
	}
	if cfg.Security.TokenTTL != 2*time.Hour {
		t.Errorf("token ttl = %v, want 2h", cfg.Security.TokenTTL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want %q", cfg.Logging.Level, "debug")
	}

	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.Server.CORSOrigins) != len(want) {
		t.Fatalf("cors origins = %v, want %v", cfg.Server.CORSOrigins, want)
	}
	for i, origin := range want {
		if cfg.Server.CORSOrigins[i] != origin {
			t.Errorf("cors origin[%d] = %q, want %q", i, cfg.Server.CORSOrigins[i], origin)
		}
	}

	dsn := cfg.Database.DSN()
	if !strings.Contains(dsn, "pointsboard:s3cret@tcp(db.internal:3306)/pointsboard") {
		t.Errorf("DSN = %q, want credentials and host embedded", dsn)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error with missing JWT_SECRET, got nil")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "too_short")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error with short JWT_SECRET, got nil")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("error = %v, want mention of JWT_SECRET", err)
	}
}

func TestLoad_MissingAdminCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error with missing ADMIN_PASSWORD, got nil")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := defaultConfig()
		cfg.Database.User = "pointsboard"
		cfg.Security.JWTSecret = testSecret
		cfg.Security.AdminUsername = "admin"
		cfg.Security.AdminPassword = "admin123#@0369"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}, wantErr: false},
		{name: "port too low", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "port too high", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Server.Timeout = 0 }, wantErr: true},
		{name: "missing db user", mutate: func(c *Config) { c.Database.User = "" }, wantErr: true},
		{name: "missing db host", mutate: func(c *Config) { c.Database.Host = "" }, wantErr: true},
		{name: "idle exceeds open", mutate: func(c *Config) { c.Database.MaxIdleConns = 200 }, wantErr: true},
		{name: "short password", mutate: func(c *Config) { c.Security.AdminPassword = "short" }, wantErr: true},
		{name: "zero token ttl", mutate: func(c *Config) { c.Security.TokenTTL = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}
