// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/pointsboard/config.yaml",
	"/etc/pointsboard/config.yml",
}

// ConfigPathEnvVar is the environment variable that overrides the config
// file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// envKeys maps recognized environment variables to koanf paths. The names
// match the variables the frontend deployment already sets (DB_*, PORT,
// JWT_SECRET), so an existing .env keeps working.
var envKeys = map[string]string{
	"HOST":         "server.host",
	"PORT":         "server.port",
	"CORS_ORIGINS": "server.cors_origins",

	"DB_HOST":              "database.host",
	"DB_PORT":              "database.port",
	"DB_USER":              "database.user",
	"DB_PASSWORD":          "database.password",
	"DB_NAME":              "database.name",
	"DB_MAX_OPEN_CONNS":    "database.max_open_conns",
	"DB_MAX_IDLE_CONNS":    "database.max_idle_conns",
	"DB_CONN_MAX_LIFETIME": "database.conn_max_lifetime",

	"JWT_SECRET":          "security.jwt_secret",
	"TOKEN_TTL":           "security.token_ttl",
	"ADMIN_USERNAME":      "security.admin_username",
	"ADMIN_PASSWORD":      "security.admin_password",
	"RATE_LIMIT_REQS":     "security.rate_limit_reqs",
	"RATE_LIMIT_WINDOW":   "security.rate_limit_window",
	"RATE_LIMIT_DISABLED": "security.rate_limit_disabled",

	"LOG_LEVEL":  "logging.level",
	"LOG_FORMAT": "logging.format",
}

// Load builds the configuration from defaults, an optional config file and
// environment variables, then validates it. Validation failure is fatal by
// design: a server with no signing secret must not start.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider("", ".", func(key string) string {
		return envKeys[key]
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	processSliceFields(k)

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// sliceFields lists koanf paths that hold string slices but arrive from the
// environment as comma-separated strings.
var sliceFields = []string{
	"server.cors_origins",
}

// processSliceFields converts comma-separated env values into string slices
// so they unmarshal cleanly into []string config fields.
func processSliceFields(k *koanf.Koanf) {
	for _, path := range sliceFields {
		raw, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		var items []string
		for _, item := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				items = append(items, trimmed)
			}
		}
		_ = k.Set(path, items)
	}
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
