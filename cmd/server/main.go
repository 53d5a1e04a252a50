// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

// Package main is the entry point for the Pointsboard server.
//
// Pointsboard is the REST backend for a team points-tracking dashboard. It
// serves public read endpoints (team standings, team and player detail,
// the activity catalog) and a single JWT-protected write endpoint that
// sets the point allocation for a (player, activity) pair.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (a local .env file is honored)
//   - Config file (config.yaml, path overridable via CONFIG_PATH)
//   - Built-in defaults
//
// Required settings, without which the server refuses to start:
//   - JWT_SECRET: 32+ character secret for token signing
//   - ADMIN_USERNAME / ADMIN_PASSWORD: the single admin identity
//   - DB_USER (and usually DB_PASSWORD): MySQL credentials; host, port
//     and database name default to a local pointsboard database
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting new connections, drains in-flight requests (10s timeout) and
// closes the database pool.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomtom215/pointsboard/internal/api"
	"github.com/tomtom215/pointsboard/internal/auth"
	"github.com/tomtom215/pointsboard/internal/config"
	"github.com/tomtom215/pointsboard/internal/database"
	"github.com/tomtom215/pointsboard/internal/logging"
	"github.com/tomtom215/pointsboard/internal/store"
)

// shutdownTimeout bounds how long in-flight requests may drain.
const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; deployments usually set real env vars.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		// Logger may not be configured yet; write plainly and exit.
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Timestamp: true,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run(cfg *config.Config) error {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migration: %w", err)
	}

	credentials, err := auth.NewCredentialStore(cfg.Security.AdminUsername, cfg.Security.AdminPassword)
	if err != nil {
		return fmt.Errorf("credential store: %w", err)
	}

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		return fmt.Errorf("jwt manager: %w", err)
	}

	handler := api.NewHandler(
		store.NewTeamRepository(db),
		store.NewActivityRepository(db),
		store.NewPointsRepository(db),
		credentials,
		jwtManager,
		func(ctx context.Context) error { return database.Ping(ctx, db) },
	)

	router := api.NewRouter(handler, auth.NewMiddleware(jwtManager), api.NewMiddleware(&api.MiddlewareConfig{
		CORSAllowedOrigins:   cfg.Server.CORSOrigins,
		RateLimitReqs:        cfg.Security.RateLimitReqs,
		RateLimitWindow:      cfg.Security.RateLimitWindow,
		RateLimitDisabled:    cfg.Security.RateLimitDisabled,
		LoginRateLimitReqs:   cfg.Security.LoginRateLimitReqs,
		LoginRateLimitWindow: cfg.Security.LoginRateLimitWindow,
	}))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logging.Info().Msg("Server stopped")
	return nil
}
