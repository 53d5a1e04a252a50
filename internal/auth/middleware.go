// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pointsboard/internal/logging"
	"github.com/tomtom215/pointsboard/internal/models"
)

// contextKey is the private type for auth context keys.
type contextKey string

// claimsContextKey carries the verified identity through the request
// context.
const claimsContextKey contextKey = "claims"

// Middleware enforces bearer-token authentication on protected routes.
// Read endpoints never pass through it; they are public by design.
type Middleware struct {
	jwtManager *JWTManager
}

// NewMiddleware creates the authentication middleware.
func NewMiddleware(jwtManager *JWTManager) *Middleware {
	return &Middleware{jwtManager: jwtManager}
}

// RequireAuth rejects requests without a valid bearer token and attaches
// the decoded identity to the request context for downstream handlers.
//
// Rejection statuses follow the API contract: 401 for a missing header or
// missing token segment, 403 for a token that fails verification.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, http.StatusUnauthorized, "Authorization header missing")
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 {
			writeAuthError(w, http.StatusUnauthorized, "Token missing")
			return
		}

		claims, err := m.jwtManager.ValidateToken(fields[1])
		if err != nil {
			logger := logging.Ctx(r.Context())
			logger.Debug().Err(err).Msg("Token validation failed")
			writeAuthError(w, http.StatusForbidden, "Token invalid or expired")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext retrieves the verified identity attached by
// RequireAuth. Returns nil when the request did not pass the gate.
func ClaimsFromContext(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(claimsContextKey).(*Claims); ok {
		return claims
	}
	return nil
}

// writeAuthError writes the standard {"error": ...} rejection body.
func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: message}); err != nil {
		logging.Error().Err(err).Msg("Failed to encode auth error response")
	}
}
