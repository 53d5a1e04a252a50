// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pointsboard/internal/config"
	"github.com/tomtom215/pointsboard/internal/models"
)

func newTestJWTManager(t *testing.T) *JWTManager {
	t.Helper()
	manager, err := NewJWTManager(&config.SecurityConfig{
		JWTSecret: "middleware_test_secret_that_is_long_enough_1234567890",
		TokenTTL:  time.Hour,
	})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	return manager
}

func TestRequireAuth(t *testing.T) {
	manager := newTestJWTManager(t)
	middleware := NewMiddleware(manager)

	validToken, err := manager.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Authorization header missing",
		},
		{
			name:       "header without token",
			authHeader: "Bearer",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Token missing",
		},
		{
			name:       "invalid token",
			authHeader: "Bearer not.a.token",
			wantStatus: http.StatusForbidden,
			wantError:  "Token invalid or expired",
		},
		{
			name:       "valid token",
			authHeader: "Bearer " + validToken,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClaims *Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/points", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			middleware.RequireAuth(next).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantError != "" {
				var resp models.ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}
				if resp.Error != tt.wantError {
					t.Errorf("error = %q, want %q", resp.Error, tt.wantError)
				}
				return
			}

			if gotClaims == nil {
				t.Fatal("expected claims in handler context")
			}
			if gotClaims.Username != "admin" {
				t.Errorf("claims username = %q, want %q", gotClaims.Username, "admin")
			}
		})
	}
}

func TestRequireAuth_TokenFromOtherSecret(t *testing.T) {
	middleware := NewMiddleware(newTestJWTManager(t))

	other, err := NewJWTManager(&config.SecurityConfig{
		JWTSecret: "a_completely_different_secret_also_long_enough_1234567890",
		TokenTTL:  time.Hour,
	})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}

	token, err := other.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/points", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	middleware.RequireAuth(next).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestClaimsFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if claims := ClaimsFromContext(req.Context()); claims != nil {
		t.Errorf("ClaimsFromContext() = %v, want nil", claims)
	}
}
