// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pointsboard/internal/auth"
	"github.com/tomtom215/pointsboard/internal/logging"
	"github.com/tomtom215/pointsboard/internal/metrics"
	"github.com/tomtom215/pointsboard/internal/models"
	"github.com/tomtom215/pointsboard/internal/validation"
)

// TeamStore is what the handlers need for team reads.
type TeamStore interface {
	Standings(ctx context.Context) ([]models.TeamStanding, error)
	GetByID(ctx context.Context, id uint64) (*models.Team, error)
	PlayersByTeam(ctx context.Context, teamID uint64) ([]models.Player, error)
}

// ActivityStore is what the handlers need for the activity catalog.
type ActivityStore interface {
	List(ctx context.Context) ([]models.Activity, error)
}

// PointsStore is what the handlers need for point allocations.
type PointsStore interface {
	Upsert(ctx context.Context, playerID, activityID uint64, points float64) (string, error)
	BreakdownByPlayer(ctx context.Context, playerID uint64) ([]models.ActivityPoints, error)
}

// Handler implements the HTTP handlers of the REST API.
type Handler struct {
	teams       TeamStore
	activities  ActivityStore
	points      PointsStore
	credentials *auth.CredentialStore
	jwtManager  *auth.JWTManager
	pingDB      func(ctx context.Context) error
}

// NewHandler creates the API handler set.
func NewHandler(
	teams TeamStore,
	activities ActivityStore,
	points PointsStore,
	credentials *auth.CredentialStore,
	jwtManager *auth.JWTManager,
	pingDB func(ctx context.Context) error,
) *Handler {
	return &Handler{
		teams:       teams,
		activities:  activities,
		points:      points,
		credentials: credentials,
		jwtManager:  jwtManager,
		pingDB:      pingDB,
	}
}

// Login authenticates the admin identity and issues a signed token.
// POST /api/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Username and password are required", nil)
		return
	}

	if err := validation.ValidateStruct(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Username and password are required", nil)
		return
	}

	userID, err := h.credentials.Verify(req.Username, req.Password)
	if err != nil {
		logger := logging.Ctx(r.Context())
		logger.Warn().
			Str("username", req.Username).
			Msg("Login rejected")
		respondError(w, r, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := h.jwtManager.GenerateToken(userID, h.credentials.Username())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	logger := logging.Ctx(r.Context())
	logger.Info().
		Str("username", h.credentials.Username()).
		Msg("Login succeeded")

	respondJSON(w, http.StatusOK, models.LoginResponse{
		Token:    token,
		Username: h.credentials.Username(),
	})
}

// Dashboard returns the total points per team.
// GET /api/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	standings, err := h.teams.Standings(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, standings)
}

// Teams returns every team row with its aggregated points.
// GET /api/teams
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	standings, err := h.teams.Standings(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, standings)
}

// TeamByID returns one team merged with its player list. Unknown ids get
// a 404 rather than a row of empty fields.
// GET /api/team/{id}
func (h *Handler) TeamByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid team id", nil)
		return
	}

	team, err := h.teams.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	if team == nil {
		respondError(w, r, http.StatusNotFound, "Team not found", nil)
		return
	}

	players, err := h.teams.PlayersByTeam(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, models.TeamDetail{
		ID:      team.ID,
		Name:    team.Name,
		LogoURL: team.LogoURL,
		Players: players,
	})
}

// PlayerBreakdown returns a player's points per activity.
// GET /api/player/{id}
func (h *Handler) PlayerBreakdown(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid player id", nil)
		return
	}

	breakdown, err := h.points.BreakdownByPlayer(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, breakdown)
}

// Activities returns the full activity catalog.
// GET /api/activities
func (h *Handler) Activities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activities.List(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, activities)
}

// PlayersByTeam returns the players of one team.
// GET /api/players/team/{teamId}
func (h *Handler) PlayersByTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := idParam(r, "teamId")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid team id", nil)
		return
	}

	players, err := h.teams.PlayersByTeam(r.Context(), teamID)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, players)
}

// UpsertPoints sets the point allocation for a (player, activity) pair.
// Requires a verified bearer token; the store guarantees at most one
// record per pair.
// POST /api/points
func (h *Handler) UpsertPoints(w http.ResponseWriter, r *http.Request) {
	var req models.PointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid input data", nil)
		return
	}

	if err := validation.ValidateStruct(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid input data", nil)
		return
	}

	action, err := h.points.Upsert(r.Context(), req.PlayerID.Uint64(), req.ActivityID.Uint64(), *req.Points)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	metrics.RecordPointUpsert(action)

	claims := auth.ClaimsFromContext(r.Context())
	logger := logging.Ctx(r.Context())
	event := logger.Info().
		Uint64("player_id", req.PlayerID.Uint64()).
		Uint64("activity_id", req.ActivityID.Uint64()).
		Float64("points", *req.Points).
		Str("action", action)
	if claims != nil {
		event = event.Str("username", claims.Username)
	}
	event.Msg("Points upserted")

	respondJSON(w, http.StatusOK, models.PointsResponse{
		Success: true,
		Action:  action,
	})
}

// Health reports liveness and database reachability.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.pingDB(ctx); err != nil {
		logger := logging.Ctx(r.Context())
		logger.Error().Err(err).Msg("Health check: database unreachable")
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "degraded",
			"database": "down",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "up",
	})
}
