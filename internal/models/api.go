// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package models

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the success body of POST /api/login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// PointsRequest is the body of POST /api/points. PlayerID and ActivityID
// accept numbers or numeric strings; Points must be a JSON number and may
// be negative (deductions). A pointer distinguishes a missing points field
// from an explicit zero.
type PointsRequest struct {
	PlayerID   FlexID   `json:"player_id" validate:"required"`
	ActivityID FlexID   `json:"activity_id" validate:"required"`
	Points     *float64 `json:"points" validate:"required"`
}

// PointsResponse is the success body of POST /api/points. Action is
// "inserted" when a new record was created and "updated" when an existing
// (player, activity) record changed.
type PointsResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
}

// Upsert action tags.
const (
	ActionInserted = "inserted"
	ActionUpdated  = "updated"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
