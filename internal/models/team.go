// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

// Package models defines the persistent entities and the request/response
// types of the HTTP API.
//
// Teams, players and activities are pre-populated externally; this service
// never creates or deletes them. Point records are written only through the
// upsert operation.
package models

// Team is a competing team. Owns zero or more players.
type Team struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"size:191;not null" json:"name"`
	LogoURL string `gorm:"column:logo_url;size:512" json:"logo_url"`
}

// TableName implements the gorm table naming convention.
func (Team) TableName() string {
	return "teams"
}

// TeamStanding is a team row joined with its aggregated points. Shared by
// the dashboard and team list endpoints.
type TeamStanding struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	LogoURL     string  `json:"logo_url"`
	TotalPoints float64 `json:"total_points"`
}

// TeamDetail is a team row merged with its player list.
type TeamDetail struct {
	ID      uint64   `json:"id"`
	Name    string   `json:"name"`
	LogoURL string   `json:"logo_url"`
	Players []Player `json:"players"`
}
