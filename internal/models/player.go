// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package models

// Player belongs to exactly one team.
type Player struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"size:191;not null" json:"name"`
	TeamID uint64 `gorm:"column:team_id;not null;index" json:"team_id"`
}

// TableName implements the gorm table naming convention.
func (Player) TableName() string {
	return "players"
}

// ActivityPoints is one row of a player's point breakdown: the activity
// name joined with the points allocated for it.
type ActivityPoints struct {
	Activity string  `json:"activity"`
	Points   float64 `json:"points"`
}
