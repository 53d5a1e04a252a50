// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package models

// PointRecord holds the points a player earned for one activity. The
// composite unique index uk_player_activity enforces at most one record per
// (player, activity) pair at the store level; upserts rely on it rather
// than on an application-side existence check.
type PointRecord struct {
	ID         uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PlayerID   uint64  `gorm:"column:player_id;uniqueIndex:uk_player_activity;not null" json:"player_id"`
	ActivityID uint64  `gorm:"column:activity_id;uniqueIndex:uk_player_activity;not null" json:"activity_id"`
	Points     float64 `gorm:"type:double;not null" json:"points"`
}

// TableName implements the gorm table naming convention.
func (PointRecord) TableName() string {
	return "points"
}
