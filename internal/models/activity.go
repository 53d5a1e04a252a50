// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package models

// Activity is an independent catalog entity players can earn points for.
type Activity struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:191;not null" json:"name"`
}

// TableName implements the gorm table naming convention.
func (Activity) TableName() string {
	return "activities"
}
