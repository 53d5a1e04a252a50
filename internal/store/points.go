// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tomtom215/pointsboard/internal/models"
)

// breakdownQuery joins a player's point records with the activity catalog.
const breakdownQuery = `
	SELECT a.name AS activity, p.points
	FROM points p
	JOIN activities a ON p.activity_id = a.id
	WHERE p.player_id = ?
	ORDER BY a.id`

// PointsRepository writes and reads point allocations.
type PointsRepository struct {
	db *gorm.DB
}

// NewPointsRepository creates a new points repository.
func NewPointsRepository(db *gorm.DB) *PointsRepository {
	return &PointsRepository{db: db}
}

// Upsert sets the points for a (player, activity) pair in a single atomic
// statement, creating the record when none exists. The uk_player_activity
// unique index makes concurrent upserts for the same pair safe: last write
// wins, never a duplicate row.
//
// MySQL reports one affected row for an insert and two for an update (zero
// when the stored value already equals the new one), which is how the
// returned action tag is derived.
func (r *PointsRepository) Upsert(ctx context.Context, playerID, activityID uint64, points float64) (string, error) {
	res := r.db.WithContext(ctx).Exec(`
		INSERT INTO points (player_id, activity_id, points)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE points = ?`,
		playerID, activityID, points, points)
	if res.Error != nil {
		return "", fmt.Errorf("failed to upsert points for player %d activity %d: %w",
			playerID, activityID, res.Error)
	}

	if res.RowsAffected == 1 {
		return models.ActionInserted, nil
	}
	return models.ActionUpdated, nil
}

// BreakdownByPlayer returns a player's points per activity, joined with
// the activity names.
func (r *PointsRepository) BreakdownByPlayer(ctx context.Context, playerID uint64) ([]models.ActivityPoints, error) {
	breakdown := []models.ActivityPoints{}
	if err := r.db.WithContext(ctx).Raw(breakdownQuery, playerID).Scan(&breakdown).Error; err != nil {
		return nil, fmt.Errorf("failed to query point breakdown for player %d: %w", playerID, err)
	}
	return breakdown, nil
}
