// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

// Package store implements data access for teams, players, activities and
// point records on top of gorm/MySQL. Aggregate reads are single
// parameterized statements; the point upsert is a single atomic
// INSERT ... ON DUPLICATE KEY UPDATE backed by a unique index.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tomtom215/pointsboard/internal/models"
)

// standingsQuery aggregates points per team. Teams without players or
// points still appear with a zero total.
const standingsQuery = `
	SELECT t.id, t.name, t.logo_url,
		IFNULL(SUM(p.points), 0) AS total_points
	FROM teams t
	LEFT JOIN players pl ON pl.team_id = t.id
	LEFT JOIN points p ON p.player_id = pl.id
	GROUP BY t.id, t.name, t.logo_url
	ORDER BY t.id`

// TeamRepository reads teams and their players.
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository.
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Standings returns every team with its aggregated point total, ordered by
// team id. Serves both the dashboard and the team list.
func (r *TeamRepository) Standings(ctx context.Context) ([]models.TeamStanding, error) {
	standings := []models.TeamStanding{}
	if err := r.db.WithContext(ctx).Raw(standingsQuery).Scan(&standings).Error; err != nil {
		return nil, fmt.Errorf("failed to query team standings: %w", err)
	}
	return standings, nil
}

// GetByID returns the team with the given id, or nil when no such team
// exists.
func (r *TeamRepository) GetByID(ctx context.Context, id uint64) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	return &team, nil
}

// PlayersByTeam returns all players belonging to the given team.
func (r *TeamRepository) PlayersByTeam(ctx context.Context, teamID uint64) ([]models.Player, error) {
	players := []models.Player{}
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("id").
		Find(&players).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list players for team %d: %w", teamID, err)
	}
	return players, nil
}
