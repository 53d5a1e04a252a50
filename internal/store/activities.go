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

// ActivityRepository reads the activity catalog.
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// List returns the full activity catalog ordered by id.
func (r *ActivityRepository) List(ctx context.Context) ([]models.Activity, error) {
	activities := []models.Activity{}
	if err := r.db.WithContext(ctx).Order("id").Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}
