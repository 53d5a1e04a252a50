// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/pointsboard/internal/logging"
	"github.com/tomtom215/pointsboard/internal/models"
)

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends the standard {"error": message} body. The underlying
// error, when present, goes to the structured log only; clients never see
// raw driver errors.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		logger := logging.Ctx(r.Context())
		logger.Error().
			Int("status", status).
			Str("path", r.URL.Path).
			Err(err).
			Msg("Request failed")
	}

	respondJSON(w, status, models.ErrorResponse{Error: message})
}

// respondStoreError maps any store failure to a sanitized 500.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	respondError(w, r, http.StatusInternalServerError, "database error", err)
}

// idParam extracts a positive numeric path parameter.
func idParam(r *http.Request, name string) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, name), 10, 64)
}
