// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

// Package metrics exposes Prometheus instrumentation for the HTTP API.
// Collectors register on a private registry so tests can exercise handlers
// without duplicate-registration panics from the default registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var (
	apiRequestsTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pointsboard_api_requests_total",
			Help: "Total number of API requests by method, path and status code.",
		},
		[]string{"method", "path", "status"},
	)

	apiRequestDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pointsboard_api_request_duration_seconds",
			Help:    "API request latency distribution.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	apiActiveRequests = promauto.With(registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "pointsboard_api_active_requests",
			Help: "Number of API requests currently being served.",
		},
	)

	pointUpsertsTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pointsboard_point_upserts_total",
			Help: "Point allocation upserts by outcome (inserted or updated).",
		},
		[]string{"action"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, path, status string, duration time.Duration) {
	apiRequestsTotal.WithLabelValues(method, path, status).Inc()
	apiRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(active bool) {
	if active {
		apiActiveRequests.Inc()
	} else {
		apiActiveRequests.Dec()
	}
}

// RecordPointUpsert counts one point upsert by its outcome tag.
func RecordPointUpsert(action string) {
	pointUpsertsTotal.WithLabelValues(action).Inc()
}

// Handler returns the Prometheus exposition handler for GET /metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
