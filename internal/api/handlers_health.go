// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// readinessPingTimeout bounds the store ping made by HealthReady.
const readinessPingTimeout = 2 * time.Second

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(h.startTime).Seconds()
	metrics.AppUptime.Set(uptime)

	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:     "alive",
		Version:    h.version,
		StoreReady: h.stores.Ready(),
		Uptime:     uptime,
		Timestamp:  time.Now().UTC(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only when a store is published and answers a ping.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Failure 503 {object} models.HealthStatus
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := false
	if store, err := h.stores.Store(); err == nil {
		ctx, cancel := context.WithTimeout(r.Context(), readinessPingTimeout)
		ready = store.Ping(ctx) == nil
		cancel()
	}

	status, code := "ready", http.StatusOK
	if !ready {
		status, code = "not_ready", http.StatusServiceUnavailable
	}

	respondJSON(w, code, models.HealthStatus{
		Status:       status,
		Version:      h.version,
		StoreReady:   ready,
		CircuitState: h.stores.CircuitState(),
		Uptime:       time.Since(h.startTime).Seconds(),
		Timestamp:    time.Now().UTC(),
	})
}
