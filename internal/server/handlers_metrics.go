package server

import (
	"net/http"
	"time"

	"github.com/bobmcallan/landmark/internal/services/snapshot"
)

// handleMetrics handles GET /api/metrics, returning current portfolio metrics with
// month-over-month changes.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ctx := r.Context()
	properties, err := s.app.PropertyService.ListProperties(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list properties for metrics")
		WriteError(w, http.StatusInternalServerError, "failed to list properties")
		return
	}

	metrics, err := s.app.MetricsService.CalculateMetrics(ctx, properties)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to calculate metrics")
		WriteError(w, http.StatusInternalServerError, "failed to calculate metrics")
		return
	}

	WriteJSON(w, http.StatusOK, metrics)
}

// handleMetricsSnapshot handles POST /api/metrics/snapshot. It captures a
// snapshot now unless one was already taken today.
func (s *Server) handleMetricsSnapshot(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	ctx := r.Context()

	last, err := s.app.SnapshotService.LastSnapshotAt(ctx)
	if err == nil && !snapshot.ShouldSnapshot(time.Now(), last) {
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"status":  "skipped",
			"reason":  "snapshot already taken today",
			"last_at": last,
		})
		return
	}

	properties, err := s.app.PropertyService.ListProperties(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list properties for snapshot")
		WriteError(w, http.StatusInternalServerError, "failed to list properties")
		return
	}

	snap, err := s.app.SnapshotService.TakeSnapshot(ctx, properties)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to take snapshot")
		WriteError(w, http.StatusInternalServerError, "failed to take snapshot")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"status":   "ok",
		"snapshot": snap,
	})
}

// handleMetricsHistory handles GET /api/metrics/history, returning the stored snapshot
// series, newest first.
func (s *Server) handleMetricsHistory(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snapshots, err := s.app.SnapshotService.History(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load snapshot history")
		WriteError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"snapshots": snapshots,
		"count":     len(snapshots),
	})
}
