package server

import (
	"net/http"
	"time"

	"github.com/bobmcallan/landmark/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)

	// Auth
	mux.HandleFunc("/api/auth/register", s.handleAuthRegister)
	mux.HandleFunc("/api/auth/login", s.handleAuthLogin)
	mux.HandleFunc("/api/auth/validate", s.handleAuthValidate)

	// Properties
	mux.HandleFunc("/api/properties/", s.routeProperties)
	mux.HandleFunc("/api/properties", s.handlePropertyCollection)

	// Transactions
	mux.HandleFunc("/api/transactions/summary", s.handleTransactionSummary)
	mux.HandleFunc("/api/transactions/categories", s.handleTransactionCategories)
	mux.HandleFunc("/api/transactions/cashflow", s.handleTransactionCashFlow)
	mux.HandleFunc("/api/transactions/", s.routeTransactions)
	mux.HandleFunc("/api/transactions", s.handleTransactionCollection)

	// Metrics and snapshot history
	mux.HandleFunc("/api/metrics/snapshot", s.handleMetricsSnapshot)
	mux.HandleFunc("/api/metrics/history", s.handleMetricsHistory)
	mux.HandleFunc("/api/metrics", s.handleMetrics)

	// Reports
	mux.HandleFunc("/api/reports/portfolio", s.handleReportPortfolio)
	mux.HandleFunc("/api/reports/portfolio/csv", s.handleReportCSV)
	mux.HandleFunc("/api/reports/history/chart", s.handleReportChart)
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	uptime := time.Since(s.app.StartupTime).Round(time.Second)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":       s.app.Config.Environment,
		"storage_path":      s.app.Config.Storage.Path,
		"logging_level":     s.app.Config.Logging.Level,
		"snapshot_enabled":  s.app.Config.Snapshot.Enabled,
		"snapshot_schedule": s.app.Config.Snapshot.GetSchedule(),
		"uptime":            uptime.String(),
		"started_at":        s.app.StartupTime,
	})
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}
