package server

import (
	"fmt"
	"net/http"
	"time"
)

// handleReportPortfolio handles GET /api/reports/portfolio.
func (s *Server) handleReportPortfolio(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	report, err := s.app.ReportService.GeneratePortfolioReport(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate portfolio report")
		WriteError(w, http.StatusInternalServerError, "failed to generate report")
		return
	}

	WriteJSON(w, http.StatusOK, report)
}

// handleReportCSV handles GET /api/reports/portfolio/csv, serving the
// report as a CSV download.
func (s *Server) handleReportCSV(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	report, err := s.app.ReportService.GeneratePortfolioReport(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate portfolio report")
		WriteError(w, http.StatusInternalServerError, "failed to generate report")
		return
	}

	data, err := s.app.ReportService.RenderCSV(report)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to render CSV")
		WriteError(w, http.StatusInternalServerError, "failed to render csv")
		return
	}

	filename := fmt.Sprintf("portfolio-report-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleReportChart handles GET /api/reports/history/chart, serving the
// history rendered as a PNG.
func (s *Server) handleReportChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	png, err := s.app.ReportService.RenderHistoryChart(r.Context())
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
