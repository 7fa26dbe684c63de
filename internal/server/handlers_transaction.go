package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bobmcallan/landmark/internal/models"
)

// routeTransactions dispatches /api/transactions/{id}.
func (s *Server) routeTransactions(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/transactions/")
	if id == "" {
		s.handleTransactionCollection(w, r)
		return
	}
	if strings.Contains(id, "/") {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	s.handleTransactionItem(w, r, id)
}

// handleTransactionCollection handles GET and POST /api/transactions.
func (s *Server) handleTransactionCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		txs, err := s.app.TransactionService.ListTransactions(r.Context())
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to list transactions")
			WriteError(w, http.StatusInternalServerError, "failed to list transactions")
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"transactions": txs,
			"count":        len(txs),
		})

	case http.MethodPost:
		var tx models.Transaction
		if !DecodeJSON(w, r, &tx) {
			return
		}
		created, err := s.app.TransactionService.CreateTransaction(r.Context(), &tx)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteJSON(w, http.StatusCreated, created)

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// handleTransactionItem handles GET, PUT and DELETE /api/transactions/{id}.
func (s *Server) handleTransactionItem(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		tx, err := s.app.TransactionService.GetTransaction(r.Context(), id)
		if err != nil {
			WriteError(w, http.StatusNotFound, "transaction not found")
			return
		}
		WriteJSON(w, http.StatusOK, tx)

	case http.MethodPut:
		var update models.Transaction
		if !DecodeJSON(w, r, &update) {
			return
		}
		updated, err := s.app.TransactionService.UpdateTransaction(r.Context(), id, &update)
		if err != nil {
			if isNotFound(err) {
				WriteError(w, http.StatusNotFound, "transaction not found")
				return
			}
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := s.app.TransactionService.DeleteTransaction(r.Context(), id); err != nil {
			if isNotFound(err) {
				WriteError(w, http.StatusNotFound, "transaction not found")
				return
			}
			s.logger.Error().Err(err).Str("transaction_id", id).Msg("Failed to delete transaction")
			WriteError(w, http.StatusInternalServerError, "failed to delete transaction")
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

// handleTransactionSummary handles GET /api/transactions/summary with
// optional start/end date filters (RFC 3339 or 2006-01-02).
func (s *Server) handleTransactionSummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	var rng *models.DateRange
	startParam := r.URL.Query().Get("start")
	endParam := r.URL.Query().Get("end")
	if startParam != "" || endParam != "" {
		rng = &models.DateRange{}
		if startParam != "" {
			t, err := parseDateParam(startParam)
			if err != nil {
				WriteError(w, http.StatusBadRequest, "invalid start date")
				return
			}
			rng.Start = t
		}
		if endParam != "" {
			t, err := parseDateParam(endParam)
			if err != nil {
				WriteError(w, http.StatusBadRequest, "invalid end date")
				return
			}
			rng.End = t
		}
	}

	summary, err := s.app.TransactionService.Summarize(r.Context(), rng)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to summarize transactions")
		WriteError(w, http.StatusInternalServerError, "failed to summarize transactions")
		return
	}
	WriteJSON(w, http.StatusOK, summary)
}

// handleTransactionCategories handles GET /api/transactions/categories with a
// required type parameter (income or expense).
func (s *Server) handleTransactionCategories(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	txType := models.TransactionType(r.URL.Query().Get("type"))
	if txType == "" {
		txType = models.TransactionExpense
	}

	breakdown, err := s.app.TransactionService.BreakdownByCategory(r.Context(), txType)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"type":       txType,
		"categories": breakdown,
	})
}

// handleTransactionCashFlow handles GET /api/transactions/cashflow with an
// optional months parameter (default 6).
func (s *Server) handleTransactionCashFlow(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	months := 6
	if m := r.URL.Query().Get("months"); m != "" {
		v, err := strconv.Atoi(m)
		if err != nil || v < 1 || v > 120 {
			WriteError(w, http.StatusBadRequest, "months must be between 1 and 120")
			return
		}
		months = v
	}

	points, err := s.app.TransactionService.MonthlyCashFlow(r.Context(), months)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to compute cash flow")
		WriteError(w, http.StatusInternalServerError, "failed to compute cash flow")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"months":    months,
		"cash_flow": points,
	})
}

// parseDateParam accepts RFC 3339 timestamps or plain dates.
func parseDateParam(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
