package server

import (
	"net/http"
	"strings"

	"github.com/bobmcallan/landmark/internal/models"
)

// routeProperties dispatches /api/properties/{id} and
// /api/properties/{id}/valuation.
func (s *Server) routeProperties(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/properties/")
	if path == "" {
		s.handlePropertyCollection(w, r)
		return
	}

	parts := strings.SplitN(path, "/", 2)
	id := parts[0]
	subpath := ""
	if len(parts) > 1 {
		subpath = parts[1]
	}

	switch subpath {
	case "":
		s.handlePropertyItem(w, r, id)
	case "valuation":
		s.handlePropertyValuation(w, r, id)
	default:
		WriteError(w, http.StatusNotFound, "Not found")
	}
}

// handlePropertyCollection handles GET and POST /api/properties.
func (s *Server) handlePropertyCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		properties, err := s.app.PropertyService.ListProperties(r.Context())
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to list properties")
			WriteError(w, http.StatusInternalServerError, "failed to list properties")
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"properties": properties,
			"count":      len(properties),
		})

	case http.MethodPost:
		var property models.Property
		if !DecodeJSON(w, r, &property) {
			return
		}
		created, err := s.app.PropertyService.CreateProperty(r.Context(), &property)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteJSON(w, http.StatusCreated, created)

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// handlePropertyItem handles GET, PUT and DELETE /api/properties/{id}.
func (s *Server) handlePropertyItem(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		property, err := s.app.PropertyService.GetProperty(r.Context(), id)
		if err != nil {
			WriteError(w, http.StatusNotFound, "property not found")
			return
		}
		WriteJSON(w, http.StatusOK, property)

	case http.MethodPut:
		var update models.Property
		if !DecodeJSON(w, r, &update) {
			return
		}
		updated, err := s.app.PropertyService.UpdateProperty(r.Context(), id, &update)
		if err != nil {
			if isNotFound(err) {
				WriteError(w, http.StatusNotFound, "property not found")
				return
			}
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := s.app.PropertyService.DeleteProperty(r.Context(), id); err != nil {
			if isNotFound(err) {
				WriteError(w, http.StatusNotFound, "property not found")
				return
			}
			s.logger.Error().Err(err).Str("property_id", id).Msg("Failed to delete property")
			WriteError(w, http.StatusInternalServerError, "failed to delete property")
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

// handlePropertyValuation handles GET /api/properties/{id}/valuation.
func (s *Server) handlePropertyValuation(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	estimate, err := s.app.ValuationService.Estimate(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			WriteError(w, http.StatusNotFound, "property not found")
			return
		}
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, estimate)
}
