package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/scogonw/sheetstack/internal/engine"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// sheetResponse is the JSON envelope for query and search results.
type sheetResponse struct {
	Data       []json.Marshaler `json:"data"`
	Total      int              `json:"total"`
	Offset     int              `json:"offset"`
	Limit      int              `json:"limit,omitempty"`
	Worksheet  string           `json:"worksheet,omitempty"`
	SnapshotID string           `json:"snapshot_id,omitempty"`
	Message    string           `json:"message,omitempty"`
}

// handleHealth is the health check endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":  "healthy",
		"version": Version,
	})
}

// handleGetSheet retrieves worksheet data with optional filtering, sorting,
// and pagination. Full-text search lives on its own endpoint, so a q
// parameter here is ignored.
func (s *Server) handleGetSheet(w http.ResponseWriter, r *http.Request) {
	sheetID := chi.URLParam(r, "sheetID")

	desc, err := engine.ParseQuery(r.URL.Query())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	desc.Search = nil

	s.runQuery(w, r, sheetID, desc)
}

// handleSearchSheet performs a full-text search across a worksheet,
// optionally restricted to listed fields. Filters, sorting, and pagination
// compose with the search the same way they do on the data endpoint.
func (s *Server) handleSearchSheet(w http.ResponseWriter, r *http.Request) {
	sheetID := chi.URLParam(r, "sheetID")

	desc, err := engine.ParseQuery(r.URL.Query())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if desc.Search == nil {
		s.respondError(w, r, &engine.ValidationError{Param: "q", Reason: "is required"})
		return
	}

	s.runQuery(w, r, sheetID, desc)
}

// runQuery fetches the table snapshot, runs the query pipeline, and writes
// the result envelope.
func (s *Server) runQuery(w http.ResponseWriter, r *http.Request, sheetID string, desc engine.QueryDescription) {
	worksheet := r.URL.Query().Get("worksheet")

	snap, err := s.fetcher.FetchTable(r.Context(), sheetID, worksheet)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	env := engine.Run(snap.Table, desc)

	resp := sheetResponse{
		Data:       env.Objects(),
		Total:      env.Total,
		Offset:     env.Offset,
		Limit:      env.Limit,
		Worksheet:  snap.Worksheet,
		SnapshotID: snap.ID,
	}
	if len(snap.Table.Rows) == 0 {
		resp.Message = "the sheet exists but contains no data rows"
	}
	writeJSON(w, resp)
}

// writeJSON encodes v as JSON and writes it to w.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; nothing to do but note it.
		_ = err
	}
}
