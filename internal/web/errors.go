package web

// errors.go centralizes error responses for the web layer.
//
// Typed errors from the engine and source packages are mapped onto HTTP
// status codes and machine-readable error codes:
//
//	QRY001 - malformed query parameter (400)
//	SRC001 - upstream Sheets API unavailable (502)
//	SRC002 - sheet readable but unusably shaped (502)
//	SRC003 - spreadsheet or worksheet not found (404)
//	ERR000 - anything else (500)
//
// Empty result sets are never errors; permissive filtering returns an
// empty envelope instead.

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scogonw/sheetstack/internal/engine"
	"github.com/scogonw/sheetstack/internal/logging"
	"github.com/scogonw/sheetstack/internal/source"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Param string `json:"param,omitempty"`
}

// respondError classifies err, logs the technical detail server-side, and
// writes the client-facing JSON error.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := classify(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"code", resp.Code,
		"error", err.Error(),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// classify maps a typed error onto an HTTP status and response body.
func classify(err error) (int, ErrorResponse) {
	var verr *engine.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, ErrorResponse{
			Error: verr.Error(),
			Code:  "QRY001",
			Param: verr.Param,
		}
	}

	var serr *source.Error
	if errors.As(err, &serr) {
		switch serr.Kind {
		case source.KindNotFound:
			return http.StatusNotFound, ErrorResponse{Error: serr.Msg, Code: "SRC003"}
		case source.KindMalformed:
			return http.StatusBadGateway, ErrorResponse{Error: serr.Msg, Code: "SRC002"}
		default:
			return http.StatusBadGateway, ErrorResponse{Error: serr.Msg, Code: "SRC001"}
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error: "unexpected error",
		Code:  "ERR000",
	}
}
