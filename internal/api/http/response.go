package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/logger"
)

type errorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain failures onto HTTP statuses: bad input 400, missing
// records 404, duplicates and concurrent edits 409, everything else 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case domain.IsDuplicate(err):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Retryable: true})
	default:
		logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return false
	}
	return true
}
