package api

import (
	"encoding/json"
	"net/http"

	"transferhub/backend/internal/common"
	"transferhub/backend/internal/logging"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	// Set unconditionally; the CORS middleware only answers requests that
	// carry an Origin header.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError maps the tagged error kinds to status codes: validation
// errors become 400 with their message, everything else 500 with the error
// text.
func respondError(w http.ResponseWriter, err error) {
	if common.IsValidation(err) {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	logging.Error("request failed", "error", err.Error())
	respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

// MethodNotAllowedHandler answers unsupported methods on every resource.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
}
