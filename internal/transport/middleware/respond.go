package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError mirrors the {"error": "..."} body the REST handlers produce.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct { //nolint:errcheck
		Error string `json:"error"`
	}{message})
}
