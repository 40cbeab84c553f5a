package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to encode json response", slog.Any("err", err))
	}
}
