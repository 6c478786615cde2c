package handler

import (
	"encoding/json"
	"net/http"
)

// Handler is the liveness probe mounted at /health.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"status":  "ok",
		"message": "Fartburger API",
		"path":    r.URL.Path,
	}

	json.NewEncoder(w).Encode(response)
}
