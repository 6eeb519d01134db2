package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/spyfall-th/spyfall-backend/internal/catalog"
)

// Locations serves the public catalog view so clients can prefetch names
// and images before a round starts.
func Locations(summaries []catalog.Summary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(summaries)
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
