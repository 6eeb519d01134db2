package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/spyfall-th/spyfall-backend/internal/catalog"
	"github.com/spyfall-th/spyfall-backend/internal/hub"
	"github.com/spyfall-th/spyfall-backend/internal/ws"
)

func SetupRoutes(h *hub.Hub, locs []catalog.Location, originPatterns []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Get("/healthz", Healthz)
	r.Get("/locations", Locations(catalog.Summaries(locs)))
	r.Get("/ws", ws.Handler(h, originPatterns, logger))
	return r
}
