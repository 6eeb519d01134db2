package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/spyfall-th/spyfall-backend/internal/catalog"
	"github.com/spyfall-th/spyfall-backend/internal/config"
	"github.com/spyfall-th/spyfall-backend/internal/game"
	"github.com/spyfall-th/spyfall-backend/internal/httpapi"
	"github.com/spyfall-th/spyfall-backend/internal/hub"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	locs, err := loadCatalog(cfg)
	if err != nil {
		logger.Fatal("load catalog", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.Int("locations", len(locs)))

	ctx := context.Background()
	h := hub.NewHub(ctx, locs, game.Settings{TimeLimit: cfg.DefaultTimeLimit}, logger)

	// Build the router *with* the hub injected
	handler := httpapi.SetupRoutes(h, locs, cfg.AllowedOrigins, logger)

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadCatalog picks the location source: Postgres when DATABASE_URL is set,
// an operator-supplied JSON file when CATALOG_PATH is set, otherwise the
// embedded default set.
func loadCatalog(cfg config.Config) ([]catalog.Location, error) {
	switch {
	case cfg.DatabaseURL != "":
		store, err := catalog.OpenStore(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return store.Load()
	case cfg.CatalogPath != "":
		return catalog.Load(cfg.CatalogPath)
	default:
		return catalog.Default(), nil
	}
}
