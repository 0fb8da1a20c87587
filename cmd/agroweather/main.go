package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/farmgpt/agroweather/internal/db"
	"github.com/farmgpt/agroweather/internal/handlers"
	"github.com/farmgpt/agroweather/internal/weather"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := loadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// The cache is best-effort: without it every request re-fetches.
	var database *db.DB
	if cfg.DBPath != "" {
		database, err = db.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("forecast cache unavailable, continuing without it", zap.Error(err))
			database = nil
		} else {
			defer database.Close()
		}
	}

	client := weather.NewClient()
	if cfg.OpenMeteoURL != "" {
		client.BaseURL = cfg.OpenMeteoURL
	}

	svc := weather.NewService(client, database, logger)
	h := handlers.New(svc, database, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes(h),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("agroweather listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}

// routes wires middlewares and endpoints. CORS is open to the FarmGPT
// front-end dev and production hosts.
func routes(h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://127.0.0.1:5173", "https://*.farmgpt.my"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HandleHealth)
	r.Route("/api", func(api chi.Router) {
		api.Get("/weather", h.HandleWeather)
	})

	return r
}
