package http

import (
	"time"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/http/handlers"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/http/middleware"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/service"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouteConfig carries what the verifier routes need. DB, Rounds and Feed
// are nil when the round archive is disabled.
type RouteConfig struct {
	DB            handlers.Pinger
	Rounds        *service.RoundService
	Feed          *ws.Hub
	AllowedOrigin string

	Version   string
	RateLimit int
	Window    time.Duration
}

func RegisterRoutes(r *gin.Engine, cfg RouteConfig) {
	h := handlers.NewHandler(cfg.Rounds)
	healthHandler := handlers.NewHealthHandler(cfg.DB, cfg.Version)

	rateLimit := cfg.RateLimit
	if rateLimit <= 0 {
		rateLimit = 30
	}
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(rateLimit, window))
	registerAPIRoutes(v1, h)

	// Round feed
	if cfg.Feed != nil {
		r.GET("/ws/rounds", ws.HandleRoundFeed(cfg.Feed, cfg.AllowedOrigin))
	}
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	// Fairness checks
	api.POST("/verify", h.Verify)
	api.POST("/relation", h.Relation)

	// Round archive
	api.GET("/rounds", h.ListRounds)
	api.GET("/rounds/stats", h.RoundStats)
	api.GET("/rounds/:id", h.GetRound)
}
