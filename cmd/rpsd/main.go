package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/config"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/db"
	httpServer "github.com/mazenLavey/rock-paper-scissors-game/internal/http"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/http/middleware"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/logger"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/repository"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/service"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.MustLoad()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	routes := httpServer.RouteConfig{
		AllowedOrigin: cfg.AllowedOrigin,
		Version:       cfg.Version,
		RateLimit:     cfg.APIRateLimit,
		Window:        cfg.APIRateWindow,
	}
	if cfg.ArchiveEnabled() {
		dbPool := db.Connect(cfg.DatabaseURL)
		defer dbPool.Close()
		routes.DB = dbPool
		routes.Rounds = service.NewRoundService(repository.NewRoundRepository(dbPool))
		routes.Feed = ws.NewHub(routes.Rounds, cfg.FeedInterval)
		go routes.Feed.Run(ctx)
	} else {
		logger.Info("DATABASE_URL not set, round archive disabled")
	}

	if middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB) {
		defer middleware.CloseRedisRateLimiter()
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// CORS for the browser verifier page
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	httpServer.RegisterRoutes(r, routes)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return
	}

	logger.Info("server exited")
}
