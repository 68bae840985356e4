package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/cli"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/config"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/db"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/logger"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/repository"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return cli.ExitFatal
	}
	// stdout belongs to the game
	logger.InitWithWriter(os.Stderr, cfg.LogLevel, cfg.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := cli.Options{
		In:            os.Stdin,
		Out:           os.Stdout,
		KeyBytes:      cfg.KeyBytes,
		HelpPolicy:    cfg.Help(),
		ChoiceTimeout: cfg.ChoiceTimeout,
		Log:           logger.Get(),
	}

	if cfg.ArchiveEnabled() {
		pool, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Warn("round archive unavailable", "error", err)
		} else {
			defer pool.Close()
			opts.Recorder = service.NewRoundService(repository.NewRoundRepository(pool))
		}
	}

	return cli.Run(ctx, os.Args[1:], opts)
}
