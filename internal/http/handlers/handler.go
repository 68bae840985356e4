package handlers

import (
	"github.com/mazenLavey/rock-paper-scissors-game/internal/service"
)

type Handler struct {
	// Rounds is nil when no archive database is configured.
	Rounds *service.RoundService
}

func NewHandler(rounds *service.RoundService) *Handler {
	return &Handler{Rounds: rounds}
}
