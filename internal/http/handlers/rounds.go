package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/domain"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/repository"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/service"

	"github.com/gin-gonic/gin"
)

type RoundResponse struct {
	Round    *domain.Round `json:"round"`
	Verified bool          `json:"verified"`
}

// GetRound returns an archived round with a fresh verification
func (h *Handler) GetRound(c *gin.Context) {
	if h.Rounds == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "round archive disabled"})
		return
	}

	round, ok, err := h.Rounds.Lookup(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrInvalidRoundID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid round id"})
		return
	case errors.Is(err, repository.ErrRoundNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "round not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	c.JSON(http.StatusOK, RoundResponse{Round: round, Verified: ok})
}

// ListRounds returns the latest archived rounds
func (h *Handler) ListRounds(c *gin.Context) {
	if h.Rounds == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "round archive disabled"})
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	rounds, err := h.Rounds.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	if rounds == nil {
		rounds = []*domain.Round{}
	}
	c.JSON(http.StatusOK, gin.H{"rounds": rounds})
}

// RoundStats returns outcome counts of the archive
func (h *Handler) RoundStats(c *gin.Context) {
	if h.Rounds == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "round archive disabled"})
		return
	}

	stats, err := h.Rounds.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
