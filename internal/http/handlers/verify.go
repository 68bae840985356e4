package handlers

import (
	"errors"
	"net/http"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/game"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/service"

	"github.com/gin-gonic/gin"
)

// VerifyRequest is a revealed commitment to check
type VerifyRequest struct {
	Move   string `json:"move" binding:"required"`
	Key    string `json:"key" binding:"required"`
	Digest string `json:"digest" binding:"required"`
}

type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// Verify recomputes HMAC-SHA256(key, move) and compares it with digest
func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	ok, err := service.Verify(req.Move, req.Key, req.Digest)
	if errors.Is(err, game.ErrMalformedHex) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		return
	}

	c.JSON(http.StatusOK, VerifyResponse{Valid: ok})
}
