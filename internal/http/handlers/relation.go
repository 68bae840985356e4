package handlers

import (
	"net/http"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/game"

	"github.com/gin-gonic/gin"
)

type RelationRequest struct {
	Moves []string `json:"moves" binding:"required"`
}

// RelationResponse - Rows[i][j] is the result of move i against move j
type RelationResponse struct {
	Moves []string         `json:"moves"`
	Rows  [][]game.Outcome `json:"rows"`
}

// Relation returns the full outcome table for an ordered move list
func (h *Handler) Relation(c *gin.Context) {
	var req RelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	ms, err := game.NewMoveSet(req.Moves)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rel := game.BuildRelation(ms)
	c.JSON(http.StatusOK, RelationResponse{Moves: ms.Names(), Rows: [][]game.Outcome(rel)})
}
