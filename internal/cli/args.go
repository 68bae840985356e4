package cli

import (
	"fmt"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/game"
)

// ParseMoves turns positional arguments into a MoveSet. Every rejection is
// reported to the user with MsgInvalidArguments.
func ParseMoves(args []string) (*game.MoveSet, error) {
	ms, err := game.NewMoveSet(args)
	if err != nil {
		return nil, fmt.Errorf("parse moves: %w", err)
	}
	return ms, nil
}
