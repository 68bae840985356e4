package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/game"

	"github.com/google/uuid"
)

// Round - архивная запись одного сыгранного раунда
type Round struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	Moves        []string     `db:"moves" json:"moves"`
	HumanMove    string       `db:"human_move" json:"human_move"`
	OpponentMove string       `db:"opponent_move" json:"opponent_move"`
	Outcome      game.Outcome `db:"outcome" json:"outcome"`
	Digest       string       `db:"digest" json:"digest"`
	Key          string       `db:"key" json:"key"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

// NewRound builds an archive record from a resolved session result.
func NewRound(moves []string, res game.Result) (*Round, error) {
	if !res.Resolved() || res.Reveal == nil {
		return nil, fmt.Errorf("round is not resolved: %s", res.State)
	}
	m := make([]string, len(moves))
	copy(m, moves)
	return &Round{
		ID:           uuid.New(),
		Moves:        m,
		HumanMove:    res.HumanMove,
		OpponentMove: res.OpponentMove,
		Outcome:      res.Outcome,
		Digest:       res.Reveal.DigestHex,
		Key:          res.Reveal.Key,
	}, nil
}

var ErrRoundMismatch = errors.New("round does not match its moves")

// Verify checks the commitment and that the stored outcome follows from
// the moves. A false result with a nil error means the digest did not match.
func (r *Round) Verify() (bool, error) {
	ok, err := game.VerifyCommitment(r.OpponentMove, r.Key, r.Digest)
	if err != nil || !ok {
		return false, err
	}

	ms, err := game.NewMoveSet(r.Moves)
	if err != nil {
		return false, err
	}
	human, ok := ms.Lookup(r.HumanMove)
	if !ok {
		return false, fmt.Errorf("%w: unknown move %q", ErrRoundMismatch, r.HumanMove)
	}
	opponent, ok := ms.Lookup(r.OpponentMove)
	if !ok {
		return false, fmt.Errorf("%w: unknown move %q", ErrRoundMismatch, r.OpponentMove)
	}
	outcome, err := game.Resolve(ms, human, opponent)
	if err != nil {
		return false, err
	}
	if outcome != r.Outcome {
		return false, fmt.Errorf("%w: stored %s, moves give %s", ErrRoundMismatch, r.Outcome, outcome)
	}
	return true, nil
}

// RoundStats - сводка по архиву
type RoundStats struct {
	Total  int `json:"total"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}
