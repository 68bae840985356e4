package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/domain"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/game"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/logger"

	"github.com/google/uuid"
)

// ErrInvalidRoundID is returned for identifiers that are not UUIDs.
var ErrInvalidRoundID = errors.New("invalid round id")

// RoundStore is the persistence the archive needs.
type RoundStore interface {
	Create(ctx context.Context, round *domain.Round) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Round, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Round, error)
	Stats(ctx context.Context) (*domain.RoundStats, error)
}

// RoundService archives resolved rounds and checks archived ones
type RoundService struct {
	store   RoundStore
	timeout time.Duration
}

// NewRoundService creates a new round service
func NewRoundService(store RoundStore) *RoundService {
	return &RoundService{store: store, timeout: 5 * time.Second}
}

// Record stores a resolved round. Unresolved results are refused so a key
// that was never revealed can not end up in the archive.
func (s *RoundService) Record(ctx context.Context, moves []string, res game.Result) error {
	round, err := domain.NewRound(moves, res)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.store.Create(ctx, round); err != nil {
		logger.Error("failed to archive round", "error", err, "round_id", round.ID)
		return fmt.Errorf("archive round: %w", err)
	}
	RoundsArchived.WithLabelValues(string(round.Outcome)).Inc()
	logger.Info("round archived", "round_id", round.ID, "outcome", string(round.Outcome))
	return nil
}

// Lookup returns an archived round and whether it still verifies.
func (s *RoundService) Lookup(ctx context.Context, id string) (*domain.Round, bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidRoundID, err)
	}
	round, err := s.store.GetByID(ctx, uid)
	if err != nil {
		return nil, false, err
	}
	ok, err := round.Verify()
	if err != nil {
		logger.Warn("archived round does not verify", "round_id", round.ID, "error", err)
	}
	recordVerification(ok)
	return round, ok, nil
}

// Recent returns the latest archived rounds.
func (s *RoundService) Recent(ctx context.Context, limit int) ([]*domain.Round, error) {
	return s.store.ListRecent(ctx, limit)
}

// Stats returns outcome counts of the archive.
func (s *RoundService) Stats(ctx context.Context) (*domain.RoundStats, error) {
	return s.store.Stats(ctx)
}

// Verify checks a revealed commitment.
func Verify(move, keyHex, digestHex string) (bool, error) {
	ok, err := game.VerifyCommitment(move, keyHex, digestHex)
	if err != nil {
		VerificationsTotal.WithLabelValues("malformed").Inc()
		return false, err
	}
	recordVerification(ok)
	return ok, nil
}

func recordVerification(ok bool) {
	if ok {
		VerificationsTotal.WithLabelValues("valid").Inc()
	} else {
		VerificationsTotal.WithLabelValues("invalid").Inc()
	}
}
