package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/domain"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/game"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrRoundNotFound = errors.New("round not found")

type RoundRepository struct {
	db *pgxpool.Pool
}

func NewRoundRepository(db *pgxpool.Pool) *RoundRepository {
	return &RoundRepository{db: db}
}

// Create сохраняет раунд в архив
func (r *RoundRepository) Create(ctx context.Context, round *domain.Round) error {
	if round.ID == uuid.Nil {
		round.ID = uuid.New()
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO rounds
			(id, moves, human_move, opponent_move, outcome, digest, key)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		round.ID,
		round.Moves,
		round.HumanMove,
		round.OpponentMove,
		string(round.Outcome),
		round.Digest,
		round.Key,
	).Scan(&round.CreatedAt)
}

// GetByID возвращает раунд по идентификатору
func (r *RoundRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, moves, human_move, opponent_move, outcome, digest, key, created_at
		 FROM rounds
		 WHERE id = $1`,
		id,
	)
	round, err := scanRound(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRoundNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get round %s: %w", id, err)
	}
	return round, nil
}

// ListRecent возвращает последние раунды
func (r *RoundRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Round, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, moves, human_move, opponent_move, outcome, digest, key, created_at
		 FROM rounds
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Round
	for rows.Next() {
		round, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, round)
	}
	return result, rows.Err()
}

// Stats считает исходы по всему архиву
func (r *RoundRepository) Stats(ctx context.Context) (*domain.RoundStats, error) {
	stats := &domain.RoundStats{}
	err := r.db.QueryRow(ctx,
		`SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE outcome = 'win') AS wins,
			COUNT(*) FILTER (WHERE outcome = 'lose') AS losses,
			COUNT(*) FILTER (WHERE outcome = 'draw') AS draws
		 FROM rounds`,
	).Scan(&stats.Total, &stats.Wins, &stats.Losses, &stats.Draws)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func scanRound(row pgx.Row) (*domain.Round, error) {
	var (
		round   domain.Round
		outcome string
	)
	if err := row.Scan(
		&round.ID, &round.Moves, &round.HumanMove, &round.OpponentMove,
		&outcome, &round.Digest, &round.Key, &round.CreatedAt,
	); err != nil {
		return nil, err
	}
	round.Outcome = game.Outcome(outcome)
	return &round, nil
}
