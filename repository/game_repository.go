package repository

import (
	"context"
	"fmt"

	"blackjack/database"
	"blackjack/models"
)

// GameRepository implements service.GameRepository on Postgres.
type GameRepository struct {
	q queryable
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *database.DB) *GameRepository {
	return &GameRepository{q: db.Pool}
}

// newGameRepositoryWithTx creates a new game repository with a transaction
func newGameRepositoryWithTx(tx queryable) *GameRepository {
	return &GameRepository{q: tx}
}

// Create inserts a game record and fills in its ID and creation time.
func (r *GameRepository) Create(ctx context.Context, g *models.Game) error {
	query := `
		INSERT INTO games (client_id, bet, result, delta, player_total, dealer_total)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		g.ClientID,
		g.Bet,
		g.Result,
		g.Delta,
		g.PlayerTotal,
		g.DealerTotal,
	).Scan(&g.ID, &g.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create game record: %w", err)
	}

	return nil
}

// GetByClientID returns a client's game records, newest first.
func (r *GameRepository) GetByClientID(ctx context.Context, clientID string, limit int) ([]*models.Game, error) {
	query := `
		SELECT id, client_id, bet, result, delta, player_total, dealer_total, created_at
		FROM games
		WHERE client_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, clientID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var games []*models.Game
	for rows.Next() {
		var g models.Game
		err := rows.Scan(
			&g.ID,
			&g.ClientID,
			&g.Bet,
			&g.Result,
			&g.Delta,
			&g.PlayerTotal,
			&g.DealerTotal,
			&g.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %w", err)
	}

	return games, nil
}
