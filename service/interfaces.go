package service

import (
	"context"
	"errors"

	"blackjack/game"
	"blackjack/models"
)

// ErrInsufficientChips is returned when an increment would take a profile's
// balance below zero.
var ErrInsufficientChips = errors.New("insufficient chips")

// ProfileRepository defines the interface for chip balance data access
type ProfileRepository interface {
	// GetByClientID retrieves a profile, or nil if the client is unknown
	GetByClientID(ctx context.Context, clientID string) (*models.Profile, error)

	// Create creates a new profile with the given starting balance
	Create(ctx context.Context, clientID string, initialChips int64) (*models.Profile, error)

	// IncrementChips atomically adds delta to the balance and returns the
	// new value. Fails with ErrInsufficientChips rather than going negative.
	IncrementChips(ctx context.Context, clientID string, delta int64) (int64, error)
}

// GameRepository defines the interface for game record data access
type GameRepository interface {
	// Create inserts a game record and fills in its ID and timestamp
	Create(ctx context.Context, g *models.Game) error

	// GetByClientID returns a client's games, newest first
	GetByClientID(ctx context.Context, clientID string, limit int) ([]*models.Game, error)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	ProfileRepository() ProfileRepository
	GameRepository() GameRepository
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// SettlementService persists a completed round and applies its chip delta.
type SettlementService interface {
	// Settle inserts the game record and atomically applies delta to the
	// client's balance in one transaction, creating a default profile for
	// first-time clients. Returns the new balance.
	Settle(ctx context.Context, clientID string, bet int64, result game.Result, delta int64, playerTotal, dealerTotal int) (int64, error)
}

// ChipService manages chip balances outside of settlement.
type ChipService interface {
	// Buy adds amount chips to the client's balance and returns the new
	// value. An amount of zero reads the current balance without mutating
	// it. First-time clients get a profile at the starting balance.
	Buy(ctx context.Context, clientID string, amount int64) (int64, error)
}

// HistoryService reads settled game records.
type HistoryService interface {
	// ListGames returns the client's games, newest first
	ListGames(ctx context.Context, clientID string, limit int) ([]*models.Game, error)
}

// PlayService drives server-side blackjack rounds through their phases and
// settles them when they finish.
type PlayService interface {
	Deal(ctx context.Context, clientID string, bet int64) (*RoundState, error)
	Hit(ctx context.Context, clientID string) (*RoundState, error)
	Stand(ctx context.Context, clientID string) (*RoundState, error)
	State(ctx context.Context, clientID string) (*RoundState, error)
}

// Advisor produces a strategy hint for the current hand. Advice carries no
// game-state authority; callers must treat failures as cosmetic.
type Advisor interface {
	Recommend(ctx context.Context, playerCards []game.Card, dealerUpCard game.Card, playerTotal int) (string, error)
}
