package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"blackjack/database"
	"blackjack/models"
	"blackjack/service"
)

// ProfileRepository implements service.ProfileRepository on Postgres.
type ProfileRepository struct {
	q queryable
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.DB) *ProfileRepository {
	return &ProfileRepository{q: db.Pool}
}

// newProfileRepositoryWithTx creates a new profile repository with a transaction
func newProfileRepositoryWithTx(tx queryable) *ProfileRepository {
	return &ProfileRepository{q: tx}
}

// GetByClientID retrieves a profile by client ID, or nil if none exists.
func (r *ProfileRepository) GetByClientID(ctx context.Context, clientID string) (*models.Profile, error) {
	query := `
		SELECT client_id, chips, created_at, updated_at
		FROM profiles
		WHERE client_id = $1
	`

	var profile models.Profile
	err := r.q.QueryRow(ctx, query, clientID).Scan(
		&profile.ClientID,
		&profile.Chips,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile for client %s: %w", clientID, err)
	}

	return &profile, nil
}

// Create creates a new profile with the given starting balance.
func (r *ProfileRepository) Create(ctx context.Context, clientID string, initialChips int64) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (client_id, chips)
		VALUES ($1, $2)
		RETURNING client_id, chips, created_at, updated_at
	`

	var profile models.Profile
	err := r.q.QueryRow(ctx, query, clientID, initialChips).Scan(
		&profile.ClientID,
		&profile.Chips,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create profile for client %s: %w", clientID, err)
	}

	return &profile, nil
}

// IncrementChips atomically adds delta to the balance and returns the new
// value. The balance is never read-modify-written: concurrent settlements
// for the same client serialize on this single UPDATE, and the guard keeps
// the balance from going below zero.
func (r *ProfileRepository) IncrementChips(ctx context.Context, clientID string, delta int64) (int64, error) {
	query := `
		UPDATE profiles
		SET chips = chips + $1, updated_at = NOW()
		WHERE client_id = $2 AND chips + $1 >= 0
		RETURNING chips
	`

	var chips int64
	err := r.q.QueryRow(ctx, query, delta, clientID).Scan(&chips)
	if err == pgx.ErrNoRows {
		// Either the client is unknown or the delta would overdraw.
		profile, getErr := r.GetByClientID(ctx, clientID)
		if getErr != nil {
			return 0, fmt.Errorf("failed to check profile: %w", getErr)
		}
		if profile == nil {
			return 0, fmt.Errorf("profile for client %s not found", clientID)
		}
		return 0, fmt.Errorf("have %d, need %d: %w", profile.Chips, -delta, service.ErrInsufficientChips)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment chips for client %s: %w", clientID, err)
	}

	return chips, nil
}
