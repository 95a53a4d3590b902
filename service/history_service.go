package service

import (
	"context"
	"fmt"

	"blackjack/models"
)

type historyService struct {
	uowFactory UnitOfWorkFactory
	maxLimit   int
}

// NewHistoryService creates a new history service. Queries are capped at
// maxLimit records.
func NewHistoryService(uowFactory UnitOfWorkFactory, maxLimit int) HistoryService {
	return &historyService{
		uowFactory: uowFactory,
		maxLimit:   maxLimit,
	}
}

func (s *historyService) ListGames(ctx context.Context, clientID string, limit int) ([]*models.Game, error) {
	if clientID == "" {
		return nil, Validationf("clientId is required")
	}
	if limit < 1 || limit > s.maxLimit {
		limit = s.maxLimit
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	games, err := uow.GameRepository().GetByClientID(ctx, clientID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return games, nil
}
