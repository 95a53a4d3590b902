package service

import (
	"context"
	"fmt"

	"blackjack/game"
	"blackjack/models"
)

type settlementService struct {
	uowFactory    UnitOfWorkFactory
	startingChips int64
}

// NewSettlementService creates a new settlement service. First-time clients
// get a profile with startingChips before their delta is applied.
func NewSettlementService(uowFactory UnitOfWorkFactory, startingChips int64) SettlementService {
	return &settlementService{
		uowFactory:    uowFactory,
		startingChips: startingChips,
	}
}

func (s *settlementService) Settle(ctx context.Context, clientID string, bet int64, result game.Result, delta int64, playerTotal, dealerTotal int) (int64, error) {
	// Validate inputs
	if clientID == "" {
		return 0, Validationf("clientId is required")
	}
	if bet < 1 {
		return 0, Validationf("bet must be at least 1")
	}
	if _, err := game.ParseResult(string(result)); err != nil {
		return 0, Validationf("result must be win, loss or push")
	}

	// The recorded delta must equal the change the balance will actually
	// see: +bet on a win, -bet on a loss, 0 on a push.
	if delta != game.Delta(result, bet) {
		return 0, Validationf("delta %d does not match result %q with bet %d", delta, result, bet)
	}

	// Record insert and balance change commit or roll back together.
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	profile, err := uow.ProfileRepository().GetByClientID(ctx, clientID)
	if err != nil {
		return 0, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		if _, err := uow.ProfileRepository().Create(ctx, clientID, s.startingChips); err != nil {
			return 0, fmt.Errorf("failed to create profile: %w", err)
		}
	}

	record := &models.Game{
		ClientID:    clientID,
		Bet:         bet,
		Result:      result,
		Delta:       delta,
		PlayerTotal: playerTotal,
		DealerTotal: dealerTotal,
	}
	if err := uow.GameRepository().Create(ctx, record); err != nil {
		return 0, fmt.Errorf("failed to create game record: %w", err)
	}

	newChips, err := uow.ProfileRepository().IncrementChips(ctx, clientID, delta)
	if err != nil {
		return 0, fmt.Errorf("failed to apply chip delta: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return newChips, nil
}
