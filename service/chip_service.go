package service

import (
	"context"
	"fmt"
)

type chipService struct {
	uowFactory    UnitOfWorkFactory
	startingChips int64
}

// NewChipService creates a new chip service.
func NewChipService(uowFactory UnitOfWorkFactory, startingChips int64) ChipService {
	return &chipService{
		uowFactory:    uowFactory,
		startingChips: startingChips,
	}
}

// Buy adds amount chips to the client's balance. Amount zero is the idiom
// for reading the balance without mutating it; either way a first-time
// client gets a profile at the starting balance first.
func (s *chipService) Buy(ctx context.Context, clientID string, amount int64) (int64, error) {
	if clientID == "" {
		return 0, Validationf("clientId is required")
	}
	if amount < 0 {
		return 0, Validationf("amount must not be negative")
	}

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
		profile, err = uow.ProfileRepository().Create(ctx, clientID, s.startingChips)
		if err != nil {
			return 0, fmt.Errorf("failed to create profile: %w", err)
		}
	}

	chips := profile.Chips
	if amount > 0 {
		chips, err = uow.ProfileRepository().IncrementChips(ctx, clientID, amount)
		if err != nil {
			return 0, fmt.Errorf("failed to add chips: %w", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return chips, nil
}
