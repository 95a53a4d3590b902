package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blackjack/game"
	"blackjack/models"
)

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByClientID(ctx context.Context, clientID string) (*models.Profile, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, clientID string, initialChips int64) (*models.Profile, error) {
	args := m.Called(ctx, clientID, initialChips)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) IncrementChips(ctx context.Context, clientID string, delta int64) (int64, error) {
	args := m.Called(ctx, clientID, delta)
	return args.Get(0).(int64), args.Error(1)
}

// MockGameRepository is a mock implementation of GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) Create(ctx context.Context, g *models.Game) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGameRepository) GetByClientID(ctx context.Context, clientID string, limit int) ([]*models.Game, error) {
	args := m.Called(ctx, clientID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Game), args.Error(1)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	profileRepo ProfileRepository
	gameRepo    GameRepository
}

// SetRepositories wires the repositories returned by the getters.
func (m *MockUnitOfWork) SetRepositories(profiles ProfileRepository, games GameRepository) {
	m.profileRepo = profiles
	m.gameRepo = games
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) ProfileRepository() ProfileRepository {
	return m.profileRepo
}

func (m *MockUnitOfWork) GameRepository() GameRepository {
	return m.gameRepo
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}

// MockSettlementService is a mock implementation of SettlementService
type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) Settle(ctx context.Context, clientID string, bet int64, result game.Result, delta int64, playerTotal, dealerTotal int) (int64, error) {
	args := m.Called(ctx, clientID, bet, result, delta, playerTotal, dealerTotal)
	return args.Get(0).(int64), args.Error(1)
}

// MockChipService is a mock implementation of ChipService
type MockChipService struct {
	mock.Mock
}

func (m *MockChipService) Buy(ctx context.Context, clientID string, amount int64) (int64, error) {
	args := m.Called(ctx, clientID, amount)
	return args.Get(0).(int64), args.Error(1)
}

// MockHistoryService is a mock implementation of HistoryService
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) ListGames(ctx context.Context, clientID string, limit int) ([]*models.Game, error) {
	args := m.Called(ctx, clientID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Game), args.Error(1)
}

// MockPlayService is a mock implementation of PlayService
type MockPlayService struct {
	mock.Mock
}

func (m *MockPlayService) Deal(ctx context.Context, clientID string, bet int64) (*RoundState, error) {
	args := m.Called(ctx, clientID, bet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RoundState), args.Error(1)
}

func (m *MockPlayService) Hit(ctx context.Context, clientID string) (*RoundState, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RoundState), args.Error(1)
}

func (m *MockPlayService) Stand(ctx context.Context, clientID string) (*RoundState, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RoundState), args.Error(1)
}

func (m *MockPlayService) State(ctx context.Context, clientID string) (*RoundState, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RoundState), args.Error(1)
}

// MockAdvisor is a mock implementation of Advisor
type MockAdvisor struct {
	mock.Mock
}

func (m *MockAdvisor) Recommend(ctx context.Context, playerCards []game.Card, dealerUpCard game.Card, playerTotal int) (string, error) {
	args := m.Called(ctx, playerCards, dealerUpCard, playerTotal)
	return args.String(0), args.Error(1)
}
