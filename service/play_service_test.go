package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackjack/game"
)

// drawScript returns the given ranks in order.
func drawScript(ranks ...game.Rank) func() game.Card {
	i := 0
	return func() game.Card {
		c := game.Card{Rank: ranks[i], Suit: game.Spades}
		i++
		return c
	}
}

func newPlayFixture(clientID string, ranks ...game.Rank) (*game.Manager, *MockChipService, *MockSettlementService, PlayService) {
	rounds := game.NewManager()
	if len(ranks) > 0 {
		rounds.Set(clientID, game.NewRoundWithDraw(drawScript(ranks...)))
	}
	chips := new(MockChipService)
	settlement := new(MockSettlementService)
	return rounds, chips, settlement, NewPlayService(rounds, chips, settlement)
}

func TestPlayService_Deal(t *testing.T) {
	ctx := context.Background()
	_, chips, _, svc := newPlayFixture("c", "K", "5", "9", "10")

	chips.On("Buy", ctx, "c", int64(0)).Return(int64(500), nil)

	state, err := svc.Deal(ctx, "c", 10)
	require.NoError(t, err)

	assert.Equal(t, game.PhasePlayer, state.Phase)
	assert.Equal(t, int64(10), state.Bet)
	assert.Len(t, state.PlayerCards, 2)
	assert.Equal(t, 15, state.PlayerTotal)
	assert.Len(t, state.DealerCards, 1, "hole card must stay hidden")
	assert.True(t, state.HoleHidden)
	assert.Zero(t, state.DealerTotal, "dealer total is not revealed during the player phase")
	require.NotNil(t, state.Chips)
	assert.Equal(t, int64(500), *state.Chips)
}

func TestPlayService_DealValidation(t *testing.T) {
	ctx := context.Background()
	_, chips, _, svc := newPlayFixture("c", "K", "5", "9", "10")

	chips.On("Buy", ctx, "c", int64(0)).Return(int64(5), nil)

	_, err := svc.Deal(ctx, "c", 10)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "exceeds")

	_, err = svc.Deal(ctx, "", 10)
	assert.True(t, IsValidation(err))
}

func TestPlayService_HitBustSettlesOnce(t *testing.T) {
	ctx := context.Background()
	_, chips, settlement, svc := newPlayFixture("c", "K", "5", "9", "10", "8")

	chips.On("Buy", ctx, "c", int64(0)).Return(int64(500), nil)
	settlement.On("Settle", ctx, "c", int64(10), game.ResultLoss, int64(-10), 23, 19).
		Return(int64(490), nil)

	_, err := svc.Deal(ctx, "c", 10)
	require.NoError(t, err)

	state, err := svc.Hit(ctx, "c")
	require.NoError(t, err)

	assert.Equal(t, game.PhaseFinished, state.Phase)
	assert.Equal(t, game.ResultLoss, state.Result)
	assert.Equal(t, int64(-10), state.Delta)
	require.NotNil(t, state.Chips)
	assert.Equal(t, int64(490), *state.Chips)
	settlement.AssertNumberOfCalls(t, "Settle", 1)

	// The finished round accepts no further actions and settles no more.
	_, err = svc.Hit(ctx, "c")
	assert.True(t, IsValidation(err))
	settlement.AssertNumberOfCalls(t, "Settle", 1)
}

func TestPlayService_StandWin(t *testing.T) {
	ctx := context.Background()
	// Player K+Q = 20, dealer 9+10 = 19.
	_, chips, settlement, svc := newPlayFixture("c", "K", "Q", "9", "10")

	chips.On("Buy", ctx, "c", int64(0)).Return(int64(500), nil)
	settlement.On("Settle", ctx, "c", int64(10), game.ResultWin, int64(10), 20, 19).
		Return(int64(510), nil)

	_, err := svc.Deal(ctx, "c", 10)
	require.NoError(t, err)

	state, err := svc.Stand(ctx, "c")
	require.NoError(t, err)

	assert.Equal(t, game.PhaseFinished, state.Phase)
	assert.Equal(t, game.ResultWin, state.Result)
	assert.Len(t, state.DealerCards, 2, "hole card revealed after stand")
	assert.False(t, state.HoleHidden)
	assert.Equal(t, 19, state.DealerTotal)
	require.NotNil(t, state.Chips)
	assert.Equal(t, int64(510), *state.Chips)
}

func TestPlayService_SettlementFailureLeavesBalanceUnknown(t *testing.T) {
	ctx := context.Background()
	_, chips, settlement, svc := newPlayFixture("c", "K", "Q", "9", "10")

	chips.On("Buy", ctx, "c", int64(0)).Return(int64(500), nil)
	settlement.On("Settle", ctx, "c", int64(10), game.ResultWin, int64(10), 20, 19).
		Return(int64(0), errors.New("database unavailable"))

	_, err := svc.Deal(ctx, "c", 10)
	require.NoError(t, err)

	// The round still leaves play; the failure is logged, not surfaced.
	state, err := svc.Stand(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, game.PhaseFinished, state.Phase)
	assert.Equal(t, game.ResultWin, state.Result)
	assert.Nil(t, state.Chips, "failed settlement must not report a balance")
}

func TestPlayService_HitWithoutRound(t *testing.T) {
	ctx := context.Background()
	_, _, _, svc := newPlayFixture("unused")

	_, err := svc.Hit(ctx, "nobody")
	assert.True(t, IsValidation(err))

	_, err = svc.Stand(ctx, "nobody")
	assert.True(t, IsValidation(err))
}

func TestPlayService_DealAfterFinishedStartsFresh(t *testing.T) {
	ctx := context.Background()
	// Two rounds back to back from one script.
	_, chips, settlement, svc := newPlayFixture("c",
		"K", "Q", "9", "10", // round one: stand on 20 vs 19
		"K", "9", "8", "10") // round two: fresh deal
	chips.On("Buy", ctx, "c", int64(0)).Return(int64(500), nil)
	settlement.On("Settle", ctx, "c", int64(10), game.ResultWin, int64(10), 20, 19).
		Return(int64(510), nil)

	_, err := svc.Deal(ctx, "c", 10)
	require.NoError(t, err)
	_, err = svc.Stand(ctx, "c")
	require.NoError(t, err)

	state, err := svc.Deal(ctx, "c", 10)
	require.NoError(t, err)
	assert.Equal(t, game.PhasePlayer, state.Phase)
	assert.Equal(t, 19, state.PlayerTotal)
	assert.Equal(t, game.Result(""), state.Result)
}

func TestPlayService_StateForNewClient(t *testing.T) {
	ctx := context.Background()
	_, _, _, svc := newPlayFixture("unused")

	state, err := svc.State(ctx, "newcomer")
	require.NoError(t, err)
	assert.Equal(t, game.PhaseBetting, state.Phase)
	assert.Empty(t, state.PlayerCards)
}
