package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundDealValidation(t *testing.T) {
	r := NewRound()

	err := r.Deal(0, 500)
	assert.ErrorIs(t, err, ErrBetBelowMinimum)
	assert.Equal(t, PhaseBetting, r.Phase, "rejected bet must not change state")

	err = r.Deal(501, 500)
	assert.ErrorIs(t, err, ErrBetExceedsChips)
	assert.Equal(t, PhaseBetting, r.Phase)
	assert.Empty(t, r.Player)
}

func TestRoundDeal(t *testing.T) {
	r := NewRound()
	r.draw = scriptedDraw(t, "K", "5", "9", "10")

	require.NoError(t, r.Deal(10, 500))
	assert.Equal(t, PhasePlayer, r.Phase)
	assert.Equal(t, int64(10), r.Bet)
	assert.Len(t, r.Player, 2)
	assert.Len(t, r.Dealer, 2)
	assert.Equal(t, 15, r.PlayerTotal())

	// Dealing twice in one round is rejected.
	assert.ErrorIs(t, r.Deal(10, 500), ErrRoundInProgress)
}

func TestRoundStandWin(t *testing.T) {
	r := NewRound()
	// Player: K+5 then hits a 5 for 20. Dealer: 9+10 stands on 19.
	r.draw = scriptedDraw(t, "K", "5", "9", "10", "5")

	require.NoError(t, r.Deal(10, 500))
	_, err := r.Hit()
	require.NoError(t, err)
	assert.Equal(t, 20, r.PlayerTotal())
	assert.Equal(t, PhasePlayer, r.Phase)

	require.NoError(t, r.Stand())
	assert.Equal(t, PhaseFinished, r.Phase)
	assert.Equal(t, ResultWin, r.Result)
	assert.Equal(t, 19, r.DealerTotal())
	assert.Equal(t, int64(10), r.Delta())
}

func TestRoundHitBust(t *testing.T) {
	r := NewRound()
	// Player: K+5, hits an 8 for 23. Immediate loss, dealer never plays.
	r.draw = scriptedDraw(t, "K", "5", "9", "10", "8")

	require.NoError(t, r.Deal(25, 500))
	card, err := r.Hit()
	require.NoError(t, err)
	assert.Equal(t, Rank("8"), card.Rank)
	assert.Equal(t, 23, r.PlayerTotal())
	assert.Equal(t, PhaseFinished, r.Phase)
	assert.Equal(t, ResultLoss, r.Result)
	assert.Equal(t, int64(-25), r.Delta())
	assert.Len(t, r.Dealer, 2, "dealer must not play after a player bust")

	// No further actions once finished.
	_, err = r.Hit()
	assert.ErrorIs(t, err, ErrNoActiveRound)
	assert.ErrorIs(t, r.Stand(), ErrNoActiveRound)
}

func TestRoundStandPush(t *testing.T) {
	r := NewRound()
	// Player K+9 = 19, dealer 9+10 = 19.
	r.draw = scriptedDraw(t, "K", "9", "9", "10")

	require.NoError(t, r.Deal(50, 500))
	require.NoError(t, r.Stand())
	assert.Equal(t, ResultPush, r.Result)
	assert.Equal(t, int64(0), r.Delta())
}

func TestRoundDeltaBeforeFinish(t *testing.T) {
	r := NewRound()
	r.draw = scriptedDraw(t, "K", "5", "9", "10")
	require.NoError(t, r.Deal(10, 500))
	assert.Equal(t, int64(0), r.Delta())
}

func TestRoundReset(t *testing.T) {
	r := NewRound()
	r.draw = scriptedDraw(t, "K", "9", "9", "10")
	require.NoError(t, r.Deal(10, 500))
	require.NoError(t, r.Stand())

	r.Reset()
	assert.Equal(t, PhaseBetting, r.Phase)
	assert.Empty(t, r.Player)
	assert.Empty(t, r.Dealer)
	assert.Equal(t, int64(0), r.Bet)
	assert.Equal(t, Result(""), r.Result)
}

func TestManager(t *testing.T) {
	m := NewManager()

	assert.Nil(t, m.Get("a"))

	ra := m.GetOrCreate("a")
	rb := m.GetOrCreate("b")
	assert.NotSame(t, ra, rb, "each client gets its own round")
	assert.Same(t, ra, m.GetOrCreate("a"))
	assert.Same(t, ra, m.Get("a"))

	m.Delete("a")
	assert.Nil(t, m.Get("a"))
	assert.Same(t, rb, m.Get("b"))
}
