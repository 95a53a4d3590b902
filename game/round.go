package game

import "errors"

// Phase is the state of a round.
type Phase string

const (
	PhaseBetting  Phase = "BETTING"
	PhasePlayer   Phase = "PLAYER"
	PhaseFinished Phase = "FINISHED"
)

var (
	ErrBetBelowMinimum = errors.New("bet must be at least 1")
	ErrBetExceedsChips = errors.New("bet exceeds your chip balance")
	ErrRoundInProgress = errors.New("round already in progress")
	ErrNoActiveRound   = errors.New("no round in progress")
)

// Round holds the ephemeral state of one blackjack round: the phase, both
// hands, and the bet. Hands are append-only while the round is live and are
// discarded on Reset. A Round is owned by a single client and is not safe
// for concurrent use; callers serialize actions per client.
type Round struct {
	Phase  Phase
	Bet    int64
	Player []Card
	Dealer []Card
	Result Result

	draw func() Card
}

// NewRound returns a round in the betting phase.
func NewRound() *Round {
	return NewRoundWithDraw(Draw)
}

// NewRoundWithDraw returns a round that deals from the given draw source
// instead of the shared random one. Tests use this to script hands.
func NewRoundWithDraw(draw func() Card) *Round {
	return &Round{Phase: PhaseBetting, draw: draw}
}

// Deal validates the bet against the current chip balance, deals two cards
// to the player and two to the dealer, and moves to the player phase. The
// dealer's second card stays hidden until the player stands.
func (r *Round) Deal(bet, chips int64) error {
	if r.Phase != PhaseBetting {
		return ErrRoundInProgress
	}
	if bet < 1 {
		return ErrBetBelowMinimum
	}
	if bet > chips {
		return ErrBetExceedsChips
	}

	r.Bet = bet
	r.Player = []Card{r.draw(), r.draw()}
	r.Dealer = []Card{r.draw(), r.draw()}
	r.Phase = PhasePlayer
	return nil
}

// Hit draws one card for the player. Going over 21 resolves the round as a
// loss immediately; the dealer does not play.
func (r *Round) Hit() (Card, error) {
	if r.Phase != PhasePlayer {
		return Card{}, ErrNoActiveRound
	}

	card := r.draw()
	r.Player = append(r.Player, card)
	if HandTotal(r.Player).Total > 21 {
		r.Result = ResultLoss
		r.Phase = PhaseFinished
	}
	return card, nil
}

// Stand ends the player's turn: the hole card is revealed, the dealer plays
// out their hand, and the round resolves.
func (r *Round) Stand() error {
	if r.Phase != PhasePlayer {
		return ErrNoActiveRound
	}

	r.Dealer = dealerPlay(r.Dealer, r.draw)
	r.Result = Resolve(r.Player, r.Dealer)
	r.Phase = PhaseFinished
	return nil
}

// Delta is the chip change this round produced. Zero until the round is
// finished.
func (r *Round) Delta() int64 {
	if r.Phase != PhaseFinished {
		return 0
	}
	return Delta(r.Result, r.Bet)
}

// PlayerTotal is the player's current best total.
func (r *Round) PlayerTotal() int {
	return HandTotal(r.Player).Total
}

// DealerTotal is the dealer's current best total.
func (r *Round) DealerTotal() int {
	return HandTotal(r.Dealer).Total
}

// Reset discards both hands and returns the round to the betting phase.
func (r *Round) Reset() {
	r.Bet = 0
	r.Player = nil
	r.Dealer = nil
	r.Result = ""
	r.Phase = PhaseBetting
}
