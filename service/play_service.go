package service

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"blackjack/game"
)

// RoundState is the client-visible view of a round. While the player is
// acting, only the dealer's up card and no dealer total are exposed. Chips
// is present once the round has been settled successfully; a failed
// settlement leaves it nil and the balance unchanged.
type RoundState struct {
	Phase       game.Phase  `json:"phase"`
	Bet         int64       `json:"bet,omitempty"`
	PlayerCards []game.Card `json:"playerCards"`
	DealerCards []game.Card `json:"dealerCards"`
	HoleHidden  bool        `json:"holeHidden,omitempty"`
	PlayerTotal int         `json:"playerTotal"`
	DealerTotal int         `json:"dealerTotal,omitempty"`
	Result      game.Result `json:"result,omitempty"`
	Delta       int64       `json:"delta,omitempty"`
	Chips       *int64      `json:"chips,omitempty"`
}

type playService struct {
	rounds     *game.Manager
	chips      ChipService
	settlement SettlementService

	// Per-client locks: actions within one round are strictly sequential,
	// while different clients play independently.
	locks sync.Map // clientID -> *sync.Mutex
}

// NewPlayService creates the round controller. Finished rounds are settled
// through the given settlement service exactly once.
func NewPlayService(rounds *game.Manager, chips ChipService, settlement SettlementService) PlayService {
	return &playService{
		rounds:     rounds,
		chips:      chips,
		settlement: settlement,
	}
}

func (s *playService) lock(clientID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(clientID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *playService) Deal(ctx context.Context, clientID string, bet int64) (*RoundState, error) {
	if clientID == "" {
		return nil, Validationf("clientId is required")
	}

	// Read the balance first; this also creates first-time profiles, so a
	// brand-new client can deal right away.
	chips, err := s.chips.Buy(ctx, clientID, 0)
	if err != nil {
		return nil, err
	}

	mu := s.lock(clientID)
	mu.Lock()
	defer mu.Unlock()

	round := s.rounds.GetOrCreate(clientID)
	if round.Phase == game.PhaseFinished {
		round.Reset()
	}
	if err := round.Deal(bet, chips); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	return s.view(round, &chips), nil
}

func (s *playService) Hit(ctx context.Context, clientID string) (*RoundState, error) {
	if clientID == "" {
		return nil, Validationf("clientId is required")
	}

	mu := s.lock(clientID)
	mu.Lock()
	defer mu.Unlock()

	round := s.rounds.Get(clientID)
	if round == nil {
		return nil, &ValidationError{Message: game.ErrNoActiveRound.Error()}
	}
	if _, err := round.Hit(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	if round.Phase == game.PhaseFinished {
		return s.settle(ctx, clientID, round), nil
	}
	return s.view(round, nil), nil
}

func (s *playService) Stand(ctx context.Context, clientID string) (*RoundState, error) {
	if clientID == "" {
		return nil, Validationf("clientId is required")
	}

	mu := s.lock(clientID)
	mu.Lock()
	defer mu.Unlock()

	round := s.rounds.Get(clientID)
	if round == nil {
		return nil, &ValidationError{Message: game.ErrNoActiveRound.Error()}
	}
	if err := round.Stand(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	return s.settle(ctx, clientID, round), nil
}

func (s *playService) State(ctx context.Context, clientID string) (*RoundState, error) {
	if clientID == "" {
		return nil, Validationf("clientId is required")
	}

	mu := s.lock(clientID)
	mu.Lock()
	defer mu.Unlock()

	round := s.rounds.Get(clientID)
	if round == nil {
		round = s.rounds.GetOrCreate(clientID)
	}
	return s.view(round, nil), nil
}

// settle persists the finished round. A settlement failure is logged and
// the round still leaves play; the balance stays at its last known value
// and no retry is attempted.
func (s *playService) settle(ctx context.Context, clientID string, round *game.Round) *RoundState {
	newChips, err := s.settlement.Settle(ctx, clientID,
		round.Bet, round.Result, round.Delta(),
		round.PlayerTotal(), round.DealerTotal())

	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"client_id": clientID,
			"result":    round.Result,
			"delta":     round.Delta(),
		}).Error("Failed to settle round")
		return s.view(round, nil)
	}

	return s.view(round, &newChips)
}

func (s *playService) view(round *game.Round, chips *int64) *RoundState {
	state := &RoundState{
		Phase:       round.Phase,
		Bet:         round.Bet,
		PlayerCards: round.Player,
		DealerCards: round.Dealer,
		PlayerTotal: round.PlayerTotal(),
		Result:      round.Result,
		Delta:       round.Delta(),
		Chips:       chips,
	}

	if round.Phase == game.PhasePlayer {
		// Hole card stays face down until the player stands.
		state.DealerCards = round.Dealer[:1]
		state.HoleHidden = true
	} else {
		state.DealerTotal = round.DealerTotal()
	}

	return state
}
