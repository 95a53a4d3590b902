package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"blackjack/advisor"
	"blackjack/game"
	"blackjack/models"
	"blackjack/service"
)

// handleServiceError maps service errors onto HTTP statuses: bad input gets
// its message back with a 400, everything else is logged and hidden behind
// a generic 500.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if service.IsValidation(err) {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, service.ErrInsufficientChips) {
		respondError(w, "insufficient chips", http.StatusBadRequest)
		return
	}

	log.WithError(err).WithField("path", r.URL.Path).Error("Request failed")
	respondError(w, "something went wrong, please try again later", http.StatusInternalServerError)
}

type registerResponse struct {
	ClientID string `json:"clientId"`
}

// handleRegister mints a fresh client identifier. Clients store it locally
// and pass it on every subsequent call; there is no other authentication.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	respondJSON(w, http.StatusOK, registerResponse{ClientID: uuid.NewString()})
}

type settleRequest struct {
	ClientID    string `json:"clientId"`
	Bet         int64  `json:"bet"`
	Result      string `json:"result"`
	Delta       int64  `json:"delta"`
	PlayerTotal int    `json:"playerTotal"`
	DealerTotal int    `json:"dealerTotal"`
}

type chipsResponse struct {
	Chips int64 `json:"chips"`
}

func (s *Server) handleSettle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req settleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	chips, err := s.settlement.Settle(r.Context(), req.ClientID,
		req.Bet, game.Result(req.Result), req.Delta, req.PlayerTotal, req.DealerTotal)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, chipsResponse{Chips: chips})
}

// gameView is a history entry with the fields the frontend expects.
// Timestamp duplicates CreatedAt for compatibility.
type gameView struct {
	ID          int64     `json:"id"`
	Bet         int64     `json:"bet"`
	Result      string    `json:"result"`
	Delta       int64     `json:"delta"`
	PlayerTotal int       `json:"playerTotal"`
	DealerTotal int       `json:"dealerTotal"`
	CreatedAt   time.Time `json:"createdAt"`
	Timestamp   time.Time `json:"timestamp"`
}

type historyResponse struct {
	Games []gameView `json:"games"`
	Total int        `json:"total"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		respondError(w, "clientId is required", http.StatusBadRequest)
		return
	}

	games, err := s.history.ListGames(r.Context(), clientID, s.cfg.HistoryLimit)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	views := make([]gameView, len(games))
	for i, g := range games {
		views[i] = newGameView(g)
	}
	respondJSON(w, http.StatusOK, historyResponse{Games: views, Total: len(views)})
}

func newGameView(g *models.Game) gameView {
	return gameView{
		ID:          g.ID,
		Bet:         g.Bet,
		Result:      string(g.Result),
		Delta:       g.Delta,
		PlayerTotal: g.PlayerTotal,
		DealerTotal: g.DealerTotal,
		CreatedAt:   g.CreatedAt,
		Timestamp:   g.CreatedAt,
	}
}

type buyChipsRequest struct {
	ClientID string `json:"clientId"`
	Amount   int64  `json:"amount"`
}

func (s *Server) handleBuyChips(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req buyChipsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	chips, err := s.chips.Buy(r.Context(), req.ClientID, req.Amount)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, chipsResponse{Chips: chips})
}

type recommendationRequest struct {
	PlayerCards  []game.Card `json:"playerCards"`
	DealerUpCard *game.Card  `json:"dealerUpCard"`
	PlayerTotal  *int        `json:"playerTotal"`
}

type recommendationResponse struct {
	Recommendation string `json:"recommendation"`
}

func (s *Server) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req recommendationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.PlayerCards) == 0 || req.DealerUpCard == nil || req.PlayerTotal == nil {
		respondError(w, "missing required game state information", http.StatusBadRequest)
		return
	}

	recommendation, err := s.advisor.Recommend(r.Context(), req.PlayerCards, *req.DealerUpCard, *req.PlayerTotal)
	if err != nil {
		// Advice is cosmetic; a failure must never alter game state. It
		// still surfaces as an error status so the client can hide the
		// hint.
		if errors.Is(err, advisor.ErrDisabled) {
			respondError(w, "recommendations are not available", http.StatusServiceUnavailable)
			return
		}
		log.WithError(err).Warn("Recommendation failed")
		respondError(w, "failed to generate recommendation", http.StatusBadGateway)
		return
	}

	respondJSON(w, http.StatusOK, recommendationResponse{Recommendation: recommendation})
}

type dealRequest struct {
	ClientID string `json:"clientId"`
	Bet      int64  `json:"bet"`
}

type clientRequest struct {
	ClientID string `json:"clientId"`
}

func (s *Server) handleDeal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dealRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := s.play.Deal(r.Context(), req.ClientID, req.Bet)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

func (s *Server) handleHit(w http.ResponseWriter, r *http.Request) {
	s.playAction(w, r, s.play.Hit)
}

func (s *Server) handleStand(w http.ResponseWriter, r *http.Request) {
	s.playAction(w, r, s.play.Stand)
}

func (s *Server) playAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, clientID string) (*service.RoundState, error)) {
	if r.Method != http.MethodPost {
		respondError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req clientRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := action(r.Context(), req.ClientID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		respondError(w, "clientId is required", http.StatusBadRequest)
		return
	}

	state, err := s.play.State(r.Context(), clientID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}
