package server

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"blackjack/service"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr         string
	HistoryLimit int
}

// Server exposes the game, settlement and advisor services over HTTP.
type Server struct {
	cfg        Config
	settlement service.SettlementService
	chips      service.ChipService
	history    service.HistoryService
	play       service.PlayService
	advisor    service.Advisor

	httpServer *http.Server
}

// New creates the HTTP server.
func New(cfg Config, settlement service.SettlementService, chips service.ChipService, history service.HistoryService, play service.PlayService, advisor service.Advisor) *Server {
	s := &Server{
		cfg:        cfg,
		settlement: settlement,
		chips:      chips,
		history:    history,
		play:       play,
		advisor:    advisor,
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/clients/register", s.handleRegister)

	mux.HandleFunc("/games/settle", s.handleSettle)
	mux.HandleFunc("/games/history", s.handleHistory)
	mux.HandleFunc("/chips/buy", s.handleBuyChips)
	mux.HandleFunc("/ai/recommendation", s.handleRecommendation)

	mux.HandleFunc("/games/deal", s.handleDeal)
	mux.HandleFunc("/games/hit", s.handleHit)
	mux.HandleFunc("/games/stand", s.handleStand)
	mux.HandleFunc("/games/state", s.handleState)

	return mux
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	log.Infof("HTTP server listening on %s", s.cfg.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
