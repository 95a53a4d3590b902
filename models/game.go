package models

import (
	"time"

	"blackjack/game"
)

// Game is one settled round, written exactly once and immutable afterwards.
// Delta is the chip change actually applied to the profile for this
// settlement: +bet on a win, -bet on a loss, 0 on a push.
type Game struct {
	ID          int64       `db:"id"`
	ClientID    string      `db:"client_id"`
	Bet         int64       `db:"bet"`
	Result      game.Result `db:"result"`
	Delta       int64       `db:"delta"`
	PlayerTotal int         `db:"player_total"`
	DealerTotal int         `db:"dealer_total"`
	CreatedAt   time.Time   `db:"created_at"`
}
