package game

import "fmt"

// Result is a round outcome as persisted in game records.
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
	ResultPush Result = "push"
)

// ParseResult validates a result string coming in over the wire.
func ParseResult(s string) (Result, error) {
	switch Result(s) {
	case ResultWin, ResultLoss, ResultPush:
		return Result(s), nil
	}
	return "", fmt.Errorf("invalid result %q", s)
}

// Resolve compares final hands. A player bust is a loss regardless of the
// dealer's hand; otherwise a dealer bust is a win, and equal totals push.
// A two-card 21 gets no special treatment; resolution is by total only.
func Resolve(player, dealer []Card) Result {
	playerTotal := HandTotal(player).Total
	dealerTotal := HandTotal(dealer).Total

	switch {
	case playerTotal > 21:
		return ResultLoss
	case dealerTotal > 21:
		return ResultWin
	case playerTotal > dealerTotal:
		return ResultWin
	case playerTotal < dealerTotal:
		return ResultLoss
	default:
		return ResultPush
	}
}

// Delta is the chip change for a result: the bet back on a win, the bet lost
// on a loss, zero on a push.
func Delta(result Result, bet int64) int64 {
	switch result {
	case ResultWin:
		return bet
	case ResultLoss:
		return -bet
	default:
		return 0
	}
}
