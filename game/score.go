package game

// Total is the best value of a hand under blackjack ace rules. Soft is true
// while at least one ace is still counted as 11.
type Total struct {
	Total int  `json:"total"`
	Soft  bool `json:"soft"`
}

// HandTotal computes the best total for a hand. Aces start at 11 and are
// demoted to 1 one at a time while the total exceeds 21. A bust with no aces
// left to demote stays over 21.
func HandTotal(hand []Card) Total {
	total, aces := 0, 0
	for _, c := range hand {
		total += rankValues[c.Rank]
		if c.Rank == "A" {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return Total{Total: total, Soft: aces > 0}
}
