package game

// DealerPlay extends the dealer's hand until its total reaches 17 or more.
// The dealer stands on all 17s, soft or hard. The input slice is not
// modified; the returned hand is a new slice containing the original cards
// plus any draws.
func DealerPlay(hand []Card) []Card {
	return dealerPlay(hand, Draw)
}

func dealerPlay(hand []Card, draw func() Card) []Card {
	out := make([]Card, len(hand), len(hand)+4)
	copy(out, hand)
	for HandTotal(out).Total <= 16 {
		out = append(out, draw())
	}
	return out
}
