package game

import "math/rand"

// Suit is one of the four card suit symbols.
type Suit string

// Rank is a card rank: A, 2-10, J, Q, K.
type Rank string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

var Ranks = []Rank{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// rankValues maps each rank to its initial blackjack value. Aces count as 11
// until the hand total forces a demotion to 1.
var rankValues = map[Rank]int{
	"A": 11, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8,
	"9": 9, "10": 10, "J": 10, "Q": 10, "K": 10,
}

// Card is an immutable rank/suit pair.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}

// Draw returns one card chosen uniformly at random from the 52 rank/suit
// combinations, with replacement. There is no shared deck state; every draw
// is independent, equivalent to dealing from an infinite shoe.
func Draw() Card {
	return Card{
		Rank: Ranks[rand.Intn(len(Ranks))],
		Suit: Suits[rand.Intn(len(Suits))],
	}
}
