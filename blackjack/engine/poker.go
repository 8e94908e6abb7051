package engine

import (
	"fmt"

	poker "github.com/paulhankin/poker"
)

// Our suits: 0 clubs, 1 hearts, 2 diamonds, 3 spades. Library ranks match ours (Ace=1).
var pokerSuits = [...]poker.Suit{poker.Club, poker.Heart, poker.Diamond, poker.Spade}

// PokerCard converts an identifier into the poker library's card, which
// rejects anything outside the 4x13 grid.
func PokerCard(c Card) (poker.Card, error) {
	suit, rank := SuitRank(c)
	if c < 1 || c > DeckSize || suit >= len(pokerSuits) {
		var none poker.Card
		return none, fmt.Errorf("card %d: %w", int(c), ErrInvalidCard)
	}
	return poker.MakeCard(pokerSuits[suit], poker.Rank(rank))
}

// Valid reports whether c is a real card in a 52-card deck.
func (c Card) Valid() bool {
	_, err := PokerCard(c)
	return err == nil
}
