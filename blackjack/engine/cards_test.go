package engine

import (
	"errors"
	"testing"
)

func TestScoreRange(t *testing.T) {
	for c := Card(1); c <= DeckSize; c++ {
		if s := Score(c); s < 1 || s > 10 {
			t.Fatalf("Score(%d) = %d, want 1..10", c, s)
		}
	}
	for _, c := range []Card{1, 14, 27, 40} {
		if !c.IsAce() {
			t.Errorf("card %d should be an Ace", c)
		}
		if s := Score(c); s != 1 {
			t.Errorf("Score(%d) = %d, want 1", c, s)
		}
	}
}

func TestSuitRankBijection(t *testing.T) {
	seen := map[[2]int]Card{}
	for c := Card(1); c <= DeckSize; c++ {
		suit, rank := SuitRank(c)
		if suit < 0 || suit > 3 || rank < 1 || rank > 13 {
			t.Fatalf("SuitRank(%d) = (%d, %d) out of range", c, suit, rank)
		}
		key := [2]int{suit, rank}
		if prev, ok := seen[key]; ok {
			t.Fatalf("cards %d and %d both map to %v", prev, c, key)
		}
		seen[key] = c
	}
	if len(seen) != 4*13 {
		t.Fatalf("expected 52 distinct pairs, got %d", len(seen))
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{1, "Ace of clubs (1 or 11)"},
		{11, "Jack of clubs (10)"},
		{13, "King of clubs (10)"},
		{14, "Ace of hearts (1 or 11)"},
		{25, "Queen of hearts (10)"},
		{36, "10 of diamonds (10)"},
		{41, "2 of spades (2)"},
		{52, "King of spades (10)"},
		{0, "Empty card"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := DisplayName(tt.card)
			if err != nil {
				t.Fatalf("DisplayName(%d) error: %v", tt.card, err)
			}
			if got != tt.want {
				t.Fatalf("DisplayName(%d) = %q, want %q", tt.card, got, tt.want)
			}
			if tt.card.String() != tt.want {
				t.Fatalf("String() = %q, want %q", tt.card.String(), tt.want)
			}
		})
	}
}

func TestDisplayNameInvalidSuit(t *testing.T) {
	got, err := DisplayName(Card(53))
	if !errors.Is(err, ErrInvalidSuit) {
		t.Fatalf("expected ErrInvalidSuit, got %v", err)
	}
	if got != "ERROR" {
		t.Fatalf("expected ERROR, got %q", got)
	}
	if s := Card(60).String(); s != "ERROR" {
		t.Fatalf("String() on a bad card = %q", s)
	}
}

func TestValid(t *testing.T) {
	for c := Card(1); c <= DeckSize; c++ {
		if !c.Valid() {
			t.Fatalf("card %d should be valid", c)
		}
	}
	for _, c := range []Card{0, -1, 53, 100} {
		if c.Valid() {
			t.Errorf("card %d should be invalid", c)
		}
		if _, err := PokerCard(c); !errors.Is(err, ErrInvalidCard) {
			t.Errorf("PokerCard(%d) error = %v, want ErrInvalidCard", c, err)
		}
	}
}

func TestShuffleKeepsEveryCard(t *testing.T) {
	r := NewRand(7)
	for round := 0; round < 20; round++ {
		deck := NewDeck()
		Shuffle(deck, r)
		assertPermutation(t, deck)
	}
}

func assertPermutation(t *testing.T, deck []Card) {
	t.Helper()
	if len(deck) != DeckSize {
		t.Fatalf("deck has %d cards", len(deck))
	}
	var seen [DeckSize + 1]bool
	for _, c := range deck {
		if c < 1 || c > DeckSize || seen[c] {
			t.Fatalf("bad or repeated card %d in %v", c, deck)
		}
		seen[c] = true
	}
}
