package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

const (
	DeckSize = 52
	SuitSize = 13

	Goal        = 21 // best score
	DealerStand = 17 // dealer stops drawing at or above this
	AceBonus    = 10 // an Ace counted as 11 adds this on top of its base 1
	FaceScore   = 10
)

const (
	Clubs = iota
	Hearts
	Diamonds
	Spades
)

const (
	AceRank   = 1
	JackRank  = 11
	QueenRank = 12
	KingRank  = 13
)

var (
	ErrInvalidSuit = errors.New("invalid suit")
	ErrInvalidCard = errors.New("invalid card")
	ErrBadDeck     = errors.New("deck is not a permutation of 1..52")
)

// Card is a deck identifier in 1..52; 0 means no card.
// 1-13 clubs, 14-26 hearts, 27-39 diamonds, 40-52 spades.
type Card int

func SuitRank(c Card) (suit, rank int) {
	return (int(c) - 1) / SuitSize, ((int(c) - 1) % SuitSize) + 1
}

// Score ignores the Ace's alternative value.
func Score(c Card) int {
	_, rank := SuitRank(c)
	return min(rank, FaceScore)
}

func (c Card) IsAce() bool {
	_, rank := SuitRank(c)
	return rank == AceRank
}

var suitNames = [...]string{"clubs", "hearts", "diamonds", "spades"}

// DisplayName renders e.g. "Ace of spades (1 or 11)".
func DisplayName(c Card) (string, error) {
	suit, rank := SuitRank(c)
	if c == 0 {
		return "Empty card", nil
	}

	var name string
	switch rank {
	case AceRank:
		name = "Ace"
	case JackRank:
		name = "Jack"
	case QueenRank:
		name = "Queen"
	case KingRank:
		name = "King"
	default:
		name = strconv.Itoa(rank)
	}

	if suit < 0 || suit >= len(suitNames) {
		return "ERROR", fmt.Errorf("card %d: %w %d", int(c), ErrInvalidSuit, suit)
	}
	name += " of " + suitNames[suit]

	score := " (" + strconv.Itoa(Score(c))
	if rank == AceRank {
		score += " or 11"
	}
	return name + score + ")", nil
}

func (c Card) String() string {
	s, _ := DisplayName(c)
	return s
}

// NewDeck returns the identifiers 1..52 in order.
func NewDeck() []Card {
	deck := make([]Card, DeckSize)
	for i := range deck {
		deck[i] = Card(i + 1)
	}
	return deck
}

func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func Shuffle(deck []Card, r *rand.Rand) {
	for i := len(deck) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}
