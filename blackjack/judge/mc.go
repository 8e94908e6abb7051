package judge

import (
	"errors"
	"math/rand"

	"github.com/snowme34/blackjack-cli/blackjack/agent"
	"github.com/snowme34/blackjack-cli/blackjack/engine"
)

const DefaultTrials = 2000

var (
	ErrNotPlayersTurn = errors.New("odds are only available during the player's turn")
	ErrNoSamples      = errors.New("no consistent deal could be sampled")
)

// Odds is what the player can expect from here. BustOnHit counts the unseen
// cards directly; the stand figures are Monte Carlo estimates.
type Odds struct {
	Trials    int     `json:"trials"`
	BustOnHit float64 `json:"bust_on_hit"`
	Win       float64 `json:"win_if_stand"`
	Push      float64 `json:"push_if_stand"`
	Lose      float64 `json:"lose_if_stand"`
}

// Estimate works only from the observation, so the hidden hole card is
// sampled like any other unseen card.
func Estimate(o agent.Observation, trials int, r *rand.Rand) (Odds, error) {
	if o.Phase != engine.PlayerTurn {
		return Odds{}, ErrNotPlayersTurn
	}
	if trials <= 0 {
		trials = DefaultTrials
	}
	unseen := agent.Unseen(o)
	if len(unseen) == 0 {
		return Odds{}, ErrNoSamples
	}

	// Every unseen card is equally likely to be the next one off the deck.
	bust := 0
	for _, c := range unseen {
		h := engine.NewHand(engine.Player, append(append([]engine.Card{}, o.PlayerCards...), c)...)
		if h.Score() > engine.Goal {
			bust++
		}
	}

	player := engine.NewHand(engine.Player, o.PlayerCards...).Score()
	pile := make([]engine.Card, len(unseen))
	var win, push, lose int
	for done, attempts := 0, 0; done < trials && attempts < trials*10; attempts++ {
		copy(pile, unseen)
		engine.Shuffle(pile, r)

		dealerCards := append([]engine.Card{}, o.DealerCards...)
		next := pile
		if o.HoleHidden {
			dealerCards = append(dealerCards, next[0])
			next = next[1:]
			// A dealer natural would already have ended the round.
			if engine.NewHand(engine.Dealer, dealerCards...).Score() == engine.Goal {
				continue
			}
		}
		dealer := engine.NewHand(engine.Dealer, dealerCards...)
		for dealer.Score() < engine.DealerStand && len(next) > 0 {
			dealerCards = append(dealerCards, next[0])
			next = next[1:]
			dealer = engine.NewHand(engine.Dealer, dealerCards...)
		}

		switch engine.Judge(player, dealer.Score(), true) {
		case engine.PlayerWin:
			win++
		case engine.DealerWin:
			lose++
		default:
			push++
		}
		done++
	}
	trials = win + push + lose
	if trials == 0 {
		return Odds{}, ErrNoSamples
	}

	n := float64(trials)
	return Odds{
		Trials:    trials,
		BustOnHit: float64(bust) / float64(len(unseen)),
		Win:       float64(win) / n,
		Push:      float64(push) / n,
		Lose:      float64(lose) / n,
	}, nil
}
