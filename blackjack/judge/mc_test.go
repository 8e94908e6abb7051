package judge

import (
	"errors"
	"testing"

	"github.com/snowme34/blackjack-cli/blackjack/agent"
	"github.com/snowme34/blackjack-cli/blackjack/engine"
)

func dealtObservation(t *testing.T, front ...engine.Card) agent.Observation {
	t.Helper()
	deck := append([]engine.Card(nil), front...)
	used := map[engine.Card]bool{}
	for _, c := range front {
		used[c] = true
	}
	for _, c := range engine.NewDeck() {
		if !used[c] {
			deck = append(deck, c)
		}
	}
	g := engine.NewGame(engine.NewRand(1), nil)
	if err := g.ResetWith(deck); err != nil {
		t.Fatalf("ResetWith: %v", err)
	}
	if n, ok := g.Deal(); !ok || n != engine.NoNatural {
		t.Fatalf("Deal() = %v, %v", n, ok)
	}
	return agent.BuildObservation(g)
}

func TestEstimateBustOnTwenty(t *testing.T) {
	// dealer 10 up, player King+Queen; only the four Aces save a hit
	o := dealtObservation(t, 10, 13, 6, 12)

	odds, err := Estimate(o, 2000, engine.NewRand(99))
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if want := 45.0 / 49.0; odds.BustOnHit != want {
		t.Fatalf("BustOnHit = %v, want %v", odds.BustOnHit, want)
	}
	if odds.Win <= odds.Lose {
		t.Fatalf("standing on 20 against a 10 should win more than lose: %+v", odds)
	}
	if sum := odds.Win + odds.Push + odds.Lose; sum < 0.999 || sum > 1.001 {
		t.Fatalf("probabilities sum to %v", sum)
	}
	if odds.Trials != 2000 {
		t.Fatalf("trials = %d", odds.Trials)
	}
}

func TestEstimateNoBustOnLowHand(t *testing.T) {
	o := dealtObservation(t, 10, 2, 6, 3)

	odds, err := Estimate(o, 200, engine.NewRand(1))
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if odds.BustOnHit != 0 {
		t.Fatalf("BustOnHit = %v for a hand of 5", odds.BustOnHit)
	}
	// standing on 5 only wins when the dealer busts
	if odds.Push != 0 {
		t.Fatalf("push is impossible on 5: %+v", odds)
	}
}

func TestEstimateDefaultsTrials(t *testing.T) {
	o := dealtObservation(t, 10, 2, 6, 3)
	odds, err := Estimate(o, 0, engine.NewRand(1))
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if odds.Trials != DefaultTrials {
		t.Fatalf("trials = %d", odds.Trials)
	}
}

func TestEstimateOutsidePlayerTurn(t *testing.T) {
	o := agent.Observation{Phase: engine.Resolved}
	if _, err := Estimate(o, 10, engine.NewRand(1)); !errors.Is(err, ErrNotPlayersTurn) {
		t.Fatalf("expected ErrNotPlayersTurn, got %v", err)
	}
}
