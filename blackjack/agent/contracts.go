package agent

import (
	"fmt"

	"github.com/snowme34/blackjack-cli/blackjack/engine"
)

// Observation is everything the player is allowed to see. The dealer's hole
// card stays out of it until the player stands.
type Observation struct {
	RoundID     string        `json:"round_id"`
	Phase       engine.Phase  `json:"phase"`
	PlayerCards []engine.Card `json:"player_cards"`
	PlayerScore int           `json:"player_score"`
	DealerCards []engine.Card `json:"dealer_cards"` // up-card only before a stand
	DealerScore int           `json:"dealer_score,omitempty"`
	HoleHidden  bool          `json:"hole_hidden"`
	Used        int           `json:"cards_used"`
	Remaining   int           `json:"cards_remaining"`
	Legal       []string      `json:"legal_commands"`
}

// BuildObservation converts engine state into the player's view.
func BuildObservation(g *engine.Game) Observation {
	o := Observation{
		RoundID:     g.ID,
		Phase:       g.Phase(),
		PlayerCards: g.Player.Cards(),
		PlayerScore: g.Player.Score(),
		Used:        g.Used(),
		Remaining:   g.Remaining(),
		HoleHidden:  !g.Stood() && g.Dealer.Len() > 1 && g.Phase() != engine.Resolved,
	}
	if o.HoleHidden {
		o.DealerCards = []engine.Card{g.Dealer.Up()}
	} else {
		o.DealerCards = g.Dealer.Cards()
		o.DealerScore = g.Dealer.Score()
	}
	for _, c := range Legal(g.Phase()) {
		o.Legal = append(o.Legal, string(c))
	}
	return o
}

// Legal lists the commands a phase accepts.
func Legal(p engine.Phase) []engine.Command {
	switch p {
	case engine.PlayerTurn:
		return []engine.Command{engine.Status, engine.ViewDealer, engine.ViewPlayer, engine.Hit, engine.Stand, engine.Odds}
	case engine.Dealt, engine.DealerTurn, engine.Resolved:
		return []engine.Command{engine.Status, engine.ViewDealer, engine.ViewPlayer}
	default:
		return nil
	}
}

// Validate checks a command against the observation.
func Validate(o Observation, cmd engine.Command) error {
	for _, l := range o.Legal {
		if l == string(cmd) {
			return nil
		}
	}
	return fmt.Errorf("illegal command %q in phase %s (legal: %v)", cmd, o.Phase, o.Legal)
}

// Unseen returns the cards the player cannot rule out: everything except
// their own cards and the visible dealer cards.
func Unseen(o Observation) []engine.Card {
	seen := make(map[engine.Card]bool, len(o.PlayerCards)+len(o.DealerCards))
	for _, c := range o.PlayerCards {
		seen[c] = true
	}
	for _, c := range o.DealerCards {
		seen[c] = true
	}
	out := make([]engine.Card, 0, engine.DeckSize-len(seen))
	for _, c := range engine.NewDeck() {
		if !seen[c] {
			out = append(out, c)
		}
	}
	return out
}

func CardNames(cs []engine.Card) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}
