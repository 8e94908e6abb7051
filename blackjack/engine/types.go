package engine

type Role string

const (
	Dealer Role = "dealer"
	Player Role = "player"
)

type Command string

const (
	Status     Command = "status"
	ViewDealer Command = "dealer"
	ViewPlayer Command = "player"
	Hit        Command = "hit"
	Stand      Command = "stand"
	Odds       Command = "odds"
)

// ParseCommand maps one line of prompt input to a command. Only the first
// character counts, the way the prompt has always read it.
func ParseCommand(s string) (Command, bool) {
	if s == "" {
		return "", false
	}
	switch s[0] {
	case 't':
		return Status, true
	case 'd':
		return ViewDealer, true
	case 'p':
		return ViewPlayer, true
	case 'h':
		return Hit, true
	case 's':
		return Stand, true
	case 'o':
		return Odds, true
	}
	return "", false
}

type Phase string

const (
	Idle       Phase = "idle"
	Dealt      Phase = "dealt"
	PlayerTurn Phase = "player_turn"
	DealerTurn Phase = "dealer_turn"
	Resolved   Phase = "resolved"
)

// Outcome is seen from the player's side. Push doubles as "no decision yet"
// while the player is still drawing.
type Outcome int

const (
	DealerWin Outcome = -1
	Push      Outcome = 0
	PlayerWin Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case DealerWin:
		return "dealer_win"
	case PlayerWin:
		return "player_win"
	default:
		return "push"
	}
}

type Natural int

const (
	NoNatural Natural = iota
	PlayerNatural
	DealerNatural
	BothNatural
)

// Outcome of a natural as it settles the round.
func (n Natural) Outcome() Outcome {
	switch n {
	case PlayerNatural:
		return PlayerWin
	case DealerNatural:
		return DealerWin
	default:
		return Push
	}
}

// Result is what a finished round reports.
type Result struct {
	RoundID     string  `json:"round_id"`
	Outcome     Outcome `json:"outcome"`
	Natural     Natural `json:"natural"`
	Aborted     bool    `json:"aborted"` // deck ran out or input ended
	PlayerScore int     `json:"player_score"`
	DealerScore int     `json:"dealer_score"`
	CardsUsed   int     `json:"cards_used"`
}
