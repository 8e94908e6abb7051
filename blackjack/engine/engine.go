package engine

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

const InitialCards = 4

// Reporter renders what happens at the table. The engine itself never prints.
type Reporter interface {
	Welcome(roundID string)
	CardReceived(role Role, c Card)
	ShowHand(role Role, cards []Card, hideHole bool)
	ShowStatus(t Table)
	Natural(n Natural)
	OutOfCards()
	Result(res Result, player, dealer []Card)
}

// Prompter feeds the player's commands into Run. ok is false once input ends.
type Prompter interface {
	Next() (cmd Command, ok bool)
}

// Advisor answers the odds command; a game without one ignores it.
type Advisor interface {
	Advise(g *Game)
}

// Table is the public state shown by the status command.
type Table struct {
	PlayerScore int  `json:"player_score"`
	DealerUp    Card `json:"dealer_up"`
	Used        int  `json:"used"`
	Remaining   int  `json:"remaining"`
}

// Hand holds one participant's cards. base and aces are caches of the cards;
// recount must always agree with them.
type Hand struct {
	Role  Role
	cards []Card
	base  int
	aces  int
}

func NewHand(role Role, cards ...Card) *Hand {
	h := &Hand{Role: role, cards: make([]Card, 0, DeckSize)}
	for _, c := range cards {
		h.add(c)
	}
	return h
}

func (h *Hand) add(c Card) bool {
	if len(h.cards) >= DeckSize {
		return false
	}
	h.cards = append(h.cards, c)
	h.base += Score(c)
	if c.IsAce() {
		h.aces++
	}
	return true
}

func (h *Hand) reset() {
	h.cards = h.cards[:0]
	h.base, h.aces = 0, 0
}

func (h *Hand) recount() (base, aces int) {
	for _, c := range h.cards {
		base += Score(c)
		if c.IsAce() {
			aces++
		}
	}
	return base, aces
}

// Score is the best total not above 21: each Ace already counts 1 and is
// upgraded by 10 while that still fits. It exceeds 21 only on a bust.
func (h *Hand) Score() int {
	score := h.base
	for i := 0; i < h.aces && score+AceBonus <= Goal; i++ {
		score += AceBonus
	}
	return score
}

func (h *Hand) Len() int  { return len(h.cards) }
func (h *Hand) Base() int { return h.base }
func (h *Hand) Aces() int { return h.aces }

func (h *Hand) Cards() []Card { return append([]Card(nil), h.cards...) }

// Up is the face-up card, 0 for an empty hand.
func (h *Hand) Up() Card {
	if len(h.cards) == 0 {
		return 0
	}
	return h.cards[0]
}

func (h *Hand) last() Card { return h.cards[len(h.cards)-1] }

type Game struct {
	ID     string
	Dealer *Hand
	Player *Hand

	deck  [DeckSize]Card
	idx   int
	phase Phase
	stood bool

	rng *rand.Rand
	rep Reporter
	adv Advisor
}

func NewGame(rng *rand.Rand, rep Reporter) *Game {
	if rng == nil {
		rng = NewRand(0)
	}
	if rep == nil {
		rep = NopReporter{}
	}
	g := &Game{
		Dealer: NewHand(Dealer),
		Player: NewHand(Player),
		rng:    rng,
		rep:    rep,
	}
	copy(g.deck[:], NewDeck())
	return g
}

func (g *Game) SetAdvisor(a Advisor) { g.adv = a }

func (g *Game) Phase() Phase   { return g.phase }
func (g *Game) Stood() bool    { return g.stood }
func (g *Game) Used() int      { return g.idx }
func (g *Game) Remaining() int { return DeckSize - g.idx }

func (g *Game) hand(role Role) *Hand {
	if role == Dealer {
		return g.Dealer
	}
	return g.Player
}

// Reset reshuffles the whole deck and clears both hands for a new round.
func (g *Game) Reset() {
	deck := NewDeck()
	Shuffle(deck, g.rng)
	g.install(deck)
}

// ResetWith starts a round on a fixed deck order.
func (g *Game) ResetWith(deck []Card) error {
	if len(deck) != DeckSize {
		return fmt.Errorf("%w: got %d cards", ErrBadDeck, len(deck))
	}
	var seen [DeckSize + 1]bool
	for _, c := range deck {
		if !c.Valid() {
			return fmt.Errorf("%w: card %d is not a valid card", ErrBadDeck, int(c))
		}
		if seen[c] {
			return fmt.Errorf("%w: card %d repeated", ErrBadDeck, int(c))
		}
		seen[c] = true
	}
	g.install(deck)
	return nil
}

func (g *Game) install(deck []Card) {
	copy(g.deck[:], deck)
	g.idx = 0
	g.Dealer.reset()
	g.Player.reset()
	g.phase = Idle
	g.stood = false
	g.ID = uuid.NewString()
}

// GiveCard moves the card under the cursor into role's hand. Player cards
// are announced right away; dealer cards only once the dealer plays.
func (g *Game) GiveCard(role Role) bool {
	h := g.hand(role)
	if g.idx >= DeckSize || !h.add(g.deck[g.idx]) {
		return false
	}
	g.idx++
	if role == Player || g.phase == DealerTurn {
		g.rep.CardReceived(role, h.last())
	}
	return true
}

// Deal gives the opening four cards, dealer first, and settles naturals.
func (g *Game) Deal() (Natural, bool) {
	if g.phase != Idle {
		return NoNatural, false
	}
	g.rep.Welcome(g.ID)
	for i := 0; i < InitialCards; i++ {
		role := Dealer
		if i&1 == 1 {
			role = Player
		}
		if !g.GiveCard(role) {
			return NoNatural, false
		}
	}
	g.phase = Dealt
	g.rep.ShowHand(Player, g.Player.Cards(), false)
	g.rep.ShowHand(Dealer, g.Dealer.Cards(), true)

	p, d := g.Player.Score(), g.Dealer.Score()
	n := NoNatural
	switch {
	case p == Goal && d == Goal:
		n = BothNatural
	case p == Goal:
		n = PlayerNatural
	case d == Goal:
		n = DealerNatural
	}
	if n != NoNatural {
		g.phase = Resolved
	} else {
		g.phase = PlayerTurn
	}
	return n, true
}

func (g *Game) Score(role Role) int { return g.hand(role).Score() }

func (g *Game) Hit() bool {
	if g.phase != PlayerTurn {
		return false
	}
	return g.GiveCard(Player)
}

// Stand ends the player's turn; the dealer then draws to 17. False means the
// deck ran out before the dealer was done.
func (g *Game) Stand() bool {
	if g.phase != PlayerTurn {
		return false
	}
	g.stood = true
	g.phase = DealerTurn
	g.rep.ShowHand(Dealer, g.Dealer.Cards(), false)
	for g.Dealer.Score() < DealerStand {
		if !g.GiveCard(Dealer) {
			return false
		}
	}
	g.phase = Resolved
	return true
}

// Check judges the hands without changing them. Before the player stands
// only a player 21 or bust decides anything; the dealer's hand is not looked at.
func (g *Game) Check(hasStood bool) Outcome {
	return Judge(g.Player.Score(), g.Dealer.Score(), hasStood)
}

// Judge compares two scores the way Check does.
func Judge(player, dealer int, hasStood bool) Outcome {
	if player > Goal {
		return DealerWin
	}
	if hasStood {
		if dealer > Goal {
			return PlayerWin
		}
		pd, dd := Goal-player, Goal-dealer
		switch {
		case pd == dd:
			return Push
		case pd < dd:
			return PlayerWin
		default:
			return DealerWin
		}
	}
	if player == Goal {
		return PlayerWin
	}
	return Push
}

func (g *Game) Table() Table {
	return Table{
		PlayerScore: g.Player.Score(),
		DealerUp:    g.Dealer.Up(),
		Used:        g.Used(),
		Remaining:   g.Remaining(),
	}
}

// Run shuffles and plays one full round.
func (g *Game) Run(p Prompter) Result {
	g.Reset()
	return g.Play(p)
}

// Play runs a round from a freshly reset deck: deal, naturals, the player's
// commands until a stand, bust, 21 or an empty deck, then the dealer, then
// the verdict.
func (g *Game) Play(p Prompter) Result {
	n, ok := g.Deal()
	if !ok {
		g.rep.OutOfCards()
		return g.abort()
	}
	if n != NoNatural {
		g.rep.Natural(n)
		res := g.result(n.Outcome())
		res.Natural = n
		return res
	}
	g.rep.ShowStatus(g.Table())

	for !g.stood && g.Check(false) == Push && g.Remaining() > 0 {
		cmd, ok := p.Next()
		if !ok {
			return g.abort()
		}
		switch cmd {
		case Status:
			g.rep.ShowStatus(g.Table())
		case ViewDealer:
			g.rep.ShowHand(Dealer, g.Dealer.Cards(), !g.stood)
		case ViewPlayer:
			g.rep.ShowHand(Player, g.Player.Cards(), false)
		case Hit:
			g.Hit()
			g.rep.ShowStatus(g.Table())
		case Stand:
			if !g.Stand() {
				g.rep.OutOfCards()
				return g.abort()
			}
		case Odds:
			if g.adv != nil {
				g.adv.Advise(g)
			}
		}
		if g.phase != Resolved && g.Remaining() == 0 {
			g.rep.OutOfCards()
			return g.abort()
		}
	}

	g.phase = Resolved
	res := g.result(g.Check(true))
	g.rep.Result(res, g.Player.Cards(), g.Dealer.Cards())
	return res
}

func (g *Game) result(o Outcome) Result {
	return Result{
		RoundID:     g.ID,
		Outcome:     o,
		PlayerScore: g.Player.Score(),
		DealerScore: g.Dealer.Score(),
		CardsUsed:   g.idx,
	}
}

func (g *Game) abort() Result {
	g.phase = Resolved
	res := g.result(Push)
	res.Aborted = true
	return res
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Welcome(string)                {}
func (NopReporter) CardReceived(Role, Card)       {}
func (NopReporter) ShowHand(Role, []Card, bool)   {}
func (NopReporter) ShowStatus(Table)              {}
func (NopReporter) Natural(Natural)               {}
func (NopReporter) OutOfCards()                   {}
func (NopReporter) Result(Result, []Card, []Card) {}
