package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"

	"github.com/snowme34/blackjack-cli/blackjack/agent"
	"github.com/snowme34/blackjack-cli/blackjack/engine"
	"github.com/snowme34/blackjack-cli/blackjack/judge"
)

//
// ===== pretty printing =====
//

var useColor bool

const (
	colReset  = "\033[0m"
	colBold   = "\033[1m"
	colDim    = "\033[2m"
	colGreen  = "\033[32m"
	colRed    = "\033[31m"
	colYellow = "\033[33m"
	colCyan   = "\033[36m"
)

func paint(code, s string) string {
	if !useColor {
		return s
	}
	return code + s + colReset
}
func bold(s string) string { return paint(colBold, s) }
func dim(s string) string  { return paint(colDim, s) }
func good(s string) string { return paint(colGreen, s) }
func warn(s string) string { return paint(colYellow, s) }
func bad(s string) string  { return paint(colRed, s) }
func cyan(s string) string { return paint(colCyan, s) }

const rule = "==================="

func roleLabel(r engine.Role) string {
	if r == engine.Dealer {
		return "Dealer"
	}
	return "Player"
}

// Console renders a round as plain text.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console { return &Console{out: out} }

func (c *Console) printf(format string, args ...any) { fmt.Fprintf(c.out, format, args...) }

func (c *Console) Greet() { c.printf("Welcome to simplified Blackjack in cli.\n") }
func (c *Console) Bye()   { c.printf("Bye\n") }

func (c *Console) Menu() {
	c.printf("Options: \n  s: Start the game\n  q: Quit\n")
}

func (c *Console) Prompt() {
	c.printf("\n%s\nOptions: Status(t), View Dealer's card(d), View Player's card(p), Hit(h), Stand(s), Odds(o)\n\n",
		bold("Waiting for player..."))
}

func (c *Console) Welcome(roundID string) {
	c.printf("\n%s\nWelcome to a new game. %s\nNow we deal first %d cards\n", rule, dim("round "+roundID), engine.InitialCards)
}

func (c *Console) CardReceived(role engine.Role, card engine.Card) {
	c.printf("%s received card: %s\n", roleLabel(role), cyan(card.String()))
}

func (c *Console) ShowHand(role engine.Role, cards []engine.Card, hideHole bool) {
	if len(cards) == 0 {
		c.printf("Cards of %s: none\n", roleLabel(role))
		return
	}
	if hideHole && len(cards) > 1 {
		c.printf("Cards of %s: %s and a hidden card.\n", roleLabel(role), cards[0])
		return
	}
	c.printf("Cards of %s: %s\n", roleLabel(role), strings.Join(agent.CardNames(cards), ", "))
}

func (c *Console) ShowStatus(t engine.Table) {
	c.printf("\n* Player's score: %s\n* Dealer's face-up card: %s\n\nCard used: %d, Card remaining: %d\n",
		bold(fmt.Sprint(t.PlayerScore)), t.DealerUp, t.Used, t.Remaining)
}

func (c *Console) Natural(n engine.Natural) {
	switch n {
	case engine.PlayerNatural:
		c.printf("%s Player has a natural (Ace and a 10-score card) and won this game.\n", good("Congratulations!"))
	case engine.DealerNatural:
		c.printf("%s Dealer has a natural (Ace and a 10-score card) and won this game.\n", bad("Sorry."))
	case engine.BothNatural:
		c.printf("Both player and dealer have a natural, tie.\n")
	}
	c.printf("%s\n", rule)
}

func (c *Console) OutOfCards() { c.printf("%s\n", warn("Run out of cards")) }

func (c *Console) Result(res engine.Result, player, dealer []engine.Card) {
	c.printf("\nGame ends\n")
	c.ShowHand(engine.Player, player, false)
	c.printf("Final score of player: %d\n", res.PlayerScore)
	c.ShowHand(engine.Dealer, dealer, false)
	c.printf("Final score of dealer: %d\n", res.DealerScore)
	switch res.Outcome {
	case engine.PlayerWin:
		c.printf("%s\n", good("Congratulations! Player won!"))
	case engine.DealerWin:
		c.printf("%s\n", bad("Sorry. Dealer won."))
	default:
		c.printf("Nice try but we got a tie.\n")
	}
	c.printf("%s=\n", rule)
}

func (c *Console) Odds(o judge.Odds) {
	c.printf("\n* Chance to bust on a hit: %s\n* If you stand now: win %s, tie %s, lose %s %s\n",
		pct(o.BustOnHit), good(pct(o.Win)), pct(o.Push), bad(pct(o.Lose)), dim(fmt.Sprintf("(%d deals)", o.Trials)))
}

func (c *Console) Summary(s SessionStats) {
	if s.Rounds == 0 {
		return
	}
	lo, hi := WilsonCI95(s.PlayerWins, s.Pushes, s.Rounds-s.Aborted)
	c.printf("\n%s rounds %d | player %d | dealer %d | ties %d | aborted %d\n",
		bold("Session:"), s.Rounds, s.PlayerWins, s.DealerWins, s.Pushes, s.Aborted)
	c.printf("Player score rate %s %s\n", pct(s.ScoreRate()), dim(fmt.Sprintf("(95%% CI %s-%s)", pct(lo), pct(hi))))
}

func pct(p float64) string { return fmt.Sprintf("%.1f%%", 100*p) }

//
// ===== input =====
//

// prompter reads in-round commands one token at a time; unknown or illegal
// input just re-prompts.
type prompter struct {
	sc  *bufio.Scanner
	con *Console
	g   *engine.Game
	eof bool
}

func (p *prompter) Next() (engine.Command, bool) {
	for {
		p.con.Prompt()
		if !p.sc.Scan() {
			p.eof = true
			return "", false
		}
		cmd, ok := engine.ParseCommand(p.sc.Text())
		if !ok {
			continue
		}
		if err := agent.Validate(agent.BuildObservation(p.g), cmd); err != nil {
			if debugState {
				log.Printf("ignored: %v", err)
			}
			continue
		}
		return cmd, true
	}
}

// oddsAdvisor answers the odds command from what the player can see.
type oddsAdvisor struct {
	con    *Console
	trials int
	rng    *rand.Rand
}

func (a oddsAdvisor) Advise(g *engine.Game) {
	odds, err := judge.Estimate(agent.BuildObservation(g), a.trials, a.rng)
	if err != nil {
		a.con.printf("%s\n", warn(err.Error()))
		return
	}
	a.con.Odds(odds)
}

// play is the outer menu loop: s starts a round, q quits, input end quits.
func play(in io.Reader, con *Console, g *engine.Game, sess *Session) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	p := &prompter{sc: sc, con: con, g: g}

	con.Greet()
loop:
	for !p.eof {
		con.Menu()
		if !sc.Scan() {
			break
		}
		switch sc.Text()[0] {
		case 's':
			res := g.Run(p)
			sess.Record(res)
			if debugState {
				log.Printf("round %s outcome=%s natural=%d aborted=%v player=%d dealer=%d used=%d",
					res.RoundID, res.Outcome, res.Natural, res.Aborted, res.PlayerScore, res.DealerScore, res.CardsUsed)
			}
		case 'q':
			break loop
		}
	}
	con.Summary(sess.Snapshot())
	con.Bye()
}
