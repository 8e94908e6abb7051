package main

import (
	"math"
	"sync"
	"time"

	"github.com/snowme34/blackjack-cli/blackjack/engine"
)

// SessionStats tallies finished rounds. Aborted rounds are counted but kept
// out of the win/tie/loss columns.
type SessionStats struct {
	Rounds     int `json:"rounds"`
	PlayerWins int `json:"player_wins"`
	DealerWins int `json:"dealer_wins"`
	Pushes     int `json:"pushes"`
	Aborted    int `json:"aborted"`
	Naturals   int `json:"naturals"`
	Busts      int `json:"player_busts"`
	CardsUsed  int `json:"cards_used"`
}

// ScoreRate counts a tie as half a win.
func (s SessionStats) ScoreRate() float64 {
	n := s.Rounds - s.Aborted
	if n <= 0 {
		return 0
	}
	return (float64(s.PlayerWins) + 0.5*float64(s.Pushes)) / float64(n)
}

func (s *SessionStats) add(r engine.Result) {
	s.Rounds++
	s.CardsUsed += r.CardsUsed
	if r.Aborted {
		s.Aborted++
		return
	}
	if r.Natural != engine.NoNatural {
		s.Naturals++
	}
	if r.PlayerScore > engine.Goal {
		s.Busts++
	}
	switch r.Outcome {
	case engine.PlayerWin:
		s.PlayerWins++
	case engine.DealerWin:
		s.DealerWins++
	default:
		s.Pushes++
	}
}

// Session is shared between the game loop and the stats endpoint.
type Session struct {
	mu      sync.Mutex
	started time.Time
	stats   SessionStats
	last    *engine.Result
}

func NewSession() *Session { return &Session{started: time.Now()} }

func (s *Session) Record(r engine.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.add(r)
	s.last = &r
}

func (s *Session) Snapshot() SessionStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *Session) Last() (engine.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return engine.Result{}, false
	}
	return *s.last, true
}

func (s *Session) Started() time.Time { return s.started }

// WilsonCI95 for the player's score rate, ties counted as half a win.
func WilsonCI95(wins, ties, total int) (low, hi float64) {
	if total <= 0 {
		return 0, 1
	}
	z := 1.96
	n := float64(total)
	p := (float64(wins) + 0.5*float64(ties)) / n
	den := 1 + (z*z)/n
	center := p + (z*z)/(2*n)
	half := z * math.Sqrt((p*(1-p))/n+(z*z)/(4*n*n))
	return math.Max(0, (center-half)/den), math.Min(1, (center+half)/den)
}
