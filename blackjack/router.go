package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/snowme34/blackjack-cli/blackjack/engine"
)

// Router serves a read-only view of the running session.
func Router(sess *Session) http.Handler {
	mux := chi.NewRouter()

	mux.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"ok": true})
	})

	mux.Get("/api/session", func(w http.ResponseWriter, r *http.Request) {
		st := sess.Snapshot()
		lo, hi := WilsonCI95(st.PlayerWins, st.Pushes, st.Rounds-st.Aborted)
		out := struct {
			Started    time.Time      `json:"started"`
			Stats      SessionStats   `json:"stats"`
			ScoreRate  float64        `json:"score_rate"`
			CI95       [2]float64     `json:"score_rate_ci95"`
			LastResult *engine.Result `json:"last_result,omitempty"`
		}{
			Started:   sess.Started(),
			Stats:     st,
			ScoreRate: st.ScoreRate(),
			CI95:      [2]float64{lo, hi},
		}
		if last, ok := sess.Last(); ok {
			out.LastResult = &last
		}
		writeJSON(w, out)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
