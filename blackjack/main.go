package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/snowme34/blackjack-cli/blackjack/engine"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	useColor = cfg.Color
	debugState = cfg.Debug
	if cfg.Debug && cfg.seedFromEnv {
		log.Printf("DECK_SEED=%d", cfg.DeckSeed)
	}

	sess := NewSession()
	if cfg.StatsAddr != "" {
		srv := serveStats(cfg.StatsAddr, sess)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	con := NewConsole(os.Stdout)
	g := newGame(cfg, con)
	play(os.Stdin, con, g, sess)
}

func newGame(cfg Config, con *Console) *engine.Game {
	g := engine.NewGame(engine.NewRand(cfg.DeckSeed), con)
	// Odds sampling gets its own stream so asking for odds never changes the shuffles.
	g.SetAdvisor(oddsAdvisor{con: con, trials: cfg.OddsTrials, rng: engine.NewRand(cfg.DeckSeed ^ 0x5DEECE66D)})
	return g
}

func serveStats(addr string, sess *Session) *http.Server {
	srv := &http.Server{Addr: addr, Handler: Router(sess), ReadTimeout: 15 * time.Second, WriteTimeout: 15 * time.Second}
	go func() {
		log.Printf("session stats on http://%s/api/session", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("stats server: %v", err)
		}
	}()
	return srv
}
