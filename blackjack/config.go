package main

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/snowme34/blackjack-cli/blackjack/judge"
)

var debugState bool

// Config is read once from the environment (and .env, if present).
type Config struct {
	Color       bool
	Debug       bool
	DeckSeed    int64
	OddsTrials  int
	StatsAddr   string
	seedFromEnv bool
}

// ErrConfig marks an environment setting that cannot be used.
var ErrConfig = errors.New("invalid configuration")

func loadConfig() (Config, error) {
	seed, fromEnv, err := deckSeedFromEnvOrCrypto()
	if err != nil {
		return Config{}, err
	}
	trials := judge.DefaultTrials
	if s := strings.TrimSpace(os.Getenv("ODDS_TRIALS")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("%w: ODDS_TRIALS=%q must be a positive integer", ErrConfig, s)
		}
		trials = n
	}
	return Config{
		Color:       (os.Getenv("NO_COLOR") == "") && (strings.TrimSpace(os.Getenv("USE_COLOR")) != "0"),
		Debug:       asBool(os.Getenv("DEBUG")),
		DeckSeed:    seed,
		OddsTrials:  trials,
		StatsAddr:   strings.TrimSpace(getenv("STATS_ADDR", "")),
		seedFromEnv: fromEnv,
	}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func secureBaseSeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err == nil {
		return int64(binary.LittleEndian.Uint64(b[:]) ^ uint64(time.Now().UnixNano()))
	}
	return time.Now().UnixNano()
}

// DECK_SEED makes every shuffle of the session reproducible. 0 means unset.
func deckSeedFromEnvOrCrypto() (int64, bool, error) {
	s := strings.TrimSpace(os.Getenv("DECK_SEED"))
	if s == "" {
		return secureBaseSeed(), false, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: DECK_SEED=%q is not an int64", ErrConfig, s)
	}
	if v == 0 {
		return secureBaseSeed(), false, nil
	}
	return v, true, nil
}
