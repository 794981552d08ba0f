package main

import (
	"testing"

	"github.com/rs/zerolog"

	"yumi/internal/engine"
	"yumi/internal/game"
)

func TestPlayGameShortMatch(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.StartDepth = 1
	cfg.MaxDepth = 1
	mgr := game.NewManager(&cfg.Rules)

	opts := playOptions{moveTime: 1, maxMoves: 12, randomPlies: 4}
	res, err := playGame(mgr, cfg, opts, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if res.plies == 0 || res.plies > opts.maxMoves {
		t.Fatalf("plies = %d", res.plies)
	}
	if res.status == game.StatusOngoing && res.plies != opts.maxMoves {
		t.Fatalf("ongoing game stopped after %d plies", res.plies)
	}
	if _, err := mgr.Get(res.id); err == nil {
		t.Fatal("finished game still registered")
	}
}
