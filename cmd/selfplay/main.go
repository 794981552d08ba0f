package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"yumi/internal/engine"
	"yumi/internal/game"
)

func main() {
	games := flag.Int("games", 8, "number of games to play")
	moveTime := flag.Float64("movetime", 0.2, "seconds per engine move")
	maxMoves := flag.Int("maxmoves", 300, "plies before a game is abandoned")
	randomPlies := flag.Int("randomplies", 4, "random opening plies per game")
	parallel := flag.Int("parallel", runtime.NumCPU(), "games played at the same time")
	configPath := flag.String("config", "", "path to JSON engine config")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", *logLevel).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		if cfg, err = engine.LoadConfig(*configPath); err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("load config")
		}
	}

	opts := playOptions{
		moveTime:    *moveTime,
		maxMoves:    *maxMoves,
		randomPlies: *randomPlies,
	}
	mgr := game.NewManager(&cfg.Rules)
	results := make([]result, *games)

	start := time.Now()
	var g errgroup.Group
	g.SetLimit(max(*parallel, 1))
	for i := 0; i < *games; i++ {
		i := i
		g.Go(func() error {
			logger := log.With().Int("game", i).Logger()
			res, err := playGame(mgr, cfg, opts, logger)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("selfplay failed")
	}

	tally := map[game.Status]int{}
	for _, r := range results {
		tally[r.status]++
	}
	log.Info().
		Int("games", *games).
		Int("first_wins", tally[game.StatusFirstWins]).
		Int("second_wins", tally[game.StatusSecondWins]).
		Int("repetition", tally[game.StatusRepetition]).
		Int("unfinished", tally[game.StatusOngoing]).
		Dur("elapsed", time.Since(start)).
		Msg("selfplay-done")
}
