package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"yumi/internal/engine"
	"yumi/internal/game"
)

type playOptions struct {
	moveTime    float64
	maxMoves    int
	randomPlies int
}

type result struct {
	id     string
	status game.Status
	plies  int
	record string
}

// playGame 开局先随机走 randomPlies 步，之后双方都用引擎。
// 每局自己一个 Engine；对局状态只由本 goroutine 修改。
func playGame(mgr *game.Manager, cfg engine.Config, opts playOptions, logger zerolog.Logger) (result, error) {
	g, err := mgr.NewGame("startpos")
	if err != nil {
		return result{}, err
	}
	defer mgr.Remove(g.ID)

	logger = logger.With().Str("id", g.ID).Logger()
	eng := engine.NewEngine(cfg, engine.WithLogger(logger))

	status := game.StatusOngoing
	for ply := 0; ply < opts.maxMoves && status == game.StatusOngoing; ply++ {
		var text string
		if ply < opts.randomPlies {
			moves := g.Pos.LegalMoves()
			text = moves[frand.Intn(len(moves))].Text(g.Pos.SideToMove())
		} else {
			text = eng.BestMove(g.Pos, opts.moveTime)
		}
		if status, err = mgr.Play(g.ID, text); err != nil {
			return result{}, fmt.Errorf("game %s ply %d move %s: %w", g.ID, ply, text, err)
		}
		logger.Debug().Int("ply", ply).Str("move", text).Msg("played")
	}

	res := result{
		id:     g.ID,
		status: status,
		plies:  len(g.History),
		record: g.Pos.Record(),
	}
	logger.Info().
		Str("status", string(res.status)).
		Int("plies", res.plies).
		Str("record", res.record).
		Msg("game-over")
	return res, nil
}
