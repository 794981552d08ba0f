package game

import (
	"time"

	"yumi/internal/yumi"
)

type Status string

const (
	StatusOngoing    Status = "ongoing"
	StatusFirstWins  Status = "first_wins"
	StatusSecondWins Status = "second_wins"
	// StatusRepetition 同一局面出现 repetitionLimit 次，只用于自对弈收尾
	StatusRepetition Status = "repetition"
)

const repetitionLimit = 4

type GameState struct {
	ID        string
	Pos       *yumi.Position
	History   []yumi.Undo
	CreatedAt time.Time
	UpdatedAt time.Time

	seen map[uint64]int
}

func newGameState(id string, pos *yumi.Position) *GameState {
	now := time.Now()
	g := &GameState{
		ID:        id,
		Pos:       pos,
		CreatedAt: now,
		UpdatedAt: now,
		seen:      make(map[uint64]int),
	}
	g.seen[pos.Hash()]++
	return g
}

// Status 无着可走或王族条件已输的一方判负。
// 会在 Pos 上临时走子再还原，调用方必须独占 Pos。
func (g *GameState) Status() Status {
	side := g.Pos.SideToMove()
	if g.Pos.Lost(side) || len(g.Pos.LegalMoves()) == 0 {
		return winner(side.Opponent())
	}
	if g.seen[g.Pos.Hash()] >= repetitionLimit {
		return StatusRepetition
	}
	return StatusOngoing
}

// Moves 已走着法的文本
func (g *GameState) Moves() []string {
	out := make([]string, len(g.History))
	side := g.Pos.SideToMove()
	for i := len(g.History) - 1; i >= 0; i-- {
		side = side.Opponent()
		out[i] = g.History[i].Move().Text(side)
	}
	return out
}

func (g *GameState) play(m yumi.Move) {
	g.History = append(g.History, g.Pos.Apply(m))
	g.seen[g.Pos.Hash()]++
	g.UpdatedAt = time.Now()
}

func (g *GameState) undo() bool {
	if len(g.History) == 0 {
		return false
	}
	h := g.Pos.Hash()
	if g.seen[h]--; g.seen[h] == 0 {
		delete(g.seen, h)
	}
	last := len(g.History) - 1
	g.Pos.Revert(g.History[last])
	g.History = g.History[:last]
	g.UpdatedAt = time.Now()
	return true
}

func winner(side yumi.Side) Status {
	if side == yumi.First {
		return StatusFirstWins
	}
	return StatusSecondWins
}
