package engine

import (
	"time"

	"yumi/internal/yumi"
)

// RootScore 根节点着法的分数。只有最佳着法是精确值，其余是上界。
type RootScore struct {
	Move  yumi.Move
	Score Value
}

// SearchResult 搜索结果
type SearchResult struct {
	BestMove yumi.Move
	Score    Value // 走子方视角
	Depth    int   // 最后一次完整迭代的深度；0 表示一层都没搜完
	Nodes    int64
	TimeUsed time.Duration
	Scores   []RootScore // 最后一次完整迭代的根节点分数
	Found    bool        // 根节点有合法着法
}

// Search 迭代加深。超时的那一轮整轮作废，结果来自最后一轮搜完的。
func (e *Engine) Search(pos *yumi.Position, budget time.Duration) SearchResult {
	start := time.Now()
	dl := NewDeadline(start, budget)
	e.nodes = 0

	res := SearchResult{BestMove: yumi.NullMove}
	root := e.rootMoves(pos)
	if len(root) == 0 {
		res.TimeUsed = time.Since(start)
		return res
	}
	res.BestMove = root[0]
	res.Found = true

	scores := make([]Value, len(root))
	for depth := e.cfg.StartDepth; e.cfg.MaxDepth == 0 || depth <= e.cfg.MaxDepth; depth++ {
		if !e.searchRoot(pos, root, scores, depth, &dl) {
			break
		}
		best := pickBest(scores)
		res.BestMove = root[best]
		res.Score = scores[best]
		res.Depth = depth
		res.Scores = res.Scores[:0]
		for i, m := range root {
			res.Scores = append(res.Scores, RootScore{Move: m, Score: scores[i]})
		}

		e.log.Debug().
			Int("depth", depth).
			Str("move", res.BestMove.Text(pos.SideToMove())).
			Int32("score", int32(res.Score)).
			Int64("nodes", e.nodes).
			Dur("elapsed", time.Since(start)).
			Msg("iteration")

		// 胜负已经算清，再深也不会变
		if isDecisive(res.Score) {
			break
		}
	}

	res.Nodes = e.nodes
	res.TimeUsed = time.Since(start)
	return res
}

// BestMove 返回着法文本；没有合法着法时返回 "S"
func (e *Engine) BestMove(pos *yumi.Position, seconds float64) string {
	res := e.Search(pos, time.Duration(seconds*float64(time.Second)))
	if !res.Found {
		return yumi.NoMoveText
	}
	return res.BestMove.Text(pos.SideToMove())
}

// rootMoves 根节点合法着法，按 MovePicker 顺序；各轮迭代共用同一个顺序
func (e *Engine) rootMoves(pos *yumi.Position) []yumi.Move {
	if pos.Lost(pos.SideToMove()) {
		return nil
	}
	var moves []yumi.Move
	var mp MovePicker
	mp.Init(pos, &e.cfg.Weights.Board)
	for {
		m, ok := mp.Next()
		if !ok {
			break
		}
		if pos.IsLegal(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// searchRoot 搜完一整轮返回 true；中途超时返回 false，scores 作废
func (e *Engine) searchRoot(pos *yumi.Position, moves []yumi.Move, scores []Value, depth int, dl *Deadline) bool {
	alpha := -ValueInf
	for i, m := range moves {
		if dl.Passed() {
			return false
		}
		u := pos.Apply(m)
		v, ok := e.negamax(pos, -ValueInf, -alpha, depth-1, 1, dl)
		pos.Revert(u)
		if !ok {
			return false
		}
		scores[i] = -v
		if scores[i] > alpha {
			alpha = scores[i]
		}
	}
	return true
}

// negamax fail-soft alpha-beta。第二个返回值为 false 表示子树因超时没搜完。
func (e *Engine) negamax(pos *yumi.Position, alpha, beta Value, depth, ply int, dl *Deadline) (Value, bool) {
	if dl.Passed() {
		return 0, false
	}
	e.nodes++

	if pos.Lost(pos.SideToMove()) {
		return matedIn(ply), true
	}
	if depth <= 0 {
		return Evaluate(pos, &e.cfg.Weights), true
	}

	best := -ValueInf
	var mp MovePicker
	mp.Init(pos, &e.cfg.Weights.Board)
	for {
		m, ok := mp.Next()
		if !ok {
			break
		}
		if !pos.IsLegal(m) {
			continue
		}
		u := pos.Apply(m)
		v, ok := e.negamax(pos, -beta, -alpha, depth-1, ply+1, dl)
		pos.Revert(u)
		if !ok {
			return 0, false
		}
		v = -v
		if v > best {
			best = v
			if v > alpha {
				alpha = v
				if alpha >= beta {
					break
				}
			}
		}
	}
	if best == -ValueInf {
		// 无着可走
		return matedIn(ply), true
	}
	return best, true
}

// pickBest 取第一个最大值，同分时靠前的着法优先
func pickBest(scores []Value) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}
