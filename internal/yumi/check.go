package yumi

// Lost side 的王族条件是否已经输掉
func (p *Position) Lost(side Side) bool {
	if p.rules.RoyalLoss == LoseAny {
		return p.Royals(side) < int(p.royalsAtStart[side])
	}
	return p.Royals(side) == 0
}

// InCheck side 是否有王族被对方近身利き盯着
func (p *Position) InCheck(side Side) bool {
	royals, _ := p.board.royalSquares(side)
	opp := side.Opponent()
	for royals != 0 {
		if p.board.effects[opp][royals.PopLSB()] > 0 {
			return true
		}
	}
	return false
}

// exposed 刚走完 u 之后（对方走子），side 是否会被对方下一手吃掉致命的王族
func (p *Position) exposed(side Side, u Undo) bool {
	// 直接吃掉对方致命的王族：对局结束，总是合法
	if u.captured != NoPiece && u.captured.Type().Royal() && p.Lost(side.Opponent()) {
		return false
	}
	if p.rules.RoyalLoss == LoseAll && p.Royals(side) > 1 {
		return false
	}
	return p.InCheck(side)
}

// Perft 统计 depth 层的合法着法叶子数
func (p *Position) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var l MoveList
	l.Generate(p, Legal)
	if depth == 1 {
		return uint64(l.Len())
	}
	var nodes uint64
	for i := 0; i < l.Len(); i++ {
		u := p.Apply(l.At(i))
		nodes += p.Perft(depth - 1)
		p.Revert(u)
	}
	return nodes
}
