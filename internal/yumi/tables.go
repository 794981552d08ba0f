package yumi

import "sync"

// Tables 每种棋子在每个格子上一步可到达的格子。进程内只算一次，之后只读。
type Tables struct {
	steps [NumPieces][NumSquares]Bitboard
}

var (
	tablesOnce sync.Once
	tables     *Tables
)

// SharedTables 返回全局共享的走法表
func SharedTables() *Tables {
	tablesOnce.Do(func() {
		tables = buildTables()
	})
	return tables
}

func (t *Tables) Steps(pc Piece, sq Square) Bitboard {
	return t.steps[pc][sq]
}

// stepReachable 先手视角下 (fx,fy) -> (tx,ty) 是否是 pt 的一步
func stepReachable(pt PieceType, fx, fy, tx, ty int) bool {
	dx, dy := absDiff(fx, tx), absDiff(fy, ty)
	forward := fx == tx && fy+1 == ty
	switch pt {
	case Light, Heavy:
		// 直进一格；进入敌阵三行后可以横走
		return forward || (fy >= 5 && fy == ty && dx == 1)
	case KingA, KingB:
		return dx <= 1 && dy <= 1 && dx+dy > 0
	case PrinceA, PrinceB:
		return forward || (dx == 1 && dy == 1)
	case General:
		return dx+dy == 1 || (dx == 1 && fy+1 == ty)
	case Knight:
		return dx+dy == 3
	case Archer0, Archer1, Archer2:
		return dx+dy == 1
	}
	// Arrow 没有一步走法，只有远程影响
	return false
}

func buildTables() *Tables {
	t := &Tables{}
	for pt := Light; pt < NumPieceTypes; pt++ {
		for from := Square(0); from < NumSquares; from++ {
			var bb Bitboard
			for to := Square(0); to < NumSquares; to++ {
				if stepReachable(pt, from.File(), from.Rank(), to.File(), to.Rank()) {
					bb |= SquareBB(to)
				}
			}
			t.steps[MakePiece(First, pt)][from] = bb
			t.steps[MakePiece(Second, pt)][from.Mirror()] = bb.Mirror()
		}
	}
	return t
}
