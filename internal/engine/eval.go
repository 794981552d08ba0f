package engine

import "yumi/internal/yumi"

// Value 评估分，正数对走子方有利
type Value int32

const (
	// ValueInf 只用作 alpha/beta 的初始边界，不是合法的评估值
	ValueInf Value = 1 << 30
	// ValueMate 王族条件输掉时的分数（再按层数修正）
	ValueMate Value = 1_000_000
	// maxMatePly 分数在 mateIn(maxMatePly) 以外就是胜负已定
	maxMatePly = 1024
)

// Evaluate 从走子方视角的静态评估：子力 + 持驹 + 利き
func Evaluate(pos *yumi.Position, w *Weights) Value {
	us := pos.SideToMove()
	them := us.Opponent()
	b := pos.Board()

	var v Value
	for pt := yumi.Light; pt < yumi.NumPieceTypes; pt++ {
		v += w.Board[pt] * Value(b.Count(us, pt)-b.Count(them, pt))
		if pt.Droppable() {
			v += w.Hand[pt] * Value(pos.Hand(us, pt)-pos.Hand(them, pt))
		}
	}

	ourArrows := b.ArrowEffects(us)
	theirArrows := b.ArrowEffects(them)
	for sq := yumi.Square(0); sq < yumi.NumSquares; sq++ {
		our := Value(b.Effect(us, sq) + int(ourArrows[sq]))
		opp := Value(b.Effect(them, sq) + int(theirArrows[sq]))
		v += w.Effect * (our - opp)

		pc := b.At(sq)
		if pc == yumi.NoPiece {
			continue
		}
		if pc.Side() == us {
			v += w.Defense*our - w.Attack*opp
		} else {
			v += w.Attack*our - w.Defense*opp
		}
	}
	return v
}

func mateIn(ply int) Value  { return ValueMate - Value(ply) }
func matedIn(ply int) Value { return -ValueMate + Value(ply) }

// isDecisive v 是否已经算出胜负
func isDecisive(v Value) bool {
	return v >= mateIn(maxMatePly) || v <= matedIn(maxMatePly)
}
