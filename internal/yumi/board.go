package yumi

import "fmt"

// Board 棋盘：格子上的棋子 + 由格子推导出来的计数。
// grid 是唯一的事实来源，effects/counts 必须始终等于重新扫描 grid 的结果。
type Board struct {
	grid    [NumSquares]Piece
	effects [NumSides][NumSquares]int8
	counts  [NumSides][NumPieceTypes]int8
	tables  *Tables
}

func NewBoard() *Board {
	return &Board{tables: SharedTables()}
}

func (b *Board) At(sq Square) Piece {
	return b.grid[sq]
}

// Effect side 在 sq 上的近身利き数
func (b *Board) Effect(side Side, sq Square) int {
	return int(b.effects[side][sq])
}

// Count side 在盘上 pt 的数量
func (b *Board) Count(side Side, pt PieceType) int {
	return int(b.counts[side][pt])
}

func (b *Board) Destinations(pc Piece, sq Square) Bitboard {
	return b.tables.Steps(pc, sq)
}

// Occupied 所有有子的格子
func (b *Board) Occupied() Bitboard {
	var bb Bitboard
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.grid[sq] != NoPiece {
			bb |= SquareBB(sq)
		}
	}
	return bb
}

// Put 在空格上放子，同时更新计数和利き
func (b *Board) Put(sq Square, pc Piece) {
	if !sq.Valid() || pc == NoPiece {
		panic(fmt.Sprintf("yumi: bad put %v %v", sq, pc))
	}
	if b.grid[sq] != NoPiece {
		panic(fmt.Sprintf("yumi: put on occupied square %v", sq))
	}
	b.grid[sq] = pc
	side := pc.Side()
	b.counts[side][pc.Type()]++
	for bb := b.tables.Steps(pc, sq); bb != 0; {
		b.effects[side][bb.PopLSB()]++
	}
}

// Remove 拿走 sq 上的子并返回
func (b *Board) Remove(sq Square) Piece {
	if !sq.Valid() {
		panic(fmt.Sprintf("yumi: bad remove %v", sq))
	}
	pc := b.grid[sq]
	if pc == NoPiece {
		panic(fmt.Sprintf("yumi: remove from empty square %v", sq))
	}
	b.grid[sq] = NoPiece
	side := pc.Side()
	b.counts[side][pc.Type()]--
	for bb := b.tables.Steps(pc, sq); bb != 0; {
		b.effects[side][bb.PopLSB()]--
	}
	return pc
}

// Recount 从 grid 全量重建 effects/counts
func (b *Board) Recount() {
	b.effects = [NumSides][NumSquares]int8{}
	b.counts = [NumSides][NumPieceTypes]int8{}
	for sq := Square(0); sq < NumSquares; sq++ {
		pc := b.grid[sq]
		if pc == NoPiece {
			continue
		}
		side := pc.Side()
		b.counts[side][pc.Type()]++
		for bb := b.tables.Steps(pc, sq); bb != 0; {
			b.effects[side][bb.PopLSB()]++
		}
	}
}

var arrowDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// ArrowEffects 现算 side 所有 Arrow 的远程影响：四个直线方向滑行，
// 遇到第一个棋子为止（该格计入）。
func (b *Board) ArrowEffects(side Side) [NumSquares]int8 {
	var out [NumSquares]int8
	arrow := MakePiece(side, Arrow)
	if b.counts[side][Arrow] == 0 {
		return out
	}
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.grid[sq] != arrow {
			continue
		}
		for _, d := range arrowDirs {
			f, r := sq.File()+d[0], sq.Rank()+d[1]
			for f >= 0 && f < Files && r >= 0 && r < Ranks {
				to := MakeSquare(f, r)
				out[to]++
				if b.grid[to] != NoPiece {
					break
				}
				f += d[0]
				r += d[1]
			}
		}
	}
	return out
}

// royalSquares side 的王族棋子所在格
func (b *Board) royalSquares(side Side) (Bitboard, int) {
	var bb Bitboard
	n := 0
	for sq := Square(0); sq < NumSquares; sq++ {
		pc := b.grid[sq]
		if pc != NoPiece && pc.Side() == side && pc.Type().Royal() {
			bb |= SquareBB(sq)
			n++
		}
	}
	return bb, n
}
