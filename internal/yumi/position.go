package yumi

import "fmt"

// Position = 棋盘 + 轮到谁走 + 双方持驹
type Position struct {
	board Board
	side  Side
	hands [NumSides][NumPieceTypes]int8
	hash  uint64
	ply   int32

	// 开局时的王族数量，LoseAny 规则用
	royalsAtStart [NumSides]int8

	rules *Rules
}

// Undo Apply 返回的撤销凭据，Revert 必须拿同一个凭据按后进先出的顺序还原
type Undo struct {
	move     Move
	moved    Piece
	captured Piece
	hash     uint64
	ply      int32
}

func (u Undo) Move() Move      { return u.move }
func (u Undo) Captured() Piece { return u.captured }
func (u Undo) IsCapture() bool { return u.captured != NoPiece }

func newPosition(b Board, side Side, hands [NumSides][NumPieceTypes]int8, rules *Rules) *Position {
	if rules == nil {
		rules = DefaultRules()
	}
	if b.tables == nil {
		b.tables = SharedTables()
	}
	pos := &Position{
		board: b,
		side:  side,
		hands: hands,
		rules: rules,
	}
	for s := First; s <= Second; s++ {
		pos.royalsAtStart[s] = int8(pos.Royals(s))
	}
	pos.hash = pos.CalculateHash()
	return pos
}

// NewPosition 由棋盘构造局面（棋盘会被复制）
func NewPosition(b *Board, side Side, rules *Rules) *Position {
	return newPosition(*b, side, [NumSides][NumPieceTypes]int8{}, rules)
}

// NewInitialPosition 初始局面，先手先走
func NewInitialPosition(rules *Rules) *Position {
	b, err := ParseBoard(StartRecord)
	if err != nil {
		panic(err)
	}
	return NewPosition(b, First, rules)
}

func (p *Position) Board() *Board      { return &p.board }
func (p *Position) SideToMove() Side   { return p.side }
func (p *Position) Rules() *Rules      { return p.rules }
func (p *Position) Ply() int           { return int(p.ply) }
func (p *Position) At(sq Square) Piece { return p.board.grid[sq] }

func (p *Position) Hand(side Side, pt PieceType) int {
	return int(p.hands[side][pt])
}

// SetHand 构造局面时设置持驹
func (p *Position) SetHand(side Side, pt PieceType, n int) {
	if !pt.Droppable() || !between(n, 0, maxHandCount) {
		panic(fmt.Sprintf("yumi: bad hand %v %v %d", side, pt, n))
	}
	p.hands[side][pt] = int8(n)
	p.hash = p.CalculateHash()
}

// Royals side 在盘上的王族数量
func (p *Position) Royals(side Side) int {
	c := &p.board.counts[side]
	return int(c[KingA]) + int(c[KingB]) + int(c[PrinceA]) + int(c[PrinceB])
}

// Clone 深拷贝（走法表共享）
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

// Apply 执行着法并翻转走子方。m 必须是针对当前局面生成的着法，否则 panic。
func (p *Position) Apply(m Move) Undo {
	u := Undo{move: m, hash: p.hash, ply: p.ply}
	side := p.side
	h := p.hash

	if m.IsDrop() {
		pt := m.Drop
		n := p.hands[side][pt]
		if n <= 0 {
			panic(fmt.Sprintf("yumi: drop %v without hand", m))
		}
		h ^= handHashKey(side, pt, n) ^ handHashKey(side, pt, n-1)
		p.hands[side][pt] = n - 1

		pc := MakePiece(side, pt)
		p.board.Put(m.To, pc)
		h ^= pieceHashKey(pc, m.To)
		u.moved = pc
	} else {
		pc := p.board.grid[m.From]
		if pc == NoPiece || pc.Side() != side {
			panic(fmt.Sprintf("yumi: move %v does not move a %v piece", m, side))
		}
		captured := p.board.grid[m.To]
		if captured != NoPiece {
			if captured.Side() == side {
				panic(fmt.Sprintf("yumi: move %v captures own piece", m))
			}
			p.board.Remove(m.To)
			h ^= pieceHashKey(captured, m.To)
			// 能入手的进手（升级过的弓兵降回 Archer0），王族直接出局
			if ht := captured.Type().HandType(); ht != PieceNone {
				n := p.hands[side][ht]
				h ^= handHashKey(side, ht, n) ^ handHashKey(side, ht, n+1)
				p.hands[side][ht] = n + 1
			}
		}

		p.board.Remove(m.From)
		h ^= pieceHashKey(pc, m.From)
		placed := pc
		if m.Promote {
			pt := pc.Type().Promoted()
			if pt == PieceNone {
				panic(fmt.Sprintf("yumi: %v cannot promote", pc.Type()))
			}
			placed = MakePiece(side, pt)
		}
		p.board.Put(m.To, placed)
		h ^= pieceHashKey(placed, m.To)

		u.moved = pc
		u.captured = captured
	}

	p.side = side.Opponent()
	h ^= zobristSide
	p.hash = h
	p.ply++
	return u
}

// Revert 还原最近一次 Apply
func (p *Position) Revert(u Undo) {
	if u.ply != p.ply-1 {
		panic(fmt.Sprintf("yumi: revert ply %d without matching apply (ply %d)", u.ply, p.ply))
	}
	m := u.move
	side := p.side.Opponent()

	if m.IsDrop() {
		if p.board.grid[m.To] != u.moved {
			panic(fmt.Sprintf("yumi: revert %v: square %v changed", m, m.To))
		}
		p.board.Remove(m.To)
		p.hands[side][m.Drop]++
	} else {
		placed := p.board.Remove(m.To)
		if placed.Side() != side {
			panic(fmt.Sprintf("yumi: revert %v: square %v changed", m, m.To))
		}
		p.board.Put(m.From, u.moved)
		if u.captured != NoPiece {
			p.board.Put(m.To, u.captured)
			if ht := u.captured.Type().HandType(); ht != PieceNone {
				p.hands[side][ht]--
			}
		}
	}

	p.side = side
	p.hash = u.hash
	p.ply--
}

// Do 执行 m、调用 fn、然后自动还原
func (p *Position) Do(m Move, fn func()) {
	u := p.Apply(m)
	defer p.Revert(u)
	fn()
}

// Equal 逐字段比较（棋盘、利き、计数、持驹、走子方、哈希）
func (p *Position) Equal(o *Position) bool {
	return p.board.grid == o.board.grid &&
		p.board.effects == o.board.effects &&
		p.board.counts == o.board.counts &&
		p.hands == o.hands &&
		p.side == o.side &&
		p.hash == o.hash
}

func (p *Position) String() string {
	return fmt.Sprintf("%s\n%s to move, hands: %s", p.board.String(), p.side, p.handString())
}

func (p *Position) handString() string {
	return lastField(p.Record())
}

func lastField(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ' ' {
			return s[i+1:]
		}
	}
	return s
}
