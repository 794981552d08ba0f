package yumi

// MaxMoves 单个局面着法数的上限（走子 + 升级分支 + 打入）
const MaxMoves = 1536

// GenType 着法生成模式
type GenType int

const (
	Legal       GenType = iota // 过滤掉送王的着法
	PseudoLegal                // 只符合棋子走法和打入限制
	Captures                   // 吃子的走子（含升级分支）
	Quiets                     // 不吃子的走子（含升级分支）
	Drops                      // 打入
)

// ScoredMove 带排序分的着法，MovePicker 用
type ScoredMove struct {
	Move  Move
	Score int32
}

// MoveList 定长着法表，生成时不分配堆内存
type MoveList struct {
	moves [MaxMoves]ScoredMove
	size  int
}

func (l *MoveList) Len() int                { return l.size }
func (l *MoveList) At(i int) Move           { return l.moves[i].Move }
func (l *MoveList) Entry(i int) *ScoredMove { return &l.moves[i] }
func (l *MoveList) Reset()                  { l.size = 0 }

func (l *MoveList) Swap(i, j int) {
	l.moves[i], l.moves[j] = l.moves[j], l.moves[i]
}

func (l *MoveList) add(m Move) {
	l.moves[l.size] = ScoredMove{Move: m}
	l.size++
}

// Contains 是否包含 m
func (l *MoveList) Contains(m Move) bool {
	for i := 0; i < l.size; i++ {
		if l.moves[i].Move == m {
			return true
		}
	}
	return false
}

// Moves 拷贝成切片
func (l *MoveList) Moves() []Move {
	out := make([]Move, l.size)
	for i := range out {
		out[i] = l.moves[i].Move
	}
	return out
}

// Generate 把 gt 模式下的着法追加到表尾
func (l *MoveList) Generate(p *Position, gt GenType) {
	switch gt {
	case Captures:
		genBoardMoves(p, l, true, false)
	case Quiets:
		genBoardMoves(p, l, false, true)
	case Drops:
		genDrops(p, l)
	case PseudoLegal:
		genBoardMoves(p, l, true, true)
		genDrops(p, l)
	case Legal:
		start := l.size
		genBoardMoves(p, l, true, true)
		genDrops(p, l)
		n := start
		for i := start; i < l.size; i++ {
			if p.IsLegal(l.moves[i].Move) {
				l.moves[n] = l.moves[i]
				n++
			}
		}
		l.size = n
	}
}

func genBoardMoves(p *Position, l *MoveList, captures, quiets bool) {
	side := p.side
	b := &p.board
	for from := Square(0); from < NumSquares; from++ {
		pc := b.grid[from]
		if pc == NoPiece || pc.Side() != side {
			continue
		}
		for bb := b.tables.Steps(pc, from); bb != 0; {
			to := bb.PopLSB()
			target := b.grid[to]
			if target != NoPiece {
				if target.Side() == side || !captures {
					continue
				}
			} else if !quiets {
				continue
			}
			l.add(NewMove(from, to))
			if p.rules.canPromote(pc, from, to) {
				l.add(NewPromotion(from, to))
			}
		}
	}
}

func genDrops(p *Position, l *MoveList) {
	side := p.side
	for _, pt := range DropTypes {
		if p.hands[side][pt] == 0 {
			continue
		}
		for to := Square(0); to < NumSquares; to++ {
			if p.board.grid[to] == NoPiece && p.rules.canDrop(side, to) {
				l.add(NewDrop(pt, to))
			}
		}
	}
}

// LegalMoves 当前走子方的全部合法着法
func (p *Position) LegalMoves() []Move {
	var l MoveList
	l.Generate(p, Legal)
	return l.Moves()
}

// IsLegal m 必须是当前局面的伪合法着法；模拟执行后检查自己的王族是否暴露
func (p *Position) IsLegal(m Move) bool {
	side := p.side
	if p.Lost(side) {
		return false
	}
	u := p.Apply(m)
	ok := !p.exposed(side, u)
	p.Revert(u)
	return ok
}

// IsPseudoLegal 检查外部输入的着法是否符合走法和打入规则
func (p *Position) IsPseudoLegal(m Move) bool {
	side := p.side
	if !m.To.Valid() {
		return false
	}
	if m.IsDrop() {
		return m.Drop.Droppable() && !m.Promote && p.hands[side][m.Drop] > 0 &&
			p.board.grid[m.To] == NoPiece && p.rules.canDrop(side, m.To)
	}
	if !m.From.Valid() {
		return false
	}
	pc := p.board.grid[m.From]
	if pc == NoPiece || pc.Side() != side || !p.board.tables.Steps(pc, m.From).Has(m.To) {
		return false
	}
	if t := p.board.grid[m.To]; t != NoPiece && t.Side() == side {
		return false
	}
	return !m.Promote || p.rules.canPromote(pc, m.From, m.To)
}
