package yumi

import "fmt"

const (
	Files      = 8
	Ranks      = 8
	NumSquares = Files * Ranks
)

// Square 0..63，行优先，A1=0，H8=63
type Square int8

const NoSquare Square = -1

func MakeSquare(file, rank int) Square {
	if file < 0 || file >= Files || rank < 0 || rank >= Ranks {
		panic(fmt.Sprintf("yumi: square out of range: file=%d rank=%d", file, rank))
	}
	return Square(rank*Files + file)
}

func (s Square) File() int { return int(s) % Files }
func (s Square) Rank() int { return int(s) / Files }

func (s Square) Valid() bool { return between(s, 0, NumSquares-1) }

// Mirror 上下翻转（换成对方视角的同一格）
func (s Square) Mirror() Square {
	return Square((Ranks-1-s.Rank())*Files + s.File())
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// relativeRank 从 side 自己的视角看的行号（0 = 自家底线）
func relativeRank(side Side, sq Square) int {
	if side == First {
		return sq.Rank()
	}
	return Ranks - 1 - sq.Rank()
}

// Side 先手 First（大写），后手 Second（小写）
type Side int8

const (
	First  Side = 0
	Second Side = 1

	NumSides = 2
)

func (s Side) Opponent() Side { return s ^ 1 }

func (s Side) String() string {
	if s == First {
		return "black"
	}
	return "white"
}

type PieceType int8

const (
	PieceNone PieceType = iota
	Light
	Heavy
	KingA
	KingB
	PrinceA
	PrinceB
	General
	Knight
	Arrow
	Archer0
	Archer1
	Archer2

	NumPieceTypes
)

// Piece = side*pieceSideStride + type；0 为空格。
// 同类型对方棋子恒为固定偏移，表格按 Piece 直接索引。
type Piece int8

const (
	NoPiece         Piece = 0
	pieceSideStride       = 16
	NumPieces             = pieceSideStride + int(NumPieceTypes)
)

func MakePiece(side Side, pt PieceType) Piece {
	if pt == PieceNone {
		return NoPiece
	}
	return Piece(int(side)*pieceSideStride + int(pt))
}

func (p Piece) Type() PieceType {
	return PieceType(int(p) % pieceSideStride)
}

func (p Piece) Side() Side {
	return Side(int(p) / pieceSideStride)
}

func (p Piece) String() string {
	if p == NoPiece {
		return ". "
	}
	g := pieceInfo[p.Type()].glyph
	if p.Side() == Second {
		return lowerASCII(g)
	}
	return g
}

// typeInfo 是 PieceType 的唯一属性表：字母、调试字形、能否入手、是否王族、
// 被吃入手后的类型、升级后的类型。
type typeInfo struct {
	letter    byte
	glyph     string
	droppable bool
	royal     bool
	handAs    PieceType
	promoteTo PieceType
}

var pieceInfo = [NumPieceTypes]typeInfo{
	PieceNone: {letter: '.', glyph: ". "},
	Light:     {letter: 'L', glyph: "L ", droppable: true, handAs: Light},
	Heavy:     {letter: 'H', glyph: "H ", droppable: true, handAs: Heavy},
	KingA:     {letter: 'J', glyph: "K ", royal: true},
	KingB:     {letter: 'K', glyph: "K'", royal: true},
	PrinceA:   {letter: 'P', glyph: "P ", royal: true},
	PrinceB:   {letter: 'Q', glyph: "P'", royal: true},
	General:   {letter: 'G', glyph: "G ", droppable: true, handAs: General},
	Knight:    {letter: 'N', glyph: "N ", droppable: true, handAs: Knight},
	Arrow:     {letter: 'R', glyph: "R ", droppable: true, handAs: Arrow},
	Archer0:   {letter: 'A', glyph: "A0", droppable: true, handAs: Archer0, promoteTo: Archer1},
	Archer1:   {letter: 'B', glyph: "A1", handAs: Archer0, promoteTo: Archer2},
	Archer2:   {letter: 'C', glyph: "A2", handAs: Archer0},
}

// DropTypes 可以持在手里再打入的类型，按固定顺序
var DropTypes = [...]PieceType{Light, Heavy, General, Knight, Arrow, Archer0}

func (pt PieceType) Droppable() bool { return pieceInfo[pt].droppable }
func (pt PieceType) Royal() bool     { return pieceInfo[pt].royal }

// HandType 被吃后进入对方手里的类型；不能入手的返回 PieceNone（直接出局）
func (pt PieceType) HandType() PieceType { return pieceInfo[pt].handAs }

// Promoted 升一级后的类型；不能升级返回 PieceNone
func (pt PieceType) Promoted() PieceType { return pieceInfo[pt].promoteTo }

// Letter 记谱字母（先手大写）
func (pt PieceType) Letter(side Side) byte {
	l := pieceInfo[pt].letter
	if side == Second && l >= 'A' && l <= 'Z' {
		return l + 'a' - 'A'
	}
	return l
}

func (pt PieceType) String() string {
	if pt <= PieceNone || pt >= NumPieceTypes {
		return "none"
	}
	return string(pieceInfo[pt].letter)
}

// pieceFromLetter 记谱字母 -> Piece
func pieceFromLetter(c byte) (Piece, bool) {
	side := First
	if c >= 'a' && c <= 'z' {
		side = Second
		c -= 'a' - 'A'
	}
	for pt := Light; pt < NumPieceTypes; pt++ {
		if pieceInfo[pt].letter == c {
			return MakePiece(side, pt), true
		}
	}
	return NoPiece, false
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
