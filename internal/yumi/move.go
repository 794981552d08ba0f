package yumi

import (
	"errors"
	"fmt"
)

// NoMoveText 没有合法着法时 bestmove 返回的记号
const NoMoveText = "S"

// Move 走子（From -> To，可带升级）或打入（Drop 类型 -> To）。不带执子方。
type Move struct {
	From    Square
	To      Square
	Drop    PieceType
	Promote bool
}

var NullMove = Move{From: NoSquare, To: NoSquare}

func NewMove(from, to Square) Move      { return Move{From: from, To: to} }
func NewPromotion(from, to Square) Move { return Move{From: from, To: to, Promote: true} }
func NewDrop(pt PieceType, to Square) Move {
	return Move{From: NoSquare, To: to, Drop: pt}
}

func (m Move) IsDrop() bool { return m.Drop != PieceNone }
func (m Move) IsNull() bool { return m.To == NoSquare }

// Text 记谱：走子 "a2a3"，升级 "a6a7+"，打入 "c5L"（字母大小写表示执子方）
func (m Move) Text(side Side) string {
	if m.IsNull() {
		return NoMoveText
	}
	if m.IsDrop() {
		return m.To.String() + string(m.Drop.Letter(side))
	}
	s := m.From.String() + m.To.String()
	if m.Promote {
		s += "+"
	}
	return s
}

func (m Move) String() string {
	return m.Text(First)
}

var ErrInvalidMove = errors.New("invalid move text")

func parseSquare(s string) (Square, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, false
	}
	return MakeSquare(int(s[0]-'a'), int(s[1]-'1')), true
}

// ParseMove 解析记谱。side 用于校验打入字母的大小写。
func ParseMove(s string, side Side) (Move, error) {
	if len(s) < 3 {
		return NullMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	to, ok := parseSquare(s[:2])
	if len(s) == 3 && ok {
		pc, ok := pieceFromLetter(s[2])
		if !ok || !pc.Type().Droppable() || pc.Side() != side {
			return NullMove, fmt.Errorf("%w: bad drop %q", ErrInvalidMove, s)
		}
		return NewDrop(pc.Type(), to), nil
	}
	from, ok1 := parseSquare(s[:2])
	if len(s) < 4 {
		return NullMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	to, ok2 := parseSquare(s[2:4])
	if !ok1 || !ok2 {
		return NullMove, fmt.Errorf("%w: bad square in %q", ErrInvalidMove, s)
	}
	switch s[4:] {
	case "":
		return NewMove(from, to), nil
	case "+":
		return NewPromotion(from, to), nil
	}
	return NullMove, fmt.Errorf("%w: trailing %q", ErrInvalidMove, s[4:])
}
