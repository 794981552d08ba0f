package yumi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartRecord 初始局面（远端一行在前）
const StartRecord = "bngkpgnb/llhhhhll/8/8/8/8/LLHHHHLL/BNGPKGNB"

var (
	ErrInvalidRecord = errors.New("invalid board record")

	ErrRankLength   = fmt.Errorf("%w: rank does not have 8 squares", ErrInvalidRecord)
	ErrTooManyRanks = fmt.Errorf("%w: too many ranks", ErrInvalidRecord)
	ErrRankCount    = fmt.Errorf("%w: rank count is not 8", ErrInvalidRecord)
	ErrInvalidChar  = fmt.Errorf("%w: unrecognized character", ErrInvalidRecord)
	ErrInvalidSide  = fmt.Errorf("%w: side must be b or w", ErrInvalidRecord)
	ErrInvalidHand  = fmt.Errorf("%w: bad hand", ErrInvalidRecord)
)

// RecordError 带位置信息的解析错误，可用 errors.Is 匹配上面的哨兵错误
type RecordError struct {
	Rank int // 记谱中的第几行（0 = 最远端）
	Col  int
	Char byte
	Err  error
}

func (e *RecordError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("%v (rank %d, col %d, char %q)", e.Err, e.Rank+1, e.Col+1, e.Char)
	}
	return fmt.Sprintf("%v (rank %d, col %d)", e.Err, e.Rank+1, e.Col+1)
}

func (e *RecordError) Unwrap() error { return e.Err }

// ParseBoard 解析 "/" 分隔、数字压缩空格的盘面。失败时不返回任何棋盘。
func ParseBoard(s string) (*Board, error) {
	var grid [NumSquares]Piece
	row, col := 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '/':
			if col != Files {
				return nil, &RecordError{Rank: row, Col: col, Err: ErrRankLength}
			}
			row++
			col = 0
			if row >= Ranks {
				return nil, &RecordError{Rank: row, Col: col, Err: ErrTooManyRanks}
			}
		case c >= '1' && c <= '9':
			n := int(c - '0')
			if col+n > Files {
				return nil, &RecordError{Rank: row, Col: col, Char: c, Err: ErrRankLength}
			}
			col += n
		default:
			pc, ok := pieceFromLetter(c)
			if !ok {
				return nil, &RecordError{Rank: row, Col: col, Char: c, Err: ErrInvalidChar}
			}
			if col >= Files {
				return nil, &RecordError{Rank: row, Col: col, Char: c, Err: ErrRankLength}
			}
			grid[MakeSquare(col, Ranks-1-row)] = pc
			col++
		}
	}
	if col != Files {
		return nil, &RecordError{Rank: row, Col: col, Err: ErrRankLength}
	}
	if row != Ranks-1 {
		return nil, &RecordError{Rank: row, Col: col, Err: ErrRankCount}
	}

	b := NewBoard()
	b.grid = grid
	b.Recount()
	return b, nil
}

// Record 压缩形式的盘面
func (b *Board) Record() string {
	var sb strings.Builder
	for r := Ranks - 1; r >= 0; r-- {
		empty := 0
		for f := 0; f < Files; f++ {
			pc := b.grid[MakeSquare(f, r)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Type().Letter(pc.Side()))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// String 调试用：每格两个字符，格与格之间一个空格，远端一行在上
func (b *Board) String() string {
	var sb strings.Builder
	for r := Ranks - 1; r >= 0; r-- {
		for f := 0; f < Files; f++ {
			sb.WriteString(b.grid[MakeSquare(f, r)].String())
			if f < Files-1 {
				sb.WriteByte(' ')
			}
		}
		if r > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParsePosition 解析 "<盘面> <b|w> <持驹|->"；后两段可省略（默认先手、无持驹）
func ParsePosition(s string, rules *Rules) (*Position, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 3 {
		return nil, fmt.Errorf("%w: expected 1-3 fields, got %d", ErrInvalidRecord, len(fields))
	}
	b, err := ParseBoard(fields[0])
	if err != nil {
		return nil, err
	}
	side := First
	if len(fields) > 1 {
		switch fields[1] {
		case "b":
			side = First
		case "w":
			side = Second
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidSide, fields[1])
		}
	}
	var hands [NumSides][NumPieceTypes]int8
	if len(fields) > 2 {
		if hands, err = parseHands(fields[2]); err != nil {
			return nil, err
		}
	}
	if err := checkMaterial(b, &hands); err != nil {
		return nil, err
	}
	return newPosition(*b, side, hands, rules), nil
}

func parseHands(s string) ([NumSides][NumPieceTypes]int8, error) {
	var hands [NumSides][NumPieceTypes]int8
	if s == "-" {
		return hands, nil
	}
	var totals [NumSides][NumPieceTypes]int
	n, digits := 0, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
			digits = true
			if n > maxHandCount {
				return hands, fmt.Errorf("%w: count %d over %d", ErrInvalidHand, n, maxHandCount)
			}
			continue
		}
		pc, ok := pieceFromLetter(c)
		if !ok || !pc.Type().Droppable() {
			return hands, fmt.Errorf("%w: %q", ErrInvalidHand, c)
		}
		if !digits {
			n = 1
		} else if n == 0 {
			return hands, fmt.Errorf("%w: zero count for %q", ErrInvalidHand, c)
		}
		t := &totals[pc.Side()][pc.Type()]
		*t += n
		if !between(*t, 0, maxHandCount) {
			return hands, fmt.Errorf("%w: %d %q in hand, at most %d", ErrInvalidHand, *t, c, maxHandCount)
		}
		n, digits = 0, false
	}
	if digits {
		return hands, fmt.Errorf("%w: trailing count", ErrInvalidHand)
	}
	for side := range totals {
		for pt, t := range totals[side] {
			hands[side][pt] = int8(t)
		}
	}
	return hands, nil
}

// checkMaterial 同一类棋子（双方盘上 + 双方持驹）合计不超过持驹上限，
// 之后怎么吃子手里的数量都不会越界。
func checkMaterial(b *Board, hands *[NumSides][NumPieceTypes]int8) error {
	for _, pt := range DropTypes {
		total := int(hands[First][pt]) + int(hands[Second][pt])
		for sq := Square(0); sq < NumSquares; sq++ {
			if pc := b.grid[sq]; pc != NoPiece && pc.Type().HandType() == pt {
				total++
			}
		}
		if total > maxHandCount {
			return fmt.Errorf("%w: %d %v in play, at most %d", ErrInvalidHand, total, pt, maxHandCount)
		}
	}
	return nil
}

// Record 完整局面字符串，ParsePosition 的逆
func (p *Position) Record() string {
	var sb strings.Builder
	sb.WriteString(p.board.Record())
	if p.side == First {
		sb.WriteString(" b ")
	} else {
		sb.WriteString(" w ")
	}
	empty := true
	for side := First; side <= Second; side++ {
		for _, pt := range DropTypes {
			n := p.hands[side][pt]
			if n == 0 {
				continue
			}
			empty = false
			if n > 1 {
				sb.WriteString(strconv.Itoa(int(n)))
			}
			sb.WriteByte(pt.Letter(side))
		}
	}
	if empty {
		sb.WriteByte('-')
	}
	return sb.String()
}
