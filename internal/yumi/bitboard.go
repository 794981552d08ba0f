package yumi

import (
	"math/bits"
	"strings"
)

// Bitboard 每一位对应一个 Square
type Bitboard uint64

func SquareBB(sq Square) Bitboard { return Bitboard(1) << uint(sq) }

func (b Bitboard) Has(sq Square) bool { return b&SquareBB(sq) != 0 }

func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// PopLSB 取出最低位的格子并清除
func (b *Bitboard) PopLSB() Square {
	sq := Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

// Mirror 上下翻转
func (b Bitboard) Mirror() Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// String 远端一行在上，每格一个 0/1
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Ranks - 1; r >= 0; r-- {
		for f := 0; f < Files; f++ {
			if b.Has(MakeSquare(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if r > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
