package yumi

import "sync"

const maxHandCount = 64

var (
	zobristOnce sync.Once

	zobristPieces [NumPieces][NumSquares]uint64
	zobristHands  [NumSides][NumPieceTypes][maxHandCount + 1]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := First; side <= Second; side++ {
			for pt := Light; pt < NumPieceTypes; pt++ {
				pc := MakePiece(side, pt)
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[pc][sq] = next()
				}
				// 持驹数为 0 时不参与哈希
				for n := 1; n <= maxHandCount; n++ {
					zobristHands[side][pt][n] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(pc Piece, sq Square) uint64 {
	if pc == NoPiece {
		return 0
	}
	return zobristPieces[pc][sq]
}

func handHashKey(side Side, pt PieceType, n int8) uint64 {
	if !between(n, 1, maxHandCount) {
		return 0
	}
	return zobristHands[side][pt][n]
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for sq := Square(0); sq < NumSquares; sq++ {
		h ^= pieceHashKey(p.board.grid[sq], sq)
	}
	for side := First; side <= Second; side++ {
		for _, pt := range DropTypes {
			h ^= handHashKey(side, pt, p.hands[side][pt])
		}
	}
	if p.side == Second {
		h ^= zobristSide
	}
	return h
}

func (p *Position) Hash() uint64 { return p.hash }
