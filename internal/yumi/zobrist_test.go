package yumi

import "testing"

func TestHashInitializedFromInitialAndRecord(t *testing.T) {
	pos := NewInitialPosition(nil)
	if pos.Hash() != pos.CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", pos.Hash(), pos.CalculateHash())
	}

	decoded, err := ParsePosition(StartRecord+" b -", nil)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Hash() != pos.Hash() {
		t.Fatalf("decoded hash differs: got=%d want=%d", decoded.Hash(), pos.Hash())
	}
}

func TestHashDistinguishesSideAndHands(t *testing.T) {
	a, _ := ParsePosition("4k3/8/8/8/8/8/8/4K3 b L", nil)
	b, _ := ParsePosition("4k3/8/8/8/8/8/8/4K3 w L", nil)
	c, _ := ParsePosition("4k3/8/8/8/8/8/8/4K3 b 2L", nil)
	d, _ := ParsePosition("4k3/8/8/8/8/8/8/4K3 b l", nil)
	seen := map[uint64]string{}
	for name, p := range map[string]*Position{"a": a, "b": b, "c": c, "d": d} {
		if other, ok := seen[p.Hash()]; ok {
			t.Fatalf("positions %s and %s share hash %x", name, other, p.Hash())
		}
		seen[p.Hash()] = name
	}
}

func TestApplyHashIncrementalMatchesFullRecompute(t *testing.T) {
	pos := NewInitialPosition(nil)
	for ply := 0; ply < 48; ply++ {
		moves := pos.LegalMoves()
		if len(moves) == 0 {
			return
		}
		mv := moves[len(moves)/2]
		pos.Apply(mv)
		if got, want := pos.Hash(), pos.CalculateHash(); got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d move=%v", ply, got, want, mv)
		}
	}
}
