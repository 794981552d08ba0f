package engine

import (
	"testing"

	"yumi/internal/yumi"
)

func mustPosition(t *testing.T, record string) *yumi.Position {
	t.Helper()
	pos, err := yumi.ParsePosition(record, yumi.DefaultRules())
	if err != nil {
		t.Fatalf("parse %q: %v", record, err)
	}
	return pos
}

func TestEvaluateIsFromSideToMove(t *testing.T) {
	w := DefaultWeights()
	records := []string{
		yumi.StartRecord,
		"4k3/8/8/8/8/1n2g3/4L3/N3K3",
		"4k3/2r5/8/3N4/1l6/4g3/1A6/4K3",
	}
	for _, board := range records {
		first := mustPosition(t, board+" b 2HA")
		second := mustPosition(t, board+" w 2HA")
		if a, b := Evaluate(first, &w), Evaluate(second, &w); a != -b {
			t.Errorf("%s: eval(first)=%d eval(second)=%d, want negation", board, a, b)
		}
	}
}

func TestEvaluateHandValues(t *testing.T) {
	w := DefaultWeights()
	base := Evaluate(mustPosition(t, "4k3/8/8/8/8/8/8/4K3 b -"), &w)
	tests := []struct {
		hand string
		want Value
	}{
		{"L", 100},
		{"G", 400},
		{"R", 250},
		{"A", 200},
		{"2H", 400},
		{"g", -400},
		{"Nn", 0},
	}
	for _, tt := range tests {
		pos := mustPosition(t, "4k3/8/8/8/8/8/8/4K3 b "+tt.hand)
		if got := Evaluate(pos, &w) - base; got != tt.want {
			t.Errorf("hand %s: delta %d, want %d", tt.hand, got, tt.want)
		}
	}
}

func TestEvaluateRewardsDefendedPieces(t *testing.T) {
	w := DefaultWeights()
	// e2 的 L 有 e1 王护着；a2 的 L 没人护
	defended := Evaluate(mustPosition(t, "k7/8/8/8/8/8/4L3/4K3 b -"), &w)
	loose := Evaluate(mustPosition(t, "k7/8/8/8/8/8/L7/4K3 b -"), &w)
	if defended <= loose {
		t.Fatalf("defended %d should beat loose %d", defended, loose)
	}
}

func TestIsDecisive(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{mateIn(1), true},
		{matedIn(3), true},
		{mateIn(maxMatePly), true},
		{mateIn(maxMatePly + 1), false},
		{0, false},
		{5000, false},
	}
	for _, tt := range tests {
		if got := isDecisive(tt.v); got != tt.want {
			t.Errorf("isDecisive(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
