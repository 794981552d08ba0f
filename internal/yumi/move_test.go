package yumi

import (
	"errors"
	"testing"
)

func TestMoveTextRoundTrip(t *testing.T) {
	tests := []struct {
		move Move
		side Side
		text string
	}{
		{NewMove(MakeSquare(0, 1), MakeSquare(0, 2)), First, "a2a3"},
		{NewPromotion(MakeSquare(7, 5), MakeSquare(7, 6)), First, "h6h7+"},
		{NewDrop(Light, MakeSquare(2, 4)), First, "c5L"},
		{NewDrop(Archer0, MakeSquare(3, 3)), Second, "d4a"},
		{NewDrop(Arrow, MakeSquare(7, 7)), Second, "h8r"},
	}
	for _, tt := range tests {
		if got := tt.move.Text(tt.side); got != tt.text {
			t.Errorf("%+v text = %q, want %q", tt.move, got, tt.text)
		}
		back, err := ParseMove(tt.text, tt.side)
		if err != nil {
			t.Errorf("parse %q: %v", tt.text, err)
			continue
		}
		if back != tt.move {
			t.Errorf("parse %q = %+v, want %+v", tt.text, back, tt.move)
		}
	}
	if got := NullMove.Text(First); got != NoMoveText {
		t.Errorf("null move text = %q", got)
	}
}

func TestParseMoveErrors(t *testing.T) {
	bad := []struct {
		text string
		side Side
	}{
		{"", First},
		{"a2", First},
		{"a9a3", First},
		{"a2a3x", First},
		{"c5l", First}, // 小写是后手的子
		{"c5K", First}, // 王不能打入
		{"c5B", First}, // 升级弓兵不能打入
		{"i1a2", First},
	}
	for _, tt := range bad {
		if _, err := ParseMove(tt.text, tt.side); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("ParseMove(%q) err = %v, want ErrInvalidMove", tt.text, err)
		}
	}
}
