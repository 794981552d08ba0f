package game

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"yumi/internal/yumi"
)

func TestNewGameAndPlay(t *testing.T) {
	m := NewManager(nil)
	g, err := m.NewGame("startpos")
	if err != nil {
		t.Fatal(err)
	}
	if got, err := m.Get(g.ID); err != nil || got != g {
		t.Fatalf("Get(%s) = %v, %v", g.ID, got, err)
	}

	for _, mv := range []string{"a2a3", "a7a6"} {
		st, err := m.Play(g.ID, mv)
		if err != nil {
			t.Fatalf("play %s: %v", mv, err)
		}
		if st != StatusOngoing {
			t.Fatalf("status after %s = %s", mv, st)
		}
	}
	if diff := cmp.Diff([]string{"a2a3", "a7a6"}, g.Moves()); diff != "" {
		t.Fatalf("moves (-want +got):\n%s", diff)
	}
	if g.Pos.Ply() != 2 {
		t.Fatalf("ply = %d", g.Pos.Ply())
	}
}

func TestPlayErrors(t *testing.T) {
	m := NewManager(nil)
	g, _ := m.NewGame("")

	if _, err := m.Play(g.ID, "a2a4"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("two-square light move: %v", err)
	}
	if _, err := m.Play(g.ID, "zz"); !errors.Is(err, yumi.ErrInvalidMove) {
		t.Fatalf("garbage move: %v", err)
	}
	if _, err := m.Play("no-such-game", "a2a3"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("unknown game: %v", err)
	}
	if err := m.Undo(g.ID); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("undo on fresh game: %v", err)
	}
	if _, err := m.NewGame("not a record"); !errors.Is(err, yumi.ErrInvalidRecord) {
		t.Fatalf("bad record: %v", err)
	}
}

func TestUndoRestoresPosition(t *testing.T) {
	m := NewManager(nil)
	g, _ := m.NewGame("4k3/8/8/8/8/8/4l3/4K3 b -")
	before := g.Pos.Clone()

	if _, err := m.Play(g.ID, "e1e2"); err != nil {
		t.Fatal(err)
	}
	if err := m.Undo(g.ID); err != nil {
		t.Fatal(err)
	}
	if !g.Pos.Equal(before) {
		t.Fatalf("undo did not restore:\n%v", g.Pos)
	}
	if len(g.History) != 0 {
		t.Fatalf("history length %d after undo", len(g.History))
	}
}

func TestStatusAfterRoyalCapture(t *testing.T) {
	m := NewManager(nil)
	g, _ := m.NewGame("4k3/8/8/4N3/8/8/8/4K3 b -")

	st, err := m.Play(g.ID, "e5e8")
	if err != nil {
		t.Fatal(err)
	}
	if st != StatusFirstWins {
		t.Fatalf("status = %s, want %s", st, StatusFirstWins)
	}
	if _, err := m.Play(g.ID, "e1e2"); !errors.Is(err, ErrGameOver) {
		t.Fatalf("move after game end: %v", err)
	}
}

func TestStatusNoLegalMoves(t *testing.T) {
	m := NewManager(nil)
	g, _ := m.NewGame("4k3/8/8/8/8/8/RR6/KR6 b -")
	st, err := m.Status(g.ID)
	if err != nil {
		t.Fatal(err)
	}
	if st != StatusSecondWins {
		t.Fatalf("status = %s, want %s", st, StatusSecondWins)
	}
}

func TestRepetition(t *testing.T) {
	m := NewManager(nil)
	g, _ := m.NewGame("startpos")
	cycle := []string{"b1a3", "b8a6", "a3b1", "a6b8"}

	var st Status
	for i := 0; i < 3; i++ {
		for _, mv := range cycle {
			var err error
			if st, err = m.Play(g.ID, mv); err != nil {
				t.Fatalf("cycle %d %s: %v", i, mv, err)
			}
		}
	}
	if st != StatusRepetition {
		t.Fatalf("status after three cycles = %s, want %s", st, StatusRepetition)
	}

	if err := m.Undo(g.ID); err != nil {
		t.Fatal(err)
	}
	if st, _ := m.Status(g.ID); st != StatusOngoing {
		t.Fatalf("status after undo = %s", st)
	}
}

func TestRemove(t *testing.T) {
	m := NewManager(nil)
	g, _ := m.NewGame("")
	m.Remove(g.ID)
	if _, err := m.Get(g.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("Get after Remove: %v", err)
	}
}

func TestConcurrentStatus(t *testing.T) {
	m := NewManager(nil)
	g, _ := m.NewGame("startpos")
	before := g.Pos.Clone()

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				st, err := m.Status(g.ID)
				if err == nil && st != StatusOngoing {
					err = fmt.Errorf("status %s", st)
				}
				if err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
	if !g.Pos.Equal(before) {
		t.Fatal("concurrent Status changed the position")
	}
}
