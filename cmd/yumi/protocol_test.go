package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"yumi/internal/engine"
)

func runScript(t *testing.T, script string) []string {
	t.Helper()
	var out strings.Builder
	s := newSession(engine.NewEngine(engine.DefaultConfig()), &out)
	if err := s.run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestSessionRecordAndMove(t *testing.T) {
	got := runScript(t, strings.Join([]string{
		"position 4k3/8/8/8/8/8/4l3/4K3 b -",
		"record",
		"move e1e2",
		"record",
		"quit",
		"record",
	}, "\n"))
	want := []string{
		"4k3/8/8/8/8/8/4l3/4K3 b -",
		"4k3/8/8/8/8/8/4K3/8 w L",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output (-want +got):\n%s", diff)
	}
}

func TestSessionPositionWithMoves(t *testing.T) {
	got := runScript(t, "position startpos moves a2a3 a7a6\nrecord\n")
	want := []string{"bngkpgnb/1lhhhhll/l7/8/8/L7/1LHHHHLL/BNGPKGNB b -"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output (-want +got):\n%s", diff)
	}
}

func TestSessionGo(t *testing.T) {
	got := runScript(t, strings.Join([]string{
		"position 4k3/8/8/4N3/8/8/8/4K3 b -",
		"go 5",
		"position 4k3/8/8/8/8/8/RR6/KR6 b -",
		"go 1",
	}, "\n"))
	want := []string{"bestmove e5e8", "bestmove S"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output (-want +got):\n%s", diff)
	}
}

func TestSessionErrorsKeepPosition(t *testing.T) {
	got := runScript(t, strings.Join([]string{
		"position 4k3/8/8/8/8/8/8/4K3 b -",
		"move e1e3",
		"position 9/8 b -",
		"go soon",
		"dance",
		"record",
	}, "\n"))
	if len(got) != 5 {
		t.Fatalf("got %d lines: %q", len(got), got)
	}
	for i, line := range got[:4] {
		if !strings.HasPrefix(line, "error ") {
			t.Errorf("line %d = %q, want an error", i, line)
		}
	}
	if got[4] != "4k3/8/8/8/8/8/8/4K3 b -" {
		t.Fatalf("position changed after errors: %q", got[4])
	}
}
