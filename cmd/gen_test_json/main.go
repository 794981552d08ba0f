package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"lukechampine.com/frand"

	"yumi/internal/yumi"
)

// TestCase 一个局面和它的全部合法着法，给别的实现做走法生成对拍用
type TestCase struct {
	Record string   `json:"record"`
	Moves  []string `json:"moves"`
	Perft2 uint64   `json:"perft2"`
}

func collect(games, maxPlies int) []TestCase {
	var cases []TestCase
	for g := 0; g < games; g++ {
		pos := yumi.NewInitialPosition(nil)
		for ply := 0; ply < maxPlies; ply++ {
			legal := pos.LegalMoves()
			cases = append(cases, newTestCase(pos, legal))
			if len(legal) == 0 {
				break
			}
			pos.Apply(legal[frand.Intn(len(legal))])
		}
	}
	return cases
}

func newTestCase(pos *yumi.Position, legal []yumi.Move) TestCase {
	moves := make([]string, len(legal))
	for i, m := range legal {
		moves[i] = m.Text(pos.SideToMove())
	}
	sort.Strings(moves)
	return TestCase{
		Record: pos.Record(),
		Moves:  moves,
		Perft2: pos.Perft(2),
	}
}

func main() {
	games := flag.Int("games", 10, "random games to sample")
	maxPlies := flag.Int("maxplies", 200, "plies per game at most")
	out := flag.String("out", "movegen_test_data.json", "output file")
	flag.Parse()

	cases := collect(*games, *maxPlies)
	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(cases), *games, *out)
}
