package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"yumi/internal/yumi"
)

func main() {
	record := flag.String("record", "", "position record (default: start position)")
	depth := flag.Int("perft", 3, "deepest perft to run")
	flag.Parse()

	pos := yumi.NewInitialPosition(nil)
	if *record != "" {
		var err error
		if pos, err = yumi.ParsePosition(*record, nil); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fmt.Print(pos)
	fmt.Println("Record:", pos.Record())
	fmt.Println("Legal moves:", len(pos.LegalMoves()))
	for d := 1; d <= *depth; d++ {
		start := time.Now()
		n := pos.Perft(d)
		fmt.Printf("perft(%d) = %d  (%v)\n", d, n, time.Since(start))
	}
}
