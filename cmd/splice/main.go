// Command splice solves one catalogued Splice puzzle and prints its
// solution. It uses bare package-level flag.*Var variables, log.Printf
// for progress, and os.Exit(1) on user error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/alphabeth/splice/catalogue"
	"github.com/alphabeth/splice/render"
	"github.com/alphabeth/splice/solver"
)

var (
	sequenceFlag = flag.Uint("sequence", 0, "sequence number, 1-based")
	strandFlag   = flag.Uint("strand", 0, "strand number, 1-based")
	renderDir    = flag.String("render-dir", "", "optional directory to write per-step DOT/SVG files into")
)

func init() {
	flag.UintVar(sequenceFlag, "s", 0, "shorthand for -sequence")
	flag.UintVar(strandFlag, "t", 0, "shorthand for -strand")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime)

	if *sequenceFlag == 0 || *strandFlag == 0 {
		log.Print("error: both -s/--sequence and -t/--strand are required and must be >= 1")
		os.Exit(1)
	}

	level, err := catalogue.MakeLevel(uint8(*sequenceFlag), uint8(*strandFlag))
	if err != nil {
		log.Printf("error loading level: %s", err)
		os.Exit(1)
	}

	steps, ok := solver.Solve(level)
	if !ok {
		log.Printf("no solution found for sequence %d strand %d", *sequenceFlag, *strandFlag)
		os.Exit(1)
	}

	log.Printf("solved sequence %d strand %d in %d splice(s) over %d step(s)",
		*sequenceFlag, *strandFlag, steps[len(steps)-1].SpliceCount, len(steps))
	for i, step := range steps {
		fmt.Printf("%d: %s (splices used: %d)\n", i, render.Caption(step.LastAction), step.SpliceCount)
	}

	if *renderDir == "" {
		return
	}
	if err := os.MkdirAll(*renderDir, 0o755); err != nil {
		log.Fatalf("error creating render directory: %s", err)
	}
	if err := render.RenderAll(context.Background(), *renderDir, render.StepsFromSolution(steps)); err != nil {
		log.Printf("warning: some steps failed to render: %s", err)
	}
}
