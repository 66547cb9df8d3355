//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"torus-life/internal/app"
	"torus-life/pkg/core"
	_ "torus-life/pkg/sims/life"
)

type stateWriter interface {
	WriteDiagram(w io.Writer) error
	PrintState(w io.Writer) error
}

// Without the ebiten tag the grid is printed to stdout instead of a window.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 10, "generations to print")
	raw := flag.Bool("raw", false, "print bare 0/1 rows instead of the box diagram")
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
	}
	sim := factory(cfg.SimOptions())
	out, ok := sim.(stateWriter)
	if !ok {
		log.Fatalf("sim %q has no text rendering", cfg.Sim)
	}

	delay := time.Duration(0)
	if cfg.TPS > 0 {
		delay = time.Second / time.Duration(cfg.TPS)
	}
	for i := 0; i <= *steps; i++ {
		if i > 0 {
			time.Sleep(delay)
			sim.Evolve()
		}
		var err error
		if *raw {
			fmt.Fprintf(os.Stdout, "step %d\n", sim.Generation())
			err = out.PrintState(os.Stdout)
		} else {
			err = out.WriteDiagram(os.Stdout)
		}
		if err != nil {
			log.Fatal(err)
		}
	}
	fmt.Fprintln(os.Stderr, "Build with `-tags ebiten` for the windowed viewer.")
}
