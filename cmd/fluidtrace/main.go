package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"cellflow/internal/core"
	"cellflow/internal/sims/fluid"
)

type cellPoint struct {
	col, row int
}

func main() {
	rows := flag.Int("rows", 6, "grid rows")
	cols := flag.Int("cols", 8, "grid columns")
	ticks := flag.Int("ticks", 6, "ticks to run")
	water := flag.String("water", "1,0;3,1", "semicolon separated col,row cells painted with water")
	solid := flag.String("solid", "3,4", "semicolon separated col,row cells painted solid")
	clamp := flag.Bool("clamp", false, "clamp water levels to [0,1] after each tick")
	leaky := flag.Bool("leaky", false, "let solids absorb water falling onto them")
	delay := flag.Duration("delay", 0, "pause between printed frames")
	flag.Parse()

	waterCells, err := parseCells(*water)
	if err != nil {
		log.Fatalf("bad -water: %v", err)
	}
	solidCells, err := parseCells(*solid)
	if err != nil {
		log.Fatalf("bad -solid: %v", err)
	}

	cfg := fluid.DefaultConfig()
	cfg.CellSize = 1
	cfg.Width = *cols
	cfg.Height = *rows
	cfg.Clamp = *clamp
	cfg.SolidsBlock = !*leaky
	if cfg.Width <= 0 || cfg.Height <= 0 {
		log.Fatalf("grid must have at least one cell, got %dx%d", cfg.Width, cfg.Height)
	}
	sim := fluid.New(cfg)

	for _, p := range solidCells {
		if !sim.ApplyCellEdit(p.col, p.row, core.Solid, false) {
			log.Printf("skipping solid cell %d,%d outside the grid", p.col, p.row)
		}
	}
	for _, p := range waterCells {
		if !sim.ApplyCellEdit(p.col, p.row, core.Water, false) {
			log.Printf("skipping water cell %d,%d outside the grid", p.col, p.row)
		}
	}

	trace(os.Stdout, sim, *ticks, *delay)
}

func trace(w io.Writer, sim *fluid.Sim, ticks int, delay time.Duration) {
	printFrame(w, sim)
	for i := 0; i < ticks; i++ {
		if delay > 0 {
			time.Sleep(delay)
		}
		sim.Tick()
		printFrame(w, sim)
	}
}

func printFrame(w io.Writer, sim *fluid.Sim) {
	fmt.Fprintf(w, "tick %d water=%.2f\n%s\n", sim.Ticks(), sim.TotalWater(), sim.String())
}

func parseCells(list string) ([]cellPoint, error) {
	var out []cellPoint
	for _, part := range strings.Split(list, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xy := strings.Split(part, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("cell %q is not col,row", part)
		}
		col, err := strconv.Atoi(strings.TrimSpace(xy[0]))
		if err != nil {
			return nil, fmt.Errorf("cell %q: %w", part, err)
		}
		row, err := strconv.Atoi(strings.TrimSpace(xy[1]))
		if err != nil {
			return nil, fmt.Errorf("cell %q: %w", part, err)
		}
		out = append(out, cellPoint{col: col, row: row})
	}
	return out, nil
}
