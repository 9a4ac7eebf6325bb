//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cellflow/internal/app"
	"cellflow/internal/core"
	_ "cellflow/internal/sims/fluid"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.Options())
	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Fluid Sim")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	size := sim.Size()
	log.Printf("running %s on a %dx%d grid, frame delay %v", sim.Name(), size.W, size.H, cfg.FrameDelay())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
