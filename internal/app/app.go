//go:build ebiten

package app

import (
	"cellflow/internal/core"
	"cellflow/internal/render"
	"cellflow/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim    core.Sim
	editor core.Editable
	levels core.LevelProvider

	painter  *render.GridPainter
	overlay  *ui.Overlay
	hud      *ui.HUD
	toast    *ui.Toast
	controls *Controls

	cellSize int
	hudWidth int

	events []Event
	keys   []ebiten.Key
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	cellSize := cfg.CellSize
	if sizer, ok := sim.(core.CellSizer); ok {
		cellSize = sizer.CellSize()
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(sim.Size(), cellSize),
		toast:    ui.NewToast(),
		controls: NewControls(),
		cellSize: cellSize,
		hudWidth: cfg.HUDWidth,
	}
	g.overlay = ui.NewOverlay(sim, cellSize, g.toast)
	if cfg.HUDWidth > 0 {
		g.hud = ui.NewHUD(sim, cfg.HUDWidth)
	}
	if ed, ok := sim.(core.Editable); ok {
		g.editor = ed
	}
	if lp, ok := sim.(core.LevelProvider); ok {
		g.levels = lp
	}
	return g
}

// Controls exposes the interactive modes.
func (g *Game) Controls() *Controls { return g.controls }

// Reset empties the simulation.
func (g *Game) Reset() {
	g.sim.Reset()
	g.controls.ResetNext = false
}

// Update drains input, applies edits, then advances the simulation once.
func (g *Game) Update() error {
	if g.controls.HandleAll(g.pollEvents(), g.editor) {
		return ebiten.Termination
	}
	if g.controls.ResetNext {
		g.Reset()
	}
	if notice := g.controls.TakeNotice(); notice != "" {
		g.toast.Show(notice)
	}
	g.toast.Update(1 / float32(ebiten.TPS()))

	g.overlay.Update()
	if g.hud != nil {
		g.hud.Update(g.viewWidth())
	}

	if g.controls.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	var levels []float64
	if g.levels != nil {
		levels = g.levels.FillLevels()
	}
	g.painter.Blit(screen, g.sim.Cells(), levels, g.controls.ShowGrid)
	g.overlay.Draw(screen, g.controls.Brush, g.controls.Erase)
	if g.hud != nil {
		g.hud.Draw(screen, g.viewWidth(), g.controls.Status())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.cellSize + g.hudWidth, s.H * g.cellSize
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.cellSize }

func (g *Game) pollEvents() []Event {
	events := g.events[:0]
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, Quit())
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key := mapKey(k); key != KeyUnknown {
			events = append(events, KeyDown(key))
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x < g.viewWidth() {
			events = append(events, Drag(x, y))
		}
	}
	g.events = events
	return events
}

func mapKey(k ebiten.Key) Key {
	switch k {
	case ebiten.KeySpace:
		return KeySpace
	case ebiten.KeyBackspace:
		return KeyBackspace
	case ebiten.KeyR:
		return KeyReset
	case ebiten.KeyG:
		return KeyGrid
	case ebiten.KeyP:
		return KeyPause
	case ebiten.KeyN:
		return KeyStep
	default:
		return KeyUnknown
	}
}
