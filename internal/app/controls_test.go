package app

import (
	"testing"

	"cellflow/internal/core"
	"cellflow/internal/sims/fluid"
)

type recordedEdit struct {
	x, y  int
	brush core.Material
	erase bool
}

type fakeEditor struct {
	edits []recordedEdit
}

func (f *fakeEditor) ApplyEdit(x, y int, brush core.Material, erase bool) bool {
	f.edits = append(f.edits, recordedEdit{x: x, y: y, brush: brush, erase: erase})
	return true
}

func TestControlsToggleBrushAndErase(t *testing.T) {
	c := NewControls()
	if c.Brush != core.Solid || c.Erase {
		t.Fatalf("unexpected initial modes: brush=%v erase=%v", c.Brush, c.Erase)
	}

	c.Handle(KeyDown(KeySpace), nil)
	if c.Brush != core.Water {
		t.Fatalf("space should switch to water, got %v", c.Brush)
	}
	if n := c.TakeNotice(); n != "Brush: water" {
		t.Fatalf("unexpected notice %q", n)
	}
	if c.TakeNotice() != "" {
		t.Fatal("notice must clear after it is taken")
	}

	c.Handle(KeyDown(KeyBackspace), nil)
	if !c.Erase || c.Status() != "erase" {
		t.Fatalf("backspace should enable erase, status %q", c.Status())
	}
	c.Handle(KeyDown(KeyBackspace), nil)
	if c.Erase {
		t.Fatal("second backspace should disable erase")
	}
	if c.Brush != core.Water {
		t.Fatal("leaving erase mode must keep the selected brush")
	}
	if c.Status() != "paint water" {
		t.Fatalf("unexpected status %q", c.Status())
	}
}

func TestControlsForwardDrags(t *testing.T) {
	c := NewControls()
	ed := &fakeEditor{}

	c.Handle(Drag(15, 25), ed)
	c.Handle(KeyDown(KeyBackspace), ed)
	c.Handle(Drag(40, 5), ed)

	want := []recordedEdit{
		{x: 15, y: 25, brush: core.Solid, erase: false},
		{x: 40, y: 5, brush: core.Solid, erase: true},
	}
	if len(ed.edits) != len(want) {
		t.Fatalf("expected %d edits, got %d", len(want), len(ed.edits))
	}
	for i := range want {
		if ed.edits[i] != want[i] {
			t.Errorf("edit %d = %+v, want %+v", i, ed.edits[i], want[i])
		}
	}

	if c.Handle(Drag(1, 1), nil) {
		t.Fatal("drag without an editor must not quit")
	}
}

func TestHandleAllStopsAtQuit(t *testing.T) {
	c := NewControls()
	ed := &fakeEditor{}
	quit := c.HandleAll([]Event{Drag(1, 1), Quit(), Drag(2, 2)}, ed)
	if !quit {
		t.Fatal("quit event must be reported")
	}
	if len(ed.edits) != 1 {
		t.Fatalf("events after quit must be ignored, got %d edits", len(ed.edits))
	}
}

func TestPauseAndSingleStep(t *testing.T) {
	c := NewControls()
	if !c.ShouldStep() {
		t.Fatal("running controls step every frame")
	}
	c.Handle(KeyDown(KeyPause), nil)
	if c.ShouldStep() {
		t.Fatal("paused controls must not step")
	}
	c.Handle(KeyDown(KeyStep), nil)
	if !c.ShouldStep() {
		t.Fatal("single step should run once while paused")
	}
	if c.ShouldStep() {
		t.Fatal("single step must be consumed")
	}
}

func TestGridAndResetKeys(t *testing.T) {
	c := NewControls()
	c.Handle(KeyDown(KeyGrid), nil)
	if c.ShowGrid {
		t.Fatal("grid key should hide the grid lines")
	}
	c.Handle(KeyDown(KeyReset), nil)
	if !c.ResetNext {
		t.Fatal("reset key should request a reset")
	}
	c.Handle(KeyDown(KeyUnknown), nil)
	if c.Brush != core.Solid || c.Erase {
		t.Fatal("unknown keys must not change modes")
	}
}

func TestFrameLoopAgainstFluid(t *testing.T) {
	cfg := fluid.DefaultConfig()
	cfg.CellSize = 10
	cfg.Width, cfg.Height = 10, 30
	sim := fluid.New(cfg)
	c := NewControls()

	frame := func(events ...Event) {
		if c.HandleAll(events, sim) {
			t.Fatal("unexpected quit")
		}
		if c.ShouldStep() {
			sim.Step()
		}
	}

	frame(KeyDown(KeySpace), Drag(5, 5))
	if sim.String() != ".\n~\n.\n" {
		t.Fatalf("painted water should fall one row in the same frame:\n%s", sim.String())
	}
	frame()
	frame()
	if sim.String() != ".\n.\n~\n" {
		t.Fatalf("water should rest on the bottom row:\n%s", sim.String())
	}
	frame(KeyDown(KeyBackspace), Drag(9, 29), Drag(-3, 100))
	if sim.String() != ".\n.\n.\n" {
		t.Fatalf("erase should empty the bottom cell:\n%s", sim.String())
	}
}
