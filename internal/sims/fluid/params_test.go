package fluid

import (
	"testing"

	"cellflow/internal/core"
)

func TestParametersSnapshot(t *testing.T) {
	s := NewGrid(3, 2)
	s.ApplyCellEdit(0, 0, core.Water, false)
	s.Tick()

	snap := s.Parameters()
	cases := map[string]string{
		"cols":         "2",
		"rows":         "3",
		"substeps":     "1",
		"clamp":        "false",
		"solids_block": "true",
		"ticks":        "1",
		"water":        "1.00",
	}
	for key, want := range cases {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != want {
			t.Errorf("parameter %q = %q, want %q", key, p.Value, want)
		}
	}
}

func TestSetIntParameterClampsSubsteps(t *testing.T) {
	s := NewGrid(2, 2)
	if !s.SetIntParameter("substeps", 50) {
		t.Fatal("substeps should be adjustable")
	}
	if s.Config().Substeps != maxSubsteps {
		t.Fatalf("expected substeps clamped to %d, got %d", maxSubsteps, s.Config().Substeps)
	}
	s.SetIntParameter("substeps", -2)
	if s.Config().Substeps != 0 {
		t.Fatalf("expected substeps clamped to 0, got %d", s.Config().Substeps)
	}
	if s.SetIntParameter("rows", 4) {
		t.Fatal("grid shape is fixed and must not be adjustable")
	}
}

func TestSetBoolParameter(t *testing.T) {
	s := NewGrid(2, 2)
	if !s.SetBoolParameter("clamp", true) || !s.Config().Clamp {
		t.Fatal("clamp should be adjustable")
	}
	if !s.SetBoolParameter("solids_block", false) || s.Config().SolidsBlock {
		t.Fatal("solids_block should be adjustable")
	}
	if s.SetBoolParameter("unknown", true) {
		t.Fatal("unknown keys must be rejected")
	}
}

func TestParameterControlsMatchSetters(t *testing.T) {
	s := NewGrid(1, 1)
	for _, ctrl := range s.ParameterControls() {
		if _, ok := s.Parameters().Lookup(ctrl.Key); !ok {
			t.Errorf("control %q has no matching parameter", ctrl.Key)
		}
	}
}
