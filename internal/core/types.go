package core

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a grid simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Step()
	Cells() []uint8
}

// Editable is implemented by sims that accept interactive brush edits given in
// screen pixel coordinates. It reports whether a cell was changed.
type Editable interface {
	ApplyEdit(pixelX, pixelY int, brush Material, erase bool) bool
}

// LevelProvider exposes a per-cell fill level buffer matching Cells().
type LevelProvider interface {
	FillLevels() []float64
}

// CellSizer reports the on-screen edge length of one cell in pixels.
type CellSizer interface {
	CellSize() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := sims[name]
	return f, ok
}
