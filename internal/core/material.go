package core

// Material is the kind of matter occupying a cell.
type Material uint8

const (
	// Water cells carry a fill level and may flow.
	Water Material = iota
	// Solid cells are immovable and always drawn full.
	Solid
)

// Toggle flips between Water and Solid.
func (m Material) Toggle() Material {
	if m == Solid {
		return Water
	}
	return Solid
}

func (m Material) String() string {
	switch m {
	case Water:
		return "water"
	case Solid:
		return "solid"
	default:
		return "unknown"
	}
}
