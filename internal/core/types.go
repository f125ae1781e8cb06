package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract the viewer and runner expect from a grid simulation:
// deterministic reset from a seed, single-tick stepping, and a byte display
// buffer classifying each cell for the palette.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}
