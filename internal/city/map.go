package city

import (
	"fmt"

	"microcity/internal/core"
)

// World dimensions. The engine's constants and scan order are frozen
// against this exact grid size.
const (
	WorldW = 120
	WorldH = 100
)

// Map is the 120×100 tile grid. It is owned exclusively by the scheduler for
// the duration of a tick; components receive sequential, never concurrent,
// access during their phase.
type Map struct {
	grid *core.WordGrid
}

// NewMap allocates a cleared world-sized map.
func NewMap() *Map {
	return &Map{grid: core.NewWordGrid(WorldW, WorldH)}
}

// InBounds reports whether (x, y) lies inside the world.
func (m *Map) InBounds(x, y int) bool { return m.grid.InBounds(x, y) }

// Get returns the tile at (x, y). Out-of-range coordinates panic: a caller
// passing bad coordinates indicates a bug above the engine, never clamp.
func (m *Map) Get(x, y int) Tile {
	if !m.grid.InBounds(x, y) {
		panic(fmt.Sprintf("city: Get out of bounds (%d,%d)", x, y))
	}
	return Tile(m.grid.Cells()[m.grid.Index(x, y)])
}

// Set writes the tile at (x, y). Out-of-range coordinates panic.
func (m *Map) Set(x, y int, t Tile) {
	if !m.grid.InBounds(x, y) {
		panic(fmt.Sprintf("city: Set out of bounds (%d,%d)", x, y))
	}
	m.grid.Cells()[m.grid.Index(x, y)] = uint16(t)
}

// Cells exposes the backing slice for bulk accessors (persistence, display).
func (m *Map) Cells() []uint16 { return m.grid.Cells() }

// Clear resets every tile to dirt.
func (m *Map) Clear() { m.grid.Clear() }

// Snapshot copies the current tile words into a fresh slice.
func (m *Map) Snapshot() []uint16 {
	return append([]uint16(nil), m.grid.Cells()...)
}
