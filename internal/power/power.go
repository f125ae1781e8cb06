// Package power computes, once per simulation pass, which tiles are
// electrically reachable from a power plant within the plant capacity
// budget. The scan is a depth-first flood fill with a frozen neighbor order;
// its LIFO exploration order is the tie-break for which tiles get power when
// the budget runs out, so the traversal must not be reordered.
package power

import (
	"microcity/internal/city"
	"microcity/internal/core"
)

// Plant capacities, in energized tiles per pass.
const (
	CoalCapacity    = 700
	NuclearCapacity = 2000
)

// StackCap bounds the explicit traversal stack. Visited-marking keeps the
// live frontier well under a quarter of the map; blowing this limit means
// the traversal itself is broken.
const StackCap = (city.WorldW * city.WorldH) / 4

type point struct {
	x, y int
}

// Network owns the reusable scan buffers. One instance is held by the
// scheduler and reused every pass; Scan rebuilds the reachability grid from
// scratch each time.
type Network struct {
	reach   *core.BitGrid
	visited *core.BitGrid
	stack   []point
}

// NewNetwork allocates scan buffers for the world grid.
func NewNetwork() *Network {
	return &Network{
		reach:   core.NewBitGrid(city.WorldW, city.WorldH),
		visited: core.NewBitGrid(city.WorldW, city.WorldH),
		stack:   make([]point, 0, StackCap),
	}
}

// Reachability exposes the grid produced by the last Scan. Purely derived
// state: never persisted, rewritten wholesale each pass.
func (n *Network) Reachability() *core.BitGrid { return n.reach }

// Budget returns the total number of tiles the map's power plants can
// energize this pass.
func Budget(m *city.Map) int {
	budget := 0
	for y := 0; y < city.WorldH; y++ {
		for x := 0; x < city.WorldW; x++ {
			t := m.Get(x, y)
			if !t.IsZoneCenter() {
				continue
			}
			switch city.KindOf(t) {
			case city.KindCoal:
				budget += CoalCapacity
			case city.KindNuclear:
				budget += NuclearCapacity
			}
		}
	}
	return budget
}

// Scan recomputes the reachability grid. Every power-plant zone center seeds
// the stack in row-major scan order; tiles are popped LIFO, marked powered
// while budget remains, and their four neighbors pushed North, East, South,
// West. Once the powered count reaches the budget no new work is added, but
// the stack drains normally so visited-marking stays consistent.
func (n *Network) Scan(m *city.Map) *core.BitGrid {
	n.reach.Clear()
	n.visited.Clear()
	n.stack = n.stack[:0]

	budget := 0
	for y := 0; y < city.WorldH; y++ {
		for x := 0; x < city.WorldW; x++ {
			t := m.Get(x, y)
			if !t.IsZoneCenter() {
				continue
			}
			switch city.KindOf(t) {
			case city.KindCoal:
				budget += CoalCapacity
				n.push(x, y)
			case city.KindNuclear:
				budget += NuclearCapacity
				n.push(x, y)
			}
		}
	}

	for len(n.stack) > 0 {
		p := n.stack[len(n.stack)-1]
		n.stack = n.stack[:len(n.stack)-1]

		if n.reach.Count() >= budget {
			continue
		}
		n.reach.Set(p.x, p.y)
		if n.reach.Count() >= budget {
			continue
		}

		// Frozen neighbor order: North, East, South, West.
		n.consider(m, p.x, p.y-1)
		n.consider(m, p.x+1, p.y)
		n.consider(m, p.x, p.y+1)
		n.consider(m, p.x-1, p.y)
	}

	return n.reach
}

// consider pushes a neighbor if it can carry or consume power and has not
// been pushed before. Conductive tiles extend the net; zone centers draw
// from it even without the conductive bit on their own tile. Marking at
// push time keeps every tile on the stack at most once, which is what
// bounds the stack.
func (n *Network) consider(m *city.Map, x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	if n.visited.Get(x, y) {
		return
	}
	t := m.Get(x, y)
	if !t.IsConductive() && !t.IsZoneCenter() {
		return
	}
	n.push(x, y)
}

func (n *Network) push(x, y int) {
	if len(n.stack) >= StackCap {
		panic("power: traversal stack overflow")
	}
	n.visited.Set(x, y)
	n.stack = append(n.stack, point{x, y})
}
