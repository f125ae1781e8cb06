package sim

import (
	"microcity/internal/city"
	"microcity/internal/core"
)

// World adapts the scheduler to the core.Sim contract the viewer and the
// headless runner drive: deterministic Reset from a seed, one Tick per
// Step, and a byte display buffer classifying every tile for the palette.
type World struct {
	sched   *Scheduler
	display []uint8
	seed    int64
}

// NewWorld returns a world over a fresh scheduler.
func NewWorld(seed int64) *World {
	w := &World{
		sched:   New(seed),
		display: make([]uint8, city.WorldW*city.WorldH),
		seed:    seed,
	}
	w.bootstrap()
	w.refreshDisplay()
	return w
}

// Scheduler exposes the underlying scheduler for tool application and
// census/valve queries.
func (w *World) Scheduler() *Scheduler { return w.sched }

// Name returns the simulation identifier.
func (w *World) Name() string { return "city" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: city.WorldW, H: city.WorldH} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Reset rebuilds the world deterministically from the seed. A zero seed
// reuses the construction seed, matching how the viewer's reset key works.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.seed
	}
	w.seed = seed
	w.sched = New(seed)
	w.bootstrap()
	w.refreshDisplay()
}

// Step advances the scheduler one tick and refreshes the display buffer.
func (w *World) Step() {
	w.sched.Tick()
	w.refreshDisplay()
}

// bootstrap lays the initial terrain: clear land with a meandering river
// strip down the east half, leaving the west bank buildable. Generation
// draws from the scheduler's RNG before any tick runs, so seed + tick count
// still fully determine the simulation.
func (w *World) bootstrap() {
	m := w.sched.Map()
	rng := w.sched.rng

	const minX = city.WorldW/2 - 10
	const maxX = city.WorldW - 7

	x := city.WorldW/2 + rng.Perturb(city.WorldW/8)
	for y := 0; y < city.WorldH; y++ {
		if x < minX {
			x = minX
		}
		if x > maxX {
			x = maxX
		}
		for dx := -2; dx <= 2; dx++ {
			m.Set(x+dx, y, city.RiverBase+city.Tile((x+dx+y)%3))
		}
		x += rng.Perturb(2)
	}
}
