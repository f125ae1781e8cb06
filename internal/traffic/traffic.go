// Package traffic answers whether a zone can currently reach a compatible
// destination zone over roads or rails within a fixed distance budget, and
// raises the traffic density along accepted routes. The walk is a bounded
// randomized drive with a backtracking stack; its step budget, direction
// draws, and dead-end handling are frozen: reordering any of them changes
// the deterministic outcome of a run.
package traffic

import (
	"microcity/internal/city"
	corerand "microcity/pkg/core"
)

// MaxDistance is the step budget: the walk gives up once this many moves
// have been attempted.
const MaxDistance = 30

// Density increment applied per visited road tile on an accepted route, and
// the saturation ceiling.
const (
	DensityStep = 50
	DensityMax  = 240
)

// RouteResult reports a routing attempt. Not finding a route is a routine
// simulation outcome, not an error.
type RouteResult uint8

const (
	RouteFound RouteResult = iota
	RouteNotFound
)

// perimeter lists the twelve cells ringing a 3×3 footprint, the offsets the
// road-acquisition step probes in order.
var perimeter = [12][2]int{
	{-1, -2}, {0, -2}, {1, -2},
	{2, -1}, {2, 0}, {2, 1},
	{1, 2}, {0, 2}, {-1, 2},
	{-2, 1}, {-2, 0}, {-2, -1},
}

// Direction deltas indexed 0..3 = North, East, South, West.
var dirDelta = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Density is the engine-owned traffic density grid at half map resolution.
type Density struct {
	W, H int
	data []uint8
}

// NewDensity allocates the half-resolution grid for the world map.
func NewDensity() *Density {
	w := city.WorldW / 2
	h := city.WorldH / 2
	return &Density{W: w, H: h, data: make([]uint8, w*h)}
}

// At returns the density cell covering world coordinates (x, y).
func (d *Density) At(x, y int) uint8 {
	return d.data[(y/2)*d.W+x/2]
}

// Cells exposes the backing slice for the environment-scan collaborator.
func (d *Density) Cells() []uint8 { return d.data }

// Clear zeroes the grid.
func (d *Density) Clear() {
	for i := range d.data {
		d.data[i] = 0
	}
}

// bump raises the cell covering (x, y), saturating at DensityMax.
func (d *Density) bump(x, y int) {
	i := (y/2)*d.W + x/2
	v := int(d.data[i]) + DensityStep
	if v > DensityMax {
		v = DensityMax
	}
	d.data[i] = uint8(v)
}

// Router performs routing attempts against a map. It holds the walk state
// so a single instance can be reused across the whole zone scan.
type Router struct {
	rng     *corerand.RNG
	density *Density

	path     [][2]int
	posStack [][2]int
}

// NewRouter creates a router drawing directions from rng and accumulating
// accepted routes into density.
func NewRouter(rng *corerand.RNG, density *Density) *Router {
	return &Router{
		rng:      rng,
		density:  density,
		path:     make([][2]int, 0, MaxDistance+1),
		posStack: make([][2]int, 0, MaxDistance+1),
	}
}

// Density returns the grid the router writes accepted routes into.
func (r *Router) Density() *Density { return r.density }

// drivable reports whether a tile can be driven over: road or rail sprites
// qualify, the power-line gap between them does not.
func drivable(t city.Tile) bool {
	i := t.Index()
	if i < city.RoadBase || i > city.LastRail {
		return false
	}
	if i >= city.WireBase && i < city.RailBase {
		return false
	}
	return true
}

// destinationFor reports whether a tile satisfies the fixed compatibility
// table for the given source kind: residential seeks commerce or industry,
// commercial seeks residents, seaports, or other commerce, industrial seeks
// residents.
func destinationFor(src city.Kind, t city.Tile) bool {
	i := t.Index()
	switch src {
	case city.KindResidential:
		return i >= city.ComBase && i <= city.LastInd
	case city.KindCommercial:
		if i >= city.ResBase && i <= city.LastRes {
			return true
		}
		if i >= city.ComBase && i <= city.LastCom {
			return true
		}
		return i >= city.SeaportBase && i <= city.LastSeaport
	case city.KindIndustrial:
		return i >= city.ResBase && i <= city.LastRes
	default:
		panic("traffic: kind has no destination table")
	}
}

// findPerimeterRoad probes the footprint perimeter for a drivable tile.
// This step consumes no randomness and no distance budget.
func (r *Router) findPerimeterRoad(m *city.Map, x, y int) (int, int, bool) {
	for _, off := range perimeter {
		px, py := x+off[0], y+off[1]
		if !m.InBounds(px, py) {
			continue
		}
		if drivable(m.Get(px, py)) {
			return px, py, true
		}
	}
	return 0, 0, false
}

// Route attempts to drive from the zone centered at (x, y) to a compatible
// destination. On success the traffic density is raised along every visited
// road tile; on failure nothing is mutated. The map itself is never written.
func (r *Router) Route(m *city.Map, x, y int, src city.Kind) RouteResult {
	sx, sy, ok := r.findPerimeterRoad(m, x, y)
	if !ok {
		return RouteNotFound
	}

	r.path = r.path[:0]
	r.posStack = r.posStack[:0]
	r.path = append(r.path, [2]int{sx, sy})

	cx, cy := sx, sy
	lastDir := -1 // no reverse to avoid on the first step

	for step := 0; step < MaxDistance; step++ {
		nx, ny, dir, moved := r.tryGo(m, cx, cy, lastDir)
		if moved {
			cx, cy = nx, ny
			lastDir = (dir + 2) & 3
			if step&1 == 1 {
				r.posStack = append(r.posStack, [2]int{cx, cy})
			}
			r.path = append(r.path, [2]int{cx, cy})
			if r.driveDone(m, cx, cy, src) {
				r.commit()
				return RouteFound
			}
			continue
		}
		// Dead end: pull back to the last saved branch point. The skipped
		// steps still count against the distance budget.
		if len(r.posStack) == 0 {
			return RouteNotFound
		}
		p := r.posStack[len(r.posStack)-1]
		r.posStack = r.posStack[:len(r.posStack)-1]
		cx, cy = p[0], p[1]
		lastDir = -1
		step += 3
	}
	return RouteNotFound
}

// tryGo draws one random direction word and tries the four directions from
// it in rotation, skipping the reverse of the previous move. Exactly one
// draw is consumed per step, found or not.
func (r *Router) tryGo(m *city.Map, x, y, lastDir int) (nx, ny, dir int, ok bool) {
	start := int(r.rng.Word() & 3)
	for i := start; i < start+4; i++ {
		d := i & 3
		if d == lastDir {
			continue
		}
		tx, ty := x+dirDelta[d][0], y+dirDelta[d][1]
		if !m.InBounds(tx, ty) {
			continue
		}
		if drivable(m.Get(tx, ty)) {
			return tx, ty, d, true
		}
	}
	return 0, 0, 0, false
}

// driveDone tests whether any of the four tiles adjacent to the current
// position is a compatible destination.
func (r *Router) driveDone(m *city.Map, x, y int, src city.Kind) bool {
	for _, d := range dirDelta {
		tx, ty := x+d[0], y+d[1]
		if !m.InBounds(tx, ty) {
			continue
		}
		if destinationFor(src, m.Get(tx, ty)) {
			return true
		}
	}
	return false
}

// commit raises the density along the accepted path.
func (r *Router) commit() {
	for _, p := range r.path {
		r.density.bump(p[0], p[1])
	}
}
