// Package sim orchestrates the simulation: tick cadence, phase ordering,
// census and valve recomputation, and the tool entry points the interactive
// collaborator uses between ticks. It is the only component that clears
// census counters and the only owner of the map across tick boundaries.
package sim

import (
	"microcity/internal/city"
	"microcity/internal/core"
	"microcity/internal/power"
	"microcity/internal/traffic"
	"microcity/internal/zone"
	corerand "microcity/pkg/core"
)

// Phase cadences, in ticks.
const (
	CensusInterval = 4
	ValveInterval  = 16
)

// RunState is the scheduler's lifecycle state. Transitions are honored at
// tick boundaries only: a tick in progress always completes all phases.
type RunState uint8

const (
	Stopped RunState = iota
	Running
	Paused
)

// Hook is a collaborator phase invoked after the zone scan (disasters,
// environment maps). Hooks share the single-writer map access the engine
// assumes; they run to completion within the tick.
type Hook func(*city.Map)

// Scheduler owns the map and all derived state for the duration of every
// tick. It is not safe for concurrent use; the caller enforces
// single-writer access, as the engine exposes no locking.
type Scheduler struct {
	m       *city.Map
	rng     *corerand.RNG
	net     *power.Network
	density *traffic.Density
	router  *traffic.Router

	clock  int64
	state  RunState
	census city.Census
	// history is the last completed census pass; valves are steered
	// against it rather than the counters mid-accumulation.
	history city.Census
	valves  city.Valves

	funds FundsProvider
	seed  int64

	// DisasterHook and EnvironmentHook attach the out-of-scope
	// collaborators; nil hooks are skipped.
	DisasterHook    Hook
	EnvironmentHook Hook
}

// New constructs a scheduler over a fresh map, seeded deterministically.
func New(seed int64) *Scheduler {
	rng := corerand.NewRNG(seed)
	density := traffic.NewDensity()
	return &Scheduler{
		m:       city.NewMap(),
		rng:     rng,
		net:     power.NewNetwork(),
		density: density,
		router:  traffic.NewRouter(rng, density),
		seed:    seed,
	}
}

// Map exposes the tile grid for collaborators that mutate it between ticks
// (tools, persistence, terrain generation).
func (s *Scheduler) Map() *city.Map { return s.m }

// Clock returns the simulated time in ticks.
func (s *Scheduler) Clock() int64 { return s.clock }

// State returns the current run state.
func (s *Scheduler) State() RunState { return s.state }

// Start moves the scheduler into Running. Starting from Paused resumes.
func (s *Scheduler) Start() { s.state = Running }

// Pause requests a pause; it takes effect before the next tick, never
// inside one.
func (s *Scheduler) Pause() {
	if s.state == Running {
		s.state = Paused
	}
}

// Resume continues a paused run.
func (s *Scheduler) Resume() {
	if s.state == Paused {
		s.state = Running
	}
}

// Stop halts the run. A subsequent Start begins from the current map state.
func (s *Scheduler) Stop() { s.state = Stopped }

// Census returns a copy of the last completed census pass.
func (s *Scheduler) Census() city.Census { return s.history }

// Valves returns the current demand valves.
func (s *Scheduler) Valves() city.Valves { return s.valves }

// TrafficDensity exposes the engine-owned traffic density grid.
func (s *Scheduler) TrafficDensity() *traffic.Density { return s.density }

// PowerReachability exposes the reachability grid from the last power pass.
func (s *Scheduler) PowerReachability() *core.BitGrid { return s.net.Reachability() }

// QueryTile is the read-only accessor for rendering and overlays.
func (s *Scheduler) QueryTile(x, y int) city.Tile { return s.m.Get(x, y) }

// Tick advances the simulation one step, running all phases to completion.
// Callers driving a Running scheduler call this in a loop and check State
// between calls; single-stepping a Paused scheduler is also allowed.
func (s *Scheduler) Tick() {
	// Phase 1: advance the simulated clock.
	s.clock++

	// Phase 2: at the census cadence, clear the counters; the zone scan
	// below repopulates them within this same pass.
	takeCensus := s.clock%CensusInterval == 0
	if takeCensus {
		s.census.Clear()
	}

	// Phase 3: at the valve cadence, steer demand against the last
	// completed census.
	if s.clock%ValveInterval == 0 {
		s.setValves()
	}

	// Phase 4: one power pass over the whole map.
	reach := s.net.Scan(s.m)

	// Phase 5: full map scan, dispatching zone centers and measuring
	// infrastructure. The whole map is scanned every tick; a fractional
	// scan would change the RNG draw order and break determinism.
	env := &zone.Env{
		Map:        s.m,
		RNG:        s.rng,
		Power:      reach,
		Router:     s.router,
		Census:     &s.census,
		Valves:     s.valves,
		TakeCensus: takeCensus,
		Clock:      s.clock,
	}
	for y := 0; y < city.WorldH; y++ {
		for x := 0; x < city.WorldW; x++ {
			t := s.m.Get(x, y)
			if t.IsZoneCenter() {
				zone.Visit(env, x, y)
				continue
			}
			if takeCensus {
				if t.IsRoad() {
					s.census.RoadLen++
				} else if t.IsRail() {
					s.census.RailLen++
				}
			}
		}
	}
	if takeCensus {
		s.history = s.census
	}

	// Phase 6: collaborator phases.
	if s.DisasterHook != nil {
		s.DisasterHook(s.m)
	}
	if s.EnvironmentHook != nil {
		s.EnvironmentHook(s.m)
	}
}
