// Package zone implements the per-zone-center growth, decline, and service
// decisions taken each time the scheduler's map scan visits a center tile.
// Zone state (density level and value class) is encoded entirely inside the
// tile's sprite index; there is no side table.
package zone

import (
	"microcity/internal/city"
	"microcity/internal/core"
	"microcity/internal/traffic"
	corerand "microcity/pkg/core"
)

// Growth thresholds on the desirability score. Scores above GrowThreshold
// attempt growth, scores below -GrowThreshold decline, anything between is
// a no-op for the tick.
const GrowThreshold = 4

// PerturbRange is the half-width of the per-visit random perturbation added
// to the valve-derived score.
const PerturbRange = 8

// RepairInterval is the self-repair cadence, in ticks, for administrative
// zones (hospital, church, seaport, airport, stadium, plants, stations).
const RepairInterval = 16

// Density level and value class ceilings per growable kind.
const (
	ResMaxDensity = 3
	ComMaxDensity = 4
	IndMaxDensity = 3

	ResMaxValue = 3
	ComMaxValue = 3
	IndMaxValue = 1
)

// Env carries the tick-scoped state a zone visit may read or mutate. The
// scheduler builds one Env per tick and hands it to every visit; nothing in
// it is retained across ticks.
type Env struct {
	Map    *city.Map
	RNG    *corerand.RNG
	Power  *core.BitGrid
	Router *traffic.Router
	Census *city.Census
	Valves city.Valves

	// TakeCensus marks the passes on which population counters are
	// accumulated (the scheduler clears them at the same cadence).
	TakeCensus bool

	// Clock is the simulated time, used for the repair cadence.
	Clock int64
}

// Visit dispatches one zone-center tile. Callers must only pass tiles with
// the zone-center flag set; anything else is a bug above this package.
func Visit(env *Env, x, y int) {
	t := env.Map.Get(x, y)
	if !t.IsZoneCenter() {
		panic("zone: Visit on non-center tile")
	}

	kind := city.KindOf(t)
	switch kind {
	case city.KindResidential, city.KindCommercial, city.KindIndustrial:
		visitGrowable(env, x, y, kind)
	case city.KindHospital, city.KindChurch:
		visitService(env, x, y, kind)
	case city.KindNone:
		panic("zone: center tile with no kind")
	default:
		visitFixed(env, x, y, kind)
	}
}

// visitGrowable runs the growth/decline state machine for residential,
// commercial, and industrial centers. The perturbation is drawn first,
// unconditionally: the PRNG stream consumes exactly one draw per zone
// visited, before any routing draws.
func visitGrowable(env *Env, x, y int, kind city.Kind) {
	perturb := env.RNG.Perturb(PerturbRange)
	zscore := valveFor(env.Valves, kind)/64 + perturb

	powered := updatePowered(env, x, y)

	st := decodeGrowable(env.Map.Get(x, y), kind)
	if env.TakeCensus {
		addPopulation(env.Census, kind, st)
	}

	switch {
	case zscore > GrowThreshold && powered:
		if env.Router.Route(env.Map, x, y, kind) == traffic.RouteFound {
			grow(env, x, y, kind, st, zscore)
		}
	case zscore < -GrowThreshold:
		decline(env, x, y, kind, st)
	}
}

// visitService handles hospitals and churches: a periodic self-repair and a
// service-population contribution, no growth transitions.
func visitService(env *Env, x, y int, kind city.Kind) {
	updatePowered(env, x, y)

	if env.Clock%RepairInterval == 0 {
		base := city.HospitalBase
		if kind == city.KindChurch {
			base = city.ChurchBase
		}
		env.Map.RebuildFootprint(x, y, 3, base)
	}
	if env.TakeCensus {
		if kind == city.KindHospital {
			env.Census.HospitalPop++
		} else {
			env.Census.ChurchPop++
		}
	}
}

// visitFixed handles the remaining administrative zones (plants, port,
// airport, stadium, stations): power bookkeeping plus periodic repair.
func visitFixed(env *Env, x, y int, kind city.Kind) {
	updatePowered(env, x, y)

	if env.Clock%RepairInterval == 0 {
		env.Map.RebuildFootprint(x, y, city.FootprintSize(kind), fixedBase(kind))
	}
}

func fixedBase(kind city.Kind) city.Tile {
	switch kind {
	case city.KindSeaport:
		return city.SeaportBase
	case city.KindAirport:
		return city.AirportBase
	case city.KindCoal:
		return city.CoalBase
	case city.KindNuclear:
		return city.NuclearBase
	case city.KindFireStation:
		return city.FireStationBase
	case city.KindPoliceStation:
		return city.PoliceStationBase
	case city.KindStadium:
		return city.StadiumBase
	default:
		panic("zone: kind has no fixed footprint")
	}
}

// updatePowered syncs the POWERED flag on a center tile with the pass's
// reachability grid and maintains the powered/unpowered census. This is the
// sole writer of the POWERED bit.
func updatePowered(env *Env, x, y int) bool {
	t := env.Map.Get(x, y)
	powered := env.Power.Get(x, y)
	if powered {
		env.Map.Set(x, y, t|city.FlagPowered)
	} else {
		env.Map.Set(x, y, t&^city.FlagPowered)
	}
	if env.TakeCensus {
		if powered {
			env.Census.PoweredZones++
		} else {
			env.Census.UnpoweredZones++
		}
	}
	return powered
}

func valveFor(v city.Valves, kind city.Kind) int {
	switch kind {
	case city.KindResidential:
		return v.Res
	case city.KindCommercial:
		return v.Com
	case city.KindIndustrial:
		return v.Ind
	default:
		panic("zone: no valve for kind")
	}
}

// grow raises density one step, develops an empty zone, or, at max density,
// tries to expand into an adjacent undeveloped footprint. Every blocked
// outcome is silent; the zone is simply revisited next pass.
func grow(env *Env, x, y int, kind city.Kind, st state, zscore int) {
	if !st.developed {
		v := zscore / 8
		if v < 0 {
			v = 0
		}
		if max := maxValue(kind); v > max {
			v = max
		}
		env.Map.RebuildFootprint(x, y, 3, blockBase(kind, 0, v))
		return
	}
	if st.density < maxDensity(kind) {
		env.Map.RebuildFootprint(x, y, 3, blockBase(kind, st.density+1, st.value))
		return
	}
	expand(env, x, y, kind)
}

// expand attempts to place a fresh undeveloped zone of the same kind three
// tiles away, trying North, East, South, West in order and stopping at the
// first footprint that fits.
func expand(env *Env, x, y int, kind city.Kind) {
	var clear city.Tile
	switch kind {
	case city.KindResidential:
		clear = city.ResBase
	case city.KindCommercial:
		clear = city.ComBase
	case city.KindIndustrial:
		clear = city.IndBase
	}
	offsets := [4][2]int{{0, -3}, {3, 0}, {0, 3}, {-3, 0}}
	for _, off := range offsets {
		nx, ny := x+off[0], y+off[1]
		if !env.Map.InBounds(nx, ny) {
			continue
		}
		if env.Map.PlaceFootprint(nx, ny, 3, clear) == city.PlaceOK {
			return
		}
	}
}

// decline lowers density one step; a zone already at the lowest populated
// level collapses to rubble. Undeveloped zones have nothing to lose.
func decline(env *Env, x, y int, kind city.Kind, st state) {
	if !st.developed {
		return
	}
	if st.density > 0 {
		env.Map.RebuildFootprint(x, y, 3, blockBase(kind, st.density-1, st.value))
		return
	}
	env.Map.RubbleFootprint(x, y, 3)
}
