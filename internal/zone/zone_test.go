package zone

import (
	"testing"

	"microcity/internal/city"
	"microcity/internal/core"
	"microcity/internal/traffic"
	corerand "microcity/pkg/core"
)

// testEnv builds an Env over a fresh map with a residential zone at
// (20,20), a street on its south perimeter, and a commercial block across
// the street, so growth routing succeeds in one forced move.
func testEnv(t *testing.T, seed int64) *Env {
	t.Helper()
	m := city.NewMap()
	if m.PlaceFootprint(20, 20, 3, city.ResBase) != city.PlaceOK {
		t.Fatal("residential placement blocked")
	}
	for x := 19; x <= 21; x++ {
		m.Set(x, 22, city.RoadBase|city.FlagBulldozable|city.FlagCombustible)
	}
	if m.PlaceFootprint(20, 24, 3, city.ComBase) != city.PlaceOK {
		t.Fatal("commercial placement blocked")
	}

	rng := corerand.NewRNG(seed)
	return &Env{
		Map:        m,
		RNG:        rng,
		Power:      core.NewBitGrid(city.WorldW, city.WorldH),
		Router:     traffic.NewRouter(rng, traffic.NewDensity()),
		Census:     &city.Census{},
		TakeCensus: true,
		Clock:      1,
	}
}

func TestPopulationMonotonicity(t *testing.T) {
	for d := 0; d < ResMaxDensity; d++ {
		if ResPopulation(d) >= ResPopulation(d+1) {
			t.Fatalf("residential population not increasing at density %d", d)
		}
	}
	for d := 0; d < ComMaxDensity; d++ {
		if ComPopulation(d) >= ComPopulation(d+1) {
			t.Fatalf("commercial population not increasing at density %d", d)
		}
	}
	for d := 0; d < IndMaxDensity; d++ {
		if IndPopulation(d) >= IndPopulation(d+1) {
			t.Fatalf("industrial population not increasing at density %d", d)
		}
	}
}

func TestBlockEncodingRoundTrip(t *testing.T) {
	kinds := []city.Kind{city.KindResidential, city.KindCommercial, city.KindIndustrial}
	for _, kind := range kinds {
		for v := 0; v <= maxValue(kind); v++ {
			for d := 0; d <= maxDensity(kind); d++ {
				center := blockBase(kind, d, v) + centerOffset
				if got := city.KindOf(center); got != kind {
					t.Fatalf("kind %d d=%d v=%d: center %d classifies as %d", kind, d, v, center, got)
				}
				st := decodeGrowable(center, kind)
				if !st.developed || st.density != d || st.value != v {
					t.Fatalf("kind %d: decode(%d) = %+v, want d=%d v=%d", kind, center, st, d, v)
				}
			}
		}
	}
}

func TestUndevelopedCentersDecode(t *testing.T) {
	for _, c := range []struct {
		tile city.Tile
		kind city.Kind
	}{
		{city.ResClear, city.KindResidential},
		{city.ComClear, city.KindCommercial},
		{city.IndClear, city.KindIndustrial},
	} {
		if st := decodeGrowable(c.tile, c.kind); st.developed {
			t.Fatalf("clear center %d decoded as developed", c.tile)
		}
	}
}

func TestGrowthRequiresPower(t *testing.T) {
	env := testEnv(t, 9)
	env.Valves = city.Valves{Res: 2000}
	// Power grid left empty: the zone is unpowered and must not grow.

	Visit(env, 20, 20)

	if got := env.Map.Get(20, 20).Index(); got != city.ResClear {
		t.Fatalf("unpowered zone grew: center index %d", got)
	}
	if env.Map.Get(20, 20).IsPowered() {
		t.Fatal("POWERED must be cleared on an unreachable center")
	}
	if env.Census.UnpoweredZones != 1 {
		t.Fatalf("unpowered census = %d, want 1", env.Census.UnpoweredZones)
	}
}

func TestGrowthDevelopsEmptyZone(t *testing.T) {
	env := testEnv(t, 9)
	env.Valves = city.Valves{Res: 2000}
	env.Power.Set(20, 20)

	Visit(env, 20, 20)

	center := env.Map.Get(20, 20)
	if !center.IsPowered() {
		t.Fatal("POWERED must be set on a reachable center")
	}
	st := decodeGrowable(center, city.KindResidential)
	if !st.developed {
		t.Fatalf("powered high-demand zone did not develop: index %d", center.Index())
	}
	if st.density != 0 {
		t.Fatalf("fresh development density = %d, want 0", st.density)
	}
	if env.Census.PoweredZones != 1 {
		t.Fatalf("powered census = %d, want 1", env.Census.PoweredZones)
	}
}

func TestNeutralScoreIsNoOp(t *testing.T) {
	env := testEnv(t, 9)
	env.Power.Set(20, 20)
	// Zero valve: zscore stays inside the dead band unless the
	// perturbation alone crosses a threshold; pin it by checking both
	// the no-grow and no-decline outcome on an undeveloped zone.
	env.Valves = city.Valves{}

	Visit(env, 20, 20)

	if got := env.Map.Get(20, 20).Index(); got != city.ResClear {
		// A +8 perturbation can legitimately develop the zone; only a
		// change to anything but a fresh development is a bug.
		st := decodeGrowable(env.Map.Get(20, 20), city.KindResidential)
		if !st.developed || st.density != 0 {
			t.Fatalf("neutral visit produced unexpected center %d", got)
		}
	}
}

func TestDeclineStepsDensityDown(t *testing.T) {
	env := testEnv(t, 9)
	env.Valves = city.Valves{Res: -2000}
	env.Map.RebuildFootprint(20, 20, 3, blockBase(city.KindResidential, 2, 1))

	Visit(env, 20, 20)

	st := decodeGrowable(env.Map.Get(20, 20), city.KindResidential)
	if !st.developed || st.density != 1 {
		t.Fatalf("decline from density 2: got %+v, want density 1", st)
	}
	if st.value != 1 {
		t.Fatalf("decline must keep the value class, got %d", st.value)
	}
}

func TestDeclineCollapsesToRubble(t *testing.T) {
	env := testEnv(t, 9)
	env.Valves = city.Valves{Res: -2000}
	env.Map.RebuildFootprint(20, 20, 3, blockBase(city.KindResidential, 0, 0))

	Visit(env, 20, 20)

	for row := 19; row <= 21; row++ {
		for col := 19; col <= 21; col++ {
			tile := env.Map.Get(col, row)
			if !tile.IsRubble() {
				t.Fatalf("tile (%d,%d) = %04x, want rubble", col, row, tile)
			}
		}
	}
}

func TestMaxDensityExpands(t *testing.T) {
	env := testEnv(t, 9)
	env.Valves = city.Valves{Res: 2000}
	env.Power.Set(20, 20)
	env.Map.RebuildFootprint(20, 20, 3, blockBase(city.KindResidential, ResMaxDensity, 0))

	Visit(env, 20, 20)

	// Expansion tries North first; (20,17) anchors a 3×3 on clear land.
	neighbor := env.Map.Get(20, 17)
	if neighbor.Index() != city.ResClear || !neighbor.IsZoneCenter() {
		t.Fatalf("expected undeveloped residential expansion at (20,17), got %04x", neighbor)
	}
	// The original center keeps its max-density block.
	st := decodeGrowable(env.Map.Get(20, 20), city.KindResidential)
	if st.density != ResMaxDensity {
		t.Fatalf("source zone density changed to %d", st.density)
	}
}

func TestCensusAccumulation(t *testing.T) {
	env := testEnv(t, 9)
	env.Map.RebuildFootprint(20, 20, 3, blockBase(city.KindResidential, 3, 2))

	Visit(env, 20, 20)

	if env.Census.ResPop != ResPopulation(3) {
		t.Fatalf("res census = %d, want %d", env.Census.ResPop, ResPopulation(3))
	}

	// Off-cadence visits must not accumulate.
	env.Census.Clear()
	env.TakeCensus = false
	Visit(env, 20, 20)
	if env.Census.ResPop != 0 {
		t.Fatalf("population accumulated off the census cadence: %d", env.Census.ResPop)
	}
}

func TestHospitalRepairAndCensus(t *testing.T) {
	env := testEnv(t, 9)
	env.Map.RebuildFootprint(40, 40, 3, city.HospitalBase)
	// Scuff a footprint tile; the repair pass puts it back.
	env.Map.Set(39, 39, city.Rubble|city.FlagBulldozable)
	env.Clock = RepairInterval

	Visit(env, 40, 40)

	if got := env.Map.Get(39, 39).Index(); got != city.HospitalBase {
		t.Fatalf("hospital corner not repaired: index %d", got)
	}
	if env.Census.HospitalPop != 1 {
		t.Fatalf("hospital census = %d, want 1", env.Census.HospitalPop)
	}

	// Off the repair cadence the scuff stays.
	env.Map.Set(39, 39, city.Rubble|city.FlagBulldozable)
	env.Clock = RepairInterval + 1
	Visit(env, 40, 40)
	if got := env.Map.Get(39, 39).Index(); got == city.HospitalBase {
		t.Fatal("hospital repaired off cadence")
	}
}

func TestVisitNonCenterPanics(t *testing.T) {
	env := testEnv(t, 9)
	defer func() {
		if recover() == nil {
			t.Fatal("Visit on a non-center tile must panic")
		}
	}()
	Visit(env, 0, 0)
}
