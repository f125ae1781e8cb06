package power

import (
	"testing"

	"microcity/internal/city"
)

func placeCoal(m *city.Map, x, y int) {
	if m.PlaceFootprint(x, y, 4, city.CoalBase) != city.PlaceOK {
		panic("test setup: coal placement blocked")
	}
}

func wire(m *city.Map, x, y int) {
	m.Set(x, y, city.WireBase|city.FlagConductive|city.FlagBulldozable)
}

func TestScanPowersConnectedZone(t *testing.T) {
	m := city.NewMap()
	// The canonical scenario: coal plant center, one wire, one
	// residential center in a row.
	m.Set(10, 10, city.CoalPlant|city.FlagZoneCenter|city.FlagConductive)
	wire(m, 11, 10)
	m.Set(12, 10, city.ResClear|city.FlagZoneCenter|city.FlagConductive)

	net := NewNetwork()
	reach := net.Scan(m)

	if !reach.Get(10, 10) {
		t.Fatal("plant center must power itself")
	}
	if !reach.Get(11, 10) {
		t.Fatal("conductive tile must be in the reachability grid")
	}
	if !reach.Get(12, 10) {
		t.Fatal("connected zone center must be reachable")
	}

	// Removing the wire must cut the zone off on the next scan.
	m.Set(11, 10, city.Dirt)
	reach = net.Scan(m)
	if !reach.Get(10, 10) {
		t.Fatal("plant center must stay powered")
	}
	if reach.Get(12, 10) {
		t.Fatal("disconnected zone center must lose power")
	}
}

func TestScanRespectsBudget(t *testing.T) {
	m := city.NewMap()
	// One coal plant and a conductive region far larger than its
	// capacity: the reachability count must land exactly on the budget.
	for y := 0; y < city.WorldH; y++ {
		for x := 20; x < city.WorldW; x++ {
			wire(m, x, y)
		}
	}
	placeCoal(m, 17, 10)

	net := NewNetwork()
	reach := net.Scan(m)
	if got := reach.Count(); got != CoalCapacity {
		t.Fatalf("powered tiles = %d, want exactly %d", got, CoalCapacity)
	}
}

func TestScanNoPlantsPowersNothing(t *testing.T) {
	m := city.NewMap()
	for x := 0; x < 50; x++ {
		wire(m, x, 10)
	}
	m.Set(50, 10, city.ResClear|city.FlagZoneCenter)

	net := NewNetwork()
	if got := net.Scan(m).Count(); got != 0 {
		t.Fatalf("powered tiles = %d on a plantless map", got)
	}
}

func TestScanDoesNotCrossNonConductiveGap(t *testing.T) {
	m := city.NewMap()
	placeCoal(m, 10, 10)
	// Wire run with a one-tile dirt gap.
	wire(m, 13, 10)
	wire(m, 14, 10)
	wire(m, 16, 10)

	net := NewNetwork()
	reach := net.Scan(m)
	if !reach.Get(14, 10) {
		t.Fatal("wire before the gap must be powered")
	}
	if reach.Get(16, 10) {
		t.Fatal("wire after the gap must not be powered")
	}
}

func TestBudgetSumsPlantCapacities(t *testing.T) {
	m := city.NewMap()
	placeCoal(m, 10, 10)
	if m.PlaceFootprint(40, 40, 4, city.NuclearBase) != city.PlaceOK {
		t.Fatal("nuclear placement blocked")
	}
	if got := Budget(m); got != CoalCapacity+NuclearCapacity {
		t.Fatalf("budget = %d, want %d", got, CoalCapacity+NuclearCapacity)
	}
}

func TestScanIsDeterministic(t *testing.T) {
	build := func() *city.Map {
		m := city.NewMap()
		placeCoal(m, 10, 10)
		for x := 13; x < 60; x++ {
			wire(m, x, 10)
		}
		for y := 11; y < 40; y++ {
			wire(m, 30, y)
		}
		return m
	}

	a := NewNetwork().Scan(build())
	b := NewNetwork().Scan(build())
	for y := 0; y < city.WorldH; y++ {
		for x := 0; x < city.WorldW; x++ {
			if a.Get(x, y) != b.Get(x, y) {
				t.Fatalf("reachability differs at (%d,%d)", x, y)
			}
		}
	}
}
