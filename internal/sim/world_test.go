package sim

import (
	"slices"
	"testing"

	"microcity/internal/city"
)

func TestWorldResetDeterministic(t *testing.T) {
	a := NewWorld(11)
	b := NewWorld(11)
	if !slices.Equal(a.Scheduler().Map().Snapshot(), b.Scheduler().Map().Snapshot()) {
		t.Fatal("same seed must bootstrap identical terrain")
	}

	for i := 0; i < 32; i++ {
		a.Step()
	}
	a.Reset(0)
	if !slices.Equal(a.Scheduler().Map().Snapshot(), b.Scheduler().Map().Snapshot()) {
		t.Fatal("Reset(0) must restore the construction-seed terrain")
	}
	if a.Scheduler().Clock() != 0 {
		t.Fatalf("clock after reset = %d", a.Scheduler().Clock())
	}
}

func TestWorldResetNewSeedChangesTerrain(t *testing.T) {
	w := NewWorld(11)
	before := w.Scheduler().Map().Snapshot()
	w.Reset(12)
	if slices.Equal(before, w.Scheduler().Map().Snapshot()) {
		t.Fatal("different seeds produced identical rivers")
	}
}

func TestWorldBootstrapRiverStaysEast(t *testing.T) {
	w := NewWorld(11)
	s := w.Scheduler()
	rows := 0
	for y := 0; y < city.WorldH; y++ {
		inRow := false
		for x := 0; x < city.WorldW; x++ {
			if !s.QueryTile(x, y).IsRiver() {
				continue
			}
			inRow = true
			if x < city.WorldW/2-12 {
				t.Fatalf("river at (%d,%d) crosses into the west bank", x, y)
			}
		}
		if inRow {
			rows++
		}
	}
	if rows != city.WorldH {
		t.Fatalf("river spans %d rows, want %d", rows, city.WorldH)
	}
}

func TestWorldCellsShape(t *testing.T) {
	w := NewWorld(11)
	if sz := w.Size(); sz.W != city.WorldW || sz.H != city.WorldH {
		t.Fatalf("Size() = %+v", sz)
	}
	if len(w.Cells()) != city.WorldW*city.WorldH {
		t.Fatalf("Cells() length = %d", len(w.Cells()))
	}
	if w.Name() != "city" {
		t.Fatalf("Name() = %q", w.Name())
	}
}
