package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"microcity/internal/core"
	"microcity/internal/sim"
)

// Scenario: a powered starter town on the west bank: one coal plant, a road
// grid, and a band of zoned land, enough for the growth machinery to work.
func buildStarterTown(s *sim.Scheduler) {
	place := func(x, y int, tool sim.ToolKind) {
		if s.ApplyTool(x, y, tool) != sim.ToolPlaced {
			log.Fatalf("scenario: tool %d blocked at (%d,%d)", tool, x, y)
		}
	}

	place(10, 10, sim.ToolCoal)

	// Three zone rows, each a contiguous band so the footprints conduct
	// power along the row: residential, commercial, industrial.
	for x := 19; x <= 28; x += 3 {
		place(x, 10, sim.ToolResidential)
		place(x, 15, sim.ToolCommercial)
		place(x, 20, sim.ToolIndustrial)
	}

	// Wires: east from the plant into the residential band, and a column
	// down the plant's west flank feeding the lower two bands.
	for x := 13; x <= 17; x++ {
		place(x, 10, sim.ToolWire)
	}
	for y := 13; y <= 20; y++ {
		place(10, y, sim.ToolWire)
	}
	for x := 11; x <= 17; x++ {
		place(x, 15, sim.ToolWire)
		place(x, 20, sim.ToolWire)
	}

	// Streets along each band's perimeter plus an eastern connector, so
	// every zone can acquire a road and reach the other kinds.
	for x := 14; x <= 30; x++ {
		place(x, 12, sim.ToolRoad)
		place(x, 13, sim.ToolRoad)
		place(x, 18, sim.ToolRoad)
	}
	for y := 14; y <= 17; y++ {
		place(30, y, sim.ToolRoad)
	}
}

func main() {
	seed := flag.Int64("seed", 42, "simulation seed")
	ticks := flag.Int("ticks", 256, "ticks to simulate")
	report := flag.Int("report", 32, "report census every N ticks (0 disables)")
	tps := flag.Int("tps", 0, "pace ticks in real time at this rate (0 runs flat out)")
	flag.Parse()

	world := sim.NewWorld(*seed)
	s := world.Scheduler()
	buildStarterTown(s)
	s.Start()

	var pacer *core.Pacer
	if *tps > 0 {
		pacer = core.NewPacer(*tps)
	}

	done := 0
	for done < *ticks && s.State() == sim.Running {
		n := 1
		if pacer != nil {
			n = pacer.Due(*ticks - done)
			if n == 0 {
				time.Sleep(time.Millisecond)
				continue
			}
		}
		for i := 0; i < n; i++ {
			world.Step()
			done++
			if *report > 0 && s.Clock()%int64(*report) == 0 {
				c := s.Census()
				v := s.Valves()
				fmt.Printf("tick %4d  pop r=%d c=%d i=%d  powered=%d/%d  road=%d rail=%d  valves r=%d c=%d i=%d\n",
					s.Clock(), c.ResPop, c.ComPop, c.IndPop,
					c.PoweredZones, c.PoweredZones+c.UnpoweredZones,
					c.RoadLen, c.RailLen, v.Res, v.Com, v.Ind)
			}
		}
	}

	c := s.Census()
	fmt.Printf("final: ticks=%d respop=%d compop=%d indpop=%d total=%d\n",
		done, c.ResPop, c.ComPop, c.IndPop, c.TotalPop())
}
