package sim

import "microcity/internal/city"

// ToolKind identifies an interactive building tool.
type ToolKind uint8

const (
	ToolBulldoze ToolKind = iota
	ToolRoad
	ToolRail
	ToolWire
	ToolPark
	ToolResidential
	ToolCommercial
	ToolIndustrial
	ToolFireStation
	ToolPoliceStation
	ToolSeaport
	ToolStadium
	ToolCoal
	ToolNuclear
	ToolAirport
)

// ToolResult reports a tool application. Blocked placement and missing
// funds are routine outcomes the UI surfaces to the player.
type ToolResult uint8

const (
	ToolPlaced ToolResult = iota
	ToolBlocked
	ToolNoFunds
)

// FundsProvider is the budget collaborator's interface. Spend withdraws the
// amount and reports success; it must not withdraw on failure.
type FundsProvider interface {
	Funds() int
	Spend(amount int) bool
}

// toolSpec captures the static shape of each tool: cost, and for footprint
// tools the pattern to stamp.
type toolSpec struct {
	cost int
	size int       // 0 for single-tile tools
	base city.Tile // footprint base, or single-tile sprite
}

var toolSpecs = map[ToolKind]toolSpec{
	ToolBulldoze:      {cost: 1},
	ToolRoad:          {cost: 10, base: city.RoadBase},
	ToolRail:          {cost: 20, base: city.RailBase},
	ToolWire:          {cost: 5, base: city.WireBase},
	ToolPark:          {cost: 10, base: city.TreeBase},
	ToolResidential:   {cost: 100, size: 3, base: city.ResBase},
	ToolCommercial:    {cost: 100, size: 3, base: city.ComBase},
	ToolIndustrial:    {cost: 100, size: 3, base: city.IndBase},
	ToolFireStation:   {cost: 500, size: 3, base: city.FireStationBase},
	ToolPoliceStation: {cost: 500, size: 3, base: city.PoliceStationBase},
	ToolSeaport:       {cost: 3000, size: 4, base: city.SeaportBase},
	ToolStadium:       {cost: 5000, size: 4, base: city.StadiumBase},
	ToolCoal:          {cost: 3000, size: 4, base: city.CoalBase},
	ToolNuclear:       {cost: 5000, size: 4, base: city.NuclearBase},
	ToolAirport:       {cost: 10000, size: 6, base: city.AirportBase},
}

// SetFundsProvider attaches the budget collaborator. A nil provider means
// unlimited funds (the default, and what tests use).
func (s *Scheduler) SetFundsProvider(p FundsProvider) { s.funds = p }

// ApplyTool applies an interactive tool at (x, y). The placement check runs
// before any money moves, so a blocked placement costs nothing. Tools must
// be applied between ticks, never during a scan.
func (s *Scheduler) ApplyTool(x, y int, kind ToolKind) ToolResult {
	spec, ok := toolSpecs[kind]
	if !ok {
		panic("sim: unknown tool kind")
	}
	if !s.m.InBounds(x, y) {
		panic("sim: ApplyTool out of bounds")
	}

	if kind == ToolBulldoze {
		return s.bulldoze(x, y, spec)
	}

	if spec.size == 0 {
		return s.placeStrip(x, y, spec)
	}

	// Footprint tools: probe first so funds are only touched when the
	// placement would succeed, then place.
	if !s.m.FitsFootprint(x, y, spec.size) {
		return ToolBlocked
	}
	if !s.spend(spec.cost) {
		return ToolNoFunds
	}
	if s.m.PlaceFootprint(x, y, spec.size, spec.base) != city.PlaceOK {
		panic("sim: footprint probe disagreed with placement")
	}
	return ToolPlaced
}

// placeStrip writes a single-tile infrastructure sprite. Roads and rails
// burn; rails and wires conduct.
func (s *Scheduler) placeStrip(x, y int, spec toolSpec) ToolResult {
	t := s.m.Get(x, y)
	if !(t.Index() == city.Dirt || t.IsTree() || t.IsRubble()) {
		return ToolBlocked
	}
	if !s.spend(spec.cost) {
		return ToolNoFunds
	}

	flags := city.FlagBulldozable
	switch {
	case spec.base == city.RoadBase:
		flags |= city.FlagCombustible
	case spec.base == city.RailBase:
		flags |= city.FlagCombustible | city.FlagConductive
	case spec.base == city.WireBase:
		flags |= city.FlagConductive
	case spec.base == city.TreeBase:
		flags |= city.FlagCombustible
	}
	s.m.Set(x, y, spec.base|flags)
	return ToolPlaced
}

// bulldoze clears a bulldozable tile to dirt; a zone center takes its whole
// footprint down to rubble.
func (s *Scheduler) bulldoze(x, y int, spec toolSpec) ToolResult {
	t := s.m.Get(x, y)
	if !t.IsBulldozable() {
		return ToolBlocked
	}
	if !s.spend(spec.cost) {
		return ToolNoFunds
	}
	if t.IsZoneCenter() {
		s.m.RubbleFootprint(x, y, city.FootprintSize(city.KindOf(t)))
		return ToolPlaced
	}
	s.m.Set(x, y, city.Dirt)
	return ToolPlaced
}

func (s *Scheduler) spend(amount int) bool {
	if s.funds == nil {
		return true
	}
	return s.funds.Spend(amount)
}
