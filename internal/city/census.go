package city

// Census aggregates per-pass population and infrastructure counters. The
// scheduler clears it at the census cadence and the zone scan repopulates it
// within the same pass; the evaluation collaborator reads it between ticks.
type Census struct {
	ResPop      int
	ComPop      int
	IndPop      int
	HospitalPop int
	ChurchPop   int

	PoweredZones   int
	UnpoweredZones int

	RoadLen int
	RailLen int
}

// Clear zeroes every counter.
func (c *Census) Clear() {
	*c = Census{}
}

// TotalPop returns the combined weighted population, the figure the demand
// valves are steered against.
func (c *Census) TotalPop() int {
	return c.ResPop + (c.ComPop+c.IndPop)*8
}

// Valves carry the signed demand pressure per growable zone kind,
// recomputed by the scheduler at the valve cadence and read by the zone
// lifecycle as growth bias.
type Valves struct {
	Res int
	Com int
	Ind int
}
