package sim

// Valve limits. Demand pressure is clamped so a boom or bust cannot wind the
// valves past what a few census periods can unwind.
const (
	valveMax  = 2000
	valveStep = 200

	// startBoost keeps early-city industrial demand positive so a map
	// with no population can bootstrap.
	startBoost = 500
)

// setValves recomputes the three demand valves from the last completed
// census. Residential demand follows available jobs, commercial follows the
// residents to sell to, industrial follows the labor pool plus the
// small-city boost. Each valve moves at most valveStep per recomputation,
// so demand trends over several periods instead of snapping.
func (s *Scheduler) setValves() {
	c := &s.history

	jobs := (c.ComPop + c.IndPop) * 8
	resTarget := jobs - c.ResPop
	comTarget := c.ResPop/4 - c.ComPop*8
	indTarget := c.ResPop/8 + startBoost - c.IndPop*8

	s.valves.Res = steer(s.valves.Res, resTarget)
	s.valves.Com = steer(s.valves.Com, comTarget)
	s.valves.Ind = steer(s.valves.Ind, indTarget)
}

// steer moves a valve toward target by at most valveStep and clamps the
// result to the valve range.
func steer(valve, target int) int {
	diff := target - valve
	if diff > valveStep {
		diff = valveStep
	} else if diff < -valveStep {
		diff = -valveStep
	}
	valve += diff
	if valve > valveMax {
		valve = valveMax
	} else if valve < -valveMax {
		valve = -valveMax
	}
	return valve
}
