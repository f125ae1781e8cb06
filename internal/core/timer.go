package core

import "time"

// Pacer spaces simulation ticks at a steady ticks-per-second rate for
// real-time runs. Due dates the caller with the number of whole ticks that
// have elapsed since the previous call, so a slow frame catches up instead
// of dropping ticks.
type Pacer struct {
	step time.Duration
	last time.Time
	owed time.Duration
}

// NewPacer constructs a Pacer targeting the given TPS. Non-positive rates
// fall back to 60.
func NewPacer(tps int) *Pacer {
	if tps <= 0 {
		tps = 60
	}
	return &Pacer{step: time.Second / time.Duration(tps)}
}

// Due returns how many ticks should run now, at most max.
func (p *Pacer) Due(max int) int {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
		return 1
	}
	p.owed += now.Sub(p.last)
	p.last = now

	n := 0
	for p.owed >= p.step && n < max {
		p.owed -= p.step
		n++
	}
	return n
}
