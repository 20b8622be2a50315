package core

// CPU records which process occupies the processor on the simulated time axis.
// Idle time is never recorded; it shows up as a gap between intervals.
type CPU struct {
	timeline []TimelineInterval
}

func NewCPU() *CPU {
	return &CPU{timeline: make([]TimelineInterval, 0)}
}

// Dispatch gives the CPU to pid for length units starting at start. Every call
// opens a new interval, even when pid already held the CPU right before.
func (c *CPU) Dispatch(pid, start, length int) {
	c.timeline = append(c.timeline, TimelineInterval{ProcessID: pid, Start: start, End: start + length})
}

// Step runs pid for the single unit [at, at+1). If pid also ran the unit
// immediately before, its open interval is extended instead.
func (c *CPU) Step(pid, at int) {
	if n := len(c.timeline); n > 0 {
		last := &c.timeline[n-1]
		if last.ProcessID == pid && last.End == at {
			last.End = at + 1
			return
		}
	}
	c.Dispatch(pid, at, 1)
}

// BusyTime is the total time the CPU spent running processes.
func (c *CPU) BusyTime() int {
	var busy int
	for _, i := range c.timeline {
		busy += i.Duration()
	}
	return busy
}

// Timeline returns a copy of the recorded intervals in chronological order.
func (c *CPU) Timeline() []TimelineInterval {
	out := make([]TimelineInterval, len(c.timeline))
	copy(out, c.timeline)
	return out
}
