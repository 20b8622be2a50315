package schedulers

import (
	"sort"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"
)

// processState is the per-run bookkeeping a driver loop keeps for a process.
type processState struct {
	spec       core.ProcessSpec
	remaining  int
	started    bool
	start      int
	completion int
}

func (p *processState) arrived(time int) bool {
	return p.spec.ArrivalTime <= time
}

func (p *processState) done() bool {
	return p.remaining == 0
}

// dispatch records the first time p receives the CPU.
func (p *processState) dispatch(time int) {
	if !p.started {
		p.started = true
		p.start = time
	}
}

// newProcessStates copies processes into fresh state ordered by arrival time.
// Processes arriving together keep their input order.
func newProcessStates(processes []core.ProcessSpec) []*processState {
	states := make([]*processState, len(processes))
	for i, p := range processes {
		states[i] = &processState{spec: p, remaining: p.BurstTime}
	}
	sort.SliceStable(states, func(i, j int) bool {
		return states[i].spec.ArrivalTime < states[j].spec.ArrivalTime
	})
	return states
}

// nextArrival returns the earliest arrival after time among unfinished
// processes. Jumping there is the same as idling one unit at a time.
func nextArrival(states []*processState, time int) int {
	next := -1
	for _, p := range states {
		if p.done() || p.spec.ArrivalTime <= time {
			continue
		}
		if next == -1 || p.spec.ArrivalTime < next {
			next = p.spec.ArrivalTime
		}
	}
	if next == -1 {
		return time + 1
	}
	return next
}

// collectResults turns finished states into results ordered by process id.
func collectResults(states []*processState) []core.ScheduleResult {
	results := make([]core.ScheduleResult, 0, len(states))
	for _, p := range states {
		results = append(results, core.NewScheduleResult(p.spec, p.start, p.completion))
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})
	return results
}

// selectionPolicy reports whether candidate should replace the best process
// found so far. Candidates are scanned in arrival order and only a strict win
// replaces the current best, so the earlier process keeps ties.
type selectionPolicy func(candidate, best *processState) bool

// selectNext returns the index of the process to run at time, or -1 when no
// unfinished process has arrived.
func (better selectionPolicy) selectNext(states []*processState, time int) int {
	idx := -1
	for i, p := range states {
		if !p.arrived(time) || p.done() {
			continue
		}
		if idx == -1 || better(p, states[idx]) {
			idx = i
		}
	}
	return idx
}

func earliestArrival(candidate, best *processState) bool {
	return candidate.spec.ArrivalTime < best.spec.ArrivalTime
}

func shortestBurst(candidate, best *processState) bool {
	return candidate.spec.BurstTime < best.spec.BurstTime
}

func shortestRemaining(candidate, best *processState) bool {
	return candidate.remaining < best.remaining
}

func highestPriority(candidate, best *processState) bool {
	if candidate.spec.Priority != best.spec.Priority {
		return candidate.spec.Priority < best.spec.Priority
	}
	return candidate.spec.ArrivalTime < best.spec.ArrivalTime
}
