package schedulers

import "github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"

// runNonPreemptive dispatches whichever process policy picks and lets it run
// its whole burst before choosing again.
func runNonPreemptive(processes []core.ProcessSpec, policy selectionPolicy) ([]core.ScheduleResult, *core.CPU) {
	states := newProcessStates(processes)
	cpu := core.NewCPU()

	time, completed := 0, 0
	for completed < len(states) {
		idx := policy.selectNext(states, time)
		if idx == -1 {
			time = nextArrival(states, time)
			continue
		}

		p := states[idx]
		p.dispatch(time)
		cpu.Dispatch(p.spec.ID, time, p.remaining)
		time += p.remaining
		p.remaining = 0
		p.completion = time
		completed++
	}

	return collectResults(states), cpu
}

// runPreemptive re-evaluates policy every time unit, so a newly arrived
// process can take the CPU from the running one.
func runPreemptive(processes []core.ProcessSpec, policy selectionPolicy) ([]core.ScheduleResult, *core.CPU) {
	states := newProcessStates(processes)
	cpu := core.NewCPU()

	time, completed := 0, 0
	for completed < len(states) {
		idx := policy.selectNext(states, time)
		if idx == -1 {
			time = nextArrival(states, time)
			continue
		}

		p := states[idx]
		p.dispatch(time)
		cpu.Step(p.spec.ID, time)
		p.remaining--
		time++
		if p.done() {
			p.completion = time
			completed++
		}
	}

	return collectResults(states), cpu
}
