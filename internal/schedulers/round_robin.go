package schedulers

import "github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"

// DefaultTimeQuantum replaces a missing or non-positive round robin quantum.
const DefaultTimeQuantum = 2

// ScheduleRoundRobin gives each ready process up to timeQuantum units in FIFO
// order. Processes that arrive during a slice join the ready queue ahead of
// the process whose slice just ended.
func ScheduleRoundRobin(processes []core.ProcessSpec, timeQuantum int) (Schedule, error) {
	if err := validateProcesses(processes); err != nil {
		return Schedule{}, err
	}
	if timeQuantum <= 0 {
		timeQuantum = DefaultTimeQuantum
	}

	states := newProcessStates(processes)
	cpu := core.NewCPU()

	readyQueue := make([]int, 0, len(states))
	queued := make([]bool, len(states))
	admit := func(time int) {
		for i, p := range states {
			if !queued[i] && p.arrived(time) {
				readyQueue = append(readyQueue, i)
				queued[i] = true
			}
		}
	}

	time, completed := 0, 0
	admit(time)
	for completed < len(states) {
		if len(readyQueue) == 0 {
			time = nextArrival(states, time)
			admit(time)
			continue
		}

		idx := readyQueue[0]
		readyQueue = readyQueue[1:]

		p := states[idx]
		p.dispatch(time)
		slice := min(timeQuantum, p.remaining)
		cpu.Dispatch(p.spec.ID, time, slice)
		p.remaining -= slice
		time += slice

		admit(time)

		if p.done() {
			p.completion = time
			completed++
			continue
		}
		readyQueue = append(readyQueue, idx)
	}

	return generateSchedule(RoundRobin, collectResults(states), cpu)
}
