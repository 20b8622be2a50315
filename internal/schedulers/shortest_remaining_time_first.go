package schedulers

import "github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"

// ScheduleShortestRemainingTimeFirst is the preemptive form of shortest job
// first: every time unit the arrived process with the least remaining burst
// runs. Ties go to the earlier arrival, so a process tied with the running
// one does not preempt it.
func ScheduleShortestRemainingTimeFirst(processes []core.ProcessSpec) (Schedule, error) {
	if err := validateProcesses(processes); err != nil {
		return Schedule{}, err
	}
	results, cpu := runPreemptive(processes, shortestRemaining)
	return generateSchedule(ShortestRemainingTimeFirst, results, cpu)
}
