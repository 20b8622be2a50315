package schedulers

import "github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// Processes arriving at the same time run in input order.
func ScheduleFirstComeFirstServe(processes []core.ProcessSpec) (Schedule, error) {
	if err := validateProcesses(processes); err != nil {
		return Schedule{}, err
	}
	results, cpu := runNonPreemptive(processes, earliestArrival)
	return generateSchedule(FirstComeFirstServe, results, cpu)
}
