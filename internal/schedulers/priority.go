package schedulers

import "github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"

// SchedulePriority runs the arrived process with the lowest priority value to
// completion. Equal priorities go to the earlier arrival, then input order.
func SchedulePriority(processes []core.ProcessSpec) (Schedule, error) {
	if err := validateProcesses(processes); err != nil {
		return Schedule{}, err
	}
	results, cpu := runNonPreemptive(processes, highestPriority)
	return generateSchedule(Priority, results, cpu)
}
