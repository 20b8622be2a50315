package schedulers

import "github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"

// ScheduleShortestJobFirst picks the arrived process with the smallest burst
// and runs it to completion. Equal bursts go to the earlier arrival.
func ScheduleShortestJobFirst(processes []core.ProcessSpec) (Schedule, error) {
	if err := validateProcesses(processes); err != nil {
		return Schedule{}, err
	}
	results, cpu := runNonPreemptive(processes, shortestBurst)
	return generateSchedule(ShortestJobFirst, results, cpu)
}
