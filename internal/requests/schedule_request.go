package requests

import "github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

type ScheduleRequests struct {
	Algorithm   string `json:"algorithm"`
	TimeQuantum int    `json:"time_quantum"`
	Jobs        []Job  `json:"jobs"`
}

// Processes converts the jobs into process specs. Jobs sent without an id are
// numbered by their position, starting at 1.
func (r *ScheduleRequests) Processes() []core.ProcessSpec {
	processes := make([]core.ProcessSpec, len(r.Jobs))
	for i, job := range r.Jobs {
		id := job.ProcessId
		if id == 0 {
			id = i + 1
		}
		processes[i] = core.ProcessSpec{
			ID:          id,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		}
	}
	return processes
}
