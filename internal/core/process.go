package core

// ProcessSpec is a process as submitted for scheduling. Lower Priority values
// mean higher priority.
type ProcessSpec struct {
	ID          int
	ArrivalTime int
	BurstTime   int
	Priority    int
}

// ScheduleResult holds the timing of one process after a scheduling run.
type ScheduleResult struct {
	ID             int
	ArrivalTime    int
	BurstTime      int
	StartTime      int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
}

// NewScheduleResult derives turnaround, waiting and response time from the
// first dispatch and completion of p.
func NewScheduleResult(p ProcessSpec, start, completion int) ScheduleResult {
	turnaround := completion - p.ArrivalTime
	return ScheduleResult{
		ID:             p.ID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		StartTime:      start,
		CompletionTime: completion,
		TurnaroundTime: turnaround,
		WaitingTime:    turnaround - p.BurstTime,
		ResponseTime:   start - p.ArrivalTime,
	}
}

// TimelineInterval is the half-open span [Start, End) during which ProcessID
// held the CPU.
type TimelineInterval struct {
	ProcessID int
	Start     int
	End       int
}

func (i TimelineInterval) Duration() int {
	return i.End - i.Start
}
