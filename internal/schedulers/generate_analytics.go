package schedulers

import (
	"math"
	"strconv"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"
)

// Analytics are the aggregate figures of one scheduling run. TotalTime is the
// makespan from the earliest arrival to the latest completion.
type Analytics struct {
	CpuUtilization string
	Throughput     string
	TotalTime      int
	BusyTime       int
	IdleTime       int
}

// Utilization returns CPU utilization as an unrounded percentage.
func (a Analytics) Utilization() float64 {
	if a.TotalTime == 0 {
		return 0
	}
	return float64(a.BusyTime) / float64(a.TotalTime) * 100
}

// Schedule is the outcome of running one algorithm over a process set.
type Schedule struct {
	Algorithm Algorithm
	Results   []core.ScheduleResult
	Timeline  []core.TimelineInterval
	Analytics
}

// CalculateMetrics derives CPU utilization and throughput from a finished
// result set, both rounded to two decimals.
func CalculateMetrics(results []core.ScheduleResult) (Analytics, error) {
	if len(results) == 0 {
		return Analytics{}, ErrEmptyProcessSet
	}

	busy := 0
	earliestArrival := results[0].ArrivalTime
	latestCompletion := results[0].CompletionTime
	for _, r := range results {
		busy += r.BurstTime
		earliestArrival = min(earliestArrival, r.ArrivalTime)
		latestCompletion = max(latestCompletion, r.CompletionTime)
	}

	totalTime := latestCompletion - earliestArrival
	if totalTime <= 0 {
		return Analytics{}, ErrZeroMakespan
	}

	return Analytics{
		CpuUtilization: formatFixed2(float64(busy) / float64(totalTime) * 100),
		Throughput:     formatFixed2(float64(len(results)) / float64(totalTime)),
		TotalTime:      totalTime,
		BusyTime:       busy,
		IdleTime:       totalTime - busy,
	}, nil
}

// formatFixed2 rounds half away from zero to two decimals.
func formatFixed2(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', 2, 64)
}

func generateSchedule(algorithm Algorithm, results []core.ScheduleResult, cpu *core.CPU) (Schedule, error) {
	analytics, err := CalculateMetrics(results)
	if err != nil {
		return Schedule{}, err
	}
	return Schedule{
		Algorithm: algorithm,
		Results:   results,
		Timeline:  cpu.Timeline(),
		Analytics: analytics,
	}, nil
}
