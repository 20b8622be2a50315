package util

import (
	"github.com/influxdata/tdigest"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"
)

func CalculateAverage(proccessDetails []core.ScheduleResult) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(proccessDetails) == 0 {
		return
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += float64(proccess.WaitingTime)
		responseTimeSum += float64(proccess.ResponseTime)
		turnAroundTimeSum += float64(proccess.TurnaroundTime)
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTurnAroundTime = turnAroundTimeSum / proccessCount
	return
}

// Percentiles summarizes the spread of waiting and turnaround times.
type Percentiles struct {
	WaitingP50    float64
	WaitingP90    float64
	TurnaroundP50 float64
	TurnaroundP90 float64
}

// CalculatePercentiles estimates p50 and p90 of waiting and turnaround time
// with a t-digest per metric.
func CalculatePercentiles(proccessDetails []core.ScheduleResult) Percentiles {
	if len(proccessDetails) == 0 {
		return Percentiles{}
	}

	waiting := tdigest.NewWithCompression(100)
	turnaround := tdigest.NewWithCompression(100)
	for _, proccess := range proccessDetails {
		waiting.Add(float64(proccess.WaitingTime), 1)
		turnaround.Add(float64(proccess.TurnaroundTime), 1)
	}

	return Percentiles{
		WaitingP50:    waiting.Quantile(0.5),
		WaitingP90:    waiting.Quantile(0.9),
		TurnaroundP50: turnaround.Quantile(0.5),
		TurnaroundP90: turnaround.Quantile(0.9),
	}
}
