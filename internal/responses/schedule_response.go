package responses

import (
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/schedulers"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/util"
)

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
	ResponseTime   int `json:"response_time"`
}

type IntervalResponse struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}

type ScheduleResponse struct {
	Algorithm             string             `json:"algorithm"`
	TotalTime             int                `json:"total_time"`
	IdleTime              int                `json:"idle_time"`
	AverageWaitingTime    float64            `json:"average_waiting_time"`
	AverageResponseTime   float64            `json:"average_response_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time"`
	CpuUtilization        string             `json:"cpu_utilization"`
	CpuThroughput         string             `json:"cpu_throughput"`
	Details               []ProcessResponse  `json:"details"`
	Timeline              []IntervalResponse `json:"timeline"`
}

type AllAlgorithmsResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func GenerateResponse(schedule schedulers.Schedule) ScheduleResponse {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(schedule.Results)

	details := make([]ProcessResponse, 0, len(schedule.Results))
	for _, r := range schedule.Results {
		details = append(details, ProcessResponse{
			ProcessId:      r.ID,
			ArrivalTime:    r.ArrivalTime,
			BurstTime:      r.BurstTime,
			StartTime:      r.StartTime,
			CompletionTime: r.CompletionTime,
			TurnAroundTime: r.TurnaroundTime,
			WaitingTime:    r.WaitingTime,
			ResponseTime:   r.ResponseTime,
		})
	}

	timeline := make([]IntervalResponse, 0, len(schedule.Timeline))
	for _, i := range schedule.Timeline {
		timeline = append(timeline, IntervalResponse{ProcessId: i.ProcessID, Start: i.Start, End: i.End})
	}

	return ScheduleResponse{
		Algorithm:             string(schedule.Algorithm),
		TotalTime:             schedule.TotalTime,
		IdleTime:              schedule.IdleTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        schedule.CpuUtilization,
		CpuThroughput:         schedule.Throughput,
		Details:               details,
		Timeline:              timeline,
	}
}
