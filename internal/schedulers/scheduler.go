package schedulers

import (
	"fmt"
	"strings"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"
)

type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fcfs"
	ShortestJobFirst           Algorithm = "sjf"
	ShortestRemainingTimeFirst Algorithm = "srtf"
	RoundRobin                 Algorithm = "rr"
	Priority                   Algorithm = "priority"
)

// Algorithms lists every supported algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{FirstComeFirstServe, ShortestJobFirst, ShortestRemainingTimeFirst, RoundRobin, Priority}
}

// Name is the human readable algorithm name.
func (a Algorithm) Name() string {
	switch a {
	case FirstComeFirstServe:
		return "First-come, first-serve"
	case ShortestJobFirst:
		return "Shortest-job-first"
	case ShortestRemainingTimeFirst:
		return "Shortest-remaining-time-first"
	case RoundRobin:
		return "Round-robin"
	case Priority:
		return "Priority"
	}
	return string(a)
}

// ParseAlgorithm accepts an algorithm identifier regardless of case and
// surrounding whitespace.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Algorithms() {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, s)
}

// ComputeSchedule runs the selected algorithm over processes. timeQuantum is
// only used by round robin.
func ComputeSchedule(algorithm Algorithm, processes []core.ProcessSpec, timeQuantum int) (Schedule, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, timeQuantum)
	case Priority:
		return SchedulePriority(processes)
	}
	return Schedule{}, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, string(algorithm))
}

// ComputeAll runs every algorithm over the same processes. It stops at the
// first failure.
func ComputeAll(processes []core.ProcessSpec, timeQuantum int) ([]Schedule, error) {
	schedules := make([]Schedule, 0, len(Algorithms()))
	for _, a := range Algorithms() {
		s, err := ComputeSchedule(a, processes, timeQuantum)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a, err)
		}
		schedules = append(schedules, s)
	}
	return schedules, nil
}
