package schedulers

import (
	"errors"
	"fmt"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"
)

var (
	ErrInvalidAlgorithm   = errors.New("invalid algorithm")
	ErrEmptyProcessSet    = errors.New("empty process set")
	ErrInvalidProcessID   = errors.New("invalid process id")
	ErrDuplicateProcessID = errors.New("duplicate process id")
	ErrInvalidArrivalTime = errors.New("invalid arrival time")
	ErrInvalidBurstTime   = errors.New("invalid burst time")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrZeroMakespan       = errors.New("zero makespan")
)

// validateProcesses rejects input no engine can schedule. It runs before any
// engine touches the process list.
func validateProcesses(processes []core.ProcessSpec) error {
	if len(processes) == 0 {
		return ErrEmptyProcessSet
	}
	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		if p.ID <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidProcessID, p.ID)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateProcessID, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: pid %d arrives at %d", ErrInvalidArrivalTime, p.ID, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: pid %d needs %d", ErrInvalidBurstTime, p.ID, p.BurstTime)
		}
		if p.Priority < 0 {
			return fmt.Errorf("%w: pid %d has %d", ErrInvalidPriority, p.ID, p.Priority)
		}
	}
	return nil
}
