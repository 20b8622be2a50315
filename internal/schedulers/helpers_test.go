package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"
)

func proc(id, arrival, burst int) core.ProcessSpec {
	return core.ProcessSpec{ID: id, ArrivalTime: arrival, BurstTime: burst}
}

func procWithPriority(id, arrival, burst, priority int) core.ProcessSpec {
	return core.ProcessSpec{ID: id, ArrivalTime: arrival, BurstTime: burst, Priority: priority}
}

func interval(pid, start, end int) core.TimelineInterval {
	return core.TimelineInterval{ProcessID: pid, Start: start, End: end}
}

// timing is the start and completion time expected for a process.
type timing struct {
	start, completion int
}

func requireTimings(t *testing.T, s Schedule, want map[int]timing) {
	t.Helper()
	require.Len(t, s.Results, len(want))
	for _, r := range s.Results {
		w, ok := want[r.ID]
		require.True(t, ok, "unexpected pid %d", r.ID)
		assert.Equal(t, w.start, r.StartTime, "start of pid %d", r.ID)
		assert.Equal(t, w.completion, r.CompletionTime, "completion of pid %d", r.ID)
	}
}

// requireConsistent checks the properties every schedule must have regardless
// of algorithm.
func requireConsistent(t *testing.T, processes []core.ProcessSpec, s Schedule) {
	t.Helper()

	require.Len(t, s.Results, len(processes))
	for i, r := range s.Results {
		assert.Equal(t, i+1, r.ID, "results must be ordered by id")
		assert.Equal(t, r.CompletionTime-r.ArrivalTime, r.TurnaroundTime)
		assert.Equal(t, r.TurnaroundTime-r.BurstTime, r.WaitingTime)
		assert.Equal(t, r.StartTime-r.ArrivalTime, r.ResponseTime)
		assert.GreaterOrEqual(t, r.WaitingTime, 0)
		assert.GreaterOrEqual(t, r.ResponseTime, 0)
		assert.Greater(t, r.CompletionTime, r.ArrivalTime)
	}

	bursts, busy := 0, 0
	for _, p := range processes {
		bursts += p.BurstTime
	}
	firstInterval := make(map[int]core.TimelineInterval)
	for i, iv := range s.Timeline {
		assert.Greater(t, iv.End, iv.Start)
		if i > 0 {
			assert.GreaterOrEqual(t, iv.Start, s.Timeline[i-1].End, "intervals overlap")
		}
		if _, ok := firstInterval[iv.ProcessID]; !ok {
			firstInterval[iv.ProcessID] = iv
		}
		busy += iv.Duration()
	}
	assert.Equal(t, bursts, busy)
	assert.Equal(t, bursts, s.BusyTime)

	for _, r := range s.Results {
		assert.Equal(t, r.StartTime, firstInterval[r.ID].Start, "first interval of pid %d", r.ID)
	}
}

var scenarioA = []core.ProcessSpec{proc(1, 0, 5), proc(2, 1, 3), proc(3, 2, 8)}
