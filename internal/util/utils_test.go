package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/core"
)

func TestCalculateAverage(t *testing.T) {
	results := []core.ScheduleResult{
		core.NewScheduleResult(core.ProcessSpec{ID: 1, ArrivalTime: 0, BurstTime: 5}, 0, 5),
		core.NewScheduleResult(core.ProcessSpec{ID: 2, ArrivalTime: 1, BurstTime: 3}, 5, 8),
		core.NewScheduleResult(core.ProcessSpec{ID: 3, ArrivalTime: 2, BurstTime: 8}, 8, 16),
	}

	waiting, response, turnaround := CalculateAverage(results)

	assert.InDelta(t, 10.0/3, waiting, 1e-9)
	assert.InDelta(t, 10.0/3, response, 1e-9)
	assert.InDelta(t, 26.0/3, turnaround, 1e-9)
}

func TestCalculateAverageEmpty(t *testing.T) {
	waiting, response, turnaround := CalculateAverage(nil)

	assert.Zero(t, waiting)
	assert.Zero(t, response)
	assert.Zero(t, turnaround)
}

func TestCalculatePercentiles(t *testing.T) {
	t.Run("single process", func(t *testing.T) {
		p := CalculatePercentiles([]core.ScheduleResult{
			core.NewScheduleResult(core.ProcessSpec{ID: 1, ArrivalTime: 0, BurstTime: 4}, 2, 6),
		})
		assert.InDelta(t, 2, p.WaitingP50, 1e-9)
		assert.InDelta(t, 2, p.WaitingP90, 1e-9)
		assert.InDelta(t, 6, p.TurnaroundP50, 1e-9)
		assert.InDelta(t, 6, p.TurnaroundP90, 1e-9)
	})

	t.Run("ordered quantiles", func(t *testing.T) {
		results := make([]core.ScheduleResult, 0, 20)
		start := 0
		for i := 1; i <= 20; i++ {
			spec := core.ProcessSpec{ID: i, BurstTime: 1}
			results = append(results, core.NewScheduleResult(spec, start, start+1))
			start++
		}
		p := CalculatePercentiles(results)
		assert.LessOrEqual(t, p.WaitingP50, p.WaitingP90)
		assert.LessOrEqual(t, p.TurnaroundP50, p.TurnaroundP90)
		assert.InDelta(t, 9.5, p.WaitingP50, 1.5)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, Percentiles{}, CalculatePercentiles(nil))
	})
}
