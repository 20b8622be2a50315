// Package metrics exposes Prometheus metrics for the scheduling service.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/schedulers"
)

// Collector records one observation per scheduling request.
type Collector struct {
	registry *prometheus.Registry

	schedulesTotal *prometheus.CounterVec
	rejectedTotal  *prometheus.CounterVec
	processesTotal *prometheus.CounterVec
	makespan       *prometheus.HistogramVec
	cpuUtilization *prometheus.GaugeVec
	timelineSlices *prometheus.HistogramVec
}

// NewCollector creates a collector backed by its own registry.
func NewCollector() *Collector {
	return NewCollectorWithRegistry(prometheus.NewRegistry())
}

// NewCollectorWithRegistry registers all metrics on registry.
func NewCollectorWithRegistry(registry *prometheus.Registry) *Collector {
	c := &Collector{
		registry: registry,
		schedulesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cpusched_schedules_total",
			Help: "Schedules computed, by algorithm",
		}, []string{"algorithm"}),
		rejectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cpusched_schedules_rejected_total",
			Help: "Scheduling requests rejected, by algorithm and reason",
		}, []string{"algorithm", "reason"}),
		processesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cpusched_processes_scheduled_total",
			Help: "Processes scheduled, by algorithm",
		}, []string{"algorithm"}),
		makespan: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cpusched_makespan_units",
			Help:    "Simulated time from first arrival to last completion",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
		cpuUtilization: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cpusched_last_cpu_utilization_percent",
			Help: "CPU utilization of the most recent schedule, by algorithm",
		}, []string{"algorithm"}),
		timelineSlices: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cpusched_timeline_intervals",
			Help:    "Timeline intervals per schedule, by algorithm",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"algorithm"}),
	}

	registry.MustRegister(
		c.schedulesTotal,
		c.rejectedTotal,
		c.processesTotal,
		c.makespan,
		c.cpuUtilization,
		c.timelineSlices,
	)
	return c
}

func (c *Collector) ObserveSchedule(s schedulers.Schedule) {
	algorithm := string(s.Algorithm)
	c.schedulesTotal.WithLabelValues(algorithm).Inc()
	c.processesTotal.WithLabelValues(algorithm).Add(float64(len(s.Results)))
	c.makespan.WithLabelValues(algorithm).Observe(float64(s.TotalTime))
	c.cpuUtilization.WithLabelValues(algorithm).Set(s.Utilization())
	c.timelineSlices.WithLabelValues(algorithm).Observe(float64(len(s.Timeline)))
}

func (c *Collector) ObserveRejection(algorithm string, err error) {
	c.rejectedTotal.WithLabelValues(algorithm, Reason(err)).Inc()
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Reason maps a scheduling error to a bounded label value.
func Reason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, schedulers.ErrInvalidAlgorithm):
		return "invalid_algorithm"
	case errors.Is(err, schedulers.ErrEmptyProcessSet):
		return "empty_process_set"
	case errors.Is(err, schedulers.ErrInvalidProcessID), errors.Is(err, schedulers.ErrDuplicateProcessID):
		return "invalid_process_id"
	case errors.Is(err, schedulers.ErrInvalidArrivalTime):
		return "invalid_arrival_time"
	case errors.Is(err, schedulers.ErrInvalidBurstTime):
		return "invalid_burst_time"
	case errors.Is(err, schedulers.ErrInvalidPriority):
		return "invalid_priority"
	default:
		return "other"
	}
}
