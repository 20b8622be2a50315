package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/config"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/logging"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/metrics"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/responses"
)

const scenarioABody = `{"jobs": [
	{"arrival_time": 0, "burst_time": 5},
	{"arrival_time": 1, "burst_time": 3},
	{"arrival_time": 2, "burst_time": 8}
]}`

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.SchedulerConfig{Port: 9095, RoundRobinTimeQuantum: 2}
	logger := logging.NewLoggerWithWriter(io.Discard, "text", "error")
	collector := metrics.NewCollectorWithRegistry(prometheus.NewRegistry())

	app := fiber.New()
	Register(app, NewSchedulerHandlerImpl(cfg, logger, collector), collector)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestFirstComeFirstServe(t *testing.T) {
	app := newTestApp(t)

	resp, body := post(t, app, "/api/v1/fcfs", scenarioABody)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "fcfs", got.Algorithm)
	assert.Equal(t, "100.00", got.CpuUtilization)
	assert.Equal(t, "0.19", got.CpuThroughput)
	require.Len(t, got.Details, 3)
	assert.Equal(t, 8, got.Details[2].StartTime)
	assert.Equal(t, 16, got.Details[2].CompletionTime)
	assert.Len(t, got.Timeline, 3)
}

func TestAlgorithmEndpoints(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"fcfs", "sjf", "srtf", "rr", "priority"} {
		t.Run(path, func(t *testing.T) {
			resp, body := post(t, app, "/api/v1/"+path, scenarioABody)
			require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

			var got responses.ScheduleResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, path, got.Algorithm)
			assert.Len(t, got.Details, 3)
		})
	}
}

func TestRoundRobinQuantum(t *testing.T) {
	app := newTestApp(t)
	body := `{"time_quantum": 5, "jobs": [{"arrival_time": 0, "burst_time": 5}, {"arrival_time": 1, "burst_time": 3}]}`

	resp, data := post(t, app, "/api/v1/rr", body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var got responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []responses.IntervalResponse{
		{ProcessId: 1, Start: 0, End: 5},
		{ProcessId: 2, Start: 5, End: 8},
	}, got.Timeline)
}

func TestRoundRobinConfiguredQuantum(t *testing.T) {
	app := newTestApp(t)
	body := `{"jobs": [{"arrival_time": 0, "burst_time": 5}, {"arrival_time": 1, "burst_time": 3}]}`

	resp, data := post(t, app, "/api/v1/rr", body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var got responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Len(t, got.Timeline, 5)
}

func TestSchedule(t *testing.T) {
	app := newTestApp(t)
	body := `{"algorithm": "priority", "jobs": [
		{"arrival_time": 0, "burst_time": 4, "priority": 2},
		{"arrival_time": 0, "burst_time": 3, "priority": 1}
	]}`

	resp, data := post(t, app, "/api/v1/schedule", body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var got responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "priority", got.Algorithm)
	assert.Equal(t, 3, got.Details[0].StartTime)
	assert.Equal(t, 0, got.Details[1].StartTime)
}

func TestScheduleRejections(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name      string
		path      string
		body      string
		wantError string
	}{
		{"unknown algorithm", "/api/v1/schedule", `{"algorithm": "mlfq", "jobs": [{"burst_time": 1}]}`, "invalid algorithm"},
		{"empty jobs", "/api/v1/fcfs", `{"jobs": []}`, "empty process set"},
		{"zero burst", "/api/v1/sjf", `{"jobs": [{"arrival_time": 0, "burst_time": 0}]}`, "invalid burst time"},
		{"negative arrival", "/api/v1/srtf", `{"jobs": [{"arrival_time": -2, "burst_time": 3}]}`, "invalid arrival time"},
		{"malformed", "/api/v1/rr", `{"jobs": [`, "invalid request format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := post(t, app, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var got responses.ErrorResponse
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Contains(t, got.Error, tt.wantError)
		})
	}
}

func TestAllAlgorithms(t *testing.T) {
	app := newTestApp(t)

	resp, data := post(t, app, "/api/v1/all", scenarioABody)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var got responses.AllAlgorithmsResponse
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got.Schedules, 5)

	algorithms := make([]string, 0, len(got.Schedules))
	for _, s := range got.Schedules {
		algorithms = append(algorithms, s.Algorithm)
	}
	assert.Equal(t, []string{"fcfs", "sjf", "srtf", "rr", "priority"}, algorithms)
}

func TestHealthAndMetrics(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	post(t, app, "/api/v1/fcfs", scenarioABody)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), `cpusched_schedules_total{algorithm="fcfs"} 1`)
}
