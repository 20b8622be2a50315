package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/config"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/metrics"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/requests"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/responses"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config  *config.SchedulerConfig
	logger  *slog.Logger
	metrics *metrics.Collector
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger, collector *metrics.Collector) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger, metrics: collector}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, string(schedulers.FirstComeFirstServe))
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, string(schedulers.ShortestJobFirst))
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, string(schedulers.ShortestRemainingTimeFirst))
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, string(schedulers.RoundRobin))
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, string(schedulers.Priority))
}

// Schedule takes the algorithm from the request body.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "")
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}

	processes := request.Processes()
	quantum := s.timeQuantum(request)
	all := responses.AllAlgorithmsResponse{Schedules: make([]responses.ScheduleResponse, 0, len(schedulers.Algorithms()))}
	for _, algorithm := range schedulers.Algorithms() {
		schedule, err := schedulers.ComputeSchedule(algorithm, processes, quantum)
		if err != nil {
			return s.reject(ctx, string(algorithm), err)
		}
		s.observe(schedule)
		all.Schedules = append(all.Schedules, responses.GenerateResponse(schedule))
	}

	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, name string) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	if name == "" {
		name = request.Algorithm
	}

	algorithm, err := schedulers.ParseAlgorithm(name)
	if err != nil {
		return s.reject(ctx, name, err)
	}

	schedule, err := schedulers.ComputeSchedule(algorithm, request.Processes(), s.timeQuantum(request))
	if err != nil {
		return s.reject(ctx, name, err)
	}
	s.observe(schedule)

	return ctx.JSON(responses.GenerateResponse(schedule))
}

// timeQuantum prefers the request's quantum and falls back to the configured one.
func (s *SchedulerHandlerImpl) timeQuantum(request requests.ScheduleRequests) int {
	if request.TimeQuantum > 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) observe(schedule schedulers.Schedule) {
	s.logger.Info("schedule_computed",
		"algorithm", schedule.Algorithm,
		"processes", len(schedule.Results),
		"total_time", schedule.TotalTime,
		"cpu_utilization", schedule.CpuUtilization,
		"throughput", schedule.Throughput,
	)
	if s.metrics != nil {
		s.metrics.ObserveSchedule(schedule)
	}
}

func (s *SchedulerHandlerImpl) reject(ctx *fiber.Ctx, algorithm string, err error) error {
	s.logger.Warn("schedule_rejected", "algorithm", algorithm, "reason", metrics.Reason(err), "error", err)
	if s.metrics != nil {
		s.metrics.ObserveRejection(algorithm, err)
	}
	if isValidationError(err) {
		return badRequest(ctx, err.Error())
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(responses.ErrorResponse{Error: "can not proccess request"})
}

func isValidationError(err error) bool {
	for _, target := range []error{
		schedulers.ErrInvalidAlgorithm,
		schedulers.ErrEmptyProcessSet,
		schedulers.ErrInvalidProcessID,
		schedulers.ErrDuplicateProcessID,
		schedulers.ErrInvalidArrivalTime,
		schedulers.ErrInvalidBurstTime,
		schedulers.ErrInvalidPriority,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: message})
}
