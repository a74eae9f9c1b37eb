package api

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"

	"os-scheduler-simulator/config"
	"os-scheduler-simulator/internal/requests"
	"os-scheduler-simulator/internal/responses"
	"os-scheduler-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	Simulate(ctx *fiber.Ctx) error
	Algorithm(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

type AlgorithmResult struct {
	Response *responses.ScheduleResponse `json:"response,omitempty"`
	Error    string                      `json:"error,omitempty"`
}

type AlgorithmInfo struct {
	Id              string `json:"id"`
	Name            string `json:"name"`
	Alias           string `json:"alias"`
	RequiresQuantum bool   `json:"requires_quantum"`
}

// Simulate runs the algorithm named in the body, or the configured default.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return writeError(ctx, fiber.StatusBadRequest, err)
	}
	name := request.Algorithm
	if name == "" {
		name = s.config.DefaultAlgorithm
	}
	algorithm, err := schedulers.ParsePolicy(name)
	if err != nil {
		return writeError(ctx, fiber.StatusBadRequest, err)
	}
	return s.schedule(ctx, algorithm, request)
}

// Algorithm runs the algorithm named in the path, e.g. /api/v1/rr.
func (s *SchedulerHandlerImpl) Algorithm(ctx *fiber.Ctx) error {
	algorithm, err := schedulers.ParsePolicy(ctx.Params("algorithm"))
	if err != nil {
		return writeError(ctx, fiber.StatusNotFound, err)
	}
	request, err := parseRequest(ctx)
	if err != nil {
		return writeError(ctx, fiber.StatusBadRequest, err)
	}
	return s.schedule(ctx, algorithm, request)
}

// AllAlgorithms runs every policy over the same processes concurrently. Each
// run works on its own copy, so one failing policy does not affect the rest.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return writeError(ctx, fiber.StatusBadRequest, err)
	}

	algorithms := schedulers.Policies()
	results := make([]AlgorithmResult, len(algorithms))

	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, algorithm := range algorithms {
		go func(i int, algorithm schedulers.PolicyID) {
			defer wg.Done()
			response, err := s.run(algorithm, request)
			if err != nil {
				results[i].Error = err.Error()
				return
			}
			results[i].Response = &response
		}(i, algorithm)
	}
	wg.Wait()

	body := make(map[string]AlgorithmResult, len(algorithms))
	for i, algorithm := range algorithms {
		body[string(algorithm)] = results[i]
	}
	return ctx.JSON(body)
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	algorithms := schedulers.Policies()
	infos := make([]AlgorithmInfo, 0, len(algorithms))
	for _, algorithm := range algorithms {
		infos = append(infos, AlgorithmInfo{
			Id:              string(algorithm),
			Name:            algorithm.Name(),
			Alias:           algorithm.Alias(),
			RequiresQuantum: schedulers.RequiresQuantum(algorithm),
		})
	}
	return ctx.JSON(infos)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.PolicyID, request *requests.ScheduleRequest) error {
	response, err := s.run(algorithm, request)
	if err != nil {
		return writeError(ctx, statusFor(err), err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) run(algorithm schedulers.PolicyID, request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	quantum := request.Quantum(s.defaultQuantum(algorithm))
	result, err := schedulers.Simulate(request.Processes, algorithm, quantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return schedulers.GenerateResponse(algorithm, quantum.OrElse(0), result), nil
}

func (s *SchedulerHandlerImpl) defaultQuantum(algorithm schedulers.PolicyID) int {
	switch algorithm {
	case schedulers.RoundRobin:
		return s.config.RoundRobinTimeQuantum
	case schedulers.MLFQ:
		return s.config.MultilevelFeedbackQueueBaseTimeQuantum
	}
	return 0
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return nil, errors.New("invalid request format")
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return &request, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, schedulers.ErrUnknownPolicy):
		return fiber.StatusNotFound
	case errors.Is(err, schedulers.ErrInvalidQuantum),
		errors.Is(err, schedulers.ErrEmptyProcessSet),
		errors.Is(err, requests.ErrInvalidProcess):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func writeError(ctx *fiber.Ctx, status int, err error) error {
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: err.Error()})
}
