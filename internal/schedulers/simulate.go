package schedulers

import (
	"errors"
	"fmt"
	"log"

	"github.com/markphelps/optional"

	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/requests"
)

// Simulate runs one policy over a private copy of the given descriptors. The
// quantum is only consulted for policies that need one. On failure the error
// is always a *SimulationError and no partial result is returned.
func Simulate(processes []requests.ProcessDescriptor, algorithm PolicyID, quantum optional.Int) (result SimulationResult, err error) {
	p, ok := lookup(algorithm)
	if !ok {
		return SimulationResult{}, newError(ErrUnknownPolicy, "", "%q", algorithm)
	}
	if len(processes) == 0 {
		return SimulationResult{}, newError(ErrEmptyProcessSet, algorithm, "nothing to schedule")
	}

	timeQuantum := 0
	if p.quantum {
		q, qerr := quantum.Get()
		if qerr != nil {
			return SimulationResult{}, newError(ErrInvalidQuantum, algorithm, "a positive time quantum is required")
		}
		if q <= 0 {
			return SimulationResult{}, newError(ErrInvalidQuantum, algorithm, "got %d", q)
		}
		timeQuantum = q
	}

	working := make([]*core.Process, len(processes))
	for i, d := range processes {
		working[i] = core.NewProcess(d.ProcessId, d.ArrivalTime, d.BurstTime, d.Priority)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("%s simulation panicked: %v", algorithm, r)
			result, err = SimulationResult{}, newError(ErrInternalInvariantViolation, algorithm, "%v", r)
		}
	}()

	result, err = p.schedule(working, timeQuantum)
	if err != nil {
		var simErr *SimulationError
		if errors.As(err, &simErr) {
			if simErr.Algorithm == "" {
				simErr.Algorithm = algorithm
			}
			return SimulationResult{}, simErr
		}
		return SimulationResult{}, newError(ErrInternalInvariantViolation, algorithm, "%v", err)
	}
	if len(result.Completed) != len(processes) {
		return SimulationResult{}, newError(ErrInternalInvariantViolation, algorithm,
			"%d of %d processes completed", len(result.Completed), len(processes))
	}

	trace(fmt.Sprintf("%s simulated %d processes, makespan %d, %d gantt segments",
		algorithm, len(processes), core.Metric(result.Gantt).TotalTime, len(result.Gantt)))
	return result, nil
}
