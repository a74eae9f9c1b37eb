package schedulers

import (
	"os-scheduler-simulator/internal/core"
)

// ScheduleRoundRobin serves a FIFO ready queue, giving each process at most
// timeQuantum units per turn. Processes that arrive while a slice runs are
// queued ahead of the process whose slice just ended.
func ScheduleRoundRobin(processes []*core.Process, timeQuantum int) (SimulationResult, error) {
	if timeQuantum <= 0 {
		return SimulationResult{}, newError(ErrInvalidQuantum, RoundRobin, "got %d", timeQuantum)
	}
	s, err := newSimulation(processes)
	if err != nil {
		return SimulationResult{}, err
	}

	roundRobinQueue := newProcessQueue()
	enqueueArrivals := func() {
		for _, i := range s.admit() {
			roundRobinQueue.addToEnd(i)
		}
	}

	for !s.finished() {
		if err := s.step(); err != nil {
			return SimulationResult{}, err
		}
		enqueueArrivals()

		current, ok := roundRobinQueue.removeFromTop()
		if !ok {
			if err := s.idle(); err != nil {
				return SimulationResult{}, err
			}
			continue
		}

		s.dispatch(current)
		s.run(current, timeQuantum)
		enqueueArrivals()

		if s.processes[current].Done() {
			if err := s.complete(current); err != nil {
				return SimulationResult{}, err
			}
			continue
		}
		trace("pid:", s.processes[current].ID, "quantum expired at", s.now, "back to roundRobin queue")
		roundRobinQueue.addToEnd(current)
	}

	return s.result()
}
