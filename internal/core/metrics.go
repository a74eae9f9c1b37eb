package core

import (
	"errors"
	"fmt"
)

var ErrMetrics = errors.New("metrics")

// Finalize stamps completion, turnaround, waiting and response time on a
// process whose remaining burst has just reached zero. It must be called
// exactly once per process.
func Finalize(p *Process, completionTime int) error {
	if p.finalized {
		return fmt.Errorf("%w: pid %s finalized twice", ErrMetrics, p.ID)
	}
	if p.RemainingBurstTime != 0 {
		return fmt.Errorf("%w: pid %s finalized with %d units remaining", ErrMetrics, p.ID, p.RemainingBurstTime)
	}

	p.CompletionTime = completionTime
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime

	// a process that ran always has an allocation; fall back to a zero response
	if !p.FirstAllocationTime.Present() {
		p.FirstAllocationTime.Set(p.ArrivalTime)
	}
	first, _ := p.FirstAllocationTime.Get()
	p.ResponseTime = first - p.ArrivalTime
	p.finalized = true

	if p.WaitingTime < 0 || p.ResponseTime < 0 {
		return fmt.Errorf("%w: pid %s has negative waiting (%d) or response (%d) time",
			ErrMetrics, p.ID, p.WaitingTime, p.ResponseTime)
	}
	return nil
}
