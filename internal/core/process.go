package core

import (
	"fmt"

	"github.com/markphelps/optional"
)

// Process is the mutable per-run record of one simulated task. A fresh set is
// built for every simulation and owned by the policy that runs it.
type Process struct {
	ID          string
	ArrivalTime int
	BurstTime   int
	Priority    int

	RemainingBurstTime int
	CompletionTime     int
	TurnaroundTime     int
	WaitingTime        int
	ResponseTime       int

	// FirstAllocationTime is absent until the process first holds the CPU.
	FirstAllocationTime optional.Int

	finalized bool
}

func NewProcess(id string, arrivalTime, burstTime, priority int) *Process {
	return &Process{
		ID:                 id,
		ArrivalTime:        arrivalTime,
		BurstTime:          burstTime,
		Priority:           priority,
		RemainingBurstTime: burstTime,
	}
}

func (p *Process) String() string {
	return fmt.Sprintf("%s(arrival=%d, burst=%d, priority=%d, remaining=%d)",
		p.ID, p.ArrivalTime, p.BurstTime, p.Priority, p.RemainingBurstTime)
}

// Allocate records the first time the process is given the CPU. Later calls
// are no-ops.
func (p *Process) Allocate(now int) {
	if p.FirstAllocationTime.Present() {
		return
	}
	p.FirstAllocationTime.Set(now)
}

// Run consumes up to ticks units of remaining burst and returns how many were
// actually used.
func (p *Process) Run(ticks int) int {
	if ticks > p.RemainingBurstTime {
		ticks = p.RemainingBurstTime
	}
	if ticks < 0 {
		ticks = 0
	}
	p.RemainingBurstTime -= ticks
	return ticks
}

func (p *Process) Done() bool {
	return p.RemainingBurstTime == 0
}

func (p *Process) Finalized() bool {
	return p.finalized
}
