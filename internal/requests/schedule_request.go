package requests

import (
	"errors"
	"fmt"

	"github.com/markphelps/optional"

	"os-scheduler-simulator/internal/core"
)

var ErrInvalidProcess = errors.New("invalid process")

type ProcessDescriptor struct {
	ProcessId   string `json:"id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

type ScheduleRequest struct {
	Algorithm   string              `json:"algorithm"`
	TimeQuantum *int                `json:"time_quantum,omitempty"`
	Processes   []ProcessDescriptor `json:"processes"`
}

// Quantum returns the requested time quantum, or fallback when the request
// does not carry one. A non-positive fallback means "absent".
func (r *ScheduleRequest) Quantum(fallback int) optional.Int {
	if r.TimeQuantum != nil {
		return optional.NewInt(*r.TimeQuantum)
	}
	if fallback > 0 {
		return optional.NewInt(fallback)
	}
	return optional.Int{}
}

// Validate rejects descriptors the simulator cannot take: empty, reserved or
// duplicate ids, negative arrival times and non-positive bursts.
func (r *ScheduleRequest) Validate() error {
	return ValidateProcesses(r.Processes)
}

func ValidateProcesses(processes []ProcessDescriptor) error {
	seen := make(map[string]struct{}, len(processes))
	for i, p := range processes {
		if p.ProcessId == "" {
			return fmt.Errorf("%w: process #%d has no id", ErrInvalidProcess, i+1)
		}
		if p.ProcessId == core.IdleID {
			return fmt.Errorf("%w: id %s is reserved", ErrInvalidProcess, core.IdleID)
		}
		if _, ok := seen[p.ProcessId]; ok {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidProcess, p.ProcessId)
		}
		seen[p.ProcessId] = struct{}{}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: %s arrival time must not be negative", ErrInvalidProcess, p.ProcessId)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: %s burst time must be positive", ErrInvalidProcess, p.ProcessId)
		}
	}
	return nil
}
