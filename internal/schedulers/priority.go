package schedulers

import (
	"os-scheduler-simulator/internal/core"
)

// Lower priority values are more urgent.

func SchedulePriority(processes []*core.Process, _ int) (SimulationResult, error) {
	return runNonPreemptive(processes, highestPriority)
}

func SchedulePriorityPreemptive(processes []*core.Process, _ int) (SimulationResult, error) {
	return runPreemptive(processes, highestPriority)
}

func highestPriority(a, b *core.Process, _ int) int {
	return compareInts(a.Priority, b.Priority)
}
