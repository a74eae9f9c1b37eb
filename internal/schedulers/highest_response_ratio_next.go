package schedulers

import (
	"os-scheduler-simulator/internal/core"
)

// ScheduleHighestResponseRatioNext is non-preemptive. At every selection
// point it picks the arrived process with the highest
// (waiting + burst) / burst, using the original burst time.
func ScheduleHighestResponseRatioNext(processes []*core.Process, _ int) (SimulationResult, error) {
	return runNonPreemptive(processes, highestResponseRatio)
}

// highestResponseRatio compares ratios by cross-multiplying so equal ratios
// tie exactly.
func highestResponseRatio(a, b *core.Process, now int) int {
	ra := (now - a.ArrivalTime + a.BurstTime) * b.BurstTime
	rb := (now - b.ArrivalTime + b.BurstTime) * a.BurstTime
	return compareInts(rb, ra)
}
