package schedulers

import (
	"os-scheduler-simulator/internal/core"
)

// ScheduleLongestJobFirst picks the arrived process with the largest burst
// and runs it to completion.
func ScheduleLongestJobFirst(processes []*core.Process, _ int) (SimulationResult, error) {
	return runNonPreemptive(processes, longestBurst)
}

// ScheduleLongestRemainingTimeFirst preempts whenever a ready process has
// strictly more remaining time than the running one.
func ScheduleLongestRemainingTimeFirst(processes []*core.Process, _ int) (SimulationResult, error) {
	return runPreemptive(processes, longestRemaining)
}

func longestBurst(a, b *core.Process, _ int) int {
	return compareInts(b.BurstTime, a.BurstTime)
}

func longestRemaining(a, b *core.Process, _ int) int {
	return compareInts(b.RemainingBurstTime, a.RemainingBurstTime)
}
