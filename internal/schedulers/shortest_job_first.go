package schedulers

import (
	"os-scheduler-simulator/internal/core"
)

// ScheduleShortestJobFirst picks the arrived process with the smallest burst
// and runs it to completion.
func ScheduleShortestJobFirst(processes []*core.Process, _ int) (SimulationResult, error) {
	return runNonPreemptive(processes, shortestBurst)
}

// ScheduleShortestRemainingTimeFirst re-evaluates every time unit and
// preempts when a ready process has strictly less remaining time.
func ScheduleShortestRemainingTimeFirst(processes []*core.Process, _ int) (SimulationResult, error) {
	return runPreemptive(processes, shortestRemaining)
}

func shortestBurst(a, b *core.Process, _ int) int {
	return compareInts(a.BurstTime, b.BurstTime)
}

func shortestRemaining(a, b *core.Process, _ int) int {
	return compareInts(a.RemainingBurstTime, b.RemainingBurstTime)
}
