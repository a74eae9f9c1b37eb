package schedulers

import (
	"os-scheduler-simulator/internal/core"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
func ScheduleFirstComeFirstServe(processes []*core.Process, _ int) (SimulationResult, error) {
	return runNonPreemptive(processes, func(a, b *core.Process, _ int) int {
		return compareInts(a.ArrivalTime, b.ArrivalTime)
	})
}
