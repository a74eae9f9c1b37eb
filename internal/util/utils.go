package util

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"

	"os-scheduler-simulator/internal/responses"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Max[T Number](values []T) T {
	var max T
	for i, v := range values {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}

// Mean is zero for an empty list.
func Mean[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	floats := make([]float64, len(values))
	for i, v := range values {
		floats[i] = float64(v)
	}
	return stat.Mean(floats, nil)
}

func CalculateAverage(processDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	waiting := make([]int, len(processDetails))
	response := make([]int, len(processDetails))
	turnAround := make([]int, len(processDetails))

	for i, process := range processDetails {
		waiting[i] = process.WaitingTime
		response[i] = process.ResponseTime
		turnAround[i] = process.TurnAroundTime
	}

	averageWaitingTime = Mean(waiting)
	averageResponseTime = Mean(response)
	averageTurnAroundTime = Mean(turnAround)
	return
}
