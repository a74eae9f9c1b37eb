package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"os-scheduler-simulator/internal/responses"
)

func TestRender(t *testing.T) {
	response := responses.ScheduleResponse{
		Algorithm:          "FCFS",
		TotalTime:          8,
		IdleTime:           5,
		AverageWaitingTime: 0,
		CpuUtilization:     0.375,
		CpuThroughput:      0.125,
		Gantt: []responses.GanttResponse{
			{ProcessId: "Idle", Start: 0, End: 5},
			{ProcessId: "P1", Start: 5, End: 8},
		},
		Details: []responses.ProcessResponse{
			{ProcessId: "P1", ArrivalTime: 5, BurstTime: 3, CompletionTime: 8, TurnAroundTime: 3},
		},
	}

	var buf bytes.Buffer
	Render(&buf, "First-come, first-serve", response)
	out := buf.String()

	assert.Contains(t, out, "First-come, first-serve")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "|  Idle  |   P1   |")
	assert.Contains(t, out, "0\t5\t8")
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "CPU utilization 37.50%, idle 5, context switches 0")
}
