package schedulers

import (
	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/responses"
	"os-scheduler-simulator/internal/util"
)

// GenerateResponse derives the per-process table, averages and CPU figures
// for a finished simulation.
func GenerateResponse(algorithm PolicyID, timeQuantum int, result SimulationResult) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, 0, len(result.Completed))
	for _, p := range result.Completed {
		details = append(details, generateProcessDetails(p))
	}
	gantt := make([]responses.GanttResponse, 0, len(result.Gantt))
	for _, s := range result.Gantt {
		gantt = append(gantt, responses.GanttResponse{ProcessId: s.OccupantID, Start: s.Start, End: s.End})
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(details)
	cpuMetric := core.Metric(result.Gantt)

	response := responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		ContextSwitches:       core.ContextSwitches(result.Gantt),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Gantt:                 gantt,
		Details:               details,
	}
	if RequiresQuantum(algorithm) {
		response.TimeQuantum = timeQuantum
	}
	if cpuMetric.TotalTime > 0 {
		response.CpuUtilization = float64(cpuMetric.UtilizationTime) / float64(cpuMetric.TotalTime)
		response.CpuThroughput = float64(len(details)) / float64(cpuMetric.TotalTime)
	}
	return response
}

func generateProcessDetails(p core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      p.ID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       p.Priority,
		CompletionTime: p.CompletionTime,
		ResponseTime:   p.ResponseTime,
		TurnAroundTime: p.TurnaroundTime,
		WaitingTime:    p.WaitingTime,
	}
}
