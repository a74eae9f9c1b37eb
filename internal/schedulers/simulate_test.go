package schedulers

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/markphelps/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/requests"
)

func randomLoad(r *rand.Rand, n int) []requests.ProcessDescriptor {
	processes := make([]requests.ProcessDescriptor, n)
	for i := range processes {
		processes[i] = proc(fmt.Sprintf("P%d", i+1), r.Intn(20), 1+r.Intn(9), r.Intn(5))
	}
	return processes
}

func TestSimulateProperties(t *testing.T) {
	r := rand.New(rand.NewSource(4600))
	for round := 0; round < 40; round++ {
		processes := randomLoad(r, 1+r.Intn(8))
		quantum := 1 + r.Intn(4)

		for _, algorithm := range Policies() {
			t.Run(fmt.Sprintf("%s/%d", algorithm, round), func(t *testing.T) {
				result, err := Simulate(processes, algorithm, optional.NewInt(quantum))
				require.NoError(t, err)
				require.Len(t, result.Completed, len(processes))

				burst := make(map[string]int, len(processes))
				for _, d := range processes {
					burst[d.ProcessId] = d.BurstTime
				}

				executed := make(map[string]int)
				require.NotEmpty(t, result.Gantt)
				assert.Equal(t, 0, result.Gantt[0].Start)
				for i, s := range result.Gantt {
					assert.Greater(t, s.End, s.Start)
					if !s.Idle() {
						executed[s.OccupantID] += s.Len()
					}
					if i == 0 {
						continue
					}
					prev := result.Gantt[i-1]
					assert.Equal(t, prev.End, s.Start, "gap or overlap at %v", s)
					assert.NotEqual(t, prev.OccupantID, s.OccupantID, "unmerged segment at %v", s)
				}
				assert.Equal(t, burst, executed)

				for _, p := range result.Completed {
					assert.Zero(t, p.RemainingBurstTime)
					assert.GreaterOrEqual(t, p.WaitingTime, 0)
					assert.GreaterOrEqual(t, p.ResponseTime, 0)
					assert.Equal(t, p.WaitingTime+p.BurstTime, p.TurnaroundTime)
					assert.Equal(t, p.CompletionTime-p.ArrivalTime, p.TurnaroundTime)
					assert.GreaterOrEqual(t, p.CompletionTime, p.ArrivalTime+p.BurstTime)
					first, err := p.FirstAllocationTime.Get()
					require.NoError(t, err)
					assert.GreaterOrEqual(t, first, p.ArrivalTime)
				}

				again, err := Simulate(processes, algorithm, optional.NewInt(quantum))
				require.NoError(t, err)
				assert.Equal(t, result, again)
			})
		}
	}
}

func TestNonPreemptiveRunsEachProcessOnce(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, algorithm := range []PolicyID{FCFS, SJFNonPreemptive, PriorityNonPreemptive, LJFNonPreemptive, HRRN} {
		processes := randomLoad(r, 6)
		result, err := Simulate(processes, algorithm, optional.Int{})
		require.NoError(t, err)

		seen := make(map[string]int)
		for _, s := range result.Gantt {
			if !s.Idle() {
				seen[s.OccupantID]++
			}
		}
		for _, d := range processes {
			assert.Equal(t, 1, seen[d.ProcessId], "%s ran %s more than once", algorithm, d.ProcessId)
		}
		for _, p := range result.Completed {
			assert.Equal(t, p.WaitingTime, p.ResponseTime, "%s: %s", algorithm, p.ID)
		}
	}
}

func TestSimulateErrors(t *testing.T) {
	one := []requests.ProcessDescriptor{proc("P1", 0, 3, 0)}
	tests := []struct {
		name      string
		processes []requests.ProcessDescriptor
		algorithm PolicyID
		quantum   optional.Int
		kind      error
	}{
		{"unknown policy", one, PolicyID("EDF"), optional.Int{}, ErrUnknownPolicy},
		{"empty process set", nil, FCFS, optional.Int{}, ErrEmptyProcessSet},
		{"round robin without quantum", one, RoundRobin, optional.Int{}, ErrInvalidQuantum},
		{"round robin zero quantum", one, RoundRobin, optional.NewInt(0), ErrInvalidQuantum},
		{"mlfq negative quantum", one, MLFQ, optional.NewInt(-2), ErrInvalidQuantum},
		{"reserved idle id", []requests.ProcessDescriptor{proc(core.IdleID, 3, 2, 0)}, FCFS, optional.Int{}, ErrInternalInvariantViolation},
		{"duplicate id", []requests.ProcessDescriptor{proc("P1", 0, 2, 0), proc("P1", 0, 2, 0)}, FCFS, optional.Int{}, ErrInternalInvariantViolation},
		{"duplicate id round robin", []requests.ProcessDescriptor{proc("P1", 0, 2, 0), proc("P1", 1, 2, 0)}, RoundRobin, optional.NewInt(2), ErrInternalInvariantViolation},
		{"duplicate id mlfq", []requests.ProcessDescriptor{proc("P1", 0, 2, 0), proc("P1", 1, 2, 0)}, MLFQ, optional.NewInt(2), ErrInternalInvariantViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Simulate(tt.processes, tt.algorithm, tt.quantum)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Empty(t, result.Gantt)
			assert.Empty(t, result.Completed)

			var simErr *SimulationError
			require.True(t, errors.As(err, &simErr))
			assert.Equal(t, tt.kind, simErr.Kind)
		})
	}
}

func TestSimulateIgnoresQuantumWhenUnused(t *testing.T) {
	one := []requests.ProcessDescriptor{proc("P1", 0, 3, 0)}
	_, err := Simulate(one, FCFS, optional.NewInt(-5))
	assert.NoError(t, err)
}

func TestSimulateDoesNotAliasInput(t *testing.T) {
	processes := []requests.ProcessDescriptor{proc("P2", 3, 2, 0), proc("P1", 0, 4, 0)}
	snapshot := append([]requests.ProcessDescriptor(nil), processes...)

	result, err := Simulate(processes, SRTF, optional.Int{})
	require.NoError(t, err)
	assert.Equal(t, snapshot, processes)

	result.Completed[0].WaitingTime = 99
	again, err := Simulate(processes, SRTF, optional.Int{})
	require.NoError(t, err)
	assert.NotEqual(t, 99, again.Completed[0].WaitingTime)
}

func TestSimulateRecoversPolicyPanic(t *testing.T) {
	saved := policies
	defer func() { policies = saved }()
	policies = append(append([]policy(nil), saved...), policy{
		id: "boom",
		schedule: func([]*core.Process, int) (SimulationResult, error) {
			panic("index out of range")
		},
	})

	_, err := Simulate([]requests.ProcessDescriptor{proc("P1", 0, 1, 0)}, "boom", optional.Int{})
	assert.ErrorIs(t, err, ErrInternalInvariantViolation)
	assert.Contains(t, err.Error(), "boom")
}

func TestParsePolicy(t *testing.T) {
	tests := map[string]PolicyID{
		"FCFS":                FCFS,
		"fcfs":                FCFS,
		"sjf":                 SJFNonPreemptive,
		"SJF_non_preemptive":  SJFNonPreemptive,
		"priority-preemptive": PriorityPreemptive,
		"rr":                  RoundRobin,
		" mlfq ":              MLFQ,
		"hrrn":                HRRN,
	}
	for in, want := range tests {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePolicy("lottery")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestPolicies(t *testing.T) {
	ids := Policies()
	assert.Len(t, ids, 10)
	assert.Equal(t, FCFS, ids[0])
	assert.True(t, RequiresQuantum(RoundRobin))
	assert.True(t, RequiresQuantum(MLFQ))
	assert.False(t, RequiresQuantum(HRRN))
	assert.Equal(t, "Round-robin", RoundRobin.Name())
	assert.Equal(t, "rr", RoundRobin.Alias())
}
