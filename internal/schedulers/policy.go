package schedulers

import (
	"strings"

	"os-scheduler-simulator/internal/core"
)

type PolicyID string

const (
	FCFS                  PolicyID = "FCFS"
	SJFNonPreemptive      PolicyID = "SJF_non_preemptive"
	SRTF                  PolicyID = "SRTF"
	PriorityNonPreemptive PolicyID = "Priority_non_preemptive"
	PriorityPreemptive    PolicyID = "Priority_preemptive"
	RoundRobin            PolicyID = "RR"
	LJFNonPreemptive      PolicyID = "LJF_non_preemptive"
	LRTF                  PolicyID = "LRTF"
	HRRN                  PolicyID = "HRRN"
	MLFQ                  PolicyID = "MLFQ"
)

// policyFunc runs one scheduling policy over a private working set.
type policyFunc func(processes []*core.Process, quantum int) (SimulationResult, error)

type policy struct {
	id       PolicyID
	name     string
	alias    string
	quantum  bool
	schedule policyFunc
}

var policies = []policy{
	{FCFS, "First-come, first-serve", "fcfs", false, ScheduleFirstComeFirstServe},
	{SJFNonPreemptive, "Shortest-job-first", "sjf", false, ScheduleShortestJobFirst},
	{SRTF, "Shortest-remaining-time-first", "srtf", false, ScheduleShortestRemainingTimeFirst},
	{PriorityNonPreemptive, "Priority", "priority", false, SchedulePriority},
	{PriorityPreemptive, "Priority (preemptive)", "priority-preemptive", false, SchedulePriorityPreemptive},
	{RoundRobin, "Round-robin", "rr", true, ScheduleRoundRobin},
	{LJFNonPreemptive, "Longest-job-first", "ljf", false, ScheduleLongestJobFirst},
	{LRTF, "Longest-remaining-time-first", "lrtf", false, ScheduleLongestRemainingTimeFirst},
	{HRRN, "Highest-response-ratio-next", "hrrn", false, ScheduleHighestResponseRatioNext},
	{MLFQ, "Multilevel feedback queue", "mlfq", true, ScheduleMultilevelFeedbackQueue},
}

func lookup(id PolicyID) (policy, bool) {
	for _, p := range policies {
		if p.id == id {
			return p, true
		}
	}
	return policy{}, false
}

// Policies lists every supported policy in canonical order.
func Policies() []PolicyID {
	ids := make([]PolicyID, 0, len(policies))
	for _, p := range policies {
		ids = append(ids, p.id)
	}
	return ids
}

// ParsePolicy accepts a canonical id in any case or a route alias such as
// "rr" or "priority-preemptive".
func ParsePolicy(s string) (PolicyID, error) {
	s = strings.TrimSpace(s)
	for _, p := range policies {
		if strings.EqualFold(string(p.id), s) || strings.EqualFold(p.alias, s) {
			return p.id, nil
		}
	}
	return "", newError(ErrUnknownPolicy, "", "%q", s)
}

func RequiresQuantum(id PolicyID) bool {
	p, ok := lookup(id)
	return ok && p.quantum
}

// Name is the human readable title of a policy.
func (id PolicyID) Name() string {
	if p, ok := lookup(id); ok {
		return p.name
	}
	return string(id)
}

func (id PolicyID) Alias() string {
	if p, ok := lookup(id); ok {
		return p.alias
	}
	return strings.ToLower(string(id))
}
