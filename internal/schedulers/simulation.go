package schedulers

import (
	"sort"

	"os-scheduler-simulator/internal/core"
)

// SimulationResult is the outcome of one policy run: the merged Gantt sequence
// and one finalized record per input process, ordered by id.
type SimulationResult struct {
	Gantt     []core.GanttSegment
	Completed []core.Process
}

// simulation is the event-loop state shared by every policy. Processes are
// kept in arrival order, ties in input order, so a lower index always wins a
// tie on the primary ranking key.
type simulation struct {
	processes []*core.Process
	timeline  *core.Timeline
	now       int

	arrived   []bool
	completed []bool
	done      int

	steps    int
	maxSteps int
}

func newSimulation(processes []*core.Process) (*simulation, error) {
	if len(processes) == 0 {
		return nil, newError(ErrEmptyProcessSet, "", "nothing to schedule")
	}

	ordered := make([]*core.Process, len(processes))
	copy(ordered, processes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ArrivalTime < ordered[j].ArrivalTime
	})

	// every step either executes at least one unit or jumps to an arrival
	maxSteps := len(ordered) + 1
	seen := make(map[string]bool, len(ordered))
	for _, p := range ordered {
		if p.ID == core.IdleID || seen[p.ID] {
			return nil, invariant("pid %q is reserved or duplicated", p.ID)
		}
		seen[p.ID] = true
		if p.BurstTime <= 0 || p.RemainingBurstTime != p.BurstTime {
			return nil, invariant("pid %s starts with burst %d and remaining %d", p.ID, p.BurstTime, p.RemainingBurstTime)
		}
		maxSteps += p.BurstTime
	}
	maxSteps += ordered[len(ordered)-1].ArrivalTime

	return &simulation{
		processes: ordered,
		timeline:  core.NewTimeline(),
		arrived:   make([]bool, len(ordered)),
		completed: make([]bool, len(ordered)),
		maxSteps:  maxSteps,
	}, nil
}

func (s *simulation) finished() bool {
	return s.done == len(s.processes)
}

// step guards the event loop against running forever.
func (s *simulation) step() error {
	s.steps++
	if s.steps > s.maxSteps {
		return invariant("event loop exceeded %d steps at time %d with %d of %d processes complete",
			s.maxSteps, s.now, s.done, len(s.processes))
	}
	return nil
}

// admit marks every process that has arrived by now and returns the indices
// that became eligible with this call.
func (s *simulation) admit() []int {
	var admitted []int
	for i, p := range s.processes {
		if !s.arrived[i] && !s.completed[i] && p.ArrivalTime <= s.now {
			s.arrived[i] = true
			admitted = append(admitted, i)
		}
	}
	return admitted
}

func (s *simulation) ready(i int) bool {
	return s.arrived[i] && !s.completed[i]
}

// best returns the ready process ranked first by key, or -1 when none is ready.
// Ties on key go to the earlier arrival, then to input order.
func (s *simulation) best(key rankKey) int {
	best := -1
	for i := range s.processes {
		if !s.ready(i) {
			continue
		}
		if best < 0 || key(s.processes[i], s.processes[best], s.now) < 0 {
			best = i
		}
	}
	return best
}

// idle jumps the clock to the next arrival, recording one idle segment for
// the gap. It fails when nothing is left to arrive.
func (s *simulation) idle() error {
	next, ok := s.nextArrival()
	if !ok {
		return invariant("no process ready or pending at time %d with %d of %d processes complete",
			s.now, s.done, len(s.processes))
	}
	trace("cpu idle from", s.now, "until", next)
	s.timeline.RecordIdle(s.now, next)
	s.now = next
	return nil
}

func (s *simulation) nextArrival() (int, bool) {
	next, ok := 0, false
	for i, p := range s.processes {
		if s.completed[i] || p.ArrivalTime <= s.now {
			continue
		}
		if !ok || p.ArrivalTime < next {
			next, ok = p.ArrivalTime, true
		}
	}
	return next, ok
}

func (s *simulation) dispatch(i int) {
	p := s.processes[i]
	p.Allocate(s.now)
	trace("pid:", p.ID, "dispatched at", s.now, "remaining", p.RemainingBurstTime)
}

// run executes process i for up to ticks units starting now and advances the
// clock by what was actually used.
func (s *simulation) run(i, ticks int) int {
	p := s.processes[i]
	start := s.now
	used := p.Run(ticks)
	s.now += used
	s.timeline.RecordExecution(p.ID, start, s.now)
	return used
}

func (s *simulation) complete(i int) error {
	p := s.processes[i]
	if err := core.Finalize(p, s.now); err != nil {
		return invariant("%v", err)
	}
	s.completed[i] = true
	s.done++
	trace("pid:", p.ID, "completed at", s.now, "waiting", p.WaitingTime, "turnaround", p.TurnaroundTime)
	return nil
}

// result merges the timeline and checks the run left a consistent picture.
func (s *simulation) result() (SimulationResult, error) {
	if err := s.timeline.Err(); err != nil {
		return SimulationResult{}, invariant("%v", err)
	}
	if !s.finished() {
		return SimulationResult{}, invariant("%d of %d processes complete", s.done, len(s.processes))
	}

	gantt := s.timeline.Segments()
	for i := 1; i < len(gantt); i++ {
		if gantt[i-1].End != gantt[i].Start {
			return SimulationResult{}, invariant("gantt gap between %v and %v", gantt[i-1], gantt[i])
		}
	}

	completed := make([]core.Process, len(s.processes))
	for i, p := range s.processes {
		if !p.Finalized() {
			return SimulationResult{}, invariant("pid %s finished without metrics", p.ID)
		}
		completed[i] = *p
	}
	core.SortByID(completed)

	return SimulationResult{Gantt: gantt, Completed: completed}, nil
}

// rankKey compares two processes on a policy's primary key at time now:
// negative when a should run before b.
type rankKey func(a, b *core.Process, now int) int

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// runNonPreemptive repeatedly picks the best ready process by key and runs it
// to completion.
func runNonPreemptive(processes []*core.Process, key rankKey) (SimulationResult, error) {
	s, err := newSimulation(processes)
	if err != nil {
		return SimulationResult{}, err
	}

	for !s.finished() {
		if err := s.step(); err != nil {
			return SimulationResult{}, err
		}
		s.admit()

		next := s.best(key)
		if next < 0 {
			if err := s.idle(); err != nil {
				return SimulationResult{}, err
			}
			continue
		}

		s.dispatch(next)
		s.run(next, s.processes[next].RemainingBurstTime)
		if err := s.complete(next); err != nil {
			return SimulationResult{}, err
		}
	}

	return s.result()
}

// runPreemptive advances one time unit at a time. Before each unit the best
// ready process replaces the running one only if it strictly beats it on key.
func runPreemptive(processes []*core.Process, key rankKey) (SimulationResult, error) {
	s, err := newSimulation(processes)
	if err != nil {
		return SimulationResult{}, err
	}

	running := -1
	for !s.finished() {
		if err := s.step(); err != nil {
			return SimulationResult{}, err
		}
		s.admit()

		next := s.best(key)
		if running >= 0 && next != running && key(s.processes[next], s.processes[running], s.now) < 0 {
			trace("pid:", s.processes[running].ID, "preempted by", s.processes[next].ID, "at", s.now)
			running = -1
		}

		if running < 0 {
			if next < 0 {
				if err := s.idle(); err != nil {
					return SimulationResult{}, err
				}
				continue
			}
			running = next
			s.dispatch(running)
		}

		s.run(running, 1)
		if s.processes[running].Done() {
			if err := s.complete(running); err != nil {
				return SimulationResult{}, err
			}
			running = -1
		}
	}

	return s.result()
}
