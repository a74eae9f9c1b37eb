package schedulers

import (
	"os-scheduler-simulator/internal/core"
)

const mlfqLevels = 3

// mlfqQuantum is the slice length at a level; the last level runs FCFS.
func mlfqQuantum(level, baseQuantum int) (int, bool) {
	switch level {
	case 0:
		return baseQuantum, true
	case 1:
		return 2 * baseQuantum, true
	}
	return 0, false
}

// ScheduleMultilevelFeedbackQueue runs three levels: round robin with
// baseQuantum, round robin with twice that, and FCFS. New arrivals enter
// level 0. A process that uses its whole slice without finishing drops one
// level. After every executed unit newly arrived processes are admitted, and
// a process running below level 0 that still has slice left yields to them,
// going back to the front of its own level.
func ScheduleMultilevelFeedbackQueue(processes []*core.Process, baseQuantum int) (SimulationResult, error) {
	if baseQuantum <= 0 {
		return SimulationResult{}, newError(ErrInvalidQuantum, MLFQ, "got %d", baseQuantum)
	}
	s, err := newSimulation(processes)
	if err != nil {
		return SimulationResult{}, err
	}

	var queues [mlfqLevels]*processQueue
	for l := range queues {
		queues[l] = newProcessQueue()
	}
	level := make([]int, len(s.processes))
	admitArrivals := func() int {
		admitted := s.admit()
		for _, i := range admitted {
			level[i] = 0
			queues[0].addToEnd(i)
		}
		return len(admitted)
	}

	for !s.finished() {
		if err := s.step(); err != nil {
			return SimulationResult{}, err
		}
		admitArrivals()

		current, ok := -1, false
		for l := 0; l < mlfqLevels && !ok; l++ {
			current, ok = queues[l].removeFromTop()
		}
		if !ok {
			if err := s.idle(); err != nil {
				return SimulationResult{}, err
			}
			continue
		}

		p := s.processes[current]
		lvl := level[current]
		quantum, bounded := mlfqQuantum(lvl, baseQuantum)
		s.dispatch(current)

		used, preempted := 0, false
		for !p.Done() && (!bounded || used < quantum) {
			used += s.run(current, 1)
			if p.Done() {
				break
			}
			if admitArrivals() > 0 && lvl > 0 && (!bounded || used < quantum) {
				preempted = true
				break
			}
		}

		switch {
		case p.Done():
			if err := s.complete(current); err != nil {
				return SimulationResult{}, err
			}
		case preempted:
			trace("pid:", p.ID, "preempted by a level 0 arrival at", s.now, "stays at level", lvl)
			queues[lvl].addToFront(current)
		default:
			if lvl < mlfqLevels-1 {
				lvl++
			}
			level[current] = lvl
			trace("pid:", p.ID, "used its quantum at", s.now, "moves to level", lvl)
			queues[lvl].addToEnd(current)
		}
	}

	return s.result()
}
