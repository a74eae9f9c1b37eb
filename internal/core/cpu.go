package core

import (
	"fmt"
)

// IdleID is the reserved occupant of a segment in which no process runs.
const IdleID = "Idle"

// GanttSegment is a contiguous interval during which one occupant holds the CPU.
type GanttSegment struct {
	OccupantID string
	Start      int
	End        int
}

func (s GanttSegment) Len() int {
	return s.End - s.Start
}

func (s GanttSegment) Idle() bool {
	return s.OccupantID == IdleID
}

func (s GanttSegment) String() string {
	return fmt.Sprintf("%s:%d-%d", s.OccupantID, s.Start, s.End)
}

// CpuMetric summarises how a single CPU spent the simulated time.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Timeline records raw CPU allocations for one simulation run.
type Timeline struct {
	segments []GanttSegment
	err      error
}

func NewTimeline() *Timeline {
	return &Timeline{segments: make([]GanttSegment, 0)}
}

// RecordExecution appends a raw segment. Zero-length segments are accepted
// and dropped when the timeline is merged.
func (t *Timeline) RecordExecution(occupantID string, start, end int) {
	if end < start {
		if t.err == nil {
			t.err = fmt.Errorf("segment %s ends at %d before it starts at %d", occupantID, end, start)
		}
		return
	}
	if n := len(t.segments); n > 0 && t.segments[n-1].End > start {
		if t.err == nil {
			t.err = fmt.Errorf("segment %s at %d overlaps %v", occupantID, start, t.segments[n-1])
		}
		return
	}
	t.segments = append(t.segments, GanttSegment{OccupantID: occupantID, Start: start, End: end})
}

// RecordIdle covers [start, end) with the idle occupant, extending a trailing
// idle segment when one ends at start.
func (t *Timeline) RecordIdle(start, end int) {
	if end <= start {
		return
	}
	if n := len(t.segments); n > 0 && t.segments[n-1].Idle() && t.segments[n-1].End == start {
		t.segments[n-1].End = end
		return
	}
	t.RecordExecution(IdleID, start, end)
}

// Err reports the first contract violation seen while recording.
func (t *Timeline) Err() error {
	return t.err
}

func (t *Timeline) Segments() []GanttSegment {
	return MergeAdjacent(t.segments)
}

// MergeAdjacent combines consecutive segments of the same occupant when the
// first ends where the second starts. Zero-length segments are dropped. The
// input is left untouched.
func MergeAdjacent(segments []GanttSegment) []GanttSegment {
	merged := make([]GanttSegment, 0, len(segments))
	for _, s := range segments {
		if s.Len() <= 0 {
			continue
		}
		if n := len(merged); n > 0 && merged[n-1].OccupantID == s.OccupantID && merged[n-1].End == s.Start {
			merged[n-1].End = s.End
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// Metric derives busy and idle time over a merged Gantt sequence.
func Metric(segments []GanttSegment) CpuMetric {
	var metric CpuMetric
	for _, s := range segments {
		if s.Idle() {
			metric.IdleTime += s.Len()
		} else {
			metric.UtilizationTime += s.Len()
		}
		if s.End > metric.TotalTime {
			metric.TotalTime = s.End
		}
	}
	return metric
}

// ContextSwitches counts hand-overs between two different processes. Idle
// gaps in between do not break the chain.
func ContextSwitches(segments []GanttSegment) int {
	switches := 0
	last := ""
	for _, s := range segments {
		if s.Idle() {
			continue
		}
		if last != "" && last != s.OccupantID {
			switches++
		}
		last = s.OccupantID
	}
	return switches
}
