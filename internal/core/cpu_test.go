package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAdjacent(t *testing.T) {
	tests := []struct {
		name string
		in   []GanttSegment
		want []GanttSegment
	}{
		{
			name: "empty",
			in:   nil,
			want: []GanttSegment{},
		},
		{
			name: "contiguous same occupant",
			in: []GanttSegment{
				{OccupantID: "P1", Start: 0, End: 1},
				{OccupantID: "P1", Start: 1, End: 2},
				{OccupantID: "P1", Start: 2, End: 4},
			},
			want: []GanttSegment{{OccupantID: "P1", Start: 0, End: 4}},
		},
		{
			name: "same occupant separated by another stays split",
			in: []GanttSegment{
				{OccupantID: "P1", Start: 0, End: 2},
				{OccupantID: "P2", Start: 2, End: 4},
				{OccupantID: "P1", Start: 4, End: 5},
			},
			want: []GanttSegment{
				{OccupantID: "P1", Start: 0, End: 2},
				{OccupantID: "P2", Start: 2, End: 4},
				{OccupantID: "P1", Start: 4, End: 5},
			},
		},
		{
			name: "zero length segments dropped",
			in: []GanttSegment{
				{OccupantID: "P1", Start: 0, End: 2},
				{OccupantID: "P2", Start: 2, End: 2},
				{OccupantID: "P1", Start: 2, End: 3},
			},
			want: []GanttSegment{{OccupantID: "P1", Start: 0, End: 3}},
		},
		{
			name: "same occupant with a gap stays split",
			in: []GanttSegment{
				{OccupantID: "P1", Start: 0, End: 2},
				{OccupantID: "P1", Start: 3, End: 4},
			},
			want: []GanttSegment{
				{OccupantID: "P1", Start: 0, End: 2},
				{OccupantID: "P1", Start: 3, End: 4},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeAdjacent(tt.in))
		})
	}
}

func TestMergeAdjacentLeavesInputAlone(t *testing.T) {
	in := []GanttSegment{
		{OccupantID: "P1", Start: 0, End: 1},
		{OccupantID: "P1", Start: 1, End: 2},
	}
	MergeAdjacent(in)
	assert.Equal(t, 1, in[0].End)
	assert.Len(t, in, 2)
}

func TestTimelineIdle(t *testing.T) {
	tl := NewTimeline()
	tl.RecordIdle(0, 3)
	tl.RecordIdle(3, 5)
	tl.RecordExecution("P1", 5, 8)
	tl.RecordIdle(8, 8)
	require.NoError(t, tl.Err())
	assert.Equal(t, []GanttSegment{
		{OccupantID: IdleID, Start: 0, End: 5},
		{OccupantID: "P1", Start: 5, End: 8},
	}, tl.Segments())
}

func TestTimelineRejectsBadSegments(t *testing.T) {
	tl := NewTimeline()
	tl.RecordExecution("P1", 3, 2)
	assert.Error(t, tl.Err())

	tl = NewTimeline()
	tl.RecordExecution("P1", 0, 4)
	tl.RecordExecution("P2", 3, 5)
	assert.Error(t, tl.Err())
	assert.Equal(t, []GanttSegment{{OccupantID: "P1", Start: 0, End: 4}}, tl.Segments())
}

func TestMetricAndContextSwitches(t *testing.T) {
	segments := []GanttSegment{
		{OccupantID: IdleID, Start: 0, End: 2},
		{OccupantID: "P1", Start: 2, End: 4},
		{OccupantID: "P2", Start: 4, End: 5},
		{OccupantID: IdleID, Start: 5, End: 7},
		{OccupantID: "P2", Start: 7, End: 9},
		{OccupantID: "P1", Start: 9, End: 10},
	}
	assert.Equal(t, CpuMetric{TotalTime: 10, UtilizationTime: 6, IdleTime: 4}, Metric(segments))
	assert.Equal(t, 2, ContextSwitches(segments))
}
