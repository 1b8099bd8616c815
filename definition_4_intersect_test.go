package meetingslots

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntersectGapSequences(t *testing.T) {
	gapsA := []TimeSlot{
		{TimeStart: 0, TimeEnd: 540},
		{TimeStart: 600, TimeEnd: 1020},
	}

	gapsB := []TimeSlot{
		{TimeStart: 0, TimeEnd: 600},
		{TimeStart: 660, TimeEnd: 1020},
	}

	t.Run(
		"1. two persons",
		func(t *testing.T) {
			require.Equal(t,
				[]TimeSlot{
					{TimeStart: 0, TimeEnd: 540},
					{TimeStart: 660, TimeEnd: 1020},
				},
				IntersectGapSequences(gapsA, gapsB),
			)
		},
	)

	t.Run(
		"2. commutative",
		func(t *testing.T) {
			require.ElementsMatch(t,
				IntersectGapSequences(gapsA, gapsB),
				IntersectGapSequences(gapsB, gapsA),
			)
		},
	)

	t.Run(
		"3. touching gaps give no slot",
		func(t *testing.T) {
			require.Empty(t,
				IntersectGapSequences(
					[]TimeSlot{{TimeStart: 0, TimeEnd: 600}},
					[]TimeSlot{{TimeStart: 600, TimeEnd: 900}},
				),
			)
		},
	)

	t.Run(
		"4. empty sequence",
		func(t *testing.T) {
			require.Empty(t, IntersectGapSequences(gapsA, nil))
			require.Empty(t, IntersectGapSequences(nil, gapsB))
		},
	)

	t.Run(
		"5. equal ends advance the second sequence",
		func(t *testing.T) {
			require.Equal(t,
				[]TimeSlot{
					{TimeStart: 100, TimeEnd: 200},
					{TimeStart: 200, TimeEnd: 300},
				},
				IntersectGapSequences(
					[]TimeSlot{{TimeStart: 0, TimeEnd: 300}},
					[]TimeSlot{
						{TimeStart: 100, TimeEnd: 200},
						{TimeStart: 200, TimeEnd: 300},
					},
				),
			)
		},
	)
}

func TestFilterByDuration(t *testing.T) {
	slots := []TimeSlot{
		{TimeStart: 0, TimeEnd: 540},
		{TimeStart: 600, TimeEnd: 620},
		{TimeStart: 660, TimeEnd: 690},
	}

	filtered := FilterByDuration(slots, 30)
	require.Equal(t,
		[]TimeSlot{
			{TimeStart: 0, TimeEnd: 540},
			{TimeStart: 660, TimeEnd: 690},
		},
		filtered,
	)

	require.Equal(t, filtered, FilterByDuration(filtered, 30))
	require.Empty(t, FilterByDuration(slots, 600))
}
