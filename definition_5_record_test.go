package meetingslots

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

var linesScenario = [LinesPerRecord]string{
	"[['09:00':'10:00']]",
	"['08:00','17:00']",
	"[['10:00':'11:00']]",
	"['08:00','17:00']",
	"30",
}

func TestErrorsRecord(t *testing.T) {
	t.Run(
		"1. nil params",
		func(t *testing.T) {
			record, errCr := NewRecord(nil)
			require.Error(t, errCr)
			require.Nil(t, record)
		},
	)

	t.Run(
		"2. missing duration",
		func(t *testing.T) {
			record, errCr := NewRecord(
				&ParamsNewRecord{
					WorkA: workDay,
					WorkB: workDay,
				},
			)
			require.Error(t, errCr)
			require.Nil(t, record)
		},
	)

	t.Run(
		"3. negative duration",
		func(t *testing.T) {
			record, errCr := NewRecord(
				&ParamsNewRecord{
					Duration: -5,
				},
			)
			require.Error(t, errCr)
			require.Nil(t, record)
		},
	)
}

func TestParseRecord(t *testing.T) {
	record, errParse := ParseRecord(linesScenario)
	require.NoError(t, errParse)
	require.NotNil(t, record)

	require.Equal(t, []TimeSlot{{TimeStart: 540, TimeEnd: 600}}, record.BusyA)
	require.Equal(t, []TimeSlot{{TimeStart: 600, TimeEnd: 660}}, record.BusyB)
	require.Equal(t, workDay, record.WorkA)
	require.Equal(t, workDay, record.WorkB)
	require.Equal(t, 30, record.Duration)

	require.Equal(t,
		[]TimeSlot{
			{TimeStart: 0, TimeEnd: 540},
			{TimeStart: 660, TimeEnd: 1020},
		},
		record.MeetingSlots(false),
	)

	for ix := range linesScenario {
		broken := linesScenario
		broken[ix] = ternary(ix%2 == 0, "[['xx:00':'10:00']]", "no brackets")

		if ix == LinesPerRecord-1 {
			broken[ix] = "abc"
		}

		_, errBroken := ParseRecord(broken)
		require.Error(t, errBroken, "line %d", ix)
	}
}

func TestMeetingSlotsNormalize(t *testing.T) {
	record, errCr := NewRecord(
		&ParamsNewRecord{
			BusyA: []TimeSlot{
				{TimeStart: 600, TimeEnd: 660},
				{TimeStart: 540, TimeEnd: 570},
			},
			WorkA: workDay,
			WorkB: workDay,

			Duration: 30,
		},
	)
	require.NoError(t, errCr)

	require.Equal(t,
		[]TimeSlot{
			{TimeStart: 0, TimeEnd: 600},
			{TimeStart: 660, TimeEnd: 1020},
		},
		record.MeetingSlots(false),
	)

	require.Equal(t,
		[]TimeSlot{
			{TimeStart: 0, TimeEnd: 540},
			{TimeStart: 570, TimeEnd: 600},
			{TimeStart: 660, TimeEnd: 1020},
		},
		record.MeetingSlots(true),
	)
}

func TestWriteSlots(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t,
		WriteSlots(
			&buf,
			[]TimeSlot{
				{TimeStart: 0, TimeEnd: 540},
				{TimeStart: 660, TimeEnd: 1020},
			},
		),
	)
	require.Equal(t,
		"Available meeting slots:\n[0:00 - 9:00]\n[11:00 - 17:00]\n\n",
		buf.String(),
	)

	require.Equal(t,
		"Available meeting slots:\nThere are no available meeting times.\n\n",
		FormatSlots(nil),
	)
}
