package meetingslots

import (
	"io"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

const (
	LinesPerRecord = 5

	_HeaderSlots    = "Available meeting slots:"
	_NoAvailability = "There are no available meeting times."
)

// Record holds the data of one input group, two persons and a duration.
type Record struct {
	BusyA []TimeSlot
	BusyB []TimeSlot

	WorkA TimeSlot
	WorkB TimeSlot

	Duration int
}

type ParamsNewRecord struct {
	BusyA []TimeSlot
	BusyB []TimeSlot

	WorkA TimeSlot
	WorkB TimeSlot

	Duration int `valid:"required"`
}

func NewRecord(params *ParamsNewRecord) (*Record, error) {
	if params == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewRecord",
				Issue: goerrors.ErrNilInput{
					InputName: "params",
				},
			}
	}

	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Record",
				Caller:      "NewRecord",
				Issue:       errValidation,
			}
	}

	if params.Duration < 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewRecord",
				Issue: goerrors.ErrNegativeInput{
					InputName: "Duration",
				},
			}
	}

	return &Record{
			BusyA:    params.BusyA,
			BusyB:    params.BusyB,
			WorkA:    params.WorkA,
			WorkB:    params.WorkB,
			Duration: params.Duration,
		},
		nil
}

// ParseRecord decodes the five lines of a record, in order:
// busy A, work hours A, busy B, work hours B, duration.
func ParseRecord(lines [LinesPerRecord]string) (*Record, error) {
	busyA, errBusyA := ParseBusySlots(lines[0])
	if errBusyA != nil {
		return nil,
			errBusyA
	}

	workA, errWorkA := ParseWorkHours(lines[1])
	if errWorkA != nil {
		return nil,
			errWorkA
	}

	busyB, errBusyB := ParseBusySlots(lines[2])
	if errBusyB != nil {
		return nil,
			errBusyB
	}

	workB, errWorkB := ParseWorkHours(lines[3])
	if errWorkB != nil {
		return nil,
			errWorkB
	}

	duration, errDuration := ParseDuration(lines[4])
	if errDuration != nil {
		return nil,
			errDuration
	}

	return NewRecord(
		&ParamsNewRecord{
			BusyA:    busyA,
			BusyB:    busyB,
			WorkA:    workA,
			WorkB:    workB,
			Duration: duration,
		},
	)
}

// MeetingSlots returns the common free gaps lasting at least the record duration.
// With normalizeBusy the busy slots are sorted and merged first.
func (r *Record) MeetingSlots(normalizeBusy bool) []TimeSlot {
	busyA := ternary(normalizeBusy, NormalizeBusySlots(r.BusyA), r.BusyA)
	busyB := ternary(normalizeBusy, NormalizeBusySlots(r.BusyB), r.BusyB)

	return FilterByDuration(
		IntersectGapSequences(
			ComputeFreeGaps(busyA, r.WorkA),
			ComputeFreeGaps(busyB, r.WorkB),
		),
		r.Duration,
	)
}

// FormatSlots renders the output block of one record, blank line included.
func FormatSlots(slots []TimeSlot) string {
	var sb strings.Builder

	sb.WriteString(_HeaderSlots + "\n")

	if len(slots) == 0 {
		sb.WriteString(_NoAvailability + "\n")
	}

	for _, slot := range slots {
		sb.WriteString(slot.String() + "\n")
	}

	sb.WriteString("\n")

	return sb.String()
}

// FormatError renders the diagnostic block of a failed record.
func FormatError(err error) string {
	return "Error: " + err.Error() + "\n\n"
}

func WriteSlots(w io.Writer, slots []TimeSlot) error {
	_, errWrite := io.WriteString(w, FormatSlots(slots))

	return errWrite
}
