package meetingslots

import (
	"errors"
	"strconv"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
)

const (
	_groupOpen      = "['"
	_groupClose     = "']"
	_separatorBusy  = "':'"
	_separatorWork  = "','"
	_lenGroupMarker = 2
	_lenSeparator   = 3
)

// ParseBusySlots scans successive ['HH:MM':'HH:MM'] groups.
// An unterminated group, one whose closing marker overlaps the opening one,
// or one without the ':' separator, ends the scan
// and the slots collected so far are returned without error.
func ParseBusySlots(line string) ([]TimeSlot, error) {
	var result []TimeSlot

	pos := 0

	for {
		open := strings.Index(line[pos:], _groupOpen)
		if open < 0 {
			break
		}

		open = open + pos

		closing := strings.Index(line[open+_lenGroupMarker:], _groupClose)
		if closing < 0 {
			break
		}

		closing = closing + open + _lenGroupMarker

		inner := line[open+_lenGroupMarker : closing]

		sep := strings.Index(inner, _separatorBusy)
		if sep < 0 {
			break
		}

		slot, errSlot := parsePair(inner, sep)
		if errSlot != nil {
			return nil,
				errSlot
		}

		result = append(result, slot)

		pos = closing + _lenGroupMarker
	}

	return result,
		nil
}

// ParseWorkHours extracts the single ['HH:MM','HH:MM'] group.
func ParseWorkHours(line string) (TimeSlot, error) {
	open := strings.Index(line, _groupOpen)
	if open < 0 {
		return TimeSlot{},
			malformed(line, "missing opening bracket")
	}

	closing := strings.Index(line[open+_lenGroupMarker:], _groupClose)
	if closing < 0 {
		return TimeSlot{},
			malformed(line, "missing closing bracket")
	}

	inner := line[open+_lenGroupMarker : open+_lenGroupMarker+closing]

	sep := strings.Index(inner, _separatorWork)
	if sep < 0 {
		return TimeSlot{},
			malformed(line, "missing separator between work hours")
	}

	return parsePair(inner, sep)
}

// ParseDuration decodes the bare positive integer of a duration line.
func ParseDuration(line string) (int, error) {
	trimmed := strings.TrimSpace(line)

	duration, errConv := strconv.Atoi(trimmed)
	if errConv != nil {
		return 0,
			ErrDurationFormat{
				Line: line,
				Issue: goerrors.ErrInvalidInput{
					Caller:     "ParseDuration",
					InputName:  "duration",
					InputValue: line,
					Issue:      errConv,
				},
			}
	}

	if duration <= 0 {
		return 0,
			ErrDurationFormat{
				Line: line,
				Issue: goerrors.ErrNegativeInput{
					InputName: "duration",
				},
			}
	}

	return duration,
		nil
}

func parsePair(inner string, sep int) (TimeSlot, error) {
	start, errStart := ParseTime(inner[:sep])
	if errStart != nil {
		return TimeSlot{},
			errStart
	}

	end, errEnd := ParseTime(inner[sep+_lenSeparator:])
	if errEnd != nil {
		return TimeSlot{},
			errEnd
	}

	return TimeSlot{
			TimeStart: start,
			TimeEnd:   end,
		},
		nil
}

func malformed(line, reason string) error {
	return ErrMalformedRecord{
		Line:   line,
		Reason: reason,
		Issue: goerrors.ErrInvalidInput{
			Caller:     "ParseWorkHours",
			InputName:  "line",
			InputValue: line,
			Issue:      errors.New(reason),
		},
	}
}
