package meetingslots

import (
	"errors"
	"fmt"
	"strconv"

	goerrors "github.com/TudorHulban/go-errors"
)

// TimeSlot is a half-open range of minutes of day.
type TimeSlot struct {
	TimeStart int
	TimeEnd   int
}

func (slot TimeSlot) Length() int {
	return slot.TimeEnd - slot.TimeStart
}

func (slot TimeSlot) IsEmpty() bool {
	return slot.TimeStart >= slot.TimeEnd
}

// String renders the slot as "[H:MM - H:MM]".
func (slot TimeSlot) String() string {
	return "[" + FormatTime(slot.TimeStart) + " - " + FormatTime(slot.TimeEnd) + "]"
}

// ParseTime decodes "HH:MM" into minutes of day.
// Hour is read from positions 0-1 and minute from positions 3-4.
// The delimiter at position 2 and the value ranges are not checked.
func ParseTime(text string) (int, error) {
	if len(text) < 5 {
		return 0,
			ErrTimeFormat{
				Text: text,
				Issue: goerrors.ErrInvalidInput{
					Caller:     "ParseTime",
					InputName:  "text",
					InputValue: text,
					Issue:      errors.New("text shorter than HH:MM"),
				},
			}
	}

	hour, errHour := parseTwoDigits(text[0:2])
	if errHour != nil {
		return 0,
			ErrTimeFormat{
				Text: text,
				Issue: goerrors.ErrInvalidInput{
					Caller:     "ParseTime",
					InputName:  "hour",
					InputValue: text[0:2],
					Issue:      errHour,
				},
			}
	}

	minute, errMinute := parseTwoDigits(text[3:5])
	if errMinute != nil {
		return 0,
			ErrTimeFormat{
				Text: text,
				Issue: goerrors.ErrInvalidInput{
					Caller:     "ParseTime",
					InputName:  "minute",
					InputValue: text[3:5],
					Issue:      errMinute,
				},
			}
	}

	return hour*60 + minute,
		nil
}

func parseTwoDigits(text string) (int, error) {
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0,
				fmt.Errorf("non digit %q", r)
		}
	}

	return strconv.Atoi(text)
}

// FormatTime renders minutes of day as unpadded hour and two digit minute.
// Values outside 0-1439 are not validated and render degenerate text,
// ex. -30 renders "0:0-30" and 1500 renders "25:00".
func FormatTime(minutes int) string {
	minute := minutes % 60

	return strconv.Itoa(minutes/60) +
		":" +
		ternary(minute < 10, "0", "") +
		strconv.Itoa(minute)
}
