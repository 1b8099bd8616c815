package meetingslots

import (
	"errors"
	"fmt"
)

// ErrTimeFormat is returned when a clock text is not in HH:MM form.
type ErrTimeFormat struct {
	Text  string
	Issue error
}

func (e ErrTimeFormat) Error() string {
	return "error parsing time: " + e.Text
}

func (e ErrTimeFormat) Unwrap() error {
	return e.Issue
}

// ErrDurationFormat is returned when the duration line is not a positive integer.
type ErrDurationFormat struct {
	Line  string
	Issue error
}

func (e ErrDurationFormat) Error() string {
	return "error parsing duration: " + e.Line
}

func (e ErrDurationFormat) Unwrap() error {
	return e.Issue
}

// ErrMalformedRecord is returned when expected brackets or separators are missing.
type ErrMalformedRecord struct {
	Line   string
	Reason string
	Issue  error
}

func (e ErrMalformedRecord) Error() string {
	return fmt.Sprintf(
		"malformed record: %s: %s",

		e.Reason,
		e.Line,
	)
}

func (e ErrMalformedRecord) Unwrap() error {
	return e.Issue
}

// ErrorKind names the kind of a record error, "unknown" for other errors.
func ErrorKind(err error) string {
	var (
		errTime      ErrTimeFormat
		errDuration  ErrDurationFormat
		errMalformed ErrMalformedRecord
	)

	switch {
	case errors.As(err, &errTime):
		return "time_format"

	case errors.As(err, &errDuration):
		return "duration_format"

	case errors.As(err, &errMalformed):
		return "malformed_record"
	}

	return "unknown"
}
