package meetingslots

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Stats counts the records seen during one run.
type Stats struct {
	RecordsRead    int
	RecordsEmitted int
	RecordsFailed  int
}

type Processor struct {
	logger *zap.Logger

	NormalizeBusy bool
}

type ParamsNewProcessor struct {
	Logger *zap.Logger

	NormalizeBusy bool
}

func NewProcessor(params *ParamsNewProcessor) *Processor {
	if params == nil {
		params = &ParamsNewProcessor{}
	}

	return &Processor{
		logger:        ternary(params.Logger == nil, zap.NewNop(), params.Logger),
		NormalizeBusy: params.NormalizeBusy,
	}
}

type lineReader struct {
	reader *bufio.Reader
	err    error
}

// next returns the following line without its "\n" or "\r\n" terminator.
// Lines have no length limit.
func (r *lineReader) next() (string, bool) {
	if r.err != nil {
		return "", false
	}

	line, errRead := r.reader.ReadString('\n')
	if errRead != nil {
		r.err = errRead

		if len(line) == 0 {
			return "", false
		}
	}

	line = strings.TrimSuffix(line, "\n")

	return strings.TrimSuffix(line, "\r"),
		true
}

// Run reads groups of five lines until the input is exhausted, writing one
// block per group. A group cut short by the end of input produces no output.
// Record level failures are written as "Error: ..." blocks and processing
// continues; only read or write failures on the streams are returned.
// One line following each group is consumed as separator.
func (p *Processor) Run(ctx context.Context, input io.Reader, output io.Writer) (*Stats, error) {
	reader := lineReader{
		reader: bufio.NewReader(input),
	}

	logger := p.logger.With(
		zap.String("run_id", uuid.NewString()),
	)

	var stats Stats

	for {
		if errCtx := ctx.Err(); errCtx != nil {
			return &stats,
				errCtx
		}

		var lines [LinesPerRecord]string

		complete := true

		for ix := range lines {
			line, ok := reader.next()
			if !ok {
				complete = false

				break
			}

			lines[ix] = line
		}

		if !complete {
			break
		}

		stats.RecordsRead++

		block, errRecord := p.processRecord(
			logger.With(zap.Int("record", stats.RecordsRead)),
			lines,
		)
		if errRecord != nil {
			stats.RecordsFailed++

			logger.Warn(
				"record skipped",
				zap.Int("record", stats.RecordsRead),
				zap.String("kind", ErrorKind(errRecord)),
				zap.Error(errRecord),
			)
		} else {
			stats.RecordsEmitted++
		}

		if _, errWrite := io.WriteString(output, block); errWrite != nil {
			return &stats,
				fmt.Errorf("writing record %d: %w", stats.RecordsRead, errWrite)
		}

		// blank line between records
		reader.next()
	}

	if reader.err != nil && !errors.Is(reader.err, io.EOF) {
		return &stats,
			fmt.Errorf("reading input: %w", reader.err)
	}

	logger.Info(
		"input processed",
		zap.Int("records", stats.RecordsRead),
		zap.Int("emitted", stats.RecordsEmitted),
		zap.Int("failed", stats.RecordsFailed),
	)

	return &stats,
		nil
}

func (p *Processor) processRecord(logger *zap.Logger, lines [LinesPerRecord]string) (string, error) {
	record, errParse := ParseRecord(lines)
	if errParse != nil {
		return FormatError(errParse),
			errParse
	}

	slots := record.MeetingSlots(p.NormalizeBusy)

	logger.Debug(
		"record processed",
		zap.Int("duration", record.Duration),
		zap.Int("slots", len(slots)),
	)

	return FormatSlots(slots),
		nil
}
