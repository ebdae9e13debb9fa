package telemetry

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"time"

	"weatherdata.app/pkg/errors"
)

const (
	fieldSeparator = ";"
	maxLineBytes   = 1024 * 1024
	utf8BOM        = "\ufeff"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseTimestamp parses an ISO-8601 timestamp. Values without a zone are taken as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// DecodeLine decodes one "timestamp;value" line. ok is false for lines with fewer than two fields.
func DecodeLine(line string) (TimedValue, bool, error) {
	line = strings.TrimSuffix(line, "\r")
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < 2 {
		return TimedValue{}, false, nil
	}

	date, err := ParseTimestamp(fields[0])
	if err != nil {
		return TimedValue{}, false, errors.NewParseError("invalid timestamp", err)
	}

	value, err := NormalizeDecimal(fields[1])
	if err != nil {
		return TimedValue{}, false, err
	}

	return TimedValue{Date: date, Value: value}, true, nil
}

// Decoder streams TimedValues out of a daily CSV.
type Decoder struct {
	scanner *bufio.Scanner
	line    int
}

func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Decoder{scanner: scanner}
}

// Each calls fn for every decoded value in file order. It stops at the first error,
// including ctx cancellation between lines.
func (d *Decoder) Each(ctx context.Context, fn func(TimedValue) error) error {
	for d.scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.line++
		text := d.scanner.Text()
		if d.line == 1 {
			text = strings.TrimPrefix(text, utf8BOM)
		}

		value, ok, err := DecodeLine(text)
		if err != nil {
			return errors.NewParseError(fmt.Sprintf("line %d", d.line), err)
		}
		if !ok {
			continue
		}
		if err := fn(value); err != nil {
			return err
		}
	}

	if err := d.scanner.Err(); err != nil {
		if stderrors.Is(err, bufio.ErrTooLong) {
			return errors.NewParseError(fmt.Sprintf("line %d exceeds %d bytes", d.line+1, maxLineBytes), err)
		}
		return errors.NewStorageError("read telemetry stream", err)
	}
	return nil
}

// All decodes the remaining stream into a slice.
func (d *Decoder) All(ctx context.Context) ([]TimedValue, error) {
	values := make([]TimedValue, 0)
	err := d.Each(ctx, func(v TimedValue) error {
		values = append(values, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// Encoder writes TimedValues in the sensor CSV format.
type Encoder struct {
	w *bufio.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

func (e *Encoder) Encode(v TimedValue) error {
	_, err := fmt.Fprintf(e.w, "%s;%s\n", v.Date.UTC().Format("2006-01-02T15:04:05.999999999"), FormatDecimal(v.Value))
	return err
}

// Flush must be called once all values are encoded.
func (e *Encoder) Flush() error {
	return e.w.Flush()
}
