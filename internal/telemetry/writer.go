package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// Writer appends TickStats rows to a CSV stream. The header is written with
// the first row.
type Writer struct {
	out           io.Writer
	headerWritten bool
	rows          int
}

// NewWriter returns a Writer over out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write appends one row.
func (w *Writer) Write(stats TickStats) error {
	records := []TickStats{stats}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.out); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		w.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, w.out); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
	}
	w.rows++
	return nil
}

// Rows returns the number of rows written.
func (w *Writer) Rows() int { return w.rows }
