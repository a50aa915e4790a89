// Package telemetry records finished runs for balance work. The
// simulator writes one CSV row per run and prints batch statistics
// at the end; tuning sessions diff those summaries across config
// changes.
package telemetry

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// RunRecord is one finished run.
type RunRecord struct {
	Run       int     `csv:"run"`
	Seed      int64   `csv:"seed"`
	Frames    int     `csv:"frames"`
	DistanceM float64 `csv:"distance_m"`
	Score     int     `csv:"score"`
	Pads      int     `csv:"pads"`
	Tadpoles  int     `csv:"tadpoles"`
	Hazards   int     `csv:"hazards"`
	Jumps     int     `csv:"jumps"`
	Throws    int     `csv:"throws"`
}

// Recorder appends run rows to a CSV file. A nil Recorder is a no-op,
// so callers never branch on whether output was requested.
type Recorder struct {
	file          *os.File
	headerWritten bool
}

// NewRecorder opens the output file. An empty path disables recording
// and returns a nil Recorder.
func NewRecorder(path string) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &Recorder{file: f}, nil
}

// Write appends one run row. The first write includes the header.
func (r *Recorder) Write(rec RunRecord) error {
	if r == nil {
		return nil
	}

	records := []RunRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.file); err != nil {
			return fmt.Errorf("writing run record: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.file); err != nil {
		return fmt.Errorf("writing run record: %w", err)
	}
	return nil
}

// Close flushes and closes the output file.
func (r *Recorder) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}
