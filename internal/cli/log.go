// Package cli implements the partlookup command-line interface.
//
// The CLI is built using cobra and logs through charmbracelet/log. Results
// go to stdout; logs and spinners go to stderr.
//
// # Commands
//
// The main commands are:
//   - search: Look up a part number and print its record
//   - test: Run the live self-test against the vendor API
//   - keys: List the record keys in display order
//   - config: Show the settings path or check credential resolution
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which shows
// option loading, credential fallbacks and dispatch failures.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level along with the elapsed time since progress
// was created, rounded to the millisecond.
// Example output: "Fetched 1N4148-0603 (412ms)"
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
