// Package clock tracks and formats elapsed play time.
package clock

import (
	"fmt"
	"time"
)

// FormatTime renders a second count as minutes:seconds. Minutes are not
// padded or capped; seconds are always two digits.
func FormatTime(totalSeconds int) string {
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// Stopwatch accumulates running time between Start and Stop calls.
// The zero value is stopped and uses time.Now.
type Stopwatch struct {
	now     func() time.Time
	started time.Time
	running bool
	total   time.Duration
}

// NewStopwatch returns a stopped stopwatch reading time from now.
// A nil now uses time.Now.
func NewStopwatch(now func() time.Time) *Stopwatch {
	return &Stopwatch{now: now}
}

func (s *Stopwatch) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// Start resumes timing. Starting a running stopwatch does nothing.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.started = s.clock()
	s.running = true
}

// Stop pauses timing and keeps the elapsed total.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.total += s.clock().Sub(s.started)
	s.running = false
}

// Reset stops the stopwatch and clears the elapsed total.
func (s *Stopwatch) Reset() {
	s.running = false
	s.total = 0
}

func (s *Stopwatch) Running() bool {
	return s.running
}

// Elapsed returns the total running time so far.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.total + s.clock().Sub(s.started)
	}
	return s.total
}

// Seconds returns the elapsed time in whole seconds.
func (s *Stopwatch) Seconds() int {
	return int(s.Elapsed() / time.Second)
}

// String formats the elapsed time with FormatTime.
func (s *Stopwatch) String() string {
	return FormatTime(s.Seconds())
}
