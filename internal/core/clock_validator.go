package core

import (
	"errors"
	"fmt"
)

// ErrClockRegression is returned for a command older than the last applied one.
var ErrClockRegression = errors.New("timestamp older than last applied command")

// ClockValidator enforces non-decreasing command timestamps. Equal timestamps
// are allowed so that several commands can share one instant.
// Not thread-safe; only the Processor touches it.
type ClockValidator struct {
	last        uint64
	regressions int64
}

func NewClockValidator() *ClockValidator {
	return &ClockValidator{}
}

// Validate checks ts against the last applied timestamp without advancing.
func (cv *ClockValidator) Validate(ts uint64) error {
	if ts < cv.last {
		cv.regressions++
		return fmt.Errorf("%w: last=%d, got=%d", ErrClockRegression, cv.last, ts)
	}
	return nil
}

// Advance records ts as applied.
func (cv *ClockValidator) Advance(ts uint64) {
	if ts > cv.last {
		cv.last = ts
	}
}

func (cv *ClockValidator) Last() uint64 {
	return cv.last
}

func (cv *ClockValidator) Regressions() int64 {
	return cv.regressions
}
