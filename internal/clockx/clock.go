// Package clockx abstracts wall-clock time and one-shot timers so session
// expiry, search debounce and post-submit redirects can be driven by tests.
package clockx

import "time"

// Timer is the part of *time.Timer the callers need.
type Timer interface {
	Stop() bool
}

// Clock supplies the current time and schedules callbacks.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Real is the Clock backed by package time.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
