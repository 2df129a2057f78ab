package query

import "time"

// Timer is a pending callback that can be stopped before it fires
type Timer interface {
	Stop() bool
}

// Clock schedules deferred callbacks. It exists so tests can drive time by hand.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// realClock schedules callbacks with the runtime timer
type realClock struct{}

// AfterFunc implements Clock
func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock returns a Clock backed by time.AfterFunc
func RealClock() Clock {
	return realClock{}
}
