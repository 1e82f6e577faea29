package services

import "time"

// Clock supplies the current calendar date. It is injected so tests
// can pin "today" instead of reading the system clock inside logic.
type Clock interface {
	Today() time.Time
}

// SystemClock reads the local system time.
type SystemClock struct{}

func (SystemClock) Today() time.Time { return DateOf(time.Now()) }

// DateOf truncates a timestamp to its local calendar date (midnight).
// Every date stored or queried goes through this so equality lookups
// on the date column work.
func DateOf(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}
