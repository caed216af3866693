package clock

import "time"

// Clock abstracts time so sessions stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
