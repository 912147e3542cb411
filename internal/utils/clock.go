package utils

import (
	"time"
)

const DateLayout = "2006-01-02"

type (
	// Clock supplies "now" so services never read wall-clock time directly.
	Clock interface {
		Now() time.Time
	}

	systemClock struct{}
)

func NewClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// LocalDate truncates t to its local calendar date.
func LocalDate(t time.Time) string {
	return t.Format(DateLayout)
}
