package clock

import (
	"time"
)

// Clock supplies the commit time stamped on changelog entries.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the time package
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
