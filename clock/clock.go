package clock

import "time"

// Clock allows injecting time into stores and handlers.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always returns the same instant.
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

// Today formats the clock's current date the way shows store it.
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)
