package clock

import (
	"fmt"
	"time"

	"github.com/username/yomi-daytime/internal/yomi"
)

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in a fixed location
type System struct {
	Location *time.Location
}

// NewSystem creates a wall clock reporting time in loc (time.Local if nil)
func NewSystem(loc *time.Location) *System {
	if loc == nil {
		loc = time.Local
	}
	return &System{Location: loc}
}

// Now returns the current time in the clock's location
func (s *System) Now() time.Time {
	return time.Now().In(s.Location)
}

// Fixed always reports the same instant
type Fixed time.Time

// Now returns the fixed instant
func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Snapshot captures the current moment of c
func Snapshot(c Clock) yomi.Moment {
	return yomi.MomentOf(c.Now())
}

// LoadLocation resolves a timezone name; "" and "Local" mean the host zone
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}
