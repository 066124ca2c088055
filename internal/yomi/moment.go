// Package yomi renders calendar moments as romanised Japanese readings.
package yomi

import (
	"fmt"
	"time"
)

// Moment is one calendar instant decomposed into the fields that get read aloud
type Moment struct {
	Year    int
	Month   int
	Day     int
	Weekday time.Weekday
	Hour    int
	Minute  int
	Second  int
}

// MomentOf decomposes t in its own location
func MomentOf(t time.Time) Moment {
	return Moment{
		Year:    t.Year(),
		Month:   int(t.Month()),
		Day:     t.Day(),
		Weekday: t.Weekday(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
	}
}

// Validate reports the first field that Format would reject
func (m Moment) Validate() error {
	_, err := Format(m)
	return err
}

// Format renders every field of m in the order year, month, day, weekday,
// hour, minute, second, separated by single spaces. No line terminator is
// added.
func Format(m Moment) (string, error) {
	fields := []struct {
		name   string
		render func() (string, error)
	}{
		{"year", func() (string, error) { return Year(m.Year) }},
		{"month", func() (string, error) { return Month(m.Month) }},
		{"day", func() (string, error) { return Day(m.Day) }},
		{"weekday", func() (string, error) { return Weekday(m.Weekday) }},
		{"hour", func() (string, error) { return Hour(m.Hour) }},
		{"minute", func() (string, error) { return Minute(m.Minute) }},
		{"second", func() (string, error) { return Second(m.Second) }},
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		s, err := f.render()
		if err != nil {
			return "", fmt.Errorf("render %s: %w", f.name, err)
		}
		parts = append(parts, s)
	}

	return join(parts), nil
}
