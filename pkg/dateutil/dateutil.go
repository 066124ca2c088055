package dateutil

import (
	"fmt"
	"time"
)

// layouts accepted by ParseDate, tried in order
var layouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006",
}

// ParseDate parses a local date or date-time string in loc.
// RFC 3339 input keeps its own offset and is then converted to loc.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t.In(loc), nil
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, dateStr, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}
