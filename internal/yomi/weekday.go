package yomi

import "time"

// Weekday renders a day of the week, e.g. time.Friday -> "kin youbi".
func Weekday(w time.Weekday) (string, error) {
	switch w {
	case time.Monday:
		return "getsu youbi", nil
	case time.Tuesday:
		return "ka youbi", nil
	case time.Wednesday:
		return "sui youbi", nil
	case time.Thursday:
		return "moku youbi", nil
	case time.Friday:
		return "kin youbi", nil
	case time.Saturday:
		return "do youbi", nil
	case time.Sunday:
		return "nichi youbi", nil
	}
	return "", &RangeError{Field: "weekday", Value: int(w), Min: int(time.Sunday), Max: int(time.Saturday)}
}
