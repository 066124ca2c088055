package yomi

import "strings"

// DigitReading returns the generic reading of a nonzero decimal digit.
// Field renderers fall back to it wherever their own table has no entry.
func DigitReading(d int) (string, error) {
	if err := checkRange("digit", d, 1, 9); err != nil {
		return "", err
	}
	return genericDigit(d), nil
}

// genericDigit assumes d is already known to be within 1..9
func genericDigit(d int) string {
	switch d {
	case 1:
		return "ichi"
	case 2:
		return "ni"
	case 3:
		return "san"
	case 4:
		return "yon"
	case 5:
		return "go"
	case 6:
		return "roku"
	case 7:
		return "nana"
	case 8:
		return "hachi"
	default:
		return "kyu"
	}
}

// tensReading renders a tens digit 1..9 the way year, minute and second share it
func tensReading(tens int) string {
	if tens == 1 {
		return "juu"
	}
	return genericDigit(tens) + "-juu"
}

// join concatenates tokens with single spaces
func join(tokens []string) string {
	return strings.Join(tokens, " ")
}
