package yomi

// Month renders a month number in 1..12 followed by "gatsu".
func Month(month int) (string, error) {
	if err := checkRange("month", month, 1, 12); err != nil {
		return "", err
	}

	var reading string
	switch month {
	case 4:
		reading = "shi"
	case 7:
		reading = "shichi"
	case 9:
		reading = "ku"
	case 10:
		reading = "juu"
	case 11:
		reading = "juu-ichi"
	case 12:
		reading = "juu-ni"
	default:
		reading = genericDigit(month)
	}

	return reading + " gatsu", nil
}
