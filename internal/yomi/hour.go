package yomi

// Hour renders an hour of the 24-hour clock, 0..23, followed by "ji".
func Hour(hour int) (string, error) {
	if err := checkRange("hour", hour, 0, 23); err != nil {
		return "", err
	}

	if hour == 0 {
		return "rei ji", nil
	}

	tokens := make([]string, 0, 3)
	switch hour / 10 {
	case 1:
		tokens = append(tokens, "juu")
	case 2:
		tokens = append(tokens, "ni-juu")
	}
	if ones := hour % 10; ones != 0 {
		tokens = append(tokens, hourOnes(ones))
	}

	tokens = append(tokens, "ji")
	return join(tokens), nil
}

func hourOnes(d int) string {
	switch d {
	case 4:
		return "yo"
	case 7:
		return "shichi"
	case 9:
		return "ku"
	default:
		return genericDigit(d)
	}
}
