package yomi

// Year renders a year in 1..9999, e.g. 1858 -> "sen happyaku go-juu hachi nen".
func Year(year int) (string, error) {
	if err := checkRange("year", year, 1, 9999); err != nil {
		return "", err
	}

	tokens := make([]string, 0, 5)

	switch thousands := year / 1000; thousands {
	case 0:
	case 1:
		tokens = append(tokens, "sen")
	case 3:
		tokens = append(tokens, "san-zen")
	case 8:
		tokens = append(tokens, "hassen")
	default:
		tokens = append(tokens, genericDigit(thousands)+"-sen")
	}

	switch hundreds := year % 1000 / 100; hundreds {
	case 0:
	case 1:
		tokens = append(tokens, "hyaku")
	case 3:
		tokens = append(tokens, "san-byaku")
	case 6:
		tokens = append(tokens, "roppyaku")
	case 8:
		tokens = append(tokens, "happyaku")
	default:
		tokens = append(tokens, genericDigit(hundreds)+"-hyaku")
	}

	// Least two digits are read as one unit; 04 and 09 take the short forms.
	if tens := year % 100 / 10; tens != 0 {
		tokens = append(tokens, tensReading(tens))
	}
	if ones := year % 10; ones != 0 {
		tokens = append(tokens, yearOnes(ones))
	}

	tokens = append(tokens, "nen")
	return join(tokens), nil
}

func yearOnes(d int) string {
	switch d {
	case 4:
		return "yo"
	case 9:
		return "ku"
	default:
		return genericDigit(d)
	}
}
