package yomi

// Minute renders a minute in 0..59 including its counter.
//
// The counter changes sound after some digits (ippun, roppun, happun,
// juppun), so the ones digit and the counter come from one table instead of
// digit + suffix.
func Minute(minute int) (string, error) {
	if err := checkRange("minute", minute, 0, 59); err != nil {
		return "", err
	}

	tens, ones := minute/10, minute%10

	switch {
	case minute == 0:
		return "rei hun", nil
	case ones == 0 && tens == 1:
		return "juppun", nil
	case ones == 0:
		return genericDigit(tens) + " juppun", nil
	}

	if tens == 0 {
		return minuteOnes(ones), nil
	}
	return join([]string{tensReading(tens), minuteOnes(ones)}), nil
}

// minuteOnes returns digit and counter fused
func minuteOnes(d int) string {
	switch d {
	case 1:
		return "ippun"
	case 2:
		return "ni hun"
	case 3:
		return "san hun"
	case 4:
		return "yon hun"
	case 5:
		return "go hun"
	case 6:
		return "roppun"
	case 7:
		return "nana hun"
	case 8:
		return "happun"
	default:
		return "kyu hun"
	}
}
