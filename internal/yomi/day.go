package yomi

// fusedDays holds the first ten days of the month, whose readings already
// contain the counter.
var fusedDays = [...]string{
	1:  "tsuitachi",
	2:  "futsuka",
	3:  "mikka",
	4:  "yokka",
	5:  "itsuka",
	6:  "muika",
	7:  "nanoka",
	8:  "youka",
	9:  "kokonoka",
	10: "touka",
}

// Day renders a day of the month in 1..31.
//
// Days 1-10, 14, 20 and 24 are irregular and carry no "nichi" suffix; every
// other day is tens + ones + "nichi".
func Day(day int) (string, error) {
	if err := checkRange("day", day, 1, 31); err != nil {
		return "", err
	}

	if day <= 10 {
		return fusedDays[day], nil
	}

	switch day {
	case 14:
		return "juu yokka", nil
	case 20:
		return "hatsuka", nil
	case 24:
		return "ni-juu yokka", nil
	}

	tokens := make([]string, 0, 3)
	switch day / 10 {
	case 1:
		tokens = append(tokens, "juu")
	case 2:
		tokens = append(tokens, "ni-juu")
	case 3:
		tokens = append(tokens, "san-juu")
	}
	if ones := day % 10; ones != 0 {
		tokens = append(tokens, dayOnes(ones))
	}

	tokens = append(tokens, "nichi")
	return join(tokens), nil
}

func dayOnes(d int) string {
	switch d {
	case 7:
		return "shichi"
	case 9:
		return "ku"
	default:
		return genericDigit(d)
	}
}
