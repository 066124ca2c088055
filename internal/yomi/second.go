package yomi

// Second renders a second in 0..59 followed by "byou". Seconds have no
// irregular digit forms.
func Second(second int) (string, error) {
	if err := checkRange("second", second, 0, 59); err != nil {
		return "", err
	}

	if second == 0 {
		return "rei byou", nil
	}

	tokens := make([]string, 0, 3)
	if tens := second / 10; tens != 0 {
		tokens = append(tokens, tensReading(tens))
	}
	if ones := second % 10; ones != 0 {
		tokens = append(tokens, genericDigit(ones))
	}

	tokens = append(tokens, "byou")
	return join(tokens), nil
}
