package token

// Number reports the byte length of the longest JSON number at the start
// of s, or zero when s does not begin with one. The grammar is RFC 8259:
// an optional minus sign, an integer part without leading zeros, then
// optional fraction and exponent parts.
func Number(s string) int {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	n := intPart(s[i:])
	if n == 0 {
		return 0
	}
	i += n
	i += fract(s[i:])
	i += exp(s[i:])
	return i
}

func intPart(s string) int {
	if len(s) == 0 {
		return 0
	}
	if s[0] == '0' {
		return 1
	}
	return asciiDigits(s)
}

func asciiDigits(s string) int {
	i := 0
	for i < len(s) && asciiDigit(s[i]) {
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(s string) int {
	// . must be followed by 1 or more digits rfc 8259
	if len(s) < 2 || s[0] != '.' || !asciiDigit(s[1]) {
		return 0
	}
	return 1 + asciiDigits(s[1:])
}

func exp(s string) int {
	if len(s) < 2 {
		return 0
	}
	switch s[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch s[i] {
	case '+', '-':
		i++
	}
	n := asciiDigits(s[i:])
	if n == 0 {
		return 0
	}
	return i + n
}
