package naverbook

import "strings"

// ValidateISBN normalizes an ISBN-10 or ISBN-13 and verifies its checksum.
// Returns the normalized ISBN, or "" if the input is absent or invalid.
func ValidateISBN(isbn string) string {
	s := strings.ToUpper(strings.Map(func(r rune) rune {
		switch r {
		case '-', ' ':
			return -1
		}
		return r
	}, strings.TrimSpace(isbn)))

	switch len(s) {
	case 10:
		if validISBN10(s) {
			return s
		}
	case 13:
		if validISBN13(s) {
			return s
		}
	}
	return ""
}

func validISBN10(s string) bool {
	sum := 0
	for i, r := range s {
		var v int
		switch {
		case r >= '0' && r <= '9':
			v = int(r - '0')
		case r == 'X' && i == 9:
			v = 10
		default:
			return false
		}
		sum += (10 - i) * v
	}
	return sum%11 == 0
}

func validISBN13(s string) bool {
	sum := 0
	for i, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		v := int(r - '0')
		if i%2 == 1 {
			v *= 3
		}
		sum += v
	}
	return sum%10 == 0
}
