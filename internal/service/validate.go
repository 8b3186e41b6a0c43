package service

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const passwordSymbols = "@$!%*?&"

// validEmail checks the conventional local@domain.tld shape. Full RFC 5322
// parsing is deliberately out of scope.
func validEmail(email string) bool {
	return emailRe.MatchString(email)
}

// validPassword enforces the strength policy: at least 8 characters, at
// least one letter, one digit and one symbol from the allowed set, and no
// characters outside those classes.
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var letter, digit, symbol bool
	for _, r := range password {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return letter && digit && symbol
}
