package auth

import (
	"strings"
	"unicode"
)

// MinPasswordStrength is the lowest score accepted at registration.
const MinPasswordStrength = 3

const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// Strength is a password score bucket for the meter next to the field.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthMedium
	StrengthGood
	StrengthVeryGood
)

// PasswordStrength scores a password 0-5: one point each for length ≥ 8,
// length ≥ 12, mixed case, a digit and a symbol.
func PasswordStrength(pw string) int {
	score := 0
	n := len([]rune(pw))
	if n >= 8 {
		score++
	}
	if n >= 12 {
		score++
	}

	var lower, upper, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if lower && upper {
		score++
	}
	if digit {
		score++
	}
	if strings.ContainsAny(pw, passwordSymbols) {
		score++
	}
	return score
}

// StrengthOf buckets the score of pw. An empty password has no strength.
func StrengthOf(pw string) Strength {
	if pw == "" {
		return StrengthNone
	}
	switch score := PasswordStrength(pw); {
	case score <= 2:
		return StrengthWeak
	case score == 3:
		return StrengthMedium
	case score == 4:
		return StrengthGood
	default:
		return StrengthVeryGood
	}
}
