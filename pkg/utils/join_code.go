package utils

import (
	"errors"
	"math/rand"
	"strings"
)

const joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const JoinCodeLength = 6

// GenerateJoinCode returns a 6-character code over [A-Z0-9]. Uniqueness is
// enforced by the database; callers retry on a unique-constraint violation.
func GenerateJoinCode() string {
	code := make([]byte, JoinCodeLength)
	for i := range code {
		code[i] = joinCodeAlphabet[rand.Intn(len(joinCodeAlphabet))]
	}
	return string(code)
}

// NormalizeJoinCode uppercases a user-supplied code and validates its shape.
func NormalizeJoinCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != JoinCodeLength {
		return "", errors.New("join code must be 6 characters")
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(joinCodeAlphabet, rune(code[i])) {
			return "", errors.New("join code must be alphanumeric")
		}
	}
	return code, nil
}
