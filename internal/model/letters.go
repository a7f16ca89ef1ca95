package model

import (
	"fmt"
	"strings"
)

// MaxOptions is the number of options addressable by a single letter
const MaxOptions = 26

// IndexToLetter maps an option index to its letter (0 -> "A").
// Indexes past "Z" are unsupported rather than wrapped.
func IndexToLetter(index int) (string, error) {
	if index < 0 || index >= MaxOptions {
		return "", fmt.Errorf("option index %d: %w", index, ErrInvalidLetter)
	}
	return string(rune('A' + index)), nil
}

// LetterToIndex maps an option letter back to its index ("a" and "A" -> 0)
func LetterToIndex(letter string) (int, error) {
	l := strings.ToUpper(strings.TrimSpace(letter))
	if len(l) != 1 || l[0] < 'A' || l[0] > 'Z' {
		return -1, fmt.Errorf("option letter %q: %w", letter, ErrInvalidLetter)
	}
	return int(l[0] - 'A'), nil
}
