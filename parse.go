package paroot

import (
	"fmt"
	"strconv"
	"strings"
)

// The parsers below are what the Get* prompts use to validate a line. They
// are strict: the whole line must be the value, so surrounding whitespace,
// trailing characters and empty lines are all rejected with ErrInvalidInput.

// ParseChar accepts a line holding exactly one byte.
func ParseChar(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: want exactly one character, got %d", ErrInvalidInput, len(s))
	}
	return s[0], nil
}

// ParseInt accepts a base-10 integer that fits in 32 bits, with an optional
// leading sign.
func ParseInt(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return int32(v), nil
}

// ParseLong accepts a base-10 integer that fits in 64 bits, with an optional
// leading sign.
func ParseLong(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return v, nil
}

// ParseFloat accepts a decimal or scientific-notation number representable
// as a float32. Values that overflow or underflow float32 are rejected.
func ParseFloat(s string) (float32, error) {
	v, err := parseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

// ParseDouble accepts a decimal or scientific-notation number representable
// as a float64. Values that overflow or underflow float64 are rejected.
func ParseDouble(s string) (float64, error) {
	return parseFloat(s, 64)
}

// parseFloat narrows strconv.ParseFloat to what strtod accepts: no digit
// separators, and a nonzero number that rounds to zero is a range error.
func parseFloat(s string, bitSize int) (float64, error) {
	if strings.ContainsRune(s, '_') {
		return 0, fmt.Errorf("%w: digit separators are not allowed in %q", ErrInvalidInput, s)
	}
	v, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if v == 0 && hasNonzeroMantissa(s) {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidInput, s, strconv.ErrRange)
	}
	return v, nil
}

// hasNonzeroMantissa reports whether any mantissa digit of a syntactically
// valid float literal is nonzero.
func hasNonzeroMantissa(s string) bool {
	s = strings.TrimLeft(s, "+-")
	hex := len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
	if hex {
		s = s[2:]
	}
	for _, c := range s {
		switch {
		case hex && (c == 'p' || c == 'P'):
			return false
		case !hex && (c == 'e' || c == 'E'):
			return false
		case c >= '1' && c <= '9':
			return true
		case hex && ((c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')):
			return true
		}
	}
	return false
}
