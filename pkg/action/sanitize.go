package action

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxInputSize is 4KB (conservative default)
const DefaultMaxInputSize = 4096

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// SanitizedInputs cleans every value read from Inputs before the greeter sees it.
// The greeting is a single stdout line, which the runner also scans for
// workflow commands, so line breaks must not survive.
type SanitizedInputs struct {
	Inputs Inputs
	// MaxSize in bytes; zero means DefaultMaxInputSize.
	MaxSize int
}

// Sanitize wraps inputs with the default limits.
func Sanitize(inputs Inputs) *SanitizedInputs {
	return &SanitizedInputs{Inputs: inputs}
}

func (s *SanitizedInputs) Input(name string) (string, error) {
	value, err := s.Inputs.Input(name)
	if err != nil {
		return "", err
	}
	clean, err := SanitizeInput(value, s.MaxSize)
	if err != nil {
		return "", fmt.Errorf("input %q: %w", name, err)
	}
	return clean, nil
}

// SanitizeInput enforces the size limit, validates UTF-8 and removes control
// characters. Line breaks become spaces; tabs are kept; everything else in
// the control range (ESC, NUL, BEL...) is dropped.
func SanitizeInput(input string, limit int) (string, error) {
	if limit <= 0 {
		limit = DefaultMaxInputSize
	}
	// Reject rather than truncate.
	if len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}

	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	// Fast path: if no control chars, return as is.
	clean := true
	for _, r := range input {
		if unicode.IsControl(r) && r != '\t' {
			clean = false
			break
		}
	}
	if clean {
		return input, nil
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		switch {
		case r == '\n' || r == '\r':
			b.WriteByte(' ')
		case r == '\t' || !unicode.IsControl(r):
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}
