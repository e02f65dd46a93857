// Package model defines domain entities for the application.
package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidMoney indicates a monetary value that could not be parsed.
var ErrInvalidMoney = errors.New("invalid monetary value")

// Money is a monetary amount stored as integer cents.
// Keeping cents avoids floating-point drift and guarantees that an
// amount written through the API reads back with the same value.
type Money int64

// ParseMoney parses a decimal string into cents.
// At most two fractional digits are accepted; anything finer would not
// survive a round trip and is rejected.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidMoney
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" || s == "." {
		return 0, ErrInvalidMoney
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx+1:]
	}
	if len(fracPart) > 2 {
		return 0, ErrInvalidMoney
	}
	if intPart == "" {
		intPart = "0"
	}

	// Only bare digits past this point. ParseInt alone would admit a
	// second sign, turning "1.-5" into 0.95.
	if !isDigits(intPart) || (fracPart != "" && !isDigits(fracPart)) {
		return 0, ErrInvalidMoney
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidMoney
	}

	var frac int64
	if fracPart != "" {
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, ErrInvalidMoney
		}
		if len(fracPart) == 1 {
			frac *= 10
		}
	}

	const maxWhole = (1<<63 - 1) / 100
	if whole > maxWhole {
		return 0, ErrInvalidMoney
	}

	cents := whole*100 + frac
	if negative {
		cents = -cents
	}
	return Money(cents), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Cents returns the raw cent count.
func (m Money) Cents() int64 {
	return int64(m)
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	c := int64(m)
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// MarshalJSON emits the amount as a plain JSON number with two decimal
// places, e.g. 4.50 or 200.00.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" {
		return ErrInvalidMoney
	}

	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
