package handicap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid is returned when a handicap string is not a whole number.
var ErrInvalid = errors.New("invalid handicap")

// Handicap is a signed playing handicap. Non-negative values receive strokes,
// negative ("plus") values give strokes back.
type Handicap int

// Parse reads a handicap from user input. Surrounding whitespace is ignored.
func Parse(s string) (Handicap, error) {
	trimmed := strings.TrimSpace(s)
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return Handicap(v), nil
}

// Value returns the raw integer value.
func (h Handicap) Value() int {
	return int(h)
}

// IsPlus reports whether the player gives strokes back.
func (h Handicap) IsPlus() bool {
	return h < 0
}

func (h Handicap) String() string {
	if h < 0 {
		return "+" + strconv.Itoa(-int(h))
	}
	return strconv.Itoa(int(h))
}
