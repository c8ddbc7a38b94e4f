package course

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidCourse is returned when a course definition breaks a layout rule.
	ErrInvalidCourse = errors.New("invalid course")
	// ErrCourseNotFound is returned when a course name is unknown to the library.
	ErrCourseNotFound = errors.New("course not found")
)

// Validate checks the 18-hole, par and rank-permutation rules and the tee list.
func (c Course) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidCourse)
	}
	if len(c.Holes) != HolesPerRound {
		return fmt.Errorf("%w: %s has %d holes, want %d", ErrInvalidCourse, c.Name, len(c.Holes), HolesPerRound)
	}

	seenNumber := make(map[int]bool, HolesPerRound)
	seenRank := make(map[int]bool, HolesPerRound)
	for _, h := range c.Holes {
		if h.Number < 1 || h.Number > HolesPerRound || seenNumber[h.Number] {
			return fmt.Errorf("%w: %s has bad or duplicate hole number %d", ErrInvalidCourse, c.Name, h.Number)
		}
		seenNumber[h.Number] = true
		if h.Par < 3 || h.Par > 5 {
			return fmt.Errorf("%w: %s hole %d has par %d", ErrInvalidCourse, c.Name, h.Number, h.Par)
		}
		if h.Rank < 1 || h.Rank > HolesPerRound || seenRank[h.Rank] {
			return fmt.Errorf("%w: %s hole %d has bad or duplicate rank %d", ErrInvalidCourse, c.Name, h.Number, h.Rank)
		}
		seenRank[h.Rank] = true
	}

	if len(c.Tees) == 0 {
		return fmt.Errorf("%w: %s has no tees", ErrInvalidCourse, c.Name)
	}
	if !c.HasTee(c.DefaultTee) {
		return fmt.Errorf("%w: %s default tee %q is not defined", ErrInvalidCourse, c.Name, c.DefaultTee)
	}
	return nil
}

// Normalize returns a copy with holes ordered by number.
func (c Course) Normalize() Course {
	holes := make([]HoleInfo, len(c.Holes))
	copy(holes, c.Holes)
	sort.Slice(holes, func(i, j int) bool { return holes[i].Number < holes[j].Number })
	c.Holes = holes
	return c
}

// Hole returns the hole with the given 1-based number.
func (c Course) Hole(number int) (HoleInfo, bool) {
	for _, h := range c.Holes {
		if h.Number == number {
			return h, true
		}
	}
	return HoleInfo{}, false
}

// Rank returns the difficulty rank of a hole. It returns 0 for an unknown hole.
func (c Course) Rank(number int) int {
	h, ok := c.Hole(number)
	if !ok {
		return 0
	}
	return h.Rank
}

// Par returns the total par of the course.
func (c Course) Par() int {
	total := 0
	for _, h := range c.Holes {
		total += h.Par
	}
	return total
}

// HasTee reports whether the course defines a tee with the given name.
func (c Course) HasTee(name string) bool {
	for _, t := range c.Tees {
		if t.Name == name {
			return true
		}
	}
	return false
}
