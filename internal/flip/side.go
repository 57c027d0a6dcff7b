package flip

import (
	"fmt"
	"strings"
)

// Side identifies one face of a card.
type Side int

const (
	Front Side = iota
	Back
)

// NumSides is the number of faces a State flips between.
const NumSides = 2

// Other returns the opposite face.
func (s Side) Other() Side {
	if s == Front {
		return Back
	}
	return Front
}

// Valid reports whether s names a real face.
func (s Side) Valid() bool {
	return s == Front || s == Back
}

func (s Side) String() string {
	switch s {
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

func mustSide(s Side) {
	if !s.Valid() {
		panic(fmt.Sprintf("flip: side index %d out of range", int(s)))
	}
}

// Direction is the way a card rotates around its vertical axis.
type Direction int

const (
	Left Direction = iota
	Right
)

// Sign returns the rotation multiplier: -1 for Left, +1 for Right.
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	if d == Left {
		return Right
	}
	return Left
}

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// ParseDirection accepts "left" or "right" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Left, fmt.Errorf("unknown direction %q", s)
	}
}
