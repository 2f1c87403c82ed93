package camera

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is one of the six discrete camera nudges.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// ErrUnknownDirection is returned by ParseDirection for names it does not recognise.
var ErrUnknownDirection = errors.New("camera: unknown direction")

var directionNames = [...]string{"forward", "backward", "left", "right", "up", "down"}

// Directions lists every nudge in declaration order.
func Directions() []Direction {
	return []Direction{Forward, Backward, Left, Right, Up, Down}
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection accepts the direction names (case-insensitive) plus "back".
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "back" {
		return Backward, nil
	}
	for i, name := range directionNames {
		if s == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
