package marker

import (
	"errors"
	"fmt"
	"strings"
)

// Category tags the kind of marker and selects its auxiliary field.
type Category int

const (
	CategoryNone Category = iota
	CategoryObstacle
	CategoryBeacon
	CategoryVessel
)

// ErrUnknownCategory is returned when a catalog names a category that does not exist.
var ErrUnknownCategory = errors.New("marker: unknown category")

var categoryNames = [...]string{"none", "obstacle", "beacon", "vessel"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory maps a category name to its value. An empty name is CategoryNone.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryNone, nil
	}
	for i, name := range categoryNames {
		if s == name {
			return Category(i), nil
		}
	}
	return CategoryNone, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Aux is the category-specific field carried by a payload. The set of implementations is closed.
type Aux interface {
	Category() Category
	aux()
}

// Obstacle is the aux field for obstacle markers.
type Obstacle struct {
	Difficulty string
}

// Beacon is the aux field for beacon markers.
type Beacon struct {
	Frequency string
}

// Vessel is the aux field for vessel markers: a heading/speed pair.
type Vessel struct {
	Heading string
	Speed   string
}

func (Obstacle) Category() Category { return CategoryObstacle }
func (Beacon) Category() Category   { return CategoryBeacon }
func (Vessel) Category() Category   { return CategoryVessel }

func (Obstacle) aux() {}
func (Beacon) aux()   {}
func (Vessel) aux()   {}

// Payload is the data shown in the detail panel for a marker.
type Payload struct {
	ID          int
	Name        string
	Position    [3]float32
	LastKnown   string
	Timestamp   string
	Description string
	Aux         Aux
}

// Category returns the category implied by Aux.
func (p Payload) Category() Category {
	if p.Aux == nil {
		return CategoryNone
	}
	return p.Aux.Category()
}
