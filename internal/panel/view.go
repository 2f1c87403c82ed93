package panel

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"

	"marker-scene/internal/marker"
)

// View is the flattened, display-ready copy of a payload. The panel holds a View rather than
// the payload so later edits to the marker do not leak into an open panel until it is reshown.
type View struct {
	ID          int
	Name        string
	Position    [3]float32
	LastKnown   string
	Timestamp   string
	Description string
	Category    marker.Category
	AuxLabel    string
	AuxValue    string
}

// NewView snapshots p.
func NewView(p marker.Payload) (View, error) {
	var v View
	if err := copier.Copy(&v, &p); err != nil {
		return View{}, fmt.Errorf("copy payload %d: %w", p.ID, err)
	}
	v.Category = p.Category()
	v.AuxLabel, v.AuxValue = AuxField(p.Aux)
	return v, nil
}

// AuxField returns the label/value pair for a category-specific field. A nil aux has none.
func AuxField(a marker.Aux) (label, value string) {
	switch a := a.(type) {
	case nil:
		return "", ""
	case marker.Obstacle:
		return "Difficulty", a.Difficulty
	case marker.Beacon:
		return "Frequency", a.Frequency
	case marker.Vessel:
		var parts []string
		for _, part := range []string{a.Heading, a.Speed} {
			if part != "" {
				parts = append(parts, part)
			}
		}
		return "Heading", strings.Join(parts, " @ ")
	default:
		panic(fmt.Sprintf("panel: unhandled aux type %T", a))
	}
}

// Lines renders v as label/value rows in panel order. Empty optional fields are skipped.
func (v View) Lines() []Line {
	lines := []Line{
		{Label: "Name", Value: v.Name},
		{Label: "ID", Value: fmt.Sprintf("%d", v.ID)},
		{Label: "Position", Value: fmt.Sprintf("(%.2f, %.2f, %.2f)", v.Position[0], v.Position[1], v.Position[2])},
	}
	if v.LastKnown != "" {
		lines = append(lines, Line{Label: "Last known", Value: v.LastKnown})
	}
	if v.Timestamp != "" {
		lines = append(lines, Line{Label: "Timestamp", Value: v.Timestamp})
	}
	if v.AuxLabel != "" && v.AuxValue != "" {
		lines = append(lines, Line{Label: v.AuxLabel, Value: v.AuxValue})
	}
	if v.Description != "" {
		lines = append(lines, Line{Label: "Description", Value: v.Description})
	}
	return lines
}

// Line is one row of the detail panel.
type Line struct {
	Label string
	Value string
}

func (l Line) String() string {
	return l.Label + ": " + l.Value
}

// Wrap breaks s into lines of at most width runes, splitting on spaces. Words longer than
// width are split mid-word.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	var cur []rune
	flush := func() {
		lines = append(lines, string(cur))
		cur = cur[:0]
	}
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > width {
			if len(cur) > 0 {
				flush()
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, w...)
		case len(cur)+1+len(w) <= width:
			cur = append(cur, ' ')
			cur = append(cur, w...)
		default:
			flush()
			cur = append(cur, w...)
		}
	}
	if len(cur) > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}
