package marker

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrDuplicateID is returned when two markers share an ID.
var ErrDuplicateID = errors.New("duplicate marker id")

// Marker is a pickable sphere in the scene. Geometry is fixed at creation; only the free-text
// payload fields can change afterwards.
type Marker struct {
	position mgl32.Vec3
	radius   float32
	color    color.RGBA
	payload  Payload
}

// New returns a marker. The payload position is taken from pos.
func New(pos mgl32.Vec3, radius float32, c color.RGBA, p Payload) *Marker {
	p.Position = [3]float32{pos.X(), pos.Y(), pos.Z()}
	return &Marker{position: pos, radius: radius, color: c, payload: p}
}

func (m *Marker) ID() int {
	return m.payload.ID
}

func (m *Marker) Position() mgl32.Vec3 {
	return m.position
}

func (m *Marker) Radius() float32 {
	return m.radius
}

func (m *Marker) Color() color.RGBA {
	return m.color
}

func (m *Marker) Name() string {
	return m.payload.Name
}

func (m *Marker) Payload() Payload {
	return m.payload
}

func (m *Marker) SetLastKnown(s string) {
	m.payload.LastKnown = s
}

func (m *Marker) SetDescription(s string) {
	m.payload.Description = s
}

// Set is the flat, append-only collection of markers in a scene.
type Set struct {
	items []*Marker
	byID  map[int]*Marker
}

// NewSet returns a set holding ms. Marker IDs must be unique.
func NewSet(ms ...*Marker) (*Set, error) {
	s := &Set{byID: make(map[int]*Marker, len(ms))}
	for _, m := range ms {
		if err := s.Add(m); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends m. It fails with ErrDuplicateID when another marker already has m's ID.
func (s *Set) Add(m *Marker) error {
	if _, ok := s.byID[m.ID()]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, m.ID())
	}
	s.items = append(s.items, m)
	s.byID[m.ID()] = m
	return nil
}

// All returns the markers in insertion order. The slice must not be modified.
func (s *Set) All() []*Marker {
	return s.items
}

// Len returns the number of markers.
func (s *Set) Len() int {
	return len(s.items)
}

// ByID looks a marker up by payload ID.
func (s *Set) ByID(id int) (*Marker, bool) {
	m, ok := s.byID[id]
	return m, ok
}

// IDs returns all marker IDs in ascending order.
func (s *Set) IDs() []int {
	ids := make([]int, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
