// Package app holds the interaction state of the marker scene and the controller that turns
// pointer, keyboard and console input into camera motion and marker selection.
package app

import (
	"marker-scene/internal/camera"
	"marker-scene/internal/marker"
)

// Viewport is the drawable size in pixels.
type Viewport struct {
	Width  float32
	Height float32
}

// Aspect returns width/height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return v.Width / v.Height
}

// Selection is the single active marker, if any.
type Selection struct {
	id     int
	active bool
}

// ID returns the selected marker id and whether anything is selected.
func (s Selection) ID() (int, bool) {
	return s.id, s.active
}

// Set selects id and reports whether the selection changed.
func (s *Selection) Set(id int) bool {
	changed := !s.active || s.id != id
	s.id, s.active = id, true
	return changed
}

// Clear drops the selection and reports whether anything was selected.
func (s *Selection) Clear() bool {
	was := s.active
	s.id, s.active = 0, false
	return was
}

// State is everything the frame loop and the controller share.
type State struct {
	Markers   *marker.Set
	Camera    *camera.Controller
	Selection Selection
	Viewport  Viewport
}

// Selected returns the selected marker, or nil.
func (s *State) Selected() *marker.Marker {
	id, ok := s.Selection.ID()
	if !ok {
		return nil
	}
	m, _ := s.Markers.ByID(id)
	return m
}
