package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"marker-scene/internal/camera"
	"marker-scene/internal/gesture"
	"marker-scene/internal/logger"
	"marker-scene/internal/marker"
	"marker-scene/internal/picking"
)

// ErrUnknownMarker is returned when a command names a marker id that is not in the scene.
var ErrUnknownMarker = errors.New("unknown marker")

// Presenter shows and hides the detail panel.
type Presenter interface {
	Show(p marker.Payload) error
	Hide()
}

// Controller routes input to the camera and the selection. All methods run on the frame loop.
type Controller struct {
	state     *State
	gestures  *gesture.Classifier
	presenter Presenter
	log       *logger.Logger

	pointer mgl32.Vec2
	held    [3]bool
}

// NewController wires a controller to state. presenter receives selection changes.
func NewController(state *State, gestures *gesture.Classifier, presenter Presenter, log *logger.Logger) *Controller {
	return &Controller{state: state, gestures: gestures, presenter: presenter, log: log}
}

// State returns the shared state.
func (c *Controller) State() *State {
	return c.state
}

// Resize records a new viewport size.
func (c *Controller) Resize(width, height float32) {
	c.state.Viewport = Viewport{Width: width, Height: height}
}

// PointerDown starts a gesture. Only the primary button can select; every held button drives the camera.
func (c *Controller) PointerDown(now time.Time, pos mgl32.Vec2, b gesture.Button) {
	c.pointer = pos
	if int(b) < len(c.held) {
		c.held[b] = true
	}
	c.gestures.PointerDown(now, pos, b)
}

// PointerMove orbits with the primary button and pans with the secondary one.
func (c *Controller) PointerMove(pos mgl32.Vec2) {
	delta := pos.Sub(c.pointer)
	c.pointer = pos
	if delta.X() == 0 && delta.Y() == 0 {
		return
	}
	h := c.state.Viewport.Height
	switch {
	case c.held[gesture.ButtonPrimary]:
		c.state.Camera.Rotate(delta.X(), delta.Y(), h)
	case c.held[gesture.ButtonSecondary], c.held[gesture.ButtonMiddle]:
		c.state.Camera.Pan(delta.X(), delta.Y(), h)
	}
}

// PointerUp releases a button. A primary release resolves the pending gesture at pos.
func (c *Controller) PointerUp(pos mgl32.Vec2, b gesture.Button) {
	c.pointer = pos
	if int(b) < len(c.held) {
		c.held[b] = false
	}
	if b != gesture.ButtonPrimary {
		return
	}
	c.handle(c.gestures.PointerUp(pos))
}

// Wheel zooms; positive values move towards the target.
func (c *Controller) Wheel(delta float32) {
	c.state.Camera.Zoom(delta)
}

// Tick advances the gesture deadline and the camera damping. Call once per frame.
func (c *Controller) Tick(now time.Time, dt float32) {
	c.handle(c.gestures.Poll(now, c.pointer))
	c.state.Camera.Update(dt)
}

func (c *Controller) handle(r gesture.Result) {
	switch r.Kind {
	case gesture.Click:
		c.ClickAt(r.At)
	case gesture.Drag:
		c.log.Debug().
			Str("outcome", "drag").
			Float32("dx", r.At.X()-r.Down.X()).
			Float32("dy", r.At.Y()-r.Down.Y()).
			Msg("gesture")
	}
}

// ClickAt picks the marker under a screen position and selects it, or deselects on a miss.
func (c *Controller) ClickAt(pos mgl32.Vec2) picking.Outcome {
	v := c.state.Viewport
	out := picking.Resolve(pos, v.Width, v.Height, c.state.Camera.Pose(), c.state.Markers.All())
	if !out.Hit() {
		c.log.Debug().Str("outcome", "miss").Msg("pick")
		c.Deselect()
		return out
	}
	c.log.Debug().Str("outcome", "hit").Int("marker_id", out.Marker.ID()).Float32("distance", out.Distance).Msg("pick")
	if err := c.selectMarker(out.Marker); err != nil {
		c.log.Error().Err(err).Msg("select picked marker")
	}
	return out
}

// Select makes id the active marker and shows its payload.
func (c *Controller) Select(id int) error {
	m, ok := c.state.Markers.ByID(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownMarker, id)
	}
	return c.selectMarker(m)
}

// selectMarker shows m and only then records it as the selection, so a failed Show leaves
// the previous selection in place.
func (c *Controller) selectMarker(m *marker.Marker) error {
	if err := c.presenter.Show(m.Payload()); err != nil {
		return fmt.Errorf("show marker %d: %w", m.ID(), err)
	}
	c.state.Selection.Set(m.ID())
	c.log.Info().Int("marker_id", m.ID()).Str("name", m.Name()).Msg("selected")
	return nil
}

// Deselect clears the selection and hides the panel.
func (c *Controller) Deselect() {
	if c.state.Selection.Clear() {
		c.log.Info().Msg("deselected")
	}
	c.presenter.Hide()
}

// Move nudges the camera one step.
func (c *Controller) Move(d camera.Direction) {
	c.state.Camera.Nudge(d)
	p := c.state.Camera.Pose().Position
	c.log.Debug().Stringer("direction", d).Floats32("position", p[:]).Msg("move")
}

// Note replaces the free-text "last known" field of a marker. An open panel showing it is refreshed.
func (c *Controller) Note(id int, text string) error {
	m, ok := c.state.Markers.ByID(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownMarker, id)
	}
	m.SetLastKnown(text)
	if sel, ok := c.state.Selection.ID(); ok && sel == id {
		return c.presenter.Show(m.Payload())
	}
	return nil
}
