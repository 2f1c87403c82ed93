package app

import (
	"errors"
	"image/color"
	"io"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marker-scene/internal/camera"
	"marker-scene/internal/gesture"
	"marker-scene/internal/logger"
	"marker-scene/internal/marker"
	"marker-scene/internal/panel"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

var (
	center = mgl32.Vec2{640, 360}
	corner = mgl32.Vec2{10, 10}
)

type fakePresenter struct {
	shown []marker.Payload
	hides int
	err   error
}

func (f *fakePresenter) Show(p marker.Payload) error {
	if f.err != nil {
		return f.err
	}
	f.shown = append(f.shown, p)
	return nil
}

func (f *fakePresenter) Hide() {
	f.hides++
}

func newFixture(t *testing.T, p Presenter) *Controller {
	t.Helper()
	return newFixtureWith(t, p,
		marker.New(mgl32.Vec3{0, 0, 0}, 0.8, color.RGBA{}, marker.Payload{ID: 1, Name: "Obstacle 1"}),
		marker.New(mgl32.Vec3{30, 30, 0}, 0.8, color.RGBA{}, marker.Payload{ID: 2, Name: "Beacon 2", Aux: marker.Beacon{Frequency: "406 MHz"}}),
	)
}

func newFixtureWith(t *testing.T, p Presenter, ms ...*marker.Marker) *Controller {
	t.Helper()
	markers, err := marker.NewSet(ms...)
	require.NoError(t, err)
	cam := camera.NewController(camera.Pose{
		Position: mgl32.Vec3{0, 0, 50},
		Up:       camera.WorldUp,
		Fovy:     75,
		Near:     0.1,
		Far:      1000,
	}, camera.DefaultOptions())
	state := &State{Markers: markers, Camera: cam}
	c := NewController(state, gesture.New(gesture.Options{Delay: 200 * time.Millisecond, Tolerance: 5}), p, logger.NewWriter(io.Discard, "debug"))
	c.Resize(1280, 720)
	return c
}

func click(c *Controller, at time.Time, pos mgl32.Vec2) {
	c.PointerDown(at, pos, gesture.ButtonPrimary)
	c.PointerUp(pos, gesture.ButtonPrimary)
}

func TestClickSelectsMarkerOnce(t *testing.T) {
	p := &fakePresenter{}
	c := newFixture(t, p)

	c.PointerDown(t0, center, gesture.ButtonPrimary)
	c.PointerUp(center.Add(mgl32.Vec2{1, 0}), gesture.ButtonPrimary)
	c.Tick(t0.Add(time.Second), 1.0/60)

	require.Len(t, p.shown, 1)
	assert.Equal(t, 1, p.shown[0].ID)
	id, ok := c.State().Selection.ID()
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	assert.Equal(t, "Obstacle 1", c.State().Selected().Name())
}

func TestTimerResolvesHeldClick(t *testing.T) {
	p := &fakePresenter{}
	c := newFixture(t, p)

	c.PointerDown(t0, center, gesture.ButtonPrimary)
	c.Tick(t0.Add(100*time.Millisecond), 0.1)
	assert.Empty(t, p.shown)

	c.Tick(t0.Add(250*time.Millisecond), 0.15)
	require.Len(t, p.shown, 1)

	c.PointerUp(center, gesture.ButtonPrimary)
	assert.Len(t, p.shown, 1)
}

func TestClickEmptySpaceDeselects(t *testing.T) {
	p := &fakePresenter{}
	c := newFixture(t, p)

	click(c, t0, center)
	require.Len(t, p.shown, 1)

	click(c, t0.Add(time.Second), corner)
	_, ok := c.State().Selection.ID()
	assert.False(t, ok)
	assert.Equal(t, 1, p.hides)
	assert.Nil(t, c.State().Selected())
}

func TestDragDoesNotPick(t *testing.T) {
	p := &fakePresenter{}
	c := newFixture(t, p)
	before := c.State().Camera.Pose().Position

	c.PointerDown(t0, center, gesture.ButtonPrimary)
	c.PointerMove(center.Add(mgl32.Vec2{30, 0}))
	c.PointerMove(center.Add(mgl32.Vec2{60, 0}))
	c.PointerUp(center.Add(mgl32.Vec2{60, 0}), gesture.ButtonPrimary)
	c.Tick(t0.Add(time.Second), 1.0/60)

	assert.Empty(t, p.shown)
	assert.Zero(t, p.hides)
	assert.NotEqual(t, before, c.State().Camera.Pose().Position, "primary drag orbits the camera")
}

func TestSecondaryDragPansWithoutPicking(t *testing.T) {
	p := &fakePresenter{}
	c := newFixture(t, p)
	before := c.State().Camera.Pose().Target

	c.PointerDown(t0, center, gesture.ButtonSecondary)
	c.PointerMove(center.Add(mgl32.Vec2{0, 2}))
	c.PointerUp(center.Add(mgl32.Vec2{0, 2}), gesture.ButtonSecondary)
	c.Tick(t0.Add(time.Second), 1.0/60)

	assert.Empty(t, p.shown)
	assert.NotEqual(t, before, c.State().Camera.Pose().Target)
}

func TestSecondPointerDownSupersedesFirst(t *testing.T) {
	p := &fakePresenter{}
	c := newFixture(t, p)

	c.PointerDown(t0, corner, gesture.ButtonPrimary)
	c.PointerDown(t0.Add(100*time.Millisecond), center, gesture.ButtonPrimary)
	c.Tick(t0.Add(200*time.Millisecond), 0.1)
	assert.Empty(t, p.shown)
	assert.Zero(t, p.hides)

	c.Tick(t0.Add(300*time.Millisecond), 0.1)
	require.Len(t, p.shown, 1)
	assert.Equal(t, 1, p.shown[0].ID)
}

func TestSelectUnknownMarker(t *testing.T) {
	c := newFixture(t, &fakePresenter{})
	assert.ErrorIs(t, c.Select(99), ErrUnknownMarker)
	assert.ErrorIs(t, c.Note(99, "x"), ErrUnknownMarker)
}

func TestSelectReplacesActiveSelection(t *testing.T) {
	p := &fakePresenter{}
	c := newFixture(t, p)

	require.NoError(t, c.Select(1))
	require.NoError(t, c.Select(2))
	id, _ := c.State().Selection.ID()
	assert.Equal(t, 2, id)
	assert.Len(t, p.shown, 2)
	assert.Equal(t, marker.CategoryBeacon, p.shown[1].Category())
}

func TestSelectKeepsPreviousSelectionWhenShowFails(t *testing.T) {
	p := &fakePresenter{}
	c := newFixture(t, p)
	require.NoError(t, c.Select(1))

	p.err = errors.New("panel unavailable")
	assert.Error(t, c.Select(2))
	id, ok := c.State().Selection.ID()
	require.True(t, ok)
	assert.Equal(t, 1, id)

	c.Deselect()
	assert.Error(t, c.Select(2))
	_, ok = c.State().Selection.ID()
	assert.False(t, ok)
}

func TestClickShowsPickedCatalogMarker(t *testing.T) {
	doc := `
markers:
  - id: 2
    name: Center
    position: [0, 0, 0]
  - name: Far away
    position: [30, 30, 0]
`
	ms, err := marker.ParseCatalog([]byte(doc))
	require.NoError(t, err)
	p := &fakePresenter{}
	c := newFixtureWith(t, p, ms...)

	out := c.ClickAt(center)
	require.True(t, out.Hit())
	assert.Equal(t, "Center", out.Marker.Name())
	require.Len(t, p.shown, 1)
	assert.Equal(t, "Center", p.shown[0].Name)
	assert.Same(t, out.Marker, c.State().Selected())
}

func TestNoteRefreshesOpenPanel(t *testing.T) {
	p := &fakePresenter{}
	c := newFixture(t, p)

	require.NoError(t, c.Note(2, "drifting"))
	assert.Empty(t, p.shown, "unselected marker does not open the panel")

	require.NoError(t, c.Select(2))
	require.NoError(t, c.Note(2, "anchored"))
	require.Len(t, p.shown, 2)
	assert.Equal(t, "anchored", p.shown[1].LastKnown)
}

func TestMoveNudgesCamera(t *testing.T) {
	c := newFixture(t, &fakePresenter{})
	c.Move(camera.Forward)
	pos := c.State().Camera.Pose().Position
	assert.InDelta(t, 48, pos.Z(), 1e-3)
}

func TestWheelZooms(t *testing.T) {
	c := newFixture(t, &fakePresenter{})
	c.Wheel(1)
	c.Tick(t0, 1.0/60)
	assert.Less(t, c.State().Camera.Pose().Distance(), float32(50))
}

func TestWithDetailPanel(t *testing.T) {
	pn := panel.New(320, 0)
	c := newFixture(t, pn)

	click(c, t0, center)
	assert.True(t, pn.Open())
	assert.Equal(t, "Obstacle 1", pn.Current().Name)

	click(c, t0.Add(time.Second), corner)
	assert.False(t, pn.Open())
	assert.False(t, pn.Visible())
}

func TestViewportAspect(t *testing.T) {
	assert.InDelta(t, 16.0/9, Viewport{Width: 1280, Height: 720}.Aspect(), 1e-6)
	assert.Equal(t, float32(1), Viewport{}.Aspect())
}

func TestSelection(t *testing.T) {
	var s Selection
	assert.False(t, s.Clear())
	assert.True(t, s.Set(3))
	assert.False(t, s.Set(3))
	assert.True(t, s.Set(4))
	assert.True(t, s.Clear())
	_, ok := s.ID()
	assert.False(t, ok)
}
