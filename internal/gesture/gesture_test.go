package gesture

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTest() *Classifier {
	return New(Options{Delay: 200 * time.Millisecond, Tolerance: 5})
}

// runGesture drives a down/up pair, polling every 10ms in between, and counts clicks.
func runGesture(c *Classifier, down, up mgl32.Vec2, hold time.Duration) (clicks, drags int) {
	count := func(r Result) {
		switch r.Kind {
		case Click:
			clicks++
		case Drag:
			drags++
		}
	}
	c.PointerDown(t0, down, ButtonPrimary)
	for el := time.Duration(0); el <= hold; el += 10 * time.Millisecond {
		count(c.Poll(t0.Add(el), up))
	}
	count(c.PointerUp(up))
	// polling after release never produces anything
	count(c.Poll(t0.Add(hold+time.Second), up))
	return clicks, drags
}

func TestClickWithinToleranceResolvesOnce(t *testing.T) {
	holds := []time.Duration{0, 50 * time.Millisecond, 199 * time.Millisecond, 200 * time.Millisecond, time.Second}
	moves := []mgl32.Vec2{{0, 0}, {4, 0}, {0, -4}, {4.9, 4.9}}
	for _, hold := range holds {
		for _, mv := range moves {
			c := newTest()
			down := mgl32.Vec2{100, 100}
			clicks, drags := runGesture(c, down, down.Add(mv), hold)
			assert.Equal(t, 1, clicks, "hold=%s move=%v", hold, mv)
			assert.Equal(t, 0, drags, "hold=%s move=%v", hold, mv)
			assert.False(t, c.Pending())
		}
	}
}

func TestDisplacementAtOrBeyondToleranceNeverClicks(t *testing.T) {
	holds := []time.Duration{0, 100 * time.Millisecond, time.Second}
	moves := []mgl32.Vec2{{5, 0}, {0, 5}, {-5, 0}, {30, 40}, {4, -6}}
	for _, hold := range holds {
		for _, mv := range moves {
			c := newTest()
			down := mgl32.Vec2{100, 100}
			clicks, drags := runGesture(c, down, down.Add(mv), hold)
			assert.Equal(t, 0, clicks, "hold=%s move=%v", hold, mv)
			assert.Equal(t, 1, drags, "hold=%s move=%v", hold, mv)
		}
	}
}

func TestTimerUsesLivePositionAtFireTime(t *testing.T) {
	c := newTest()
	c.PointerDown(t0, mgl32.Vec2{10, 10}, ButtonPrimary)

	assert.Equal(t, None, c.Poll(t0.Add(100*time.Millisecond), mgl32.Vec2{50, 50}).Kind)

	// pointer came back before the deadline
	r := c.Poll(t0.Add(200*time.Millisecond), mgl32.Vec2{11, 12})
	assert.Equal(t, Click, r.Kind)
	assert.Equal(t, mgl32.Vec2{11, 12}, r.At)
	assert.Equal(t, mgl32.Vec2{10, 10}, r.Down)
}

func TestNewPointerDownCancelsPending(t *testing.T) {
	c := newTest()
	d := c.Options().Delay

	c.PointerDown(t0, mgl32.Vec2{10, 10}, ButtonPrimary)
	c.PointerDown(t0.Add(d/2), mgl32.Vec2{300, 300}, ButtonPrimary)

	// the first deadline passes without anything firing
	assert.Equal(t, None, c.Poll(t0.Add(d), mgl32.Vec2{300, 300}).Kind)
	assert.True(t, c.Pending())

	r := c.Poll(t0.Add(d+d/2), mgl32.Vec2{300, 300})
	assert.Equal(t, Click, r.Kind)
	assert.Equal(t, mgl32.Vec2{300, 300}, r.Down)

	assert.Equal(t, None, c.Poll(t0.Add(10*d), mgl32.Vec2{300, 300}).Kind)
}

func TestNonPrimaryButtonIgnored(t *testing.T) {
	c := newTest()
	c.PointerDown(t0, mgl32.Vec2{1, 1}, ButtonSecondary)
	assert.False(t, c.Pending())
	assert.Equal(t, None, c.PointerUp(mgl32.Vec2{1, 1}).Kind)

	c.PointerDown(t0, mgl32.Vec2{1, 1}, ButtonPrimary)
	c.PointerDown(t0, mgl32.Vec2{1, 1}, ButtonMiddle)
	assert.True(t, c.Pending(), "other buttons do not cancel a pending primary gesture")
}

func TestCancel(t *testing.T) {
	c := newTest()
	c.PointerDown(t0, mgl32.Vec2{1, 1}, ButtonPrimary)
	c.Cancel()
	assert.False(t, c.Pending())
	assert.Equal(t, None, c.Poll(t0.Add(time.Hour), mgl32.Vec2{1, 1}).Kind)
	assert.Equal(t, None, c.PointerUp(mgl32.Vec2{1, 1}).Kind)
}

func TestNewDefaults(t *testing.T) {
	c := New(Options{Delay: -time.Second})
	assert.Equal(t, time.Duration(0), c.Options().Delay)
	assert.Equal(t, float32(DefaultTolerance), c.Options().Tolerance)

	// zero delay resolves on the first poll
	c.PointerDown(t0, mgl32.Vec2{}, ButtonPrimary)
	assert.Equal(t, Click, c.Poll(t0, mgl32.Vec2{}).Kind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "click", Click.String())
	assert.Equal(t, "drag", Drag.String())
	assert.Equal(t, "none", None.String())
}
