// Package gesture tells a click from the start of a camera drag.
//
// A primary pointer-down opens a pending classification with a deadline. The gesture is
// resolved once, either when the deadline passes (polled from the frame loop) or when the
// pointer is released, by comparing the live pointer position against the down position.
// Only one gesture is tracked; a new pointer-down supersedes a pending one.
package gesture

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultDelay     = 200 * time.Millisecond
	DefaultTolerance = 5 // pixels
)

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Kind is the classification of a resolved gesture.
type Kind int

const (
	None Kind = iota
	Click
	Drag
)

func (k Kind) String() string {
	switch k {
	case Click:
		return "click"
	case Drag:
		return "drag"
	default:
		return "none"
	}
}

// Result is what Poll and PointerUp report. Kind None means nothing was resolved.
// At is the live pointer position used for the decision.
type Result struct {
	Kind Kind
	Down mgl32.Vec2
	At   mgl32.Vec2
}

// Options configure a Classifier.
type Options struct {
	Delay     time.Duration
	Tolerance float32
}

// Classifier is the Idle -> Pending -> Idle state machine.
type Classifier struct {
	opts     Options
	pending  bool
	deadline time.Time
	down     mgl32.Vec2
}

// New returns a classifier. Non-positive tolerance falls back to DefaultTolerance; a negative delay to zero.
func New(opts Options) *Classifier {
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	return &Classifier{opts: opts}
}

// Options returns the effective configuration.
func (c *Classifier) Options() Options {
	return c.opts
}

// Pending reports whether a gesture is awaiting classification.
func (c *Classifier) Pending() bool {
	return c.pending
}

// PointerDown starts a new pending gesture for the primary button, cancelling any pending one.
// Other buttons are ignored.
func (c *Classifier) PointerDown(now time.Time, pos mgl32.Vec2, b Button) {
	if b != ButtonPrimary {
		return
	}
	c.down = pos
	c.pending = true
	c.deadline = now.Add(c.opts.Delay)
}

// Poll resolves the pending gesture if its deadline has passed, using live as the current pointer position.
func (c *Classifier) Poll(now time.Time, live mgl32.Vec2) Result {
	if !c.pending || now.Before(c.deadline) {
		return Result{}
	}
	return c.resolve(live)
}

// PointerUp ends the pending gesture and resolves it against the release position.
// With nothing pending (already resolved, or never started) it returns a None result.
func (c *Classifier) PointerUp(live mgl32.Vec2) Result {
	if !c.pending {
		return Result{}
	}
	return c.resolve(live)
}

// Cancel drops the pending gesture without resolving it.
func (c *Classifier) Cancel() {
	c.pending = false
}

func (c *Classifier) resolve(live mgl32.Vec2) Result {
	c.pending = false
	delta := math32.Max(math32.Abs(live.X()-c.down.X()), math32.Abs(live.Y()-c.down.Y()))
	kind := Drag
	if delta < c.opts.Tolerance {
		kind = Click
	}
	return Result{Kind: kind, Down: c.down, At: live}
}
