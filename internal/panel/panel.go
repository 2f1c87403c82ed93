// Package panel holds the state of the marker detail panel: which payload is shown and how far
// the panel has slid into view.
package panel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"marker-scene/internal/marker"
)

const (
	DefaultWidth    = 320
	DefaultDuration = 0.25 // seconds
)

// Panel slides in from the right edge when shown and back out when hidden.
// Offset is the horizontal distance from the fully open position: 0 when open, Width when closed.
type Panel struct {
	width    float32
	duration float32

	view   View
	open   bool
	offset float32
	tween  *gween.Tween
}

// New returns a closed panel of the given width.
func New(width, duration float32) *Panel {
	if width <= 0 {
		width = DefaultWidth
	}
	if duration < 0 {
		duration = 0
	}
	return &Panel{width: width, duration: duration, offset: width}
}

// Show replaces the panel content with p and slides the panel open.
func (p *Panel) Show(payload marker.Payload) error {
	v, err := NewView(payload)
	if err != nil {
		return err
	}
	p.view = v
	if !p.open {
		p.open = true
		p.slide(0)
	}
	return nil
}

// Hide slides the panel closed. The last view stays readable until the slide ends.
func (p *Panel) Hide() {
	if !p.open {
		return
	}
	p.open = false
	p.slide(p.width)
}

func (p *Panel) slide(to float32) {
	if p.duration == 0 {
		p.offset = to
		p.tween = nil
		return
	}
	p.tween = gween.New(p.offset, to, p.duration, ease.OutCubic)
}

// Update advances the slide animation by dt seconds.
func (p *Panel) Update(dt float32) {
	if p.tween == nil {
		return
	}
	val, done := p.tween.Update(dt)
	p.offset = val
	if done {
		p.tween = nil
		if !p.open {
			p.view = View{}
		}
	}
}

// Open reports whether the panel is showing a payload (or sliding in to show one).
func (p *Panel) Open() bool {
	return p.open
}

// Visible reports whether any part of the panel is on screen.
func (p *Panel) Visible() bool {
	return p.open || p.offset < p.width
}

// Animating reports whether a slide is in progress.
func (p *Panel) Animating() bool {
	return p.tween != nil
}

func (p *Panel) Offset() float32 {
	return p.offset
}

func (p *Panel) Width() float32 {
	return p.width
}

// Current returns the shown view.
func (p *Panel) Current() View {
	return p.view
}

// Lines returns the rows of the shown view, or nil when nothing is shown.
func (p *Panel) Lines() []Line {
	if !p.Visible() {
		return nil
	}
	return p.view.Lines()
}
