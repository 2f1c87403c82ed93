package ui

import (
	_ "embed"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"marker-scene/internal/stylesheet"
)

//go:embed default.css
var defaultCSS string

// Engine holds the current stylesheet and nodes, lays them out and draws them with raylib.
// Draw order is node order (first node drawn first, then on top the next); hit testing runs
// in reverse so the topmost node wins. Resolved styles are cached per (type, class, id).
type Engine struct {
	sheet  *stylesheet.Stylesheet
	nodes  []*Node
	styles map[string]stylesheet.Computed
}

// New creates an engine with the built-in stylesheet and no nodes.
func New() (*Engine, error) {
	sheet, err := stylesheet.Parse(defaultCSS)
	if err != nil {
		return nil, fmt.Errorf("default stylesheet: %w", err)
	}
	return &Engine{sheet: sheet, styles: make(map[string]stylesheet.Computed)}, nil
}

// LoadCSS parses the file at path and applies its rules on top of the built-in ones.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	user, err := stylesheet.Parse(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	base, err := stylesheet.Parse(defaultCSS)
	if err != nil {
		return err
	}
	e.SetStylesheet(base.Merge(user))
	return nil
}

// SetStylesheet replaces the stylesheet.
func (e *Engine) SetStylesheet(sheet *stylesheet.Stylesheet) {
	e.sheet = sheet
	clear(e.styles)
}

// Stylesheet returns the current stylesheet.
func (e *Engine) Stylesheet() *stylesheet.Stylesheet {
	return e.sheet
}

// SetNodes replaces all nodes. Called every frame with the current overlay.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
}

func (e *Engine) style(n *Node) stylesheet.Computed {
	key := n.Type + "|" + n.Class + "|" + n.ID
	if s, ok := e.styles[key]; ok {
		return s
	}
	s := stylesheet.Resolve(e.sheet.Props(n.Type, n.Class, n.ID))
	e.styles[key] = s
	return s
}

// Layout computes Bounds for every node on a screen of the given size. Parents must precede their children.
func (e *Engine) Layout(screenW, screenH float32) {
	for _, n := range e.nodes {
		area := stylesheet.Rect{W: screenW, H: screenH}
		if n.Parent != nil {
			b := n.Parent.Bounds
			area = stylesheet.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
		}
		r := e.style(n).Place(n.Width, n.Height, area.W, area.H)
		n.Bounds = rl.NewRectangle(area.X+r.X+n.OffsetX, area.Y+r.Y+n.OffsetY, r.W, r.H)
	}
}

// Draw draws all nodes: background (hover colour under the pointer), border, then text.
// Call Layout first.
func (e *Engine) Draw() {
	mouse := rl.GetMousePosition()
	for _, n := range e.nodes {
		style := e.style(n)
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)

		bg := style.Background
		if style.Hover.A > 0 && n.Contains(mouse) {
			bg = style.Hover
		}
		if bg.A > 0 && w > 0 && h > 0 {
			rl.DrawRectangle(x, y, w, h, bg)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text != "" {
			rl.DrawText(n.Text, x+style.Padding, y+style.Padding, style.FontSize, style.Color)
		}
	}
}

// Hit returns the topmost node under p that blocks the scene: anything clickable or with a
// visible background. Nil when the point is over the 3D view.
func (e *Engine) Hit(p rl.Vector2) *Node {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if !n.Contains(p) {
			continue
		}
		if n.OnClick != nil || e.style(n).Background.A > 0 {
			return n
		}
	}
	return nil
}

// Click runs the OnClick of the topmost clickable node under p. It reports whether the point
// was over the UI at all, so the caller can keep the click away from the scene.
func (e *Engine) Click(p rl.Vector2) bool {
	n := e.Hit(p)
	if n == nil {
		return false
	}
	if n.OnClick != nil {
		n.OnClick()
	}
	return true
}

// FontSize returns the resolved font size for nodes of the given type and class.
func (e *Engine) FontSize(typ, class string) int32 {
	return e.style(&Node{Type: typ, Class: class}).FontSize
}
