package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label, button. It has optional class and id for CSS matching.
// Width/Height are the intrinsic size used when the stylesheet gives none. Bounds is the screen
// rectangle computed by Engine.Layout. Children are placed inside Parent's bounds, then shifted by OffsetX/OffsetY.
type Node struct {
	Type    string // "panel", "label", "button"
	Class   string // e.g. "detail" for .detail
	ID      string // e.g. "detail-close" for #detail-close
	Text    string
	Parent  *Node
	Width   float32
	Height  float32
	OffsetX float32
	OffsetY float32
	OnClick func()
	Bounds  rl.Rectangle
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// Contains reports whether the screen point lies inside the node's last computed bounds.
func (n *Node) Contains(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, n.Bounds)
}
