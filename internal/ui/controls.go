package ui

import (
	"strings"

	"marker-scene/internal/camera"
)

// MoveButtons are the six on-screen camera buttons. Each click nudges the camera once.
type MoveButtons struct {
	nodes []*Node
}

// NewMoveButtons creates one button per direction, styled by #move-<direction>.
func NewMoveButtons(move func(camera.Direction)) *MoveButtons {
	b := &MoveButtons{}
	for _, d := range camera.Directions() {
		name := d.String()
		n := NewNode("button", "move", "move-"+name, strings.ToUpper(name[:1])+name[1:])
		n.OnClick = func() { move(d) }
		b.nodes = append(b.nodes, n)
	}
	return b
}

// AppendNodes appends the buttons to dst.
func (b *MoveButtons) AppendNodes(dst []*Node) []*Node {
	return append(dst, b.nodes...)
}
