package ui

import (
	"marker-scene/internal/panel"
)

const (
	detailHeader    = 52 // title area above the first row
	detailFooter    = 14
	detailRowHeight = 20
	detailInset     = 28 // left + right text inset
	detailGlyphW    = 9  // approximate advance of the default font at the row size
)

// DetailPanel draws the marker detail panel: a framed box on the right edge with the marker
// name, one row per payload field and a close button. It owns its nodes and refreshes them
// from a panel.Panel every frame.
type DetailPanel struct {
	frame *Node
	title *Node
	close *Node
	rows  []*Node
}

// NewDetailPanel creates the panel nodes. onClose runs when the close button is clicked.
func NewDetailPanel(onClose func()) *DetailPanel {
	d := &DetailPanel{
		frame: NewNode("panel", "detail", "detail", ""),
		close: NewNode("button", "", "detail-close", "x"),
	}
	d.title = NewNode("label", "detail-title", "", "")
	d.title.Parent = d.frame
	d.close.Parent = d.frame
	d.close.OnClick = onClose
	return d
}

// AppendNodes appends the panel nodes to dst when p is on screen and returns dst unchanged otherwise.
func (d *DetailPanel) AppendNodes(dst []*Node, p *panel.Panel) []*Node {
	if !p.Visible() {
		return dst
	}
	view := p.Current()
	cols := int((p.Width() - detailInset) / detailGlyphW)

	var texts []string
	for _, line := range view.Lines() {
		if line.Label == "Name" {
			continue
		}
		texts = append(texts, panel.Wrap(line.String(), cols)...)
	}
	for len(d.rows) < len(texts) {
		row := NewNode("label", "detail-row", "", "")
		row.Parent = d.frame
		d.rows = append(d.rows, row)
	}
	rows := d.rows[:len(texts)]
	for i, row := range rows {
		row.Text = texts[i]
		row.OffsetY = float32(i * detailRowHeight)
	}

	d.frame.Width = p.Width()
	d.frame.Height = float32(detailHeader + len(texts)*detailRowHeight + detailFooter)
	d.frame.OffsetX = p.Offset()
	d.title.Text = view.Name

	dst = append(dst, d.frame, d.title, d.close)
	return append(dst, rows...)
}
