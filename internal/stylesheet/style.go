package stylesheet

import (
	"image/color"
	"strconv"
	"strings"
)

// Unset marks an optional length or percentage that was not given.
const Unset = -1

// Computed holds resolved values used for drawing.
// Left/Top/Right/Bottom are pixel offsets from the matching screen edge; Unset when absent.
// LeftPct/TopPct position the box as a percentage of the free space (0 = left/top, 100 = right/bottom).
// Padding is the offset (in pixels) from the node's left/top when drawing text.
type Computed struct {
	Background color.RGBA
	Hover      color.RGBA // background while the pointer is over the node; zero = same as Background
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	Right      int32
	Bottom     int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
}

// DefaultComputed returns a minimal style (transparent background, white text, no border, zero size).
func DefaultComputed() Computed {
	return Computed{
		Color:    color.RGBA{255, 255, 255, 255},
		Border:   color.RGBA{0, 0, 0, 255},
		Left:     Unset,
		Top:      Unset,
		Right:    Unset,
		Bottom:   Unset,
		LeftPct:  Unset,
		TopPct:   Unset,
		Padding:  4,
		FontSize: 20,
	}
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA. Alpha defaults to 255.
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return color.RGBA{}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" to int32 (0–100).
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// Resolve builds a Computed style from a merged property map. Unparseable values are ignored.
func Resolve(props map[string]string) Computed {
	out := DefaultComputed()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background", "background-color":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "hover-background":
			if c, ok := ParseHexColor(v); ok {
				out.Hover = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border", "border-color":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "right":
			if n, ok := ParsePx(v); ok {
				out.Right = n
			}
		case "bottom":
			if n, ok := ParsePx(v); ok {
				out.Bottom = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	return out
}

// Rect is a screen-space box.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Place computes a node's box on a screen of the given size. Width and height come from the
// style when set, otherwise from w and h. Horizontal placement prefers LeftPct, then Left,
// then Right; vertical placement prefers TopPct, then Top, then Bottom. Unpositioned axes sit at 0.
func (c Computed) Place(w, h, screenW, screenH float32) Rect {
	if c.Width > 0 {
		w = float32(c.Width)
	}
	if c.Height > 0 {
		h = float32(c.Height)
	}
	r := Rect{W: w, H: h}
	switch {
	case c.LeftPct != Unset:
		r.X = (screenW - w) * float32(c.LeftPct) / 100
	case c.Left != Unset:
		r.X = float32(c.Left)
	case c.Right != Unset:
		r.X = screenW - w - float32(c.Right)
	}
	switch {
	case c.TopPct != Unset:
		r.Y = (screenH - h) * float32(c.TopPct) / 100
	case c.Top != Unset:
		r.Y = float32(c.Top)
	case c.Bottom != Unset:
		r.Y = screenH - h - float32(c.Bottom)
	}
	return r
}
