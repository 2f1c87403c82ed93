// Package label rasterizes marker names into small outlined sprites that the scene uploads as
// billboard textures.
package label

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Options control sprite layout.
type Options struct {
	Scale   int     // integer upscale applied after drawing
	Outline float64 // outline radius in source pixels; 0 disables it
	Padding int
	Text    color.RGBA
	Stroke  color.RGBA
}

func DefaultOptions() Options {
	return Options{
		Scale:   2,
		Outline: 1,
		Padding: 2,
		Text:    color.RGBA{255, 255, 255, 255},
		Stroke:  color.RGBA{0, 0, 0, 255},
	}
}

// Size returns the pixel size of the sprite Render would produce for text.
func Size(text string, opts Options) image.Point {
	w, h := unscaled(text, opts)
	s := max(opts.Scale, 1)
	return image.Pt(w*s, h*s)
}

func unscaled(text string, opts Options) (w, h int) {
	face := basicfont.Face7x13
	return font.MeasureString(face, text).Ceil() + 2*opts.Padding, face.Metrics().Height.Ceil() + 2*opts.Padding
}

// Render draws text on a transparent background with an optional outline.
func Render(text string, opts Options) *image.RGBA {
	face := basicfont.Face7x13
	w, h := unscaled(text, opts)
	dot := fixed.P(opts.Padding, opts.Padding+face.Metrics().Ascent.Ceil())

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Outline > 0 {
		mask := image.NewRGBA(dst.Bounds())
		drawString(mask, face, dot, color.RGBA{255, 255, 255, 255}, text)
		grown := effect.Dilate(mask, opts.Outline)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if grown.RGBAAt(x, y).A > 0 {
					dst.SetRGBA(x, y, opts.Stroke)
				}
			}
		}
	}
	drawString(dst, face, dot, opts.Text, text)

	if opts.Scale > 1 {
		return transform.Resize(dst, w*opts.Scale, h*opts.Scale, transform.NearestNeighbor)
	}
	return dst
}

func drawString(dst draw.Image, face font.Face, dot fixed.Point26_6, c color.Color, text string) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face, Dot: dot}
	d.DrawString(text)
}
