package label

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func count(img *image.RGBA, match func(color.RGBA) bool) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if match(img.RGBAAt(x, y)) {
				n++
			}
		}
	}
	return n
}

func isText(c color.RGBA) bool   { return c == color.RGBA{255, 255, 255, 255} }
func isStroke(c color.RGBA) bool { return c == color.RGBA{0, 0, 0, 255} }

func TestRenderSize(t *testing.T) {
	opts := DefaultOptions()
	opts.Scale = 1
	img := Render("Obstacle 1", opts)
	require.NotNil(t, img)

	// basicfont 7x13: seven pixels per glyph, thirteen rows
	assert.Equal(t, image.Rect(0, 0, 7*10+4, 13+4), img.Bounds())
	assert.Equal(t, img.Bounds().Size(), Size("Obstacle 1", opts))
}

func TestRenderScale(t *testing.T) {
	opts := DefaultOptions()
	opts.Scale = 3
	img := Render("Beacon", opts)
	assert.Equal(t, 3*(7*6+4), img.Bounds().Dx())
	assert.Equal(t, 3*(13+4), img.Bounds().Dy())
	assert.Equal(t, img.Bounds().Size(), Size("Beacon", opts))
}

func TestRenderOutline(t *testing.T) {
	opts := DefaultOptions()
	opts.Scale = 1

	img := Render("Vessel 3", opts)
	assert.Positive(t, count(img, isText))
	assert.Positive(t, count(img, isStroke))
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A, "padding corner stays transparent")

	opts.Outline = 0
	plain := Render("Vessel 3", opts)
	assert.Positive(t, count(plain, isText))
	assert.Zero(t, count(plain, isStroke))
}
