package fog

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactor(t *testing.T) {
	f := Default()
	tests := []struct {
		dist float32
		want float32
	}{
		{0, 0},
		{10, 0},
		{105, 0.5},
		{200, 1},
		{1000, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, f.Factor(tt.dist), 1e-5, "dist=%v", tt.dist)
	}
	assert.Less(t, f.Factor(50), f.Factor(150))
}

func TestDisabled(t *testing.T) {
	var f Fog
	assert.False(t, f.Enabled())
	assert.Equal(t, float32(0), f.Factor(500))

	c := color.RGBA{10, 20, 30, 40}
	assert.Equal(t, c, f.Apply(c, 500))
}

func TestApply(t *testing.T) {
	f := Default()
	white := color.RGBA{255, 255, 255, 200}

	assert.Equal(t, white, f.Apply(white, 5))
	assert.Equal(t, color.RGBA{0x00, 0x00, 0x55, 200}, f.Apply(white, 300))

	mid := f.Apply(white, 105)
	assert.Equal(t, color.RGBA{128, 128, 170, 200}, mid)
}

func TestRGB(t *testing.T) {
	rgb := Default().RGB()
	assert.InDelta(t, 0, rgb[0], 1e-6)
	assert.InDelta(t, 0x55/255.0, rgb[2], 1e-6)
}
