// Package fog holds the distance fog shared by the lit shader and the label sprites.
package fog

import "image/color"

// Fog fades surfaces towards Color between Near and Far world units from the camera.
type Fog struct {
	Color color.RGBA
	Near  float32
	Far   float32
}

// Default is the deep-blue fog of the marker scene.
func Default() Fog {
	return Fog{Color: color.RGBA{0x00, 0x00, 0x55, 0xff}, Near: 10, Far: 200}
}

// Enabled reports whether the range is usable. A zero Fog is disabled.
func (f Fog) Enabled() bool {
	return f.Far > f.Near
}

// Factor is the share of fog colour at dist: 0 up to Near, 1 from Far, smoothstep between.
// It matches the GLSL in the lit shader.
func (f Fog) Factor(dist float32) float32 {
	if !f.Enabled() {
		return 0
	}
	t := min(max((dist-f.Near)/(f.Far-f.Near), 0), 1)
	return t * t * (3 - 2*t)
}

// Apply blends c towards the fog colour for a surface at dist. Alpha is kept.
func (f Fog) Apply(c color.RGBA, dist float32) color.RGBA {
	k := f.Factor(dist)
	if k == 0 {
		return c
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*k + 0.5)
	}
	return color.RGBA{R: mix(c.R, f.Color.R), G: mix(c.G, f.Color.G), B: mix(c.B, f.Color.B), A: c.A}
}

// RGB returns the fog colour as normalized floats for shader uniforms.
func (f Fog) RGB() [3]float32 {
	return [3]float32{float32(f.Color.R) / 255, float32(f.Color.G) / 255, float32(f.Color.B) / 255}
}
