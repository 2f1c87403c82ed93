// Package picking maps a pointer position and camera pose to the marker under the pointer.
package picking

import (
	"github.com/go-gl/mathgl/mgl32"

	"marker-scene/internal/camera"
	"marker-scene/internal/marker"
)

// Outcome is the result of one pick: a marker to select, or nothing (deselect).
type Outcome struct {
	Marker   *marker.Marker
	Distance float32
}

// Hit reports whether the outcome selects a marker.
func (o Outcome) Hit() bool {
	return o.Marker != nil
}

// NDC maps a screen position (origin top-left, Y down) in a width×height viewport to
// normalized device coordinates in [-1, 1] with Y up.
func NDC(screen mgl32.Vec2, width, height float32) mgl32.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{
		screen.X()/width*2 - 1,
		-(screen.Y()/height)*2 + 1,
	}
}

// RayFromCamera unprojects ndc through pose. The ray starts at the camera position and passes
// through the unprojected point at NDC depth 0.5.
func RayFromCamera(ndc mgl32.Vec2, pose camera.Pose, aspect float32) Ray {
	inv := pose.Projection(aspect).Mul4(pose.View()).Inv()
	p := unproject(inv, mgl32.Vec3{ndc.X(), ndc.Y(), 0.5})
	dir := p.Sub(pose.Position)
	if dir.Len() == 0 {
		dir = pose.Forward()
	}
	return Ray{Origin: pose.Position, Direction: dir.Normalize()}
}

func unproject(inv mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := inv.Mul4x1(p.Vec4(1))
	if v.W() == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v.W())
}

// Pick tests r against every marker and returns the nearest hit. Ties keep the first marker
// in iteration order. An empty or missed set yields a deselect outcome.
func Pick(r Ray, markers []*marker.Marker) Outcome {
	var best Outcome
	for _, m := range markers {
		t, ok := IntersectSphere(r, m.Position(), m.Radius())
		if !ok {
			continue
		}
		if best.Marker == nil || t < best.Distance {
			best = Outcome{Marker: m, Distance: t}
		}
	}
	return best
}

// Resolve runs the full pipeline: screen position -> NDC -> camera ray -> nearest marker.
func Resolve(screen mgl32.Vec2, width, height float32, pose camera.Pose, markers []*marker.Marker) Outcome {
	ndc := NDC(screen, width, height)
	aspect := float32(1)
	if height > 0 {
		aspect = width / height
	}
	return Pick(RayFromCamera(ndc, pose, aspect), markers)
}
