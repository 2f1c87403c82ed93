package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the Y-up axis used for vertical nudges and orbit spherical coordinates.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Pose is a perspective camera looking from Position at Target. Fovy is in degrees.
type Pose struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Fovy     float32
	Near     float32
	Far      float32
}

// Forward returns the normalized view direction. A degenerate pose (position on the target)
// looks down -Z.
func (p Pose) Forward() mgl32.Vec3 {
	return safeNormalize(p.Target.Sub(p.Position), mgl32.Vec3{0, 0, -1})
}

// Distance returns the distance from the camera to the orbit target.
func (p Pose) Distance() float32 {
	return p.Target.Sub(p.Position).Len()
}

// View returns the world-to-camera matrix.
func (p Pose) View() mgl32.Mat4 {
	return mgl32.LookAtV(p.Position, p.Target, p.up())
}

// Projection returns the perspective matrix for the given viewport aspect (width/height).
func (p Pose) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(p.Fovy), aspect, p.Near, p.Far)
}

func (p Pose) up() mgl32.Vec3 {
	if p.Up.Len() == 0 {
		return WorldUp
	}
	return p.Up
}

func safeNormalize(v, fallback mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return fallback
	}
	return v.Mul(1 / l)
}
