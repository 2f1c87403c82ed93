// Package scene renders the 3D world: ground, optional grid, marker spheres and their labels.
package scene

import (
	"cmp"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"marker-scene/internal/camera"
	"marker-scene/internal/fog"
	"marker-scene/internal/label"
	"marker-scene/internal/marker"
	"marker-scene/internal/primitives"
)

const (
	gridExtent     = 100
	gridMinorStep  = 5
	gridMajorStep  = 25
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	groundSize = 200
	groundY    = -50

	// world units per label texture pixel
	labelWorldScale = 0.05
	labelGap        = 1

	highlightScale = 1.15
)

var (
	Background     = rl.NewColor(0x00, 0x00, 0x33, 255)
	groundColor    = rl.NewColor(0x00, 0x11, 0x22, 255)
	highlightColor = rl.NewColor(255, 214, 90, 255)
)

// Scene owns the GPU resources for the 3D view. Textures are created on first Draw,
// after the window exists.
type Scene struct {
	GridVisible bool

	prims     *primitives.Registry
	labels    map[int]rl.Texture2D
	labelOpts label.Options
	lightDir  [3]float32
	fog       fog.Fog
}

// New returns a scene with the default light, fog and label style.
func New(gridVisible bool) *Scene {
	s := &Scene{
		GridVisible: gridVisible,
		prims:       primitives.NewRegistry(primitives.DefaultLight()),
		labels:      make(map[int]rl.Texture2D),
		labelOpts:   label.DefaultOptions(),
		lightDir:    [3]float32{0.5, 1, 0.75},
	}
	s.SetFog(fog.Default())
	return s
}

// SetFog sets the distance fog for spheres, ground and labels.
func (s *Scene) SetFog(f fog.Fog) {
	s.fog = f
	s.prims.SetFog(f)
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Camera3D converts a pose to the raylib camera used for rendering. Fovy is vertical, in degrees,
// matching the projection used for picking.
func Camera3D(pose camera.Pose) rl.Camera3D {
	up := pose.Up
	if up.Len() == 0 {
		up = camera.WorldUp
	}
	return rl.NewCamera3D(vec3(pose.Position), vec3(pose.Target), vec3(up), pose.Fovy, rl.CameraPerspective)
}

// Draw renders the world from pose. selected may be nil.
func (s *Scene) Draw(pose camera.Pose, markers []*marker.Marker, selected *marker.Marker) {
	cam := Camera3D(pose)
	s.prims.SetView([3]float32(pose.Position), s.lightDir)

	// far to near so translucent markers blend over what is behind them
	ordered := slices.Clone(markers)
	slices.SortStableFunc(ordered, func(a, b *marker.Marker) int {
		da := a.Position().Sub(pose.Position).LenSqr()
		db := b.Position().Sub(pose.Position).LenSqr()
		return cmp.Compare(db, da)
	})

	rl.BeginMode3D(cam)
	s.prims.DrawPlane([3]float32{0, groundY, 0}, groundSize, groundSize, groundColor)
	if s.GridVisible {
		drawEditorGrid(groundY + 0.05)
	}
	for _, m := range ordered {
		s.prims.DrawSphere([3]float32(m.Position()), m.Radius(), m.Color())
	}
	if selected != nil {
		rl.DrawSphereWires(vec3(selected.Position()), selected.Radius()*highlightScale, 8, 12, highlightColor)
	}
	for _, m := range ordered {
		s.drawLabel(cam, m)
	}
	rl.EndMode3D()
}

// drawLabel places the name sprite just below the sphere.
func (s *Scene) drawLabel(cam rl.Camera3D, m *marker.Marker) {
	tex, ok := s.labels[m.ID()]
	if !ok {
		img := rl.NewImageFromImage(label.Render(m.Name(), s.labelOpts))
		tex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		rl.SetTextureFilter(tex, rl.FilterPoint)
		s.labels[m.ID()] = tex
	}
	size := float32(tex.Height) * labelWorldScale
	p := m.Position()
	pos := mgl32.Vec3{p.X(), p.Y() - m.Radius() - size/2 - labelGap, p.Z()}
	dist := pos.Sub(mgl32.Vec3{cam.Position.X, cam.Position.Y, cam.Position.Z}).Len()
	rl.DrawBillboard(cam, tex, vec3(pos), size, s.fog.Apply(rl.White, dist))
}

// Unload releases label textures and primitive meshes. Call before closing the window.
func (s *Scene) Unload() {
	for id, tex := range s.labels {
		rl.UnloadTexture(tex)
		delete(s.labels, id)
	}
	s.prims.Unload()
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

// drawEditorGrid draws a grid on the horizontal plane at height y with major/minor lines and axis lines.
func drawEditorGrid(y float32) {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), y, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), y, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), y, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), y, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), y, 0
	end.X, end.Y, end.Z = float32(gridExtent), y, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, y, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, y, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
