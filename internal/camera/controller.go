package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/constraints"
)

// phiEpsilon keeps the polar angle away from the poles so LookAt never degenerates.
const phiEpsilon = 1e-6

// Options configure nudges and the orbit behaviour.
type Options struct {
	MoveStep      float32 // world units per discrete nudge
	MinDistance   float32 // orbit distance clamp
	MaxDistance   float32
	DampingFactor float32 // 0 disables damping
	RotateSpeed   float32
	ZoomSpeed     float32
	PanSpeed      float32
}

// DefaultOptions matches the marker scene: step 2, distance [1, 500], damping 0.05.
func DefaultOptions() Options {
	return Options{
		MoveStep:      2,
		MinDistance:   1,
		MaxDistance:   500,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
	}
}

// Controller owns the camera pose. Discrete nudges translate the camera directly; drag input
// accumulates orbit/pan deltas that Update applies around the target, optionally damped.
type Controller struct {
	pose Pose
	opts Options

	deltaTheta float32
	deltaPhi   float32
	scale      float32
	panOffset  mgl32.Vec3
}

// NewController returns a controller for pose and resynchronizes it so the distance clamp holds from the start.
func NewController(pose Pose, opts Options) *Controller {
	if pose.Up.Len() == 0 {
		pose.Up = WorldUp
	}
	c := &Controller{pose: pose, opts: opts, scale: 1}
	c.Sync()
	return c
}

// Pose returns a copy of the current pose.
func (c *Controller) Pose() Pose {
	return c.pose
}

// Options returns the controller configuration.
func (c *Controller) Options() Options {
	return c.opts
}

// Nudge moves the camera one step. Forward/backward follow the view direction, left is
// up × forward and right is forward × up, up/down follow world Y. The target stays where it is
// and the orbit state is resynchronized afterwards.
func (c *Controller) Nudge(d Direction) {
	step := c.opts.MoveStep
	forward := c.pose.Forward()
	up := c.pose.up()
	var offset mgl32.Vec3
	switch d {
	case Forward:
		offset = forward.Mul(step)
	case Backward:
		offset = forward.Mul(-step)
	case Left:
		offset = safeNormalize(up.Cross(forward), mgl32.Vec3{}).Mul(step)
	case Right:
		offset = safeNormalize(forward.Cross(up), mgl32.Vec3{}).Mul(step)
	case Up:
		offset = WorldUp.Mul(step)
	case Down:
		offset = WorldUp.Mul(-step)
	default:
		return
	}
	c.pose.Position = c.pose.Position.Add(offset)
	c.Sync()
}

// Rotate queues an orbit rotation from a pointer drag of (dx, dy) pixels in a viewport of the given height.
func (c *Controller) Rotate(dx, dy, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	c.deltaTheta -= 2 * math32.Pi * dx / viewportHeight * c.opts.RotateSpeed
	c.deltaPhi -= 2 * math32.Pi * dy / viewportHeight * c.opts.RotateSpeed
}

// Zoom queues a dolly step. Positive wheel values move towards the target.
func (c *Controller) Zoom(wheel float32) {
	if wheel == 0 {
		return
	}
	factor := math32.Pow(0.95, c.opts.ZoomSpeed*math32.Abs(wheel))
	if wheel > 0 {
		c.scale *= factor
	} else {
		c.scale /= factor
	}
}

// Pan queues a target translation from a pointer drag. Vertical drags move along the ground
// plane rather than screen up.
func (c *Controller) Pan(dx, dy, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	offset := c.pose.Position.Sub(c.pose.Target)
	targetDistance := offset.Len() * math32.Tan(mgl32.DegToRad(c.pose.Fovy)/2)
	right := safeNormalize(c.pose.Forward().Cross(c.pose.up()), mgl32.Vec3{1, 0, 0})
	ahead := c.pose.up().Cross(right)

	left := right.Mul(-2 * dx * targetDistance / viewportHeight * c.opts.PanSpeed)
	forward := ahead.Mul(2 * dy * targetDistance / viewportHeight * c.opts.PanSpeed)
	c.panOffset = c.panOffset.Add(left).Add(forward)
}

// Update applies queued orbit/zoom/pan deltas. With damping the deltas decay geometrically
// each call instead of being consumed at once. dt is accepted for symmetry with the frame loop.
func (c *Controller) Update(dt float32) {
	_ = dt
	c.step()
}

// Sync resynchronizes the orbit state with the current position and target. Call after any
// direct pose edit.
func (c *Controller) Sync() {
	c.step()
}

func (c *Controller) step() {
	offset := c.pose.Position.Sub(c.pose.Target)
	radius, theta, phi := toSpherical(offset)

	damping := c.opts.DampingFactor
	if damping > 0 {
		theta += c.deltaTheta * damping
		phi += c.deltaPhi * damping
	} else {
		theta += c.deltaTheta
		phi += c.deltaPhi
	}
	phi = clamp(phi, phiEpsilon, math32.Pi-phiEpsilon)
	radius = clamp(radius*c.scale, c.opts.MinDistance, c.opts.MaxDistance)

	if damping > 0 {
		c.pose.Target = c.pose.Target.Add(c.panOffset.Mul(damping))
	} else {
		c.pose.Target = c.pose.Target.Add(c.panOffset)
	}
	c.pose.Position = c.pose.Target.Add(fromSpherical(radius, theta, phi))

	if damping > 0 {
		c.deltaTheta *= 1 - damping
		c.deltaPhi *= 1 - damping
		c.panOffset = c.panOffset.Mul(1 - damping)
	} else {
		c.deltaTheta, c.deltaPhi = 0, 0
		c.panOffset = mgl32.Vec3{}
	}
	c.scale = 1
}

// toSpherical converts a Y-up offset to (radius, azimuth around Y from +Z, polar angle from +Y).
func toSpherical(v mgl32.Vec3) (radius, theta, phi float32) {
	radius = v.Len()
	if radius == 0 {
		return 0, 0, 0
	}
	theta = math32.Atan2(v.X(), v.Z())
	phi = math32.Acos(clamp(v.Y()/radius, -1, 1))
	return radius, theta, phi
}

func fromSpherical(radius, theta, phi float32) mgl32.Vec3 {
	sinPhi := math32.Sin(phi)
	return mgl32.Vec3{
		radius * sinPhi * math32.Sin(theta),
		radius * math32.Cos(phi),
		radius * sinPhi * math32.Cos(theta),
	}
}

func clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
