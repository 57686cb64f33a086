// Package camera provides the chase camera that follows the player down the tunnel.
package camera

import (
	gomath "math"

	"github.com/Faultbox/tunnel-rush/pkg/math"
)

// ChaseCamera sits behind the player, pulled in from the wall towards the
// tunnel axis, and looks down +Z. Its up vector points from the wall to the
// axis so the wall the player rides on is always at the bottom of the screen.
type ChaseCamera struct {
	// Player state, updated every frame
	Angle float64 // Player angle around the tunnel axis, radians
	Z     float64 // Player depth along the tunnel

	// Framing
	Radius    float64 // Tunnel radius
	Inset     float64 // Fraction of the radius the eye is pulled towards the axis
	Trail     float64 // Distance behind the player
	LookAhead float64 // Distance ahead of the player to look at

	// Projection
	FOV    float32 // Vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32
}

// NewChaseCamera creates a chase camera for a tunnel of the given radius.
func NewChaseCamera(radius float64, fovDegrees float32, aspect float32) *ChaseCamera {
	return &ChaseCamera{
		Radius:    radius,
		Inset:     0.35,
		Trail:     radius * 1.5,
		LookAhead: radius * 6,
		FOV:       fovDegrees,
		Aspect:    aspect,
		Near:      0.05,
		Far:       float32(radius * 80),
	}
}

// Follow moves the camera to the player.
func (c *ChaseCamera) Follow(angle, z float64) {
	c.Angle = angle
	c.Z = z
}

// SetAspect updates the aspect ratio after a window resize.
func (c *ChaseCamera) SetAspect(width, height int) {
	if height > 0 {
		c.Aspect = float32(width) / float32(height)
	}
}

// Position returns the eye position in world space.
func (c *ChaseCamera) Position() math.Vec3 {
	return math.Radial(c.Radius*(1-c.Inset), c.Angle, c.Z-c.Trail)
}

// Target returns the point the camera looks at.
func (c *ChaseCamera) Target() math.Vec3 {
	return math.Radial(c.Radius*(1-c.Inset), c.Angle, c.Z+c.LookAhead)
}

// Up returns the camera up direction, from the wall towards the axis.
func (c *ChaseCamera) Up() math.Vec3 {
	return math.Radial(1, c.Angle, 0).Scale(-1)
}

// ViewMatrix returns the view matrix for this camera.
func (c *ChaseCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target(), c.Up())
}

// ProjectionMatrix returns the perspective projection.
func (c *ChaseCamera) ProjectionMatrix() math.Mat4 {
	fov := float32(float64(c.FOV) * gomath.Pi / 180)
	return math.Perspective(fov, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *ChaseCamera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}
