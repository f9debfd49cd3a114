// Package camera provides the perspective camera used by the render loop.
package camera

import (
	"github.com/Faultbox/roonium/pkg/math"
)

// Clip planes. Fixed for this renderer.
const (
	Near float32 = 0.1
	Far  float32 = 100.0
)

// Camera is a look-at camera with a symmetric perspective frustum.
type Camera struct {
	Position math.Vec3
	Up       math.Vec3
	Target   math.Vec3

	// FOV is the full vertical field of view in radians.
	FOV float32
	// Aspect is width/height of the framebuffer.
	Aspect float32
}

// Default returns the camera the renderer starts with: slightly above and
// in front of the origin, looking at it.
func Default() Camera {
	return Camera{
		Position: math.Vec3{X: 0, Y: 1, Z: 3},
		Target:   math.Vec3{X: 0, Y: 0, Z: 0},
		Up:       math.Vec3{X: 0, Y: 1, Z: 0},
		FOV:      math.DegToRad(45),
		Aspect:   800.0 / 600.0,
	}
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() math.Mat4 {
	return math.Perspective(c.FOV, c.Aspect, Near, Far)
}

// View returns the view matrix.
func (c *Camera) View() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// SetViewport recomputes the aspect ratio from a framebuffer size.
// A zero-area framebuffer (minimized window) keeps the previous aspect.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// Check reports whether the view basis would be degenerate.
func (c *Camera) Check() error {
	return math.CheckLookAt(c.Position, c.Target, c.Up)
}
