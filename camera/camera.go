// Package camera provides an orbit camera for viewing the simulation domain.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Camera orbits the domain origin at a fixed distance, controlled by yaw
// and pitch angles. Supports mouse-drag rotation, wheel zoom, and an idle
// auto-rotate.
type Camera struct {
	// Yaw is the horizontal orbit angle in radians
	Yaw float64

	// Pitch is the vertical orbit angle in radians, clamped to PitchLimit
	Pitch float64

	// Distance is the orbit radius in world units
	Distance float64

	// FOVY is the vertical field of view in degrees
	FOVY float64

	// PitchLimit bounds |Pitch| so the camera never flips over the pole
	PitchLimit float64

	// Sensitivity converts dragged pixels to radians
	Sensitivity float64

	// AutoRotate is the idle yaw rate in radians per second, 0 disables
	AutoRotate float64

	// Zoom constraints on Distance
	MinDistance, MaxDistance float64
}

// New creates a camera orbiting the origin. The distance also sets the zoom
// range: between a quarter and four times the initial orbit radius.
func New(distance, fovy, pitchLimit, sensitivity, autoRotate float64) *Camera {
	return &Camera{
		Yaw:         math.Pi / 4,
		Pitch:       math.Pi / 8,
		Distance:    distance,
		FOVY:        fovy,
		PitchLimit:  pitchLimit,
		Sensitivity: sensitivity,
		AutoRotate:  autoRotate,
		MinDistance: distance * 0.25,
		MaxDistance: distance * 4,
	}
}

// Drag rotates the camera by a mouse delta in pixels.
func (c *Camera) Drag(dx, dy float64) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	c.clampPitch()
}

// Zoom adjusts the orbit radius by mouse wheel steps. Positive steps move
// the camera closer.
func (c *Camera) Zoom(steps float64) {
	c.Distance *= math.Pow(0.9, steps)
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Step advances the idle auto-rotation by dt seconds.
func (c *Camera) Step(dt float64) {
	c.Yaw += c.AutoRotate * dt
}

// Eye returns the camera position in world coordinates.
func (c *Camera) Eye() r3.Vec {
	cp := math.Cos(c.Pitch)
	return r3.Vec{
		X: c.Distance * cp * math.Cos(c.Yaw),
		Y: c.Distance * math.Sin(c.Pitch),
		Z: c.Distance * cp * math.Sin(c.Yaw),
	}
}

// DepthOf returns the distance from the eye to a world point, used for
// depth-based fading.
func (c *Camera) DepthOf(p r3.Vec) float64 {
	return r3.Norm(r3.Sub(p, c.Eye()))
}

func (c *Camera) clampPitch() {
	if c.Pitch > c.PitchLimit {
		c.Pitch = c.PitchLimit
	}
	if c.Pitch < -c.PitchLimit {
		c.Pitch = -c.PitchLimit
	}
}
