// Package camera provides the orbit camera of the viewer.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Echtzeit-Computergrafik-WS23/glance/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // radians, positive looks down on the center
	Yaw      float32 // radians

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32 // radians per pixel
	ZoomSensitivity float32 // fraction of the distance per wheel step
}

// NewOrbitCamera creates an orbit camera looking down on the scene
// from 18 degrees.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        4.5,
		Pitch:           math32.Pi / 10,
		MinDistance:     3,
		MaxDistance:     10,
		MinPitch:        0,
		MaxPitch:        1.2,
		DragSensitivity: 0.01,
		ZoomSensitivity: 0.2,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cosPitch := math32.Cos(c.Pitch)
	offset := math.Vec3{
		X: c.Distance * cosPitch * math32.Sin(c.Yaw),
		Y: c.Distance * math32.Sin(c.Pitch),
		Z: c.Distance * cosPitch * math32.Cos(c.Yaw),
	}
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
