// Package renderer draws simulation frames with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/calder-vis/constel/camera"
	"github.com/calder-vis/constel/sim"
)

var (
	particleColor   = rl.Color{R: 235, G: 240, B: 255, A: 255}
	connectionColor = rl.Color{R: 120, G: 160, B: 255, A: 255}
	domainColor     = rl.Color{R: 60, G: 70, B: 90, A: 255}
)

// ParticleRenderer renders particles and their connections in 3D.
type ParticleRenderer struct {
	bound float64
}

// NewParticleRenderer creates a renderer for a domain of the given
// half-width.
func NewParticleRenderer(bound float64) *ParticleRenderer {
	return &ParticleRenderer{bound: bound}
}

// Draw renders one frame. Must be called between BeginMode3D and EndMode3D.
func (r *ParticleRenderer) Draw(frame sim.Frame, cam *camera.Camera) {
	near := cam.Distance - r.bound
	far := cam.Distance + r.bound

	for i, p := range frame.Positions {
		fade := depthFade(cam.DepthOf(p), near, far)
		c := particleColor
		c.A = uint8(255 * fade)
		size := float32(frame.Sizes[i]) * 0.5
		rl.DrawSphere(vec3(p), size, c)
	}

	for _, conn := range frame.Connections {
		a := frame.Positions[conn.A]
		b := frame.Positions[conn.B]
		mid := r3.Scale(0.5, r3.Add(a, b))
		fade := depthFade(cam.DepthOf(mid), near, far)
		c := connectionColor
		c.A = uint8(160 * fade)
		rl.DrawLine3D(vec3(a), vec3(b), c)
	}
}

// DrawDomain outlines the simulation domain cube.
func (r *ParticleRenderer) DrawDomain() {
	side := float32(2 * r.bound)
	rl.DrawCubeWires(rl.Vector3{}, side, side, side, domainColor)
}

// depthFade maps a camera distance to an alpha factor in [0.25, 1]: near
// points fully opaque, far points dimmed but never invisible.
func depthFade(depth, near, far float64) float64 {
	if far <= near {
		return 1
	}
	t := (depth - near) / (far - near)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return 1 - 0.75*t
}

func vec3(v r3.Vec) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
