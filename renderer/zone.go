package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/calder-vis/constel/geom"
)

var zoneColor = rl.Color{R: 255, G: 120, B: 120, A: 120}

// ZoneRenderer draws exclusion zone wireframes as a debug overlay.
type ZoneRenderer struct {
	// Enabled toggles the overlay
	Enabled bool
}

// NewZoneRenderer creates a zone renderer, initially disabled.
func NewZoneRenderer() *ZoneRenderer {
	return &ZoneRenderer{}
}

// Draw outlines the zone. Must be called between BeginMode3D and EndMode3D.
// No-op when disabled or zone is nil.
func (z *ZoneRenderer) Draw(zone geom.Solid) {
	if !z.Enabled || zone == nil {
		return
	}

	switch s := zone.(type) {
	case geom.Sphere:
		rl.DrawSphereWires(vec3(s.Center), float32(s.Radius), 12, 12, zoneColor)
	case geom.Cylinder:
		half := r3.Scale(s.Height/2, s.Axis.Unit())
		start := r3.Sub(s.Center, half)
		end := r3.Add(s.Center, half)
		rl.DrawCylinderWiresEx(vec3(start), vec3(end),
			float32(s.Radius), float32(s.Radius), 16, zoneColor)
	case geom.Box:
		rl.DrawCubeWires(vec3(s.Center),
			float32(s.Width), float32(s.Height), float32(s.Depth), zoneColor)
	}
}
