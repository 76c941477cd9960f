package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes camera controls and keyboard shortcuts, returning
// the vertical drift input for this frame.
func (g *Game) handleInput() float64 {
	dt := float64(rl.GetFrameTime())

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := rl.GetMouseDelta()
		g.cam.Drag(float64(delta.X), float64(delta.Y))
	} else {
		g.cam.Step(dt)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.cam.Zoom(float64(wheel))
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.panel.Paused = !g.panel.Paused
	}
	if rl.IsKeyPressed(rl.KeyZ) {
		g.panel.ShowZone = !g.panel.ShowZone
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}

	// Held arrow keys push particles vertically; the simulation smooths
	// the raw input.
	drift := 0.0
	if rl.IsKeyDown(rl.KeyUp) {
		drift += g.cfg.Particles.Speed
	}
	if rl.IsKeyDown(rl.KeyDown) {
		drift -= g.cfg.Particles.Speed
	}
	return drift
}
