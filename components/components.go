// Package components defines the ECS components carried by every particle.
package components

import "gonum.org/v1/gonum/spatial/r3"

// Position is the particle's current position in the domain cube.
type Position struct {
	r3.Vec
}

// PrevPosition is the position at the start of the current tick. Collision
// response rolls back to it, and transition completion derives the exit
// velocity from the last frame's delta against it.
type PrevPosition struct {
	r3.Vec
}

// Velocity is the free-roaming velocity. BaseY is the last assigned vertical
// velocity baseline; the externally supplied scroll drift perturbs the
// vertical component away from it and decay pulls it back.
type Velocity struct {
	r3.Vec
	BaseY float64
}

// Transition holds interpolation state for a formation change. While Active,
// velocity integration is suspended and the particle moves along
// Origin + (Target-Origin)·eased(progress).
type Transition struct {
	Origin r3.Vec
	Target r3.Vec
	Active bool
}

// Body carries per-particle render hints. The core never interprets Size;
// it is passed through to the renderer.
type Body struct {
	Size float64
}
