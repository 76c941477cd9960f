package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD draws the top-right status line.
type HUD struct {
	screenW int32
}

// NewHUD creates a HUD for the given screen width.
func NewHUD(screenW int32) *HUD {
	return &HUD{screenW: screenW}
}

// Draw renders the status line for one frame.
func (h *HUD) Draw(tick int64, particles, connections int, shape string, transitioning bool) {
	status := fmt.Sprintf("tick %d  particles %d  links %d  shape %s", tick, particles, connections, shape)
	if transitioning {
		status += "  [transition]"
	}
	w := rl.MeasureText(status, 14)
	rl.DrawText(status, h.screenW-w-10, 10, 14, rl.Gray)
	rl.DrawFPS(h.screenW-90, 30)
}
