// Package ui renders the interactive control panel with raygui.
package ui

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Panel is the left-side control panel: formation buttons, easing picker,
// transition duration slider, and overlay toggles.
type Panel struct {
	x, y    float32
	width   float32
	visible bool

	easings    []string
	easingList string // semicolon-joined for the combo box
	easingIdx  int32

	// DurationMs is the transition duration applied to shape changes
	DurationMs float32

	// Paused freezes the simulation while set
	Paused bool

	// ShowZone toggles the exclusion zone wireframe overlay
	ShowZone bool
}

// NewPanel creates the panel at the given position with transition defaults.
func NewPanel(x, y, width float32, easings []string, defaultEasing string, durationMs float64) *Panel {
	p := &Panel{
		x:          x,
		y:          y,
		width:      width,
		visible:    true,
		easings:    easings,
		easingList: strings.Join(easings, ";"),
		DurationMs: float32(durationMs),
	}
	for i, name := range easings {
		if name == defaultEasing {
			p.easingIdx = int32(i)
		}
	}
	return p
}

// Toggle switches panel visibility.
func (p *Panel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Easing returns the selected easing name.
func (p *Panel) Easing() string {
	if int(p.easingIdx) < len(p.easings) {
		return p.easings[p.easingIdx]
	}
	return ""
}

// Draw renders the panel and returns the shape the user clicked, or ""
// when nothing was selected this frame. Shape buttons are disabled while a
// transition is in flight.
func (p *Panel) Draw(shapeNames []string, currentShape string, transitioning bool) string {
	if !p.visible {
		return ""
	}

	const pad, rowH = float32(10), float32(30)
	panelY := p.y + pad
	panelX := p.x + pad
	innerW := p.width - 2*pad

	rows := float32(len(shapeNames)) + 7
	rl.DrawRectangle(int32(p.x), int32(p.y), int32(p.width),
		int32(rows*rowH+3*pad), rl.Color{R: 20, G: 24, B: 34, A: 220})

	rl.DrawText("Formation", int32(panelX), int32(panelY), 16, rl.White)
	panelY += rowH

	selected := ""
	for _, name := range shapeNames {
		label := name
		if name == currentShape {
			label = "> " + name
		}
		if transitioning {
			gui.Disable()
		}
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: innerW, Height: rowH - 6}, label) {
			selected = name
		}
		if transitioning {
			gui.Enable()
		}
		panelY += rowH
	}

	rl.DrawText("Easing", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	p.easingIdx = gui.ComboBox(
		rl.Rectangle{X: panelX, Y: panelY, Width: innerW, Height: rowH - 6},
		p.easingList, p.easingIdx)
	panelY += rowH

	rl.DrawText(fmt.Sprintf("Duration %.0f ms", p.DurationMs), int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	p.DurationMs = gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: innerW, Height: 20},
		"200", "8000",
		p.DurationMs, 200, 8000)
	panelY += rowH

	p.Paused = gui.CheckBox(
		rl.Rectangle{X: panelX, Y: panelY, Width: 20, Height: 20},
		"Pause", p.Paused)
	panelY += rowH
	p.ShowZone = gui.CheckBox(
		rl.Rectangle{X: panelX, Y: panelY, Width: 20, Height: 20},
		"Show exclusion zone", p.ShowZone)

	return selected
}
