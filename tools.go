package main

import (
	"image/color"
	"math/rand"
)

// ToolState is the single set of brush and stamp settings for a session.
// Brush fields (thickness, color) and stamp fields (glyph) are kept apart so
// switching modes never disturbs the other mode's settings.
type ToolState struct {
	Mode      ToolMode
	Thickness float64
	Color     color.Color
	Glyph     string
	Rotation  float64

	rng *rand.Rand
}

func NewToolState(thickness float64, rng *rand.Rand) ToolState {
	if thickness < minThickness {
		thickness = minThickness
	}
	return ToolState{
		Mode:      ToolStroke,
		Thickness: thickness,
		Color:     defaultInk,
		rng:       rng,
	}
}

// SelectThickness switches to brush mode with a new size and, with it, a new
// random color.
func (t ToolState) SelectThickness(thickness float64) ToolState {
	if thickness < minThickness {
		thickness = minThickness
	}
	t.Mode = ToolStroke
	t.Thickness = thickness
	t.Color = t.randomColor()
	return t
}

// UseBrush returns to brush mode with thickness and color untouched.
func (t ToolState) UseBrush() ToolState {
	t.Mode = ToolStroke
	return t
}

// SelectGlyph switches to stamp mode. An empty symbol is ignored.
func (t ToolState) SelectGlyph(symbol string) ToolState {
	if symbol == "" {
		return t
	}
	t.Mode = ToolGlyph
	t.Glyph = symbol
	return t
}

// Rotate accumulates delta degrees. The value is unbounded; rendering
// reduces it modulo a full turn.
func (t ToolState) Rotate(delta float64) ToolState {
	t.Rotation += delta
	return t
}

func (t ToolState) randomColor() color.Color {
	var v uint32
	if t.rng != nil {
		v = t.rng.Uint32()
	} else {
		v = rand.Uint32()
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}
