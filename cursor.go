package main

import "image/color"

// CursorPreview is the live tool indicator under the pointer. It is never
// pushed to History and is rebuilt whole whenever the tool changes.
type CursorPreview struct {
	Kind     CursorKind
	Position Point
	Visible  bool

	Diameter float64
	Color    color.Color

	Symbol   string
	Rotation float64
}

// NewCursorPreview derives the preview for tools at pos.
func NewCursorPreview(tools ToolState, pos Point, visible bool) CursorPreview {
	switch tools.Mode {
	case ToolGlyph:
		return CursorPreview{
			Kind:     CursorGlyph,
			Position: pos,
			Visible:  visible,
			Symbol:   tools.Glyph,
			Rotation: tools.Rotation,
		}
	default:
		return CursorPreview{
			Kind:     CursorDot,
			Position: pos,
			Visible:  visible,
			Diameter: tools.Thickness,
			Color:    tools.Color,
		}
	}
}

// MoveTo returns the same preview at a new position.
func (c CursorPreview) MoveTo(pos Point) CursorPreview {
	c.Position = pos
	c.Visible = true
	return c
}

func (c CursorPreview) Render(dc Surface) {
	if !c.Visible {
		return
	}
	switch c.Kind {
	case CursorDot:
		dc.SetColor(c.Color)
		dc.DrawCircle(c.Position.X, c.Position.Y, c.Diameter/2)
		dc.Fill()
	case CursorGlyph:
		drawGlyph(dc, c.Symbol, c.Position, c.Rotation)
	}
}
