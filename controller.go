package main

import "log"

// Controller turns pointer, wheel and tool events into History and ToolState
// changes and repaints synchronously after each one.
//
// A tool action that arrives mid-gesture settles the gesture first: an
// in-progress stroke is finalized (it stays committed), a pending glyph
// placement is dropped.
type Controller struct {
	history  *History
	tools    ToolState
	cursor   CursorPreview
	renderer *Renderer

	state   InputState
	active  *Stroke
	pointer Point
}

func NewController(h *History, tools ToolState, r *Renderer) *Controller {
	c := &Controller{
		history:  h,
		tools:    tools,
		renderer: r,
		state:    StateIdle,
	}
	c.cursor = NewCursorPreview(tools, Point{}, false)
	return c
}

func (c *Controller) History() *History     { return c.history }
func (c *Controller) Tools() ToolState      { return c.tools }
func (c *Controller) Cursor() CursorPreview { return c.cursor }
func (c *Controller) State() InputState     { return c.state }
func (c *Controller) Renderer() *Renderer   { return c.renderer }
func (c *Controller) ActiveStroke() *Stroke { return c.active }

func (c *Controller) PointerDown(p Point) {
	if c.state != StateIdle {
		c.settle()
	}
	c.pointer = p
	c.cursor = c.cursor.MoveTo(p)

	switch c.tools.Mode {
	case ToolStroke:
		c.active = NewStroke(p, c.tools.Thickness, c.tools.Color)
		c.history.Push(c.active)
		c.state = StateDrawing
	case ToolGlyph:
		c.state = StatePlacing
	}
	c.repaint()
}

func (c *Controller) PointerMove(p Point) {
	c.pointer = p
	c.cursor = c.cursor.MoveTo(p)

	if c.state == StateDrawing {
		if err := c.active.Extend(p); err != nil {
			log.Printf("pointer move: %v", err)
		}
	}
	c.repaint()
}

func (c *Controller) PointerUp() {
	switch c.state {
	case StateDrawing:
		c.finishStroke()
	case StatePlacing:
		g := NewGlyph(c.tools.Glyph, c.pointer, c.tools.Rotation)
		c.history.Push(g)
		c.state = StateIdle
	default:
		return
	}
	c.repaint()
}

// PointerLeave hides the preview and repaints only what is committed. The
// release may never arrive once the pointer is gone, so the gesture is
// settled here.
func (c *Controller) PointerLeave() {
	c.settle()
	c.cursor.Visible = false
	c.renderer.Paint(c.history, nil)
}

// Scroll turns the stamp by deltaY degrees.
func (c *Controller) Scroll(deltaY float64) {
	c.tools = c.tools.Rotate(deltaY)
	c.cursor = c.rebuildCursor()
	c.repaint()
}

func (c *Controller) Undo() bool {
	c.settle()
	changed := c.history.Undo()
	if changed {
		c.repaint()
	}
	return changed
}

func (c *Controller) Redo() bool {
	c.settle()
	changed := c.history.Redo()
	if changed {
		c.repaint()
	}
	return changed
}

func (c *Controller) Clear() {
	c.settle()
	c.history.Clear()
	c.repaint()
}

func (c *Controller) SelectThickness(thickness float64) {
	c.settle()
	c.tools = c.tools.SelectThickness(thickness)
	c.cursor = c.rebuildCursor()
	c.repaint()
}

func (c *Controller) UseBrush() {
	c.settle()
	c.tools = c.tools.UseBrush()
	c.cursor = c.rebuildCursor()
	c.repaint()
}

func (c *Controller) SelectGlyph(symbol string) {
	if symbol == "" {
		return
	}
	c.settle()
	c.tools = c.tools.SelectGlyph(symbol)
	c.cursor = c.rebuildCursor()
	c.repaint()
}

// Repaint redraws without changing anything.
func (c *Controller) Repaint() {
	c.repaint()
}

func (c *Controller) repaint() {
	if c.cursor.Visible {
		c.renderer.Paint(c.history, &c.cursor)
		return
	}
	c.renderer.Paint(c.history, nil)
}

func (c *Controller) rebuildCursor() CursorPreview {
	return NewCursorPreview(c.tools, c.cursor.Position, c.cursor.Visible)
}

func (c *Controller) settle() {
	switch c.state {
	case StateDrawing:
		c.finishStroke()
	case StatePlacing:
		c.state = StateIdle
	}
}

func (c *Controller) finishStroke() {
	if c.active == nil {
		c.state = StateIdle
		return
	}
	c.active.Finalize()
	c.active = nil
	c.state = StateIdle
}
