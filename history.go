package main

import "log"

// History owns every committed Drawable plus the redo buffer. A Drawable
// lives in exactly one of the two slices at a time.
type History struct {
	undoStack []Drawable
	redoStack []Drawable
}

func NewHistory() *History {
	return &History{
		undoStack: []Drawable{},
		redoStack: []Drawable{},
	}
}

// Push commits d and drops anything that was waiting to be redone.
func (h *History) Push(d Drawable) {
	h.undoStack = append(h.undoStack, d)
	clear(h.redoStack)
	h.redoStack = h.redoStack[:0]
}

// Undo moves the newest committed Drawable to the redo buffer. It reports
// whether anything moved.
func (h *History) Undo() bool {
	if len(h.undoStack) == 0 {
		return false
	}

	lastIndex := len(h.undoStack) - 1
	d := h.undoStack[lastIndex]
	h.undoStack[lastIndex] = nil
	h.undoStack = h.undoStack[:lastIndex]

	h.redoStack = append(h.redoStack, d)
	log.Printf("undo %s %s", d.Kind(), d.ID())
	return true
}

// Redo moves the most recently undone Drawable back on top.
func (h *History) Redo() bool {
	if len(h.redoStack) == 0 {
		return false
	}

	lastIndex := len(h.redoStack) - 1
	d := h.redoStack[lastIndex]
	h.redoStack[lastIndex] = nil
	h.redoStack = h.redoStack[:lastIndex]

	h.undoStack = append(h.undoStack, d)
	log.Printf("redo %s %s", d.Kind(), d.ID())
	return true
}

func (h *History) Clear() {
	h.undoStack = []Drawable{}
	h.redoStack = []Drawable{}
}

// Committed returns the committed Drawables, oldest first.
func (h *History) Committed() []Drawable {
	return append([]Drawable(nil), h.undoStack...)
}

// RedoBuffer returns the redo buffer in stack order; the last element is
// the next one Redo restores.
func (h *History) RedoBuffer() []Drawable {
	return append([]Drawable(nil), h.redoStack...)
}

func (h *History) Len() int {
	return len(h.undoStack)
}

func (h *History) Last() Drawable {
	if len(h.undoStack) == 0 {
		return nil
	}
	return h.undoStack[len(h.undoStack)-1]
}

// ReplayAll paints fresh paper and every committed Drawable in order.
// It is the only way anything committed reaches a surface.
func (h *History) ReplayAll(dc Surface) {
	dc.SetColor(paperColor)
	dc.Clear()
	for _, d := range h.undoStack {
		d.Render(dc)
	}
}
