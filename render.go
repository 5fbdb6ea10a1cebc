package main

// Renderer repaints one surface from scratch on every call. There is no
// incremental path: the committed record is replayed in full each frame.
type Renderer struct {
	surface Surface
	frames  int
}

func NewRenderer(dc Surface) *Renderer {
	return &Renderer{surface: dc}
}

// SetSurface swaps the target, e.g. after the window is resized.
func (r *Renderer) SetSurface(dc Surface) {
	r.surface = dc
}

func (r *Renderer) Surface() Surface {
	return r.surface
}

// Frames counts completed paints.
func (r *Renderer) Frames() int {
	return r.frames
}

// Paint replays h onto the surface and overlays cursor when it is non-nil.
func (r *Renderer) Paint(h *History, cursor *CursorPreview) {
	if r.surface == nil {
		return
	}
	h.ReplayAll(r.surface)
	if cursor != nil {
		cursor.Render(r.surface)
	}
	r.frames++
}
