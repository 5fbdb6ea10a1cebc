package main

import (
	"fmt"
	"image/color"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// recordingSurface logs every call. Clear starts a new frame, so ops always
// holds the most recent paint.
type recordingSurface struct {
	ops    []string
	depth  int
	clears int
}

func (r *recordingSurface) rec(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recordingSurface) Push() {
	r.depth++
	r.rec("Push")
}

func (r *recordingSurface) Pop() {
	r.depth--
	r.rec("Pop")
}

func (r *recordingSurface) Translate(x, y float64)       { r.rec("Translate %g %g", x, y) }
func (r *recordingSurface) Rotate(angle float64)         { r.rec("Rotate %.4f", angle) }
func (r *recordingSurface) SetColor(c color.Color)       { r.rec("SetColor %s", hexColor(c)) }
func (r *recordingSurface) SetLineWidth(w float64)       { r.rec("SetLineWidth %g", w) }
func (r *recordingSurface) SetLineCapRound()             { r.rec("SetLineCapRound") }
func (r *recordingSurface) SetLineJoinRound()            { r.rec("SetLineJoinRound") }
func (r *recordingSurface) MoveTo(x, y float64)          { r.rec("MoveTo %g %g", x, y) }
func (r *recordingSurface) LineTo(x, y float64)          { r.rec("LineTo %g %g", x, y) }
func (r *recordingSurface) Stroke()                      { r.rec("Stroke") }
func (r *recordingSurface) DrawCircle(x, y, rad float64) { r.rec("DrawCircle %g %g %g", x, y, rad) }
func (r *recordingSurface) Fill()                        { r.rec("Fill") }

func (r *recordingSurface) Clear() {
	r.clears++
	r.ops = r.ops[:0]
	r.rec("Clear")
}

func (r *recordingSurface) DrawStringAnchored(s string, x, y, ax, ay float64) {
	r.rec("DrawStringAnchored %s %g %g %g %g", s, x, y, ax, ay)
}

func (r *recordingSurface) frame() []string {
	return append([]string(nil), r.ops...)
}

func (r *recordingSurface) contains(prefix string) bool {
	for _, op := range r.ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

func ids(ds []Drawable) []string {
	out := []string{}
	for _, d := range ds {
		out = append(out, d.ID())
	}
	return out
}

func newTestController(seed int64) (*Controller, *recordingSurface) {
	surface := &recordingSurface{}
	tools := NewToolState(3, rand.New(rand.NewSource(seed)))
	return NewController(NewHistory(), tools, NewRenderer(surface)), surface
}

func threePointStroke(x float64) *Stroke {
	s := NewStroke(Pt(x, 0), 2, color.Black)
	s.Extend(Pt(x+1, 1))
	s.Extend(Pt(x+2, 2))
	s.Finalize()
	return s
}
