package main

import (
	"errors"
	"image/color"
	"log"
	"math"

	"github.com/google/uuid"
)

var ErrStrokeFinalized = errors.New("stroke is finalized")

// Surface is everything a Drawable needs to paint itself. *gg.Context
// satisfies it as-is; pdfSurface adapts gofpdf to the same calls.
type Surface interface {
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)
	SetColor(c color.Color)
	SetLineWidth(width float64)
	SetLineCapRound()
	SetLineJoinRound()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	DrawCircle(x, y, r float64)
	Fill()
	Clear()
	DrawStringAnchored(s string, x, y, ax, ay float64)
}

// Drawable is a committed unit of art. The set of implementations is closed:
// only *Stroke and *Glyph exist.
type Drawable interface {
	ID() string
	Kind() DrawableKind
	Render(s Surface)
	drawable()
}

type Stroke struct {
	id        string
	points    []Point
	thickness float64
	color     color.Color
	finalized bool
}

// NewStroke starts a stroke at start. thickness and c are copied in; later
// tool changes never reach an existing stroke.
func NewStroke(start Point, thickness float64, c color.Color) *Stroke {
	return &Stroke{
		id:        uuid.NewString(),
		points:    []Point{start},
		thickness: thickness,
		color:     c,
	}
}

func (s *Stroke) ID() string         { return s.id }
func (s *Stroke) Kind() DrawableKind { return KindStroke }
func (s *Stroke) Thickness() float64 { return s.thickness }
func (s *Stroke) Color() color.Color { return s.color }
func (s *Stroke) Finalized() bool    { return s.finalized }
func (s *Stroke) drawable()          {}

// Points returns a copy of the recorded points.
func (s *Stroke) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Extend appends p. Only the active stroke may grow.
func (s *Stroke) Extend(p Point) error {
	if s.finalized {
		return ErrStrokeFinalized
	}
	s.points = append(s.points, p)
	return nil
}

// Finalize closes the stroke to further extension.
func (s *Stroke) Finalize() {
	s.finalized = true
}

// Render draws the polyline through all points. A single point draws
// nothing; the dot under the pointer is the cursor preview's job.
func (s *Stroke) Render(dc Surface) {
	switch len(s.points) {
	case 0:
		log.Printf("stroke %s has no points, skipping", s.id)
		return
	case 1:
		return
	}
	dc.SetColor(s.color)
	dc.SetLineWidth(s.thickness)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	dc.MoveTo(s.points[0].X, s.points[0].Y)
	for _, p := range s.points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.Stroke()
}

// Glyph is a stamped symbol. Every field is fixed at construction.
type Glyph struct {
	id       string
	symbol   string
	position Point
	rotation float64
}

func NewGlyph(symbol string, position Point, rotationDegrees float64) *Glyph {
	return &Glyph{
		id:       uuid.NewString(),
		symbol:   symbol,
		position: position,
		rotation: rotationDegrees,
	}
}

func (g *Glyph) ID() string               { return g.id }
func (g *Glyph) Kind() DrawableKind       { return KindGlyph }
func (g *Glyph) Symbol() string           { return g.symbol }
func (g *Glyph) Position() Point          { return g.position }
func (g *Glyph) RotationDegrees() float64 { return g.rotation }
func (g *Glyph) drawable()                {}

func (g *Glyph) Render(dc Surface) {
	drawGlyph(dc, g.symbol, g.position, g.rotation)
}

// drawGlyph centers symbol on at, rotated about its own center. The
// transform is pushed and popped so it never leaks into later draws.
func drawGlyph(dc Surface, symbol string, at Point, rotationDegrees float64) {
	if symbol == "" {
		return
	}
	dc.Push()
	defer dc.Pop()
	dc.Translate(at.X, at.Y)
	dc.Rotate(radians(rotationDegrees))
	dc.SetColor(glyphColor)
	dc.DrawStringAnchored(symbol, 0, 0, 0.5, 0.5)
}

func radians(degrees float64) float64 {
	return math.Mod(degrees, 360) * math.Pi / 180
}
