package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const halfBlock = "▀"

var (
	glyphFontOnce sync.Once
	glyphFont     *truetype.Font
	glyphFontErr  error
)

func parseGlyphFont() (*truetype.Font, error) {
	glyphFontOnce.Do(func() {
		glyphFont, glyphFontErr = truetype.Parse(gomono.TTF)
		if glyphFontErr != nil {
			glyphFontErr = fmt.Errorf("failed to parse font: %w", glyphFontErr)
		}
	})
	return glyphFont, glyphFontErr
}

func glyphFace(size float64) (font.Face, error) {
	f, err := parseGlyphFont()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// measureText returns the width and height gg's DrawStringAnchored anchors on
// for a face set with SetFontFace.
func measureText(face font.Face, s string) (w, h float64) {
	return float64(font.MeasureString(face, s) >> 6), float64(face.Metrics().Height) / 64
}

// rasterSurface is a gg context magnified by scale. Everything drawn on it
// is in logical canvas units; text is rasterized at the magnified size
// instead of being stretched afterwards.
type rasterSurface struct {
	*gg.Context
	scale float64
}

func newRasterSurface(canvasW, canvasH, scale, glyphSize float64) (*rasterSurface, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid scale %g", scale)
	}
	w := int(math.Ceil(canvasW * scale))
	h := int(math.Ceil(canvasH * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	face, err := glyphFace(glyphSize * scale)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(w, h)
	dc.SetFontFace(face)
	dc.Scale(scale, scale)
	return &rasterSurface{Context: dc, scale: scale}, nil
}

func (r *rasterSurface) DrawStringAnchored(s string, x, y, ax, ay float64) {
	r.Context.Push()
	defer r.Context.Pop()
	r.Context.Scale(1/r.scale, 1/r.scale)
	r.Context.DrawStringAnchored(s, x*r.scale, y*r.scale, ax, ay)
}

func (r *rasterSurface) Magnification() float64 {
	return r.scale
}

// fitScale is the largest magnification at which the logical canvas fits in
// cols×rows terminal cells, two pixels per cell vertically.
func fitScale(cols, rows int, canvasW, canvasH float64) float64 {
	if cols < 1 || rows < 1 || canvasW <= 0 || canvasH <= 0 {
		return 0
	}
	return math.Min(float64(cols)/canvasW, float64(2*rows)/canvasH)
}

// cellToCanvas maps a terminal cell to the logical point at its center.
func cellToCanvas(col, row int, scale float64) Point {
	return Point{
		X: (float64(col) + 0.5) / scale,
		Y: (float64(2*row) + 1) / scale,
	}
}

// renderHalfBlocks encodes img as terminal rows, one cell per pair of
// vertically stacked pixels. Runs of identical cells share one style.
func renderHalfBlocks(img image.Image) []string {
	b := img.Bounds()
	rows := (b.Dy() + 1) / 2
	lines := make([]string, 0, rows)

	for row := 0; row < rows; row++ {
		var line strings.Builder
		var runTop, runBottom string
		runLen := 0
		flush := func() {
			if runLen == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(runTop)).
				Background(lipgloss.Color(runBottom))
			line.WriteString(style.Render(strings.Repeat(halfBlock, runLen)))
			runLen = 0
		}

		for x := b.Min.X; x < b.Max.X; x++ {
			y := b.Min.Y + 2*row
			top := hexColor(img.At(x, y))
			bottom := hexColor(paperColor)
			if y+1 < b.Max.Y {
				bottom = hexColor(img.At(x, y+1))
			}
			if runLen > 0 && (top != runTop || bottom != runBottom) {
				flush()
			}
			runTop, runBottom = top, bottom
			runLen++
		}
		flush()
		lines = append(lines, line.String())
	}
	return lines
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
