package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/fogleman/gg"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/gomono"
)

var ErrNothingToExport = errors.New("nothing to export")

const pdfFontFamily = "gomono"

// exportDrawing writes the committed record to a new file named after now and
// returns its path. The cursor preview never appears in an export.
func exportDrawing(h *History, cfg *Config, format ExportFormat, now time.Time) (string, error) {
	if h.Len() == 0 {
		return "", ErrNothingToExport
	}
	path := freeExportPath(cfg, "drawthingy-"+now.Format("20060102-150405"), format.Ext())

	var err error
	switch format {
	case ExportPDF:
		err = exportPDF(h, cfg, path)
	default:
		err = exportPNG(h, cfg, path)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

// freeExportPath returns the first of base.ext, base-2.ext, base-3.ext ...
// that does not exist yet.
func freeExportPath(cfg *Config, base, ext string) string {
	path := cfg.GetSavePath(base + ext)
	for n := 2; ; n++ {
		if _, err := os.Stat(path); err != nil {
			return path
		}
		path = cfg.GetSavePath(base + "-" + strconv.Itoa(n) + ext)
	}
}

func exportPNG(h *History, cfg *Config, path string) error {
	dc, err := newRasterSurface(cfg.CanvasWidth, cfg.CanvasHeight, cfg.ExportScale, cfg.GlyphSize)
	if err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	h.ReplayAll(dc)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	return nil
}

func exportPDF(h *History, cfg *Config, path string) error {
	dc := renderPDF(h, cfg)
	if err := dc.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	return nil
}

func renderPDF(h *History, cfg *Config) *pdfSurface {
	dc := newPDFSurface(cfg.CanvasWidth*cfg.ExportScale, cfg.CanvasHeight*cfg.ExportScale, cfg.GlyphSize)
	dc.matrix = dc.matrix.Scale(cfg.ExportScale, cfg.ExportScale)
	h.ReplayAll(dc)
	return dc
}

type pdfOpKind int

const (
	pdfMoveTo pdfOpKind = iota
	pdfLineTo
	pdfCircle
)

type pdfOp struct {
	kind    pdfOpKind
	x, y, r float64
}

// pdfSurface replays the same drawing calls as a gg context onto a gofpdf
// page. gofpdf's own transforms are only used for rotated text; everything
// else is mapped through matrix before it reaches the page.
type pdfSurface struct {
	pdf       *gofpdf.Fpdf
	width     float64
	height    float64
	glyphSize float64

	matrix    gg.Matrix
	stack     []gg.Matrix
	color     color.Color
	lineWidth float64
	pending   []pdfOp
}

func newPDFSurface(width, height, glyphSize float64) *pdfSurface {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddUTF8FontFromBytes(pdfFontFamily, "", gomono.TTF)
	pdf.AddPage()
	pdf.SetFont(pdfFontFamily, "", glyphSize)

	return &pdfSurface{
		pdf:       pdf,
		width:     width,
		height:    height,
		glyphSize: glyphSize,
		matrix:    gg.Identity(),
		color:     color.Black,
		lineWidth: 1,
	}
}

func (s *pdfSurface) Push() {
	s.stack = append(s.stack, s.matrix)
}

func (s *pdfSurface) Pop() {
	if len(s.stack) == 0 {
		return
	}
	s.matrix = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *pdfSurface) Translate(x, y float64)     { s.matrix = s.matrix.Translate(x, y) }
func (s *pdfSurface) Rotate(angle float64)       { s.matrix = s.matrix.Rotate(angle) }
func (s *pdfSurface) SetColor(c color.Color)     { s.color = c }
func (s *pdfSurface) SetLineWidth(width float64) { s.lineWidth = width }
func (s *pdfSurface) SetLineCapRound()           { s.pdf.SetLineCapStyle("round") }
func (s *pdfSurface) SetLineJoinRound()          { s.pdf.SetLineJoinStyle("round") }

func (s *pdfSurface) MoveTo(x, y float64) {
	x, y = s.matrix.TransformPoint(x, y)
	s.pending = append(s.pending, pdfOp{kind: pdfMoveTo, x: x, y: y})
}

func (s *pdfSurface) LineTo(x, y float64) {
	x, y = s.matrix.TransformPoint(x, y)
	s.pending = append(s.pending, pdfOp{kind: pdfLineTo, x: x, y: y})
}

func (s *pdfSurface) DrawCircle(x, y, r float64) {
	x, y = s.matrix.TransformPoint(x, y)
	s.pending = append(s.pending, pdfOp{kind: pdfCircle, x: x, y: y, r: r * s.scale()})
}

func (s *pdfSurface) Stroke() {
	r, g, b := rgb(s.color)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetLineWidth(s.lineWidth * s.scale())
	s.flush("D")
}

func (s *pdfSurface) Fill() {
	r, g, b := rgb(s.color)
	s.pdf.SetFillColor(r, g, b)
	s.flush("F")
}

func (s *pdfSurface) Clear() {
	s.pending = s.pending[:0]
	r, g, b := rgb(s.color)
	s.pdf.SetFillColor(r, g, b)
	s.pdf.Rect(0, 0, s.width, s.height, "F")
}

func (s *pdfSurface) DrawStringAnchored(text string, x, y, ax, ay float64) {
	wx, wy := s.matrix.TransformPoint(x, y)
	angle := math.Atan2(s.matrix.YX, s.matrix.XX)
	size := s.glyphSize * s.scale()

	face, err := glyphFace(size)
	if err != nil {
		log.Printf("pdf text %q: %v", text, err)
		return
	}
	w, h := measureText(face, text)

	s.pdf.SetFontSize(size)
	r, g, b := rgb(s.color)
	s.pdf.SetTextColor(r, g, b)

	s.pdf.TransformBegin()
	s.pdf.TransformRotate(-angle*180/math.Pi, wx, wy)
	s.pdf.Text(wx-ax*w, wy+ay*h, text)
	s.pdf.TransformEnd()
}

func (s *pdfSurface) flush(style string) {
	open := false
	for _, op := range s.pending {
		switch op.kind {
		case pdfMoveTo:
			s.pdf.MoveTo(op.x, op.y)
			open = true
		case pdfLineTo:
			s.pdf.LineTo(op.x, op.y)
			open = true
		case pdfCircle:
			s.pdf.Circle(op.x, op.y, op.r, style)
		}
	}
	if open {
		s.pdf.DrawPath(style)
	}
	s.pending = s.pending[:0]
}

func (s *pdfSurface) scale() float64 {
	return math.Hypot(s.matrix.XX, s.matrix.YX)
}

func rgb(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
