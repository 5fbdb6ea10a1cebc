package main

import "image/color"

type Mode int

const (
	ModeNormal Mode = iota
	ModeGlyphInput
	ModeHelp
)

// ToolMode selects which kind of Drawable the next press produces.
type ToolMode int

const (
	ToolStroke ToolMode = iota
	ToolGlyph
)

type InputState int

const (
	StateIdle InputState = iota
	StateDrawing
	StatePlacing
)

type DrawableKind int

const (
	KindStroke DrawableKind = iota
	KindGlyph
)

type CursorKind int

const (
	CursorDot CursorKind = iota
	CursorGlyph
)

type ExportFormat int

const (
	ExportPNG ExportFormat = iota
	ExportPDF
)

const (
	defaultCanvasWidth  = 128
	defaultCanvasHeight = 64
	defaultExportScale  = 4
	defaultGlyphSize    = 12
	defaultRotationStep = 15
	minThickness        = 0.5
)

var (
	paperColor  = color.White
	glyphColor  = color.Black
	defaultInk  = color.RGBA{0, 0, 0, 255}
	defaultSize = []float64{1, 3, 6}
	defaultPack = []string{"☺", "♥", "♪", "☼", "♣"}
)
