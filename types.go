package main

import (
	"fmt"
)

func (m ToolMode) String() string {
	switch m {
	case ToolStroke:
		return "BRUSH"
	case ToolGlyph:
		return "GLYPH"
	default:
		return "UNKNOWN"
	}
}

func (s InputState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StatePlacing:
		return "placing"
	default:
		return fmt.Sprintf("InputState(%d)", int(s))
	}
}

func (k DrawableKind) String() string {
	switch k {
	case KindStroke:
		return "stroke"
	case KindGlyph:
		return "glyph"
	default:
		return fmt.Sprintf("DrawableKind(%d)", int(k))
	}
}

func (f ExportFormat) Ext() string {
	if f == ExportPDF {
		return ".pdf"
	}
	return ".png"
}
