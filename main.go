package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	if path := os.Getenv("DRAWTHINGY_LOG"); path != "" {
		f, err := tea.LogToFile(path, "drawthingy")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		initialModel(loadConfig()),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type model struct {
	width          int
	height         int
	mode           Mode
	helpScroll     int
	config         *Config
	ctrl           *Controller
	surface        *rasterSurface
	scale          float64
	pointerDown    bool
	pointerInside  bool
	kbX            int
	kbY            int
	kbDown         bool
	glyphIndex     int
	inputText      string
	inputCursorPos int
	errorMessage   string
	successMessage string
	now            func() time.Time
}

var (
	statusStyle  = lipgloss.NewStyle().Reverse(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func initialModel(config *Config) model {
	seed := time.Now().UnixNano()
	if config.HasSeed {
		seed = config.Seed
	}
	tools := NewToolState(config.ThicknessPresets[0], rand.New(rand.NewSource(seed)))
	ctrl := NewController(NewHistory(), tools, NewRenderer(nil))

	return model{
		config:     config,
		ctrl:       ctrl,
		glyphIndex: -1,
		now:        time.Now,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.MouseMsg:
		if m.mode == ModeNormal {
			m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeHelp:
			m.handleHelpKey(msg)
			return m, nil
		case ModeGlyphInput:
			m.handleGlyphInputKey(msg)
			m.releaseSettledPointers()
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// resize rebuilds the on-screen raster for the new terminal size. The
// history is untouched; the next paint replays it at the new scale.
func (m *model) resize() {
	m.surface = nil
	m.scale = fitScale(m.width, m.height-1, m.config.CanvasWidth, m.config.CanvasHeight)
	if m.scale <= 0 {
		m.ctrl.Renderer().SetSurface(nil)
		return
	}
	surface, err := newRasterSurface(m.config.CanvasWidth, m.config.CanvasHeight, m.scale, m.config.GlyphSize)
	if err != nil {
		log.Printf("resize: %v", err)
		m.errorMessage = err.Error()
		m.ctrl.Renderer().SetSurface(nil)
		return
	}
	m.surface = surface
	m.ctrl.Renderer().SetSurface(surface)
	m.ensureKeyboardPointerInBounds()
	m.ctrl.Repaint()
}

// canvasCells is the size of the drawing area in terminal cells.
func (m *model) canvasCells() (int, int) {
	if m.surface == nil {
		return 0, 0
	}
	return m.surface.Width(), (m.surface.Height() + 1) / 2
}

func (m *model) canvasPoint(col, row int) (Point, bool) {
	cols, rows := m.canvasCells()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return Point{}, false
	}
	return cellToCanvas(col, row, m.scale), true
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	switch msg.Type {
	case tea.MouseWheelUp:
		m.ctrl.Scroll(-m.config.RotationStep)
		return
	case tea.MouseWheelDown:
		m.ctrl.Scroll(m.config.RotationStep)
		return
	}

	p, inside := m.canvasPoint(msg.X, msg.Y)
	if !inside {
		if m.pointerInside {
			m.pointerInside = false
			m.pointerDown = false
			m.ctrl.PointerLeave()
		}
		return
	}
	m.pointerInside = true

	switch msg.Type {
	case tea.MouseLeft:
		if m.pointerDown {
			m.ctrl.PointerMove(p)
			return
		}
		m.pointerDown = true
		m.ctrl.PointerDown(p)
	case tea.MouseMotion:
		m.ctrl.PointerMove(p)
	case tea.MouseRelease:
		if !m.pointerDown {
			return
		}
		m.pointerDown = false
		m.ctrl.PointerUp()
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""

	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.mode = ModeHelp
		m.helpScroll = 0
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		if idx < len(m.config.ThicknessPresets) {
			m.ctrl.SelectThickness(m.config.ThicknessPresets[idx])
		}
	case "b":
		m.ctrl.UseBrush()
	case "g":
		m.glyphIndex = (m.glyphIndex + 1) % len(m.config.Glyphs)
		m.ctrl.SelectGlyph(m.config.Glyphs[m.glyphIndex])
	case "t":
		m.mode = ModeGlyphInput
		m.inputText = ""
		m.inputCursorPos = 0
	case "p":
		text, err := readClipboardText()
		if err != nil {
			m.errorMessage = fmt.Sprintf("Clipboard: %v", err)
			break
		}
		if glyph := glyphFromText(text); glyph != "" {
			m.ctrl.SelectGlyph(glyph)
		} else {
			m.errorMessage = "Clipboard has no text to stamp"
		}
	case "u", "ctrl+z":
		if !m.ctrl.Undo() {
			m.successMessage = "Nothing to undo"
		}
	case "r", "ctrl+y":
		if !m.ctrl.Redo() {
			m.successMessage = "Nothing to redo"
		}
	case "c":
		m.ctrl.Clear()
	case "x":
		m.export(ExportPNG)
	case "X":
		m.export(ExportPDF)
	case "[":
		m.ctrl.Scroll(-m.config.RotationStep)
	case "]":
		m.ctrl.Scroll(m.config.RotationStep)
	case " ":
		m.toggleKeyboardPen()
	case "h", "j", "k", "l", "H", "J", "K", "L",
		"left", "right", "up", "down",
		"shift+left", "shift+right", "shift+up", "shift+down":
		m.handleNavigation(key, m.getMoveSpeed(key))
	}
	m.releaseSettledPointers()
	return m, nil
}

func (m *model) export(format ExportFormat) {
	path, err := exportDrawing(m.ctrl.History(), m.config, format, m.now())
	if err != nil {
		if errors.Is(err, ErrNothingToExport) {
			m.errorMessage = "Nothing to export"
			return
		}
		log.Printf("export: %v", err)
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		return
	}
	m.successMessage = "Exported " + path
}

// handleGlyphInputKey collects a custom glyph. Enter selects it, Esc
// abandons it.
func (m *model) handleGlyphInputKey(msg tea.KeyMsg) {
	runes := []rune(m.inputText)
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.inputText = ""
		m.inputCursorPos = 0
	case tea.KeyEnter:
		m.mode = ModeNormal
		if glyph := glyphFromText(m.inputText); glyph != "" {
			m.ctrl.SelectGlyph(glyph)
		}
		m.inputText = ""
		m.inputCursorPos = 0
	case tea.KeyBackspace:
		if m.inputCursorPos > 0 {
			runes = append(runes[:m.inputCursorPos-1], runes[m.inputCursorPos:]...)
			m.inputCursorPos--
			m.inputText = string(runes)
		}
	case tea.KeyLeft:
		if m.inputCursorPos > 0 {
			m.inputCursorPos--
		}
	case tea.KeyRight:
		if m.inputCursorPos < len(runes) {
			m.inputCursorPos++
		}
	case tea.KeySpace, tea.KeyRunes:
		insert := msg.Runes
		if msg.Type == tea.KeySpace {
			insert = []rune{' '}
		}
		tail := append([]rune{}, runes[m.inputCursorPos:]...)
		runes = append(append(runes[:m.inputCursorPos], insert...), tail...)
		m.inputCursorPos += len(insert)
		m.inputText = string(runes)
	}
}

func (m *model) handleHelpKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "q", "?":
		m.mode = ModeNormal
		m.helpScroll = 0
	case "j", "down":
		if m.helpScroll < len(helpLines)-1 {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
}

func (m model) View() string {
	if m.mode == ModeHelp {
		return m.helpView()
	}

	var result strings.Builder
	if m.surface == nil {
		result.WriteString("Terminal too small for the canvas\n")
	} else {
		for _, line := range renderHalfBlocks(m.surface.Image()) {
			result.WriteString(line)
			result.WriteString("\n")
		}
	}
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	if m.mode == ModeGlyphInput {
		runes := []rune(m.inputText)
		prompt := string(runes[:m.inputCursorPos]) + "█" + string(runes[m.inputCursorPos:])
		return statusStyle.Render(" GLYPH ") + " Stamp text: " + prompt + "  (Enter to use, Esc to cancel)"
	}

	tools := m.ctrl.Tools()
	history := m.ctrl.History()
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(tools.Color))).Render("■")

	var parts []string
	parts = append(parts, statusStyle.Render(" "+tools.Mode.String()+" "))
	switch tools.Mode {
	case ToolStroke:
		parts = append(parts, fmt.Sprintf("size %g %s", tools.Thickness, swatch))
	case ToolGlyph:
		parts = append(parts, fmt.Sprintf("%s %g°", tools.Glyph, tools.Rotation))
	}
	parts = append(parts, fmt.Sprintf("%d drawn, %d to redo", history.Len(), len(history.RedoBuffer())))
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	} else if m.successMessage != "" {
		parts = append(parts, successStyle.Render(m.successMessage))
	} else {
		parts = append(parts, "? for help")
	}
	return strings.Join(parts, "  ")
}

var helpLines = []string{
	"Drawthingy Help",
	"===============",
	"",
	"Drawing:",
	"--------",
	"  mouse drag        Paint a stroke (brush mode)",
	"  mouse click       Stamp the selected glyph (glyph mode)",
	"  mouse wheel, [ ]  Rotate the glyph",
	"  h/j/k/l, arrows   Move the keyboard pointer (Shift for 2x)",
	"  space             Press / release the keyboard pointer",
	"",
	"Tools:",
	"------",
	"  1-9               Brush size preset (every new size picks a new color)",
	"  b                 Back to the brush, same size and color",
	"  g                 Next glyph from the palette",
	"  t                 Type a custom glyph",
	"  p                 Use clipboard text as the glyph",
	"",
	"History:",
	"--------",
	"  u, ctrl+z         Undo",
	"  r, ctrl+y         Redo",
	"  c                 Clear everything",
	"",
	"Export:",
	"-------",
	"  x                 Save PNG",
	"  X                 Save PDF",
	"",
	"  ?, q, Esc         Close help",
	"  q, ctrl+c         Quit (from the canvas)",
}

func (m model) helpView() string {
	height := m.height
	if height < 1 {
		height = len(helpLines)
	}
	end := m.helpScroll + height
	if end > len(helpLines) {
		end = len(helpLines)
	}
	return strings.Join(helpLines[m.helpScroll:end], "\n")
}
