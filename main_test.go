package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	cfg := defaultConfig()
	cfg.SaveDirectory = t.TempDir()
	cfg.Seed = 3
	cfg.HasSeed = true

	m := initialModel(cfg)
	m.now = func() time.Time { return exportTime }
	return send(t, m, tea.WindowSizeMsg{Width: 128, Height: 33})
}

func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return got
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(x, y int, typ tea.MouseEventType) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Type: typ}
}

func TestModelResizeBuildsSurface(t *testing.T) {
	m := newTestModel(t)
	cols, rows := m.canvasCells()
	if cols != 128 || rows != 32 {
		t.Errorf("canvas is %dx%d cells, want 128x32", cols, rows)
	}
	if m.ctrl.Renderer().Surface() == nil {
		t.Fatal("renderer has no surface")
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 33 {
		t.Errorf("view has %d lines, want 33", len(lines))
	}
}

func TestModelMouseStroke(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, mouse(10, 5, tea.MouseLeft))
	m = send(t, m, mouse(20, 5, tea.MouseMotion))
	m = send(t, m, mouse(20, 8, tea.MouseLeft))
	m = send(t, m, mouse(20, 8, tea.MouseRelease))

	h := m.ctrl.History()
	if h.Len() != 1 {
		t.Fatalf("history has %d drawables, want 1", h.Len())
	}
	diff(t, []Point{Pt(10.5, 11), Pt(20.5, 11), Pt(20.5, 17)}, h.Last().(*Stroke).Points())
	if m.ctrl.State() != StateIdle {
		t.Errorf("state = %v, want idle", m.ctrl.State())
	}
}

func TestModelMouseLeave(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, mouse(10, 5, tea.MouseMotion))
	if !m.ctrl.Cursor().Visible {
		t.Fatal("cursor hidden while over the canvas")
	}
	m = send(t, m, mouse(10, 32, tea.MouseMotion))
	if m.ctrl.Cursor().Visible {
		t.Error("cursor visible after leaving the canvas")
	}
}

func TestModelWheelRotates(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, mouse(1, 1, tea.MouseWheelDown))
	m = send(t, m, mouse(1, 1, tea.MouseWheelDown))
	m = send(t, m, mouse(1, 1, tea.MouseWheelUp))
	if got := m.ctrl.Tools().Rotation; got != defaultRotationStep {
		t.Errorf("rotation = %g, want %d", got, defaultRotationStep)
	}
}

func TestModelToolKeys(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, key("3"))
	if got := m.ctrl.Tools().Thickness; got != 6 {
		t.Errorf("thickness = %g, want 6", got)
	}
	m = send(t, m, key("g"))
	m = send(t, m, key("g"))
	if tools := m.ctrl.Tools(); tools.Mode != ToolGlyph || tools.Glyph != defaultPack[1] {
		t.Errorf("tools = %v %q, want glyph %q", tools.Mode, tools.Glyph, defaultPack[1])
	}
	m = send(t, m, key("b"))
	if tools := m.ctrl.Tools(); tools.Mode != ToolStroke || tools.Thickness != 6 {
		t.Errorf("tools = %v %g, want brush 6", tools.Mode, tools.Thickness)
	}
}

func TestModelCustomGlyph(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key("t"))
	if m.mode != ModeGlyphInput {
		t.Fatalf("mode = %v, want glyph input", m.mode)
	}
	m = send(t, m, key("o"))
	m = send(t, m, key("k"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want normal", m.mode)
	}
	if tools := m.ctrl.Tools(); tools.Mode != ToolGlyph || tools.Glyph != "ok" {
		t.Errorf("tools = %v %q, want glyph \"ok\"", tools.Mode, tools.Glyph)
	}

	m = send(t, m, mouse(4, 4, tea.MouseLeft))
	m = send(t, m, mouse(4, 4, tea.MouseRelease))
	g, ok := m.ctrl.History().Last().(*Glyph)
	if !ok || g.Symbol() != "ok" {
		t.Errorf("last drawable = %#v", m.ctrl.History().Last())
	}
}

func TestModelCustomGlyphCancel(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key("t"))
	m = send(t, m, key("x"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.mode != ModeNormal || m.ctrl.Tools().Mode != ToolStroke {
		t.Errorf("cancel left mode %v tool %v", m.mode, m.ctrl.Tools().Mode)
	}
}

func TestModelUndoRedoClearKeys(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key("u"))
	if m.successMessage != "Nothing to undo" {
		t.Errorf("message = %q", m.successMessage)
	}

	m = send(t, m, mouse(1, 1, tea.MouseLeft))
	m = send(t, m, mouse(3, 1, tea.MouseMotion))
	m = send(t, m, mouse(3, 1, tea.MouseRelease))
	m = send(t, m, key("u"))
	if m.ctrl.History().Len() != 0 {
		t.Error("undo key did nothing")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if m.ctrl.History().Len() != 1 {
		t.Error("ctrl+y did not redo")
	}
	m = send(t, m, key("c"))
	if m.ctrl.History().Len() != 0 || len(m.ctrl.History().RedoBuffer()) != 0 {
		t.Error("clear key left drawables behind")
	}
}

func TestModelKeyboardPen(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(t, m, key("l"))
	m = send(t, m, key("L"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})

	h := m.ctrl.History()
	if h.Len() != 1 {
		t.Fatalf("history has %d drawables, want 1", h.Len())
	}
	diff(t, []Point{Pt(0.5, 1), Pt(1.5, 1), Pt(3.5, 1)}, h.Last().(*Stroke).Points())
}

func TestModelExportKey(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key("x"))
	if m.errorMessage != "Nothing to export" {
		t.Errorf("error = %q", m.errorMessage)
	}

	m = send(t, m, mouse(1, 1, tea.MouseLeft))
	m = send(t, m, mouse(9, 9, tea.MouseMotion))
	m = send(t, m, mouse(9, 9, tea.MouseRelease))
	m = send(t, m, key("x"))
	want := filepath.Join(m.config.SaveDirectory, "drawthingy-20240309-140506.png")
	if m.successMessage != "Exported "+want {
		t.Errorf("message = %q", m.successMessage)
	}
	if _, err := os.Stat(want); err != nil {
		t.Error(err)
	}

	m = send(t, m, key("x"))
	again := filepath.Join(m.config.SaveDirectory, "drawthingy-20240309-140506-2.png")
	if m.successMessage != "Exported "+again {
		t.Errorf("second export in the same second: %q", m.successMessage)
	}
}

func TestModelKeyboardPenAfterToolKey(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(t, m, key("l"))
	m = send(t, m, key("2"))
	if m.kbDown {
		t.Fatal("pen still held after the stroke was settled")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if got := m.ctrl.State(); got != StateDrawing {
		t.Fatalf("state = %v, want %v", got, StateDrawing)
	}
	if n := m.ctrl.History().Len(); n != 2 {
		t.Errorf("history has %d drawables, want 2", n)
	}
}

func TestModelHelp(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key("?"))
	if m.mode != ModeHelp || !strings.HasPrefix(m.View(), "Drawthingy Help") {
		t.Fatalf("help not shown")
	}
	m = send(t, m, key("u"))
	if m.mode != ModeHelp {
		t.Error("help closed on an unrelated key")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.mode != ModeNormal {
		t.Error("esc did not close help")
	}
}
