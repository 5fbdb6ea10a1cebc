package main

// handleNavigation moves the keyboard pointer, which feeds the controller the
// same way the mouse does.
func (m *model) handleNavigation(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.kbX -= speed
	case "l", "right", "L", "shift+right":
		m.kbX += speed
	case "k", "up", "K", "shift+up":
		m.kbY -= speed
	case "j", "down", "J", "shift+down":
		m.kbY += speed
	}
	m.ensureKeyboardPointerInBounds()
	if p, ok := m.canvasPoint(m.kbX, m.kbY); ok {
		m.ctrl.PointerMove(p)
	}
}

// toggleKeyboardPen presses or releases the keyboard pointer.
func (m *model) toggleKeyboardPen() {
	p, ok := m.canvasPoint(m.kbX, m.kbY)
	if !ok {
		return
	}
	if m.kbDown {
		m.kbDown = false
		m.ctrl.PointerUp()
		return
	}
	m.kbDown = true
	m.ctrl.PointerDown(p)
}

// releaseSettledPointers drops held buttons once a tool action has settled
// the gesture they started, so the next press starts a new one.
func (m *model) releaseSettledPointers() {
	if m.ctrl.State() == StateIdle {
		m.kbDown = false
		m.pointerDown = false
	}
}

func (m *model) ensureKeyboardPointerInBounds() {
	cols, rows := m.canvasCells()
	if m.kbX >= cols {
		m.kbX = cols - 1
	}
	if m.kbY >= rows {
		m.kbY = rows - 1
	}
	if m.kbX < 0 {
		m.kbX = 0
	}
	if m.kbY < 0 {
		m.kbY = 0
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
