package ui

// View returns the painted screen. Nothing is drawn until the terminal size
// is known.
func (m *Model) View() string {
	if !m.ready || m.quitting {
		return ""
	}
	return m.buf.Styled()
}
