package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/manus/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	m.layout = ui.NewLayout(m.width, m.height)
	l := m.layout

	m.header.SetWidth(l.TerminalWidth)
	m.footer.SetWidth(l.TerminalWidth)
	m.chat.SetSize(l.ContentWidth, l.ContentHeight)
	m.tasksView.SetSize(l.ContentWidth, l.ContentHeight)
	m.capabilities.SetSize(l.ContentWidth, l.ContentHeight)
	m.profile.SetSize(l.ContentWidth, l.ContentHeight)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.render())
	return v
}

// RenderToString returns the rendered screen as a string. Tests use it to
// inspect what the user sees.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.render()
}

func (m *Model) render() string {
	l := m.layout
	// Hints depend on the screen and on whether search has focus
	m.refreshFooter()

	var body string
	switch m.tab {
	case TabTasks:
		body = m.tasksView.View()
	case TabCapabilities:
		body = m.capabilities.View()
	case TabProfile:
		body = m.profile.View()
	default:
		body = m.chat.View()
	}
	body = lipgloss.NewStyle().
		Width(l.ContentWidth).
		Height(l.ContentHeight).
		MaxHeight(l.ContentHeight).
		Render(body)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		body,
		m.footer.View(),
	)

	if m.modal.IsVisible() {
		return m.modal.View(view, l.TerminalWidth, l.TerminalHeight, m.styles)
	}
	return view
}
