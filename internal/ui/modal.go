package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/zhubert/manus/internal/ui/modals"
)

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no dialog is visible.
type Modal struct {
	State modals.ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a dialog with the given state
func (m *Modal) Show(state modals.ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the dialog
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether a dialog is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message shown under the dialog content
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	if m.State == nil {
		return nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return cmd
}

// Render returns the framed dialog, or "" when none is visible.
func (m *Modal) Render(s *Styles) string {
	if m.State == nil {
		return ""
	}
	content := m.State.Render()
	if m.error != "" {
		content += "\n" + s.StatusError.Render(m.error)
	}
	return s.Modal.Render(content)
}

// View draws the dialog centered over base, which must already be sized
// to width x height. The screens stay visible around the dialog.
func (m *Modal) View(base string, width, height int, s *Styles) string {
	box := m.Render(s)
	if box == "" {
		return base
	}
	return Overlay(base, box, width, height)
}

// Overlay composites fg centered on top of bg using a cell buffer, so
// styled text on both layers keeps its attributes.
func Overlay(bg, fg string, width, height int) string {
	if width <= 0 || height <= 0 {
		return bg
	}
	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(bg).Draw(scr, area)

	fw := min(lipgloss.Width(fg), width)
	fh := min(lipgloss.Height(fg), height)
	x := (width - fw) / 2
	y := (height - fh) / 2
	uv.NewStyledString(fg).Draw(scr, uv.Rect(x, y, fw, fh))

	return scr.Render()
}

// ModalStyles derives the dialog styles from the active theme.
func (s *Styles) ModalStyles() modals.Styles {
	return modals.Styles{
		Title:       s.ModalTitle,
		Help:        s.ModalHelp,
		Body:        lipgloss.NewStyle().Foreground(s.ColorText),
		Error:       s.StatusError,
		Primary:     s.ColorPrimary,
		Accent:      lipgloss.Color(s.Palette.Accent),
		Text:        s.ColorText,
		TextMuted:   s.ColorTextMuted,
		TextInverse: lipgloss.Color(s.Palette.TextInverse),
		Warning:     s.ColorWarning,
		Width:       ModalWidth - s.Modal.GetHorizontalFrameSize(),
	}
}
