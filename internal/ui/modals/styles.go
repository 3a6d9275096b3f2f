package modals

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Styles carries the active theme into the dialogs. The ui package builds
// one from its palette whenever the theme changes.
type Styles struct {
	Title lipgloss.Style
	Help  lipgloss.Style
	Body  lipgloss.Style
	Error lipgloss.Style

	Primary     color.Color
	Accent      color.Color
	Text        color.Color
	TextMuted   color.Color
	TextInverse color.Color
	Warning     color.Color

	// Width is the inner width available to a dialog's content.
	Width int
}
