package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/manus/internal/i18n"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the icon and color of a flash message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash stays in the footer.
const DefaultFlashDuration = 3 * time.Second

// flashTickInterval is how often an active flash is checked for expiry.
const flashTickInterval = 500 * time.Millisecond

// FlashTickMsg asks the footer to drop an expired flash.
type FlashTickMsg time.Time

// FlashTick returns a command that sends a FlashTickMsg after a short delay.
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// FlashMessage is a transient footer message.
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration.
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

func (t FlashType) icon() string {
	switch t {
	case FlashError:
		return "✕"
	case FlashWarning:
		return "⚠"
	case FlashSuccess:
		return "✓"
	}
	return "ℹ"
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	dir          i18n.Direction
	styles       *Styles
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter(s *Styles) *Footer {
	return &Footer{
		styles: s,
		bindings: []KeyBinding{
			{Key: "tab", Desc: "switch tab"},
			{Key: "ctrl+c", Desc: "quit"},
		},
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetStyles swaps the styles after a theme change.
func (f *Footer) SetStyles(s *Styles) {
	f.styles = s
}

// SetDirection sets the reading direction.
func (f *Footer) SetDirection(dir i18n.Direction) {
	f.dir = dir
}

// SetBindings replaces the key hints for the active screen.
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows text in place of the key hints for DefaultFlashDuration.
func (f *Footer) SetFlash(text string, t FlashType) {
	f.SetFlashWithDuration(text, t, DefaultFlashDuration)
}

// SetFlashWithDuration shows text in place of the key hints for d.
func (f *Footer) SetFlashWithDuration(text string, t FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      t,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// HasFlash reports whether a flash is showing.
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// Flash returns the current flash, if any.
func (f *Footer) Flash() *FlashMessage {
	return f.flashMessage
}

// ClearFlash removes the flash.
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// ClearIfExpired removes the flash if it has expired and reports whether it did.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

func (f *Footer) flashColor() lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)
	switch f.flashMessage.Type {
	case FlashError:
		return st.Foreground(f.styles.ColorError)
	case FlashWarning:
		return st.Foreground(f.styles.ColorWarning)
	case FlashSuccess:
		return st.Foreground(f.styles.ColorSuccess)
	}
	return st.Foreground(f.styles.ColorInfo)
}

// View renders the footer
func (f *Footer) View() string {
	style := f.styles.Footer.Width(f.width).Align(leading(f.dir))

	if f.flashMessage != nil {
		text := joinRow(f.dir, " ", f.flashMessage.Type.icon(), f.flashMessage.Text)
		return style.Render(f.flashColor().Render(text))
	}

	parts := make([]string, 0, len(f.bindings))
	for _, b := range f.bindings {
		key := f.styles.FooterKey.Render(b.Key)
		desc := f.styles.FooterDesc.Render(b.Desc)
		parts = append(parts, joinRow(f.dir, f.styles.FooterDesc.Render(": "), key, desc))
	}
	sep := "  " + f.styles.FooterSep.Render("|") + "  "
	return style.Render(strings.Join(ordered(f.dir, parts...), sep))
}
