package modals

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/manus/internal/keys"
)

// initHuhForm initializes a huh form eagerly so it renders correctly
// immediately. Call this in every dialog constructor after creating the form.
func initHuhForm(form *huh.Form) {
	form.Init()
}

// huhFormUpdate is the common Update logic for huh-based dialogs.
// Enter and Escape belong to the app layer; everything else goes to the form.
func huhFormUpdate(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			return form, nil
		}
	}

	m, cmd := form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		form = f
	}
	return form, cmd
}

// ModalTheme returns a huh theme built from the active dialog styles.
// Forms are created when a dialog opens, so each one picks up the
// current theme.
func ModalTheme(s Styles) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		// Focused field: left border marks the active field
		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(s.Primary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(s.Text).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(s.TextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(s.Warning).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(s.Warning)

		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(s.Primary).SetString("> ")
		t.Focused.NextIndicator = lipgloss.NewStyle().Foreground(s.Primary).MarginLeft(1).SetString("→")
		t.Focused.PrevIndicator = lipgloss.NewStyle().Foreground(s.Primary).MarginRight(1).SetString("←")
		t.Focused.Option = lipgloss.NewStyle().Foreground(s.Text)
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(s.Accent)

		t.Focused.FocusedButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(s.TextInverse).
			Background(s.Primary)
		t.Focused.BlurredButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(s.TextMuted)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.Group.Title = lipgloss.NewStyle().Foreground(s.Accent).Bold(true)
		t.Group.Description = lipgloss.NewStyle().Foreground(s.TextMuted)

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles

		return t
	})
}
