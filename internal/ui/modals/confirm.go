package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/manus/internal/i18n"
)

// ConfirmKind says what a confirmation is for.
type ConfirmKind int

const (
	ConfirmStartChat ConfirmKind = iota
	ConfirmSignOut
)

// ConfirmState asks a yes/no question before an action runs.
type ConfirmState struct {
	Kind ConfirmKind
	// Prefill is the chat input text for ConfirmStartChat.
	Prefill string

	title     string
	confirmed bool
	form      *huh.Form
	styles    Styles
	t         i18n.Translator
}

func (*ConfirmState) modalState() {}

func (s *ConfirmState) Title() string { return s.title }

func (s *ConfirmState) Help() string {
	return "←/→ " + s.t.T("hintToggle") + "  Enter " + s.t.T("hintConfirm") + "  Esc " + s.t.T("hintCancel")
}

func (s *ConfirmState) Render() string {
	title := s.styles.Title.Render(s.Title())
	help := s.styles.Help.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *ConfirmState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	// y and n answer the confirm directly and complete the form
	if s.form.State == huh.StateCompleted {
		return s, tea.Batch(cmd, submit)
	}
	return s, cmd
}

// Confirmed reports whether the affirmative button is selected.
func (s *ConfirmState) Confirmed() bool {
	return s.confirmed
}

// NewStartChatState asks before opening the chat with a capability or
// quick start prompt.
func NewStartChatState(label, prefill string, styles Styles, t i18n.Translator) *ConfirmState {
	params := i18n.Params{"title": label}
	s := &ConfirmState{
		Kind:      ConfirmStartChat,
		Prefill:   prefill,
		title:     t.T("startChatActionTitle", params),
		confirmed: true,
		styles:    styles,
		t:         t,
	}
	s.buildForm(t.T("startChatActionMessage", params), t.T("startChat"))
	return s
}

// NewSignOutState asks before signing out. Cancel is preselected.
func NewSignOutState(styles Styles, t i18n.Translator) *ConfirmState {
	s := &ConfirmState{
		Kind:   ConfirmSignOut,
		title:  t.T("signOutTitle"),
		styles: styles,
		t:      t,
	}
	s.buildForm(t.T("signOutMessage"), t.T("signOut"))
	return s
}

func (s *ConfirmState) buildForm(description, affirmative string) {
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Description(description).
				Affirmative(affirmative).
				Negative(s.t.T("cancel")).
				Value(&s.confirmed),
		),
	).
		WithTheme(ModalTheme(s.styles)).
		WithShowHelp(false).
		WithWidth(s.styles.Width)

	initHuhForm(s.form)
}
