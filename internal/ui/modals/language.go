package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/manus/internal/i18n"
)

// LanguageName returns the menu label for l, written in its own language.
func LanguageName(l i18n.Locale, t i18n.Translator) string {
	if l == i18n.AR {
		return t.T("languageArabic")
	}
	return t.T("languageEnglish")
}

// LanguageState picks the interface language.
type LanguageState struct {
	Original i18n.Locale

	selected i18n.Locale
	form     *huh.Form
	styles   Styles
	t        i18n.Translator
}

func (*LanguageState) modalState() {}

func (s *LanguageState) Title() string { return s.t.T("selectLanguage") }

func (s *LanguageState) Help() string {
	return "↑/↓ " + s.t.T("hintNavigate") + "  Enter " + s.t.T("hintConfirm") + "  Esc " + s.t.T("hintCancel")
}

func (s *LanguageState) Render() string {
	title := s.styles.Title.Render(s.Title())
	help := s.styles.Help.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *LanguageState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Selected returns the highlighted locale.
func (s *LanguageState) Selected() i18n.Locale {
	return s.selected
}

// Changed reports whether the highlighted locale differs from the active one.
func (s *LanguageState) Changed() bool {
	return s.selected != s.Original
}

// NewLanguageState creates the language picker with current highlighted.
func NewLanguageState(current i18n.Locale, styles Styles, t i18n.Translator) *LanguageState {
	s := &LanguageState{
		Original: current,
		selected: current,
		styles:   styles,
		t:        t,
	}

	options := make([]huh.Option[i18n.Locale], len(i18n.Supported))
	for i, l := range i18n.Supported {
		options[i] = huh.NewOption(LanguageName(l, t), l)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[i18n.Locale]().
				Options(options...).
				Value(&s.selected),
		),
	).
		WithTheme(ModalTheme(styles)).
		WithShowHelp(false).
		WithWidth(styles.Width)

	initHuhForm(s.form)
	return s
}
