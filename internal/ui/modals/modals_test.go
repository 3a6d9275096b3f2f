package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/keys"
	"github.com/zhubert/manus/internal/tasks"
)

var testCatalog = i18n.MustLoadCatalog()

func testTranslator() i18n.Translator {
	return i18n.Static{Catalog: testCatalog, Locale: i18n.EN}
}

func testStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true),
		Help:        lipgloss.NewStyle().Italic(true),
		Body:        lipgloss.NewStyle(),
		Error:       lipgloss.NewStyle(),
		Primary:     lipgloss.Color("#7C3AED"),
		Accent:      lipgloss.Color("#06B6D4"),
		Text:        lipgloss.Color("#0F172A"),
		TextMuted:   lipgloss.Color("#64748B"),
		TextInverse: lipgloss.Color("#FFFFFF"),
		Warning:     lipgloss.Color("#F59E0B"),
		Width:       50,
	}
}

func runningTask() tasks.Task {
	return tasks.Task{ID: "1", Title: "Market Research", Status: tasks.StatusRunning}
}

func TestTaskActionState(t *testing.T) {
	actions := []tasks.Action{tasks.ActionPause, tasks.ActionComplete, tasks.ActionFail}
	s := NewTaskActionState(runningTask(), actions, testStyles(), testTranslator())

	if s.TaskID != "1" {
		t.Errorf("TaskID = %q", s.TaskID)
	}
	got, ok := s.Selected()
	if !ok || got != tasks.ActionPause {
		t.Errorf("expected first action preselected, got %q %v", got, ok)
	}

	out := ansi.Strip(s.Render())
	for _, want := range []string{"Task actions", "Market Research", "Pause", "Mark as completed", "Mark as failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in render:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Resume") {
		t.Error("running task should not offer resume")
	}
}

func TestTaskActionState_NoActions(t *testing.T) {
	s := NewTaskActionState(runningTask(), nil, testStyles(), testTranslator())

	if _, ok := s.Selected(); ok {
		t.Error("expected no selection without actions")
	}
	if !strings.Contains(ansi.Strip(s.Render()), "No actions available") {
		t.Error("expected empty message")
	}
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyDown}); cmd != nil {
		t.Error("empty menu should ignore keys")
	}
}

func TestActionKey(t *testing.T) {
	tr := testTranslator()
	for _, a := range []tasks.Action{tasks.ActionPause, tasks.ActionResume, tasks.ActionComplete, tasks.ActionFail} {
		key := ActionKey(a)
		if key == "" || tr.T(key) == key {
			t.Errorf("action %q has no translated label", a)
		}
	}
}

func TestConfirmState_StartChat(t *testing.T) {
	s := NewStartChatState("Data Analysis", "I need help with data analysis.", testStyles(), testTranslator())

	if s.Kind != ConfirmStartChat {
		t.Errorf("Kind = %v", s.Kind)
	}
	if !s.Confirmed() {
		t.Error("start chat should default to confirm")
	}
	if s.Prefill != "I need help with data analysis." {
		t.Errorf("Prefill = %q", s.Prefill)
	}
	out := ansi.Strip(s.Render())
	for _, want := range []string{"Start a chat about Data Analysis?", "Start chat", "Cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in render:\n%s", want, out)
		}
	}
}

func TestConfirmState_SignOut(t *testing.T) {
	s := NewSignOutState(testStyles(), testTranslator())
	if s.Kind != ConfirmSignOut {
		t.Errorf("Kind = %v", s.Kind)
	}
	if s.Confirmed() {
		t.Error("sign out should default to cancel")
	}
	if s.Title() != "Sign out of Manus?" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestConfirmState_EnterIsLeftToApp(t *testing.T) {
	s := NewSignOutState(testStyles(), testTranslator())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter should not be handled by the form")
	}
	if s.Confirmed() {
		t.Error("enter should not change the answer")
	}
}

func TestLanguageState(t *testing.T) {
	s := NewLanguageState(i18n.AR, testStyles(), testTranslator())

	if s.Selected() != i18n.AR {
		t.Errorf("expected current locale preselected, got %q", s.Selected())
	}
	if s.Changed() {
		t.Error("unchanged selection should not report a change")
	}
	out := ansi.Strip(s.Render())
	for _, want := range []string{"Select language", "English", "العربية"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in render:\n%s", want, out)
		}
	}
}

func TestLanguageName(t *testing.T) {
	tr := testTranslator()
	if got := LanguageName(i18n.EN, tr); got != "English" {
		t.Errorf("LanguageName(en) = %q", got)
	}
	if got := LanguageName(i18n.AR, tr); got != "العربية" {
		t.Errorf("LanguageName(ar) = %q", got)
	}
}

func TestHuhFormUpdate_InterceptsEscape(t *testing.T) {
	s := NewLanguageState(i18n.EN, testStyles(), testTranslator())
	form, cmd := huhFormUpdate(s.form, tea.KeyPressMsg{Code: tea.KeyEscape})
	if form != s.form || cmd != nil {
		t.Error("escape should be left to the app layer")
	}
	if keys.Escape != "esc" {
		t.Errorf("unexpected escape key string %q", keys.Escape)
	}
}

func TestSubmitMsg(t *testing.T) {
	if _, ok := submit().(SubmitMsg); !ok {
		t.Error("submit should produce a SubmitMsg")
	}
}
