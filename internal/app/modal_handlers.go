package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/keys"
	"github.com/zhubert/manus/internal/ui"
	"github.com/zhubert/manus/internal/ui/modals"
)

// handleModalKey routes key events while a modal is open. Enter submits and
// Esc dismisses every modal; other keys drive the modal's form.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.CtrlC:
		return m, tea.Quit
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		return m.submitModal()
	}
	return m, m.modal.Update(msg)
}

// submitModal applies the open modal's choice.
func (m *Model) submitModal() (tea.Model, tea.Cmd) {
	switch s := m.modal.State.(type) {
	case *modals.TaskActionState:
		return m.handleTaskActionModal(s)
	case *modals.ConfirmState:
		return m.handleConfirmModal(s)
	case *modals.LanguageState:
		return m.handleLanguageModal(s)
	}
	m.modal.Hide()
	return m, nil
}

func (m *Model) handleTaskActionModal(s *modals.TaskActionState) (tea.Model, tea.Cmd) {
	action, ok := s.Selected()
	if !ok {
		m.modal.Hide()
		return m, nil
	}
	task, err := m.tasks.Apply(s.TaskID, action)
	if err != nil {
		// The task changed underneath the menu; keep it open with the reason
		log().Warn("task action rejected", "task", s.TaskID, "action", string(action), "error", err)
		m.modal.SetError(err.Error())
		return m, nil
	}
	m.modal.Hide()
	log().Info("task updated", "task", task.ID, "status", string(task.Status))
	return m, m.flashSuccess("taskUpdated", i18n.Params{
		"title":  task.Title,
		"status": m.locale.T(ui.StatusKey(task.Status)),
	})
}

func (m *Model) handleConfirmModal(s *modals.ConfirmState) (tea.Model, tea.Cmd) {
	m.modal.Hide()
	if !s.Confirmed() {
		return m, nil
	}
	switch s.Kind {
	case modals.ConfirmStartChat:
		m.startChat(s.Prefill)
		return m, nil
	case modals.ConfirmSignOut:
		return m, m.flashComingSoon("signOut")
	}
	return m, nil
}

func (m *Model) handleLanguageModal(s *modals.LanguageState) (tea.Model, tea.Cmd) {
	m.modal.Hide()
	if !s.Changed() {
		return m, nil
	}
	// The locale listener re-lays out every screen
	m.locale.SetLocale(m.ctx, s.Selected())
	return m, m.flashInfo("languageChanged", i18n.Params{
		"language": modals.LanguageName(m.locale.Locale(), m.locale),
	})
}
