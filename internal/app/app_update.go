package app

import (
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/manus/internal/conversation"
	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/prefs"
	"github.com/zhubert/manus/internal/theme"
	"github.com/zhubert/manus/internal/ui"
	"github.com/zhubert/manus/internal/ui/modals"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.BackgroundColorMsg:
		system := theme.Light
		if msg.IsDark() {
			system = theme.Dark
		}
		m.themes.SystemChanged(m.ctx, system)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case modals.SubmitMsg:
		if m.modal.IsVisible() {
			return m.submitModal()
		}
		return m, nil

	case ReplyReadyMsg:
		return m.handleReplyReady(msg)

	case TasksRefreshedMsg:
		m.tasksView.SetRefreshing(false)
		advanced := m.tasks.Refresh()
		log().Debug("tasks refreshed", "advanced", advanced)
		return m, m.flashSuccess("tasksRefreshed")

	case AutoSyncMsg:
		if m.autoSync {
			advanced := m.tasks.Refresh()
			log().Debug("auto sync", "advanced", advanced)
		}
		return m, autoSyncTick()

	case ui.StopwatchTickMsg:
		chatCmd := m.chat.Update(msg)
		tasksCmd := m.tasksView.Update(msg)
		if chatCmd == nil && tasksCmd == nil {
			m.ticking = false
			return m, nil
		}
		return m, ui.StopwatchTick()

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return m, nil
		}
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil

	case ClipboardErrorMsg:
		log().Warn("clipboard write failed", "error", msg.Error)
		return m, m.ShowFlash(msg.Error.Error(), ui.FlashWarning)
	}

	// Everything else (cursor blink, mouse wheel, paste) goes to the screens
	// that consume it
	cmds = append(cmds, m.chat.Update(msg))
	if m.tab == TabCapabilities && m.capabilities.SearchFocused() {
		cmds = append(cmds, m.capabilities.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

// handleKeyPress routes a key to the modal, a shortcut or the active screen.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}
	if result, cmd, ok := m.ExecuteShortcut(msg.String()); ok {
		return result, cmd
	}
	return m, m.updateActiveView(msg)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	switch m.tab {
	case TabTasks:
		return m.tasksView.Update(msg)
	case TabCapabilities:
		return m.capabilities.Update(msg)
	case TabProfile:
		return m.profile.Update(msg)
	}
	return m.chat.Update(msg)
}

// startTicker passes through the first tick of a spinner unless a tick loop
// is already running.
func (m *Model) startTicker(cmd tea.Cmd) tea.Cmd {
	if cmd == nil || m.ticking {
		return nil
	}
	m.ticking = true
	return cmd
}

// isTextEntry reports whether printable keys belong to an input box.
func (m *Model) isTextEntry() bool {
	switch m.tab {
	case TabChat:
		return true
	case TabCapabilities:
		return m.capabilities.SearchFocused()
	}
	return false
}

// sendMessage submits the chat input. Blank input and sends while a reply
// is pending are silently ignored.
func (m *Model) sendMessage() (tea.Model, tea.Cmd) {
	m.engine.SetInput(m.chat.Value())
	pending, err := m.engine.Send()
	if err != nil {
		if !errors.Is(err, conversation.ErrEmptyMessage) && !errors.Is(err, conversation.ErrReplyPending) {
			log().Error("send failed", "error", err)
		}
		return m, nil
	}

	m.chat.ResetInput()
	m.chat.SetMessages(m.engine.Messages())
	return m, tea.Batch(
		m.startTicker(m.chat.SetTyping(true)),
		m.waitForReply(pending),
	)
}

// waitForReply blocks off the event loop until the reply is due.
func (m *Model) waitForReply(p *conversation.PendingReply) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return ReplyReadyMsg{Reply: p, Err: p.Wait(ctx)}
	}
}

func (m *Model) handleReplyReady(msg ReplyReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		log().Debug("reply wait ended early", "error", msg.Err)
		m.chat.SetTyping(m.engine.Busy())
		m.chat.SetMessages(m.engine.Messages())
		return m, nil
	}

	reply, ok := m.engine.Deliver(msg.Reply)
	m.chat.SetTyping(m.engine.Busy())
	m.chat.SetMessages(m.engine.Messages())
	if !ok {
		log().Debug("dropping stale reply", "message", msg.Reply.MessageID)
		return m, nil
	}

	if m.tab != TabChat && m.notifications {
		return m, m.notifyReply(reply.Text)
	}
	return m, nil
}

// notifyReply sends the desktop notification off the event loop.
func (m *Model) notifyReply(text string) tea.Cmd {
	notify, t := m.notify, i18n.Translator(m.locale)
	return func() tea.Msg {
		if err := notify(t, text); err != nil {
			log().Warn("reply notification failed", "error", err)
		}
		return nil
	}
}

// copyLastReply puts the latest assistant message on the clipboard, both
// through the terminal (OSC 52) and the native clipboard.
func (m *Model) copyLastReply() (tea.Model, tea.Cmd) {
	reply, ok := m.engine.LastReply()
	if !ok {
		return m, m.flashInfo("nothingToCopy")
	}
	write := m.copy
	return m, tea.Batch(
		tea.SetClipboard(reply.Text),
		func() tea.Msg {
			if err := write(reply.Text); err != nil {
				return ClipboardErrorMsg{Error: err}
			}
			return nil
		},
		m.flashSuccess("copiedReply"),
	)
}

// refreshTasks starts the simulated refresh; the store advances when the
// spinner finishes.
func (m *Model) refreshTasks() (tea.Model, tea.Cmd) {
	if m.tasksView.IsRefreshing() {
		return m, nil
	}
	return m, tea.Batch(
		m.startTicker(m.tasksView.SetRefreshing(true)),
		tea.Tick(RefreshDuration, func(time.Time) tea.Msg { return TasksRefreshedMsg{} }),
	)
}

func autoSyncTick() tea.Cmd {
	return tea.Tick(AutoSyncInterval, func(t time.Time) tea.Msg {
		return AutoSyncMsg(t)
	})
}

// openTaskActions shows the action menu for the highlighted task.
func (m *Model) openTaskActions() (tea.Model, tea.Cmd) {
	task, ok := m.tasksView.Selected()
	if !ok {
		return m, nil
	}
	actions, err := m.tasks.Actions(task.ID)
	if err != nil {
		log().Error("failed to list task actions", "task", task.ID, "error", err)
		return m, m.ShowFlash(err.Error(), ui.FlashError)
	}
	m.modal.Show(modals.NewTaskActionState(task, actions, m.styles.ModalStyles(), m.locale))
	return m, nil
}

// confirmStartChat asks before leaving the Capabilities screen for the chat.
func (m *Model) confirmStartChat() (tea.Model, tea.Cmd) {
	sel, ok := m.capabilities.Selected()
	if !ok {
		return m, nil
	}
	m.modal.Show(modals.NewStartChatState(sel.Title, sel.Prefill, m.styles.ModalStyles(), m.locale))
	return m, nil
}

// activateSetting runs the highlighted profile row.
func (m *Model) activateSetting() (tea.Model, tea.Cmd) {
	id := m.profile.Selected()
	var cmd tea.Cmd

	switch id {
	case ui.SettingDarkMode:
		m.themes.Toggle(m.ctx)
		cmd = m.flashInfo("themeChanged", i18n.Params{"theme": m.themeName()})
	case ui.SettingFollowSystem:
		if m.themes.IsExplicit() {
			m.themes.FollowSystem(m.ctx)
		} else {
			m.themes.SetTheme(m.ctx, m.themes.Theme())
		}
	case ui.SettingNotifications:
		if m.persistToggle(prefs.KeyNotifications, !m.notifications) {
			m.notifications = !m.notifications
		}
	case ui.SettingAutoSync:
		if m.persistToggle(prefs.KeyAutoSync, !m.autoSync) {
			m.autoSync = !m.autoSync
		}
	case ui.SettingLanguage:
		m.modal.Show(modals.NewLanguageState(m.locale.Locale(), m.styles.ModalStyles(), m.locale))
	case ui.SettingSignOut:
		m.modal.Show(modals.NewSignOutState(m.styles.ModalStyles(), m.locale))
	default:
		cmd = m.flashComingSoon(id.Key())
	}

	m.refreshProfile()
	return m, cmd
}

// persistToggle writes a profile toggle and reports whether it was saved.
// A failed write is logged and the caller keeps the old value.
func (m *Model) persistToggle(key string, on bool) bool {
	if err := prefs.SetBool(m.ctx, m.store, key, on); err != nil {
		log().Error("failed to persist setting", "key", key, "error", err)
		return false
	}
	return true
}

func (m *Model) themeName() string {
	if m.themes.IsDark() {
		return m.locale.T("themeDark")
	}
	return m.locale.T("themeLight")
}

// nextTab moves through the tab bar by delta, wrapping around.
func (m *Model) nextTab(delta int) {
	n := len(Tabs)
	m.setTab(Tab(((int(m.tab)+delta)%n + n) % n))
}
