package app

import (
	"context"
	"errors"
	"image/color"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/manus/internal/capabilities"
	"github.com/zhubert/manus/internal/conversation"
	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/keys"
	"github.com/zhubert/manus/internal/prefs"
	"github.com/zhubert/manus/internal/tasks"
	"github.com/zhubert/manus/internal/theme"
	"github.com/zhubert/manus/internal/ui"
	"github.com/zhubert/manus/internal/ui/modals"
)

func TestNew_StartsOnChat(t *testing.T) {
	m, _ := testModel(t, nil)

	if m.ActiveTab() != TabChat {
		t.Errorf("ActiveTab = %v, want Chat", m.ActiveTab())
	}
	if got := m.RenderToString(); got != "Loading..." {
		t.Errorf("expected loading screen before the first size, got %q", got)
	}

	m = setSize(m, 120, 30)
	out := ansi.Strip(m.RenderToString())
	for _, want := range []string{"Chat", "Tasks", "Capabilities", "Profile", m.locale.T("initialGreeting")[:20]} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q on screen", want)
		}
	}
}

func TestView_FillsTerminal(t *testing.T) {
	m, _ := testModelWithSize(t, 160, 30)

	for _, tab := range Tabs {
		m.setTab(tab)
		lines := strings.Split(m.RenderToString(), "\n")
		if len(lines) != 30 {
			t.Errorf("%v: rendered %d lines, want 30", tab, len(lines))
		}
	}
}

func TestView_AltScreen(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)
	v := m.View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
	if v.MouseMode != tea.MouseModeCellMotion {
		t.Error("expected cell motion mouse mode")
	}
}

func TestTabs_Switching(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)

	// Digits are text while the chat input has focus
	m = sendKey(m, "2")
	if m.ActiveTab() != TabChat {
		t.Fatalf("digit on chat should be typed, tab = %v", m.ActiveTab())
	}
	if m.chat.Value() != "2" {
		t.Errorf("chat input = %q, want %q", m.chat.Value(), "2")
	}

	tests := []struct {
		key  string
		want Tab
	}{
		{keys.Tab, TabTasks},
		{"3", TabCapabilities},
		{keys.ShiftTab, TabTasks},
		{"4", TabProfile},
		{keys.Tab, TabChat},
		{keys.ShiftTab, TabProfile},
		{"1", TabChat},
	}
	for _, tt := range tests {
		m = sendKey(m, tt.key)
		if m.ActiveTab() != tt.want {
			t.Errorf("after %q: tab = %v, want %v", tt.key, m.ActiveTab(), tt.want)
		}
	}
}

func TestQuit(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)

	if _, ok := findMsg[tea.QuitMsg](runCmd(sendKeyCmd(m, keys.CtrlC))); !ok {
		t.Error("ctrl+c should quit")
	}
	// q is text on the chat screen
	if cmd := sendKeyCmd(m, "q"); cmd != nil {
		if _, ok := findMsg[tea.QuitMsg](runCmd(cmd)); ok {
			t.Error("q on chat should be typed, not quit")
		}
	}
	m = sendKey(m, keys.Tab)
	if _, ok := findMsg[tea.QuitMsg](runCmd(sendKeyCmd(m, "q"))); !ok {
		t.Error("q on tasks should quit")
	}
}

func TestSend_DeliversReply(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)

	m = typeText(m, "Hello")
	cmd := sendKeyCmd(m, keys.Enter)
	if cmd == nil {
		t.Fatal("expected commands after sending")
	}

	msgs := m.engine.Messages()
	if len(msgs) != 2 || !msgs[1].IsUser || msgs[1].Status != conversation.StatusSending {
		t.Fatalf("expected pending user message, got %+v", msgs)
	}
	if m.chat.Value() != "" {
		t.Errorf("input should be cleared, got %q", m.chat.Value())
	}
	if !m.chat.IsTyping() {
		t.Error("typing indicator should show while the reply is pending")
	}

	ready, ok := findMsg[ReplyReadyMsg](runCmd(cmd))
	if !ok {
		t.Fatal("expected a ReplyReadyMsg")
	}
	m.Update(ready)

	msgs = m.engine.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[1].Status != conversation.StatusDelivered {
		t.Errorf("user message status = %q, want delivered", msgs[1].Status)
	}
	if msgs[2].IsUser || msgs[2].Text != m.locale.T("responseHello") {
		t.Errorf("reply = %+v, want responseHello", msgs[2])
	}
	if m.chat.IsTyping() {
		t.Error("typing indicator should hide after delivery")
	}
}

func TestSend_BlankInputIgnored(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)

	m = typeText(m, "   ")
	cmd := sendKeyCmd(m, keys.Enter)
	if cmd != nil {
		t.Error("blank send should not schedule anything")
	}
	if n := len(m.engine.Messages()); n != 1 {
		t.Errorf("messages = %d, want only the greeting", n)
	}
}

func TestSend_OneReplyInFlight(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)

	m = typeText(m, "first")
	sendKeyCmd(m, keys.Enter)
	m = typeText(m, "second")
	m = sendKey(m, keys.Enter)
	if n := len(m.engine.Messages()); n != 2 {
		t.Errorf("messages = %d, want 2; second send should be ignored while a reply is pending", n)
	}
	if m.chat.Value() != "second" {
		t.Errorf("rejected input should stay in the box, got %q", m.chat.Value())
	}
}

func TestSend_HintHiddenWhileReplyPending(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)
	hasSend := func() bool {
		for _, b := range m.footerBindings() {
			if b.Desc == m.locale.T("hintSend") {
				return true
			}
		}
		return false
	}
	if !hasSend() {
		t.Fatal("send hint should show on an idle chat")
	}

	m = typeText(m, "Hello")
	cmd := sendKeyCmd(m, keys.Enter)
	if hasSend() {
		t.Error("send hint should hide while a reply is pending")
	}

	ready, ok := findMsg[ReplyReadyMsg](runCmd(cmd))
	if !ok {
		t.Fatal("expected a ReplyReadyMsg")
	}
	m.Update(ready)
	if !hasSend() {
		t.Error("send hint should return once the reply is delivered")
	}
}

func TestClose_CancelsPendingReply(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)

	m = typeText(m, "hello")
	cmd := sendKeyCmd(m, keys.Enter)
	m.Close()

	ready, ok := findMsg[ReplyReadyMsg](runCmd(cmd))
	if !ok {
		t.Fatal("expected a ReplyReadyMsg")
	}
	if ready.Err == nil {
		t.Error("wait should end with an error after Close")
	}
	m.Update(ready)

	msgs := m.engine.Messages()
	if len(msgs) != 2 {
		t.Fatalf("no reply should be appended, got %d messages", len(msgs))
	}
	if msgs[1].Status != conversation.StatusError {
		t.Errorf("user message status = %q, want error", msgs[1].Status)
	}
}

func TestReply_NotifiesOffChat(t *testing.T) {
	tests := []struct {
		name     string
		stored   map[string]string
		stayChat bool
		want     int
	}{
		{"off chat with notifications", nil, false, 1},
		{"on chat", nil, true, 0},
		{"notifications disabled", map[string]string{prefs.KeyNotifications: "false"}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, env := testModel(t, tt.stored)
			m = setSize(m, 120, 30)

			m = typeText(m, "thanks")
			ready, ok := findMsg[ReplyReadyMsg](runCmd(sendKeyCmd(m, keys.Enter)))
			if !ok {
				t.Fatal("expected a ReplyReadyMsg")
			}
			if !tt.stayChat {
				m = sendKey(m, keys.Tab)
			}
			_, cmd := m.Update(ready)
			runCmd(cmd)

			if len(env.notified) != tt.want {
				t.Fatalf("notifications = %d, want %d", len(env.notified), tt.want)
			}
			if tt.want > 0 && env.notified[0] != m.locale.T("responseThankYou") {
				t.Errorf("notified %q", env.notified[0])
			}
		})
	}
}

func TestCopyLastReply(t *testing.T) {
	m, env := testModelWithSize(t, 120, 30)

	msgs := runCmd(sendKeyCmd(m, keys.CtrlY))
	if _, ok := findMsg[ClipboardErrorMsg](msgs); ok {
		t.Fatal("unexpected clipboard error")
	}
	if len(env.copied) != 1 || env.copied[0] != m.locale.T("initialGreeting") {
		t.Errorf("copied = %q, want the greeting", env.copied)
	}
	if f := m.footer.Flash(); f == nil || f.Text != m.locale.T("copiedReply") {
		t.Errorf("expected copied flash, got %+v", f)
	}
}

func TestCopyLastReply_AfterConversation(t *testing.T) {
	m, env := testModelWithSize(t, 120, 30)
	sendAndDeliver(t, m, "can you help me")

	runCmd(sendKeyCmd(m, keys.CtrlY))
	if len(env.copied) != 1 || env.copied[0] != m.locale.T("responseHelp") {
		t.Errorf("copied = %q, want the help reply", env.copied)
	}
}

func TestCopyLastReply_Error(t *testing.T) {
	m, env := testModelWithSize(t, 120, 30)
	env.copyErr = errors.New("no clipboard")

	clipErr, ok := findMsg[ClipboardErrorMsg](runCmd(sendKeyCmd(m, keys.CtrlY)))
	if !ok {
		t.Fatal("expected a ClipboardErrorMsg")
	}
	m.Update(clipErr)
	if f := m.footer.Flash(); f == nil || f.Type != ui.FlashWarning {
		t.Errorf("expected warning flash, got %+v", f)
	}
}

func TestTasks_Refresh(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)
	m = sendKey(m, keys.Tab)

	before, _ := m.tasks.Get("1")
	cmd := sendKeyCmd(m, "r")
	if cmd == nil || !m.tasksView.IsRefreshing() {
		t.Fatal("r should start a refresh")
	}
	if again := sendKeyCmd(m, "r"); again != nil {
		t.Error("a second r during refresh should be ignored")
	}

	m.Update(TasksRefreshedMsg{})
	if m.tasksView.IsRefreshing() {
		t.Error("refresh should finish")
	}
	after, _ := m.tasks.Get("1")
	if after.Progress != before.Progress+tasks.DefaultRefreshIncrement {
		t.Errorf("progress = %d, want %d", after.Progress, before.Progress+tasks.DefaultRefreshIncrement)
	}
	if f := m.footer.Flash(); f == nil || f.Text != m.locale.T("tasksRefreshed") {
		t.Errorf("expected refreshed flash, got %+v", f)
	}
}

func TestTasks_ActionModal(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)
	m = sendKey(m, keys.Tab)

	m = sendKey(m, keys.Enter)
	state, ok := m.modal.State.(*modals.TaskActionState)
	if !m.modal.IsVisible() || !ok {
		t.Fatal("enter on a task should open the action menu")
	}
	if state.TaskID != "1" {
		t.Errorf("menu for task %q, want 1", state.TaskID)
	}
	if !strings.Contains(ansi.Strip(m.RenderToString()), m.locale.T("taskActions")) {
		t.Error("modal should be drawn over the screen")
	}

	// The first legal action of a running task is pause
	m = sendKey(m, keys.Enter)
	if m.modal.IsVisible() {
		t.Error("modal should close after applying")
	}
	task, _ := m.tasks.Get("1")
	if task.Status != tasks.StatusPaused {
		t.Errorf("status = %q, want paused", task.Status)
	}
	want := m.locale.T("taskUpdated", i18n.Params{"title": task.Title, "status": m.locale.T(ui.StatusKey(tasks.StatusPaused))})
	if f := m.footer.Flash(); f == nil || f.Text != want {
		t.Errorf("flash = %+v, want %q", f, want)
	}
}

func TestTasks_ActionModalEscape(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)
	m = sendKey(m, keys.Tab)
	m = sendKey(m, keys.Enter)
	m = sendKey(m, keys.Escape)

	if m.modal.IsVisible() {
		t.Error("esc should close the modal")
	}
	if task, _ := m.tasks.Get("1"); task.Status != tasks.StatusRunning {
		t.Errorf("status = %q, want running", task.Status)
	}
}

func TestTasks_ActionRejectedKeepsModal(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)
	m = sendKey(m, keys.Tab)
	m = sendKey(m, keys.Enter)

	// Task moves on while the menu is open
	if _, err := m.tasks.Complete("1"); err != nil {
		t.Fatal(err)
	}
	m = sendKey(m, keys.Enter)
	if !m.modal.IsVisible() || m.modal.GetError() == "" {
		t.Error("an illegal action should keep the modal open with an error")
	}
}

func TestCapabilities_StartChat(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)
	m = sendKey(m, keys.Tab)
	m = sendKey(m, keys.Tab)
	if m.ActiveTab() != TabCapabilities {
		t.Fatalf("tab = %v", m.ActiveTab())
	}

	m = sendKey(m, keys.Enter)
	state, ok := m.modal.State.(*modals.ConfirmState)
	if !ok || state.Kind != modals.ConfirmStartChat {
		t.Fatal("enter should ask before starting a chat")
	}

	m = sendKey(m, keys.Enter)
	want := capabilities.PrefillFor(capabilities.All()[0], m.locale)
	if m.ActiveTab() != TabChat {
		t.Errorf("tab = %v, want Chat", m.ActiveTab())
	}
	if m.chat.Value() != want || m.engine.Input() != want {
		t.Errorf("prefill = %q / %q, want %q", m.chat.Value(), m.engine.Input(), want)
	}
}

func TestCapabilities_SearchKeepsKeys(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)
	m = switchTo(m, TabCapabilities)
	m = sendKey(m, "/")
	if !m.capabilities.SearchFocused() {
		t.Fatal("/ should focus search")
	}

	m = typeText(m, "q2")
	if m.ActiveTab() != TabCapabilities {
		t.Errorf("typing in search changed tab to %v", m.ActiveTab())
	}
	if m.capabilities.Query() != "q2" {
		t.Errorf("query = %q", m.capabilities.Query())
	}
	for _, b := range m.footerBindings() {
		if b.Desc == m.locale.T("hintStart") {
			t.Error("start hint should hide while searching")
		}
	}

	m = sendKey(m, keys.Escape)
	if m.capabilities.SearchFocused() {
		t.Error("esc should leave search")
	}
}

func TestPrefillOption(t *testing.T) {
	m, _ := testModel(t, nil, func(o *Options) { o.Prefill = "Research solar panels" })

	if m.ActiveTab() != TabChat {
		t.Errorf("tab = %v", m.ActiveTab())
	}
	if m.chat.Value() != "Research solar panels" {
		t.Errorf("chat input = %q", m.chat.Value())
	}
}

func TestProfile_ToggleDarkMode(t *testing.T) {
	m, env := testModelWithSize(t, 120, 30)
	m = switchTo(m, TabProfile)

	m = sendKey(m, keys.Enter)
	if m.themes.Theme() != theme.Dark {
		t.Errorf("theme = %q, want dark", m.themes.Theme())
	}
	if v, _, _ := env.store.Get(context.Background(), prefs.KeyTheme); v != "dark" {
		t.Errorf("stored theme = %q", v)
	}
	if !m.profile.State().Dark || m.profile.State().FollowSystem {
		t.Errorf("profile state = %+v", m.profile.State())
	}
	if m.styles.Palette.Name != theme.Dark {
		t.Error("styles should be rebuilt for the dark palette")
	}
	if f := m.footer.Flash(); f == nil || f.Text != "Theme: Dark" {
		t.Errorf("flash = %+v", f)
	}
}

func TestProfile_FollowSystem(t *testing.T) {
	m, env := testModel(t, map[string]string{prefs.KeyTheme: "dark"})
	m = setSize(m, 120, 30)
	m = switchTo(m, TabProfile)
	m.profile.Select(ui.SettingFollowSystem)

	m = sendKey(m, keys.Enter)
	if m.themes.IsExplicit() || m.themes.Theme() != theme.Light {
		t.Errorf("expected system theme, got %q explicit=%v", m.themes.Theme(), m.themes.IsExplicit())
	}
	if _, ok, _ := env.store.Get(context.Background(), prefs.KeyTheme); ok {
		t.Error("stored theme should be cleared")
	}

	m = sendKey(m, keys.Enter)
	if !m.themes.IsExplicit() {
		t.Error("second toggle should pin the current theme")
	}
}

func TestProfile_Toggles(t *testing.T) {
	tests := []struct {
		setting ui.SettingID
		key     string
	}{
		{ui.SettingNotifications, prefs.KeyNotifications},
		{ui.SettingAutoSync, prefs.KeyAutoSync},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, env := testModelWithSize(t, 120, 30)
			m = switchTo(m, TabProfile)
			m.profile.Select(tt.setting)

			m = sendKey(m, keys.Space)
			if prefs.Bool(context.Background(), env.store, tt.key, true) {
				t.Errorf("%s should be stored off", tt.key)
			}
			m = sendKey(m, keys.Enter)
			if !prefs.Bool(context.Background(), env.store, tt.key, false) {
				t.Errorf("%s should be stored on", tt.key)
			}
		})
	}
}

func TestProfile_TogglePersistFailureKeepsPrevious(t *testing.T) {
	m, env := testModelWithSize(t, 120, 30)
	env.store.FailSet(errors.New("disk full"))
	m = switchTo(m, TabProfile)
	before := m.profile.State().Notifications
	m.profile.Select(ui.SettingNotifications)

	m = sendKey(m, keys.Enter)
	if m.profile.State().Notifications != before {
		t.Errorf("Notifications = %v, want %v kept when it cannot be saved", m.profile.State().Notifications, before)
	}

	env.store.FailSet(nil)
	m = sendKey(m, keys.Enter)
	if m.profile.State().Notifications == before {
		t.Error("toggle should apply once the store accepts writes")
	}
}

func TestProfile_DarkModePersistFailureKeepsTheme(t *testing.T) {
	m, env := testModelWithSize(t, 120, 30)
	m = switchTo(m, TabProfile)
	before := m.themes.Theme()
	env.store.FailSet(errors.New("disk full"))
	m.profile.Select(ui.SettingDarkMode)

	m = sendKey(m, keys.Enter)
	if m.themes.Theme() != before {
		t.Errorf("Theme() = %q, want %q kept when it cannot be saved", m.themes.Theme(), before)
	}
	if m.profile.State().Dark != before.IsDark() {
		t.Error("profile row should reflect the kept theme")
	}
}

func TestProfile_ComingSoon(t *testing.T) {
	for _, id := range []ui.SettingID{ui.SettingPrivacy, ui.SettingHelp, ui.SettingRate} {
		m, _ := testModelWithSize(t, 120, 30)
		m = switchTo(m, TabProfile)
		m.profile.Select(id)
		m = sendKey(m, keys.Enter)

		want := m.locale.T("comingSoon", i18n.Params{"feature": m.locale.T(id.Key())})
		if f := m.footer.Flash(); f == nil || f.Text != want {
			t.Errorf("%s: flash = %+v, want %q", id.Key(), f, want)
		}
	}
}

func TestProfile_SignOut(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)
	m = switchTo(m, TabProfile)
	m.profile.Select(ui.SettingSignOut)

	m = sendKey(m, keys.Enter)
	state, ok := m.modal.State.(*modals.ConfirmState)
	if !ok || state.Kind != modals.ConfirmSignOut {
		t.Fatal("sign out should ask first")
	}
	// Cancel is the default answer
	m = sendKey(m, keys.Enter)
	if m.modal.IsVisible() || m.footer.HasFlash() {
		t.Error("cancelled sign out should do nothing")
	}
}

func TestProfile_LanguageModal(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)
	m = switchTo(m, TabProfile)
	m.profile.Select(ui.SettingLanguage)

	m = sendKey(m, keys.Enter)
	if _, ok := m.modal.State.(*modals.LanguageState); !ok {
		t.Fatal("language row should open the selector")
	}
	// Submitting the current language changes nothing
	m.Update(modals.SubmitMsg{})
	if m.modal.IsVisible() || m.locale.Locale() != i18n.EN {
		t.Error("unchanged selection should just close")
	}
}

func TestLocaleChange_RelaysOut(t *testing.T) {
	m, env := testModelWithSize(t, 120, 30)

	m.locale.SetLocale(context.Background(), i18n.AR)

	if v, _, _ := env.store.Get(context.Background(), prefs.KeyLocale); v != "ar" {
		t.Errorf("stored locale = %q", v)
	}
	if got := m.engine.Messages()[0].Text; got != testCatalog.Lookup(i18n.AR, "initialGreeting", nil) {
		t.Errorf("greeting not retranslated: %q", got)
	}
	out := ansi.Strip(m.RenderToString())
	if !strings.Contains(out, testCatalog.Lookup(i18n.AR, "tabTasks", nil)) {
		t.Error("tab bar should be in Arabic")
	}
	if m.profile.State().Language != "العربية" {
		t.Errorf("profile language = %q", m.profile.State().Language)
	}
}

func TestBackgroundColor_FollowsSystem(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)

	m.Update(tea.BackgroundColorMsg{Color: color.Black})
	if m.themes.Theme() != theme.Dark {
		t.Errorf("theme = %q, want dark after a dark background", m.themes.Theme())
	}
	if m.styles.Palette.Name != theme.Dark {
		t.Error("styles should follow the system theme")
	}

	m.themes.SetTheme(context.Background(), theme.Light)
	m.Update(tea.BackgroundColorMsg{Color: color.Black})
	if m.themes.Theme() != theme.Light {
		t.Error("an explicit theme should survive system changes")
	}
}

func TestAutoSync(t *testing.T) {
	tests := []struct {
		name   string
		stored map[string]string
		moved  bool
	}{
		{"enabled", nil, true},
		{"disabled", map[string]string{prefs.KeyAutoSync: "false"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := testModel(t, tt.stored)
			before, _ := m.tasks.Get("1")

			_, cmd := m.Update(AutoSyncMsg{})
			if cmd == nil {
				t.Error("auto sync should reschedule itself")
			}
			after, _ := m.tasks.Get("1")
			if (after.Progress != before.Progress) != tt.moved {
				t.Errorf("progress %d -> %d", before.Progress, after.Progress)
			}
		})
	}
}

func TestSpinners_ShareOneTickLoop(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)

	first := m.startTicker(ui.StopwatchTick())
	second := m.startTicker(ui.StopwatchTick())
	if first == nil || second != nil {
		t.Error("only the first spinner should start a tick loop")
	}

	// Nothing is animating, so the loop ends
	if _, cmd := m.Update(ui.StopwatchTickMsg{}); cmd != nil {
		t.Error("idle tick should not reschedule")
	}
	if m.ticking {
		t.Error("loop should be marked stopped")
	}
}

func TestFlashTick(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 30)
	m.ShowFlash("hello", ui.FlashInfo)

	if _, cmd := m.Update(ui.FlashTickMsg{}); cmd == nil {
		t.Error("live flash should keep ticking")
	}
	m.footer.ClearFlash()
	if _, cmd := m.Update(ui.FlashTickMsg{}); cmd != nil {
		t.Error("no flash, no tick")
	}
}
