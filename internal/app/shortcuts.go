package app

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/manus/internal/keys"
	"github.com/zhubert/manus/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for the keys the app handles and the
// hints the footer shows.
type Shortcut struct {
	Key        string                              // The key binding (e.g., "r", "ctrl+y")
	DisplayKey string                              // Shown in the footer; defaults to Key
	HintKey    string                              // Translation key of the footer hint; empty hides it
	Tabs       []Tab                               // Screens where it applies; empty means all
	Handler    func(m *Model) (tea.Model, tea.Cmd) // nil means the key is handled by the screen
	Condition  func(m *Model) bool                 // Optional extra condition
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Entries are matched in order; the footer lists the hinted ones for the
// active screen in the same order.
var ShortcutRegistry = []Shortcut{
	// Chat
	{
		Key:        keys.Enter,
		DisplayKey: "enter",
		HintKey:    "hintSend",
		Tabs:       []Tab{TabChat},
		Handler:    (*Model).sendMessage,
		Condition:  func(m *Model) bool { return !m.engine.Busy() },
	},
	{
		Key:        keys.AltEnter,
		DisplayKey: "alt+enter",
		HintKey:    "hintNewline",
		Tabs:       []Tab{TabChat},
	},
	{
		Key:        keys.CtrlY,
		DisplayKey: "ctrl+y",
		HintKey:    "hintCopy",
		Tabs:       []Tab{TabChat},
		Handler:    (*Model).copyLastReply,
	},

	// Tasks
	{
		Key:        keys.Up,
		DisplayKey: "↑/↓",
		HintKey:    "hintNavigate",
		Tabs:       []Tab{TabTasks, TabCapabilities, TabProfile},
	},
	{
		Key:        keys.Left,
		DisplayKey: "←/→",
		HintKey:    "hintFilter",
		Tabs:       []Tab{TabTasks},
	},
	{
		Key:        keys.Enter,
		DisplayKey: "enter",
		HintKey:    "hintActions",
		Tabs:       []Tab{TabTasks},
		Handler:    (*Model).openTaskActions,
	},
	{
		Key:        "r",
		DisplayKey: "r",
		HintKey:    "hintRefresh",
		Tabs:       []Tab{TabTasks},
		Handler:    (*Model).refreshTasks,
	},

	// Capabilities
	{
		Key:        keys.Left,
		DisplayKey: "←/→",
		HintKey:    "hintCategory",
		Tabs:       []Tab{TabCapabilities},
	},
	{
		Key:        "/",
		DisplayKey: "/",
		HintKey:    "hintSearch",
		Tabs:       []Tab{TabCapabilities},
	},
	{
		Key:        keys.Enter,
		DisplayKey: "enter",
		HintKey:    "hintStart",
		Tabs:       []Tab{TabCapabilities},
		Handler:    (*Model).confirmStartChat,
		Condition:  func(m *Model) bool { return !m.capabilities.SearchFocused() },
	},

	// Profile
	{
		Key:        keys.Enter,
		DisplayKey: "enter",
		HintKey:    "hintToggle",
		Tabs:       []Tab{TabProfile},
		Handler:    (*Model).activateSetting,
	},
	{
		Key:     keys.Space,
		Tabs:    []Tab{TabProfile},
		Handler: (*Model).activateSetting,
	},

	// Navigation
	{
		Key:        keys.Tab,
		DisplayKey: "tab",
		HintKey:    "hintTabs",
		Handler:    func(m *Model) (tea.Model, tea.Cmd) { m.nextTab(1); return m, nil },
	},
	{
		Key:     keys.ShiftTab,
		Handler: func(m *Model) (tea.Model, tea.Cmd) { m.nextTab(-1); return m, nil },
	},
	tabShortcut("1", TabChat),
	tabShortcut("2", TabTasks),
	tabShortcut("3", TabCapabilities),
	tabShortcut("4", TabProfile),

	// General
	{
		Key:        keys.CtrlC,
		DisplayKey: "ctrl+c",
		HintKey:    "hintQuit",
		Handler:    shortcutQuit,
	},
	{
		Key:       "q",
		Handler:   shortcutQuit,
		Condition: func(m *Model) bool { return !m.isTextEntry() },
	},
}

// tabShortcut jumps to a screen by number when no input box has focus.
func tabShortcut(key string, t Tab) Shortcut {
	return Shortcut{
		Key:       key,
		Handler:   func(m *Model) (tea.Model, tea.Cmd) { m.setTab(t); return m, nil },
		Condition: func(m *Model) bool { return !m.isTextEntry() },
	}
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

// appliesTo reports whether s is live on the model's current screen.
func (s Shortcut) appliesTo(m *Model) bool {
	if len(s.Tabs) > 0 && !slices.Contains(s.Tabs, m.tab) {
		return false
	}
	return s.Condition == nil || s.Condition(m)
}

// ExecuteShortcut runs the first registered handler for key. ok is false
// when no shortcut claims the key and it should go to the active screen.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	for _, s := range ShortcutRegistry {
		if s.Key != key || s.Handler == nil || !s.appliesTo(m) {
			continue
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// footerBindings lists the hints for the active screen.
func (m *Model) footerBindings() []ui.KeyBinding {
	var bindings []ui.KeyBinding
	for _, s := range ShortcutRegistry {
		if s.HintKey == "" || !s.appliesTo(m) {
			continue
		}
		display := s.DisplayKey
		if display == "" {
			display = s.Key
		}
		bindings = append(bindings, ui.KeyBinding{Key: display, Desc: m.locale.T(s.HintKey)})
	}
	return bindings
}

// refreshFooter updates the footer hints for the current screen.
func (m *Model) refreshFooter() {
	m.footer.SetBindings(m.footerBindings())
}
