package app

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/manus/internal/clipboard"
	"github.com/zhubert/manus/internal/config"
	"github.com/zhubert/manus/internal/conversation"
	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/logger"
	"github.com/zhubert/manus/internal/notification"
	"github.com/zhubert/manus/internal/prefs"
	"github.com/zhubert/manus/internal/tasks"
	"github.com/zhubert/manus/internal/theme"
	"github.com/zhubert/manus/internal/ui"
	"github.com/zhubert/manus/internal/ui/modals"
)

// Tab identifies one of the four screens.
type Tab int

const (
	TabChat Tab = iota
	TabTasks
	TabCapabilities
	TabProfile
)

// Tabs lists the screens in tab-bar order.
var Tabs = []Tab{TabChat, TabTasks, TabCapabilities, TabProfile}

// Key is the translation key of the tab's label.
func (t Tab) Key() string {
	switch t {
	case TabTasks:
		return "tabTasks"
	case TabCapabilities:
		return "tabCapabilities"
	case TabProfile:
		return "tabProfile"
	}
	return "tabChat"
}

// String returns a human-readable name for the tab
func (t Tab) String() string {
	switch t {
	case TabChat:
		return "Chat"
	case TabTasks:
		return "Tasks"
	case TabCapabilities:
		return "Capabilities"
	case TabProfile:
		return "Profile"
	default:
		return "Unknown"
	}
}

// Timings of the simulated background work.
const (
	RefreshDuration  = time.Second
	AutoSyncInterval = 30 * time.Second
)

// Options configures a Model. Nil collaborators are built from Config and
// loaded by New; collaborators passed in are expected to be loaded already.
type Options struct {
	Config  *config.Config
	Store   prefs.Store
	Theme   *theme.Provider
	Locale  *i18n.Provider
	Engine  *conversation.Engine
	Tasks   *tasks.Store
	Version string

	// Prefill opens the chat with this text in the input box.
	Prefill string

	// Clock drives task durations; defaults to time.Now.
	Clock func() time.Time
	// Notify announces a reply that arrived off the Chat tab.
	Notify func(t i18n.Translator, reply string) error
	// Copy writes to the system clipboard.
	Copy func(text string) error
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string

	header       *ui.Header
	footer       *ui.Footer
	modal        *ui.Modal
	chat         *ui.ChatView
	tasksView    *ui.TasksView
	capabilities *ui.CapabilitiesView
	profile      *ui.ProfileView
	styles       *ui.Styles
	layout       ui.Layout

	store  prefs.Store
	themes *theme.Provider
	locale *i18n.Provider
	engine *conversation.Engine
	tasks  *tasks.Store

	notify func(t i18n.Translator, reply string) error
	copy   func(text string) error

	width  int
	height int
	tab    Tab

	// Profile toggles mirrored from the store
	notifications bool
	autoSync      bool

	// ticking is true while a StopwatchTick loop is alive; the chat and
	// tasks spinners share it.
	ticking bool

	ctx    context.Context
	cancel context.CancelFunc
}

// ReplyReadyMsg is sent when a pending reply's delay has elapsed, or when
// waiting for it was interrupted (Err is set).
type ReplyReadyMsg struct {
	Reply *conversation.PendingReply
	Err   error
}

// TasksRefreshedMsg ends a simulated task refresh.
type TasksRefreshedMsg struct{}

// AutoSyncMsg is the periodic background sync tick.
type AutoSyncMsg time.Time

// ClipboardErrorMsg reports a failed clipboard write.
type ClipboardErrorMsg struct {
	Error error
}

// New creates a new app model
func New(opts Options) *Model {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default("")
	}
	store := opts.Store
	if store == nil {
		store = prefs.NewMemoryStore(nil)
	}
	locale := opts.Locale
	if locale == nil {
		locale = i18n.NewProvider(store, i18n.MustLoadCatalog(), i18n.DetectDeviceLocale())
		locale.Load(ctx)
	}
	themes := opts.Theme
	if themes == nil {
		themes = theme.NewProvider(store, theme.DetectSystem())
		themes.Load(ctx)
	}
	engine := opts.Engine
	if engine == nil {
		engine = conversation.NewEngine(locale,
			conversation.WithDelay(cfg.Chat.ReplyDelayMin, cfg.Chat.ReplyDelayMax),
			conversation.WithMaxInput(cfg.Chat.MaxInput),
		)
	}
	taskStore := opts.Tasks
	if taskStore == nil {
		taskOpts := []tasks.Option{tasks.WithRefreshIncrement(cfg.Tasks.RefreshIncrement)}
		if cfg.Tasks.StrictFailure {
			taskOpts = append(taskOpts, tasks.WithStrictFailure())
		}
		taskStore = tasks.NewStore(tasks.SeedTasks(time.Now()), taskOpts...)
	}

	styles := ui.NewStyles(ui.PaletteFor(themes.Theme()))

	m := &Model{
		config:        cfg,
		version:       opts.Version,
		header:        ui.NewHeader(styles),
		footer:        ui.NewFooter(styles),
		modal:         ui.NewModal(),
		chat:          ui.NewChatView(styles, locale, engine.MaxInput()),
		tasksView:     ui.NewTasksView(taskStore, styles, locale),
		capabilities:  ui.NewCapabilitiesView(styles, locale),
		profile:       ui.NewProfileView(styles, locale),
		styles:        styles,
		store:         store,
		themes:        themes,
		locale:        locale,
		engine:        engine,
		tasks:         taskStore,
		notify:        opts.Notify,
		copy:          opts.Copy,
		notifications: prefs.Bool(ctx, store, prefs.KeyNotifications, true),
		autoSync:      prefs.Bool(ctx, store, prefs.KeyAutoSync, true),
		ctx:           ctx,
		cancel:        cancel,
	}
	if m.notify == nil {
		m.notify = notification.ReplyReady
	}
	if m.copy == nil {
		m.copy = clipboard.WriteText
	}
	if opts.Clock != nil {
		m.tasksView.SetClock(opts.Clock)
	}

	themes.Subscribe(func(theme.Theme) { m.applyTheme() })
	locale.Subscribe(func(i18n.Locale, i18n.Direction) { m.applyLocale() })

	m.applyLocale()
	m.setTab(TabChat)
	if opts.Prefill != "" {
		m.startChat(opts.Prefill)
	}
	return m
}

// Init asks the terminal for its background colour so the theme can follow
// it, and starts the background sync loop.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.RequestBackgroundColor, autoSyncTick())
}

// Close cancels the pending reply and every outstanding wait. The program
// calls it once the event loop has exited.
func (m *Model) Close() {
	if m.engine.Cancel() {
		log().Debug("pending reply cancelled on close")
	}
	m.cancel()
}

// ActiveTab returns the visible screen.
func (m *Model) ActiveTab() Tab {
	return m.tab
}

// setTab switches screens. Only the Chat screen takes text input.
func (m *Model) setTab(t Tab) {
	if m.tab != t {
		log().Debug("tab changed", "from", m.tab.String(), "to", t.String())
	}
	m.tab = t
	m.header.SetActive(int(t))
	m.chat.SetFocused(t == TabChat)
	if t != TabCapabilities {
		m.capabilities.BlurSearch()
	}
}

// startChat is the navigation boundary into the Chat screen: the text lands
// in the conversation's input buffer and the Chat tab opens.
func (m *Model) startChat(prefill string) {
	m.engine.SetInput(prefill)
	m.setTab(TabChat)
	m.chat.SetValue(m.engine.Input())
}

// applyTheme rebuilds the styles after a theme change.
func (m *Model) applyTheme() {
	m.styles = ui.NewStyles(ui.PaletteFor(m.themes.Theme()))
	m.header.SetStyles(m.styles)
	m.footer.SetStyles(m.styles)
	m.chat.SetStyles(m.styles)
	m.tasksView.SetStyles(m.styles)
	m.capabilities.SetStyles(m.styles)
	m.profile.SetStyles(m.styles)
	m.refreshProfile()
	log().Debug("theme applied", "theme", string(m.themes.Theme()))
}

// applyLocale re-lays out every screen for the active locale's direction
// and refreshes translated text.
func (m *Model) applyLocale() {
	dir := m.locale.Direction()

	m.header.SetDirection(dir)
	m.header.SetTitle(m.locale.T("manusAI"))
	labels := make([]string, len(Tabs))
	for i, t := range Tabs {
		labels[i] = m.locale.T(t.Key())
	}
	m.header.SetTabs(labels)

	m.footer.SetDirection(dir)
	m.chat.SetDirection(dir)
	m.tasksView.SetDirection(dir)
	m.capabilities.SetDirection(dir)
	m.profile.SetDirection(dir)

	m.engine.Retranslate()
	m.chat.Retranslate()
	m.capabilities.Retranslate()
	m.chat.SetMessages(m.engine.Messages())

	m.refreshProfile()
	m.refreshFooter()
}

// refreshProfile pushes the current settings into the profile screen.
func (m *Model) refreshProfile() {
	m.profile.SetState(ui.ProfileState{
		Dark:          m.themes.IsDark(),
		FollowSystem:  !m.themes.IsExplicit(),
		Notifications: m.notifications,
		AutoSync:      m.autoSync,
		Language:      modals.LanguageName(m.locale.Locale(), m.locale),
		Version:       m.version,
	})
}

func log() *slog.Logger {
	return logger.WithComponent("app")
}
