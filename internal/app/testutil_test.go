package app

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/manus/internal/config"
	"github.com/zhubert/manus/internal/conversation"
	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/keys"
	"github.com/zhubert/manus/internal/prefs"
	"github.com/zhubert/manus/internal/tasks"
	"github.com/zhubert/manus/internal/theme"
)

var testCatalog = i18n.MustLoadCatalog()

// testNow pins task durations so renders are stable.
var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// testEnv records what the model sent to the outside world.
type testEnv struct {
	store *prefs.MemoryStore

	mu       sync.Mutex
	notified []string
	copied   []string
	copyErr  error
}

func (e *testEnv) notify(_ i18n.Translator, reply string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notified = append(e.notified, reply)
	return nil
}

func (e *testEnv) copy(text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.copyErr != nil {
		return e.copyErr
	}
	e.copied = append(e.copied, text)
	return nil
}

// testModel creates a model over an in-memory store with English, the
// light theme and instant replies. stored seeds the preference store.
func testModel(t *testing.T, stored map[string]string, configure ...func(*Options)) (*Model, *testEnv) {
	t.Helper()
	ctx := context.Background()
	env := &testEnv{store: prefs.NewMemoryStore(stored)}

	locale := i18n.NewProvider(env.store, testCatalog, i18n.EN)
	locale.Load(ctx)
	themes := theme.NewProvider(env.store, theme.Light)
	themes.Load(ctx)

	opts := Options{
		Config: config.Default(t.TempDir()),
		Store:  env.store,
		Theme:  themes,
		Locale: locale,
		Engine: conversation.NewEngine(locale,
			conversation.WithDelay(0, 0),
			conversation.WithRand(rand.New(rand.NewPCG(1, 2))),
		),
		Tasks:   tasks.NewStore(tasks.SeedTasks(testNow), tasks.WithClock(func() time.Time { return testNow })),
		Version: "0.0.0-test",
		Clock:   func() time.Time { return testNow },
		Notify:  env.notify,
		Copy:    env.copy,
	}
	for _, fn := range configure {
		fn(&opts)
	}

	m := New(opts)
	t.Cleanup(m.Close)
	return m, env
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(t *testing.T, width, height int) (*Model, *testEnv) {
	t.Helper()
	m, env := testModel(t, nil)
	return setSize(m, width, height), env
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+c", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.AltEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModAlt}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.Space, " ":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// sendKeyCmd sends a key press and returns the resulting command.
func sendKeyCmd(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}

// switchTo presses tab until the given screen is active.
func switchTo(m *Model, tab Tab) *Model {
	for range Tabs {
		if m.ActiveTab() == tab {
			break
		}
		m = sendKey(m, keys.Tab)
	}
	return m
}

// runCmd executes cmd and every command it batches, returning the messages
// they produce. Timer commands block until they fire.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// findMsg returns the first message of type T.
func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// sendAndDeliver sends text from the chat tab and feeds the reply back in.
func sendAndDeliver(t *testing.T, m *Model, text string) {
	t.Helper()
	m = typeText(m, text)
	ready, ok := findMsg[ReplyReadyMsg](runCmd(sendKeyCmd(m, keys.Enter)))
	if !ok {
		t.Fatal("expected a ReplyReadyMsg after sending")
	}
	m.Update(ready)
}
