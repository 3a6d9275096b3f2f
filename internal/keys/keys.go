// Package keys names the key strings the app matches on.
//
// Each value is what tea.KeyPressMsg.String() returns for that key, built
// from the same message so the two cannot drift apart. Printable keys such
// as "r", "/" or the tab digits are compared as literals instead.
package keys

import tea "charm.land/bubbletea/v2"

func press(code rune, mod tea.KeyMod) string {
	return tea.KeyPressMsg{Code: code, Mod: mod}.String()
}

// Lists and the tab bar
var (
	Up       = press(tea.KeyUp, 0)             // "up"
	Down     = press(tea.KeyDown, 0)           // "down"
	Left     = press(tea.KeyLeft, 0)           // "left"
	Right    = press(tea.KeyRight, 0)          // "right"
	Tab      = press(tea.KeyTab, 0)            // "tab"
	ShiftTab = press(tea.KeyTab, tea.ModShift) // "shift+tab"
	Space    = press(tea.KeySpace, 0)          // "space"
)

// Chat input and history scrolling
var (
	Enter    = press(tea.KeyEnter, 0)          // "enter"
	AltEnter = press(tea.KeyEnter, tea.ModAlt) // "alt+enter"
	CtrlJ    = press('j', tea.ModCtrl)         // "ctrl+j"
	CtrlY    = press('y', tea.ModCtrl)         // "ctrl+y"
	PgUp     = press(tea.KeyPgUp, 0)           // "pgup"
	PgDown   = press(tea.KeyPgDown, 0)         // "pgdown"
	Home     = press(tea.KeyHome, 0)           // "home"
	End      = press(tea.KeyEnd, 0)            // "end"
	CtrlUp   = press(tea.KeyUp, tea.ModCtrl)   // "ctrl+up"
	CtrlDown = press(tea.KeyDown, tea.ModCtrl) // "ctrl+down"
)

// Modals and quitting
var (
	Escape = press(tea.KeyEscape, 0) // "esc"
	CtrlC  = press('c', tea.ModCtrl) // "ctrl+c"
)
