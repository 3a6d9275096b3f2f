package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/keys"
	"github.com/zhubert/manus/internal/theme"
)

var testCatalog = i18n.MustLoadCatalog()

func testStyles() *Styles {
	return NewStyles(PaletteFor(theme.Light))
}

func testTranslator(l i18n.Locale) i18n.Translator {
	return i18n.Static{Catalog: testCatalog, Locale: l}
}

// plainLines strips styling and splits a render into lines.
func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

// firstColumn is the index of the first non-space cell of line.
func firstColumn(line string) int {
	return ansi.StringWidth(line) - ansi.StringWidth(strings.TrimLeft(line, " "))
}

// lastColumn is one past the last non-space cell of line.
func lastColumn(line string) int {
	return ansi.StringWidth(strings.TrimRight(line, " "))
}

// lineContaining returns the first plain line containing sub.
func lineContaining(s, sub string) (string, bool) {
	for _, l := range plainLines(s) {
		if strings.Contains(l, sub) {
			return l, true
		}
	}
	return "", false
}

// keyPress creates a tea.KeyPressMsg for the given key string.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
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
	}
	return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
}
