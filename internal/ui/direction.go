package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/manus/internal/i18n"
)

// leading is the horizontal position where a line starts in dir.
func leading(dir i18n.Direction) lipgloss.Position {
	if dir == i18n.RTL {
		return lipgloss.Right
	}
	return lipgloss.Left
}

// trailing is the horizontal position where a line ends in dir.
func trailing(dir i18n.Direction) lipgloss.Position {
	if dir == i18n.RTL {
		return lipgloss.Left
	}
	return lipgloss.Right
}

// ordered returns parts in visual left-to-right order for dir.
func ordered(dir i18n.Direction, parts ...string) []string {
	if dir != i18n.RTL {
		return parts
	}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[len(parts)-1-i] = p
	}
	return out
}

// spread places start at the leading edge and end at the trailing edge of a
// single line of the given width.
func spread(dir i18n.Direction, width int, start, end string) string {
	gap := width - lipgloss.Width(start) - lipgloss.Width(end)
	if gap < 1 {
		gap = 1
	}
	parts := ordered(dir, start, end)
	return parts[0] + strings.Repeat(" ", gap) + parts[1]
}

// joinRow joins inline parts with sep in reading order for dir.
func joinRow(dir i18n.Direction, sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(ordered(dir, kept...), sep)
}
