package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/manus/internal/i18n"
)

// Header represents the top header bar: the app title and the tab bar.
type Header struct {
	width  int
	title  string
	tabs   []string
	active int
	dir    i18n.Direction
	styles *Styles
}

// NewHeader creates a new header
func NewHeader(s *Styles) *Header {
	return &Header{styles: s}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetStyles swaps the styles after a theme change.
func (h *Header) SetStyles(s *Styles) {
	h.styles = s
}

// SetDirection sets the reading direction.
func (h *Header) SetDirection(dir i18n.Direction) {
	h.dir = dir
}

// SetTitle sets the app title shown at the leading edge.
func (h *Header) SetTitle(title string) {
	h.title = title
}

// SetTabs sets the tab labels in logical order.
func (h *Header) SetTabs(labels []string) {
	h.tabs = labels
}

// SetActive marks tab i as selected.
func (h *Header) SetActive(i int) {
	h.active = i
}

// segment is a run of header text that shares a foreground treatment.
type segment struct {
	text   string
	active bool
	muted  bool
}

// View renders the header
func (h *Header) View() string {
	title := segment{text: " " + h.title + " "}

	var tabs []segment
	for i, label := range h.tabs {
		tabs = append(tabs, segment{
			text:   fmt.Sprintf(" %d %s ", i+1, label),
			active: i == h.active,
			muted:  i != h.active,
		})
	}
	if h.dir == i18n.RTL {
		for i, j := 0, len(tabs)-1; i < j; i, j = i+1, j-1 {
			tabs[i], tabs[j] = tabs[j], tabs[i]
		}
	}

	used := lipgloss.Width(title.text)
	for _, t := range tabs {
		used += lipgloss.Width(t.text)
	}
	pad := segment{text: strings.Repeat(" ", max(h.width-used, 0))}

	var line []segment
	if h.dir == i18n.RTL {
		line = append(append(tabs, pad), title)
	} else {
		line = append([]segment{title, pad}, tabs...)
	}
	return h.renderGradient(line)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// contrastText picks dark or light text for a background color.
func contrastText(r, g, b int) string {
	// Rec. 601 luma
	if 299*r+587*g+114*b > 128*1000 {
		return "#0F172A"
	}
	return "#F8FAFC"
}

// renderGradient renders the segments on a background fading from the
// primary color at the leading edge to the screen background. Inactive tabs
// are faint.
func (h *Header) renderGradient(segments []segment) string {
	p := h.styles.Palette
	startR, startG, startB := parseHexColor(p.Primary)
	endR, endG, endB := parseHexColor(p.Bg)

	total := 0
	for _, seg := range segments {
		total += len([]rune(seg.text))
	}
	if total == 0 {
		return ""
	}

	var result strings.Builder
	i := 0
	for _, seg := range segments {
		for _, r := range seg.text {
			t := float64(i) / float64(total)
			if h.dir == i18n.RTL {
				t = 1 - t
			}
			cr := int(float64(startR)*(1-t) + float64(endR)*t)
			cg := int(float64(startG)*(1-t) + float64(endG)*t)
			cb := int(float64(startB)*(1-t) + float64(endB)*t)

			style := lipgloss.NewStyle().
				Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
				Foreground(lipgloss.Color(contrastText(cr, cg, cb))).
				Bold(!seg.muted).
				Faint(seg.muted).
				Underline(seg.active)
			result.WriteString(style.Render(string(r)))
			i++
		}
	}

	return result.String()
}
