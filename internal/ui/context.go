package ui

import (
	"log/slog"

	"github.com/zhubert/manus/internal/logger"
)

// Layout holds the layout calculations for one terminal size. Every screen
// sizes itself from the same Layout so the header, content and footer
// always add up to the terminal height.
type Layout struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentWidth  int
	ContentHeight int
}

// NewLayout computes the layout for a width x height terminal.
func NewLayout(width, height int) Layout {
	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	l := Layout{
		TerminalWidth:  width,
		TerminalHeight: height,
		HeaderHeight:   HeaderHeight,
		FooterHeight:   FooterHeight,
		ContentWidth:   width,
	}
	// Content area is everything between header and footer
	l.ContentHeight = height - l.HeaderHeight - l.FooterHeight

	log().Debug("terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", l.ContentHeight,
	)
	return l
}

// InnerWidth returns the usable width inside a panel with borders
func (l Layout) InnerWidth(panelWidth int) int {
	return max(panelWidth-BorderSize, 0)
}

// InnerHeight returns the usable height inside a panel with borders
func (l Layout) InnerHeight(panelHeight int) int {
	return max(panelHeight-BorderSize, 0)
}

// ScreenBodyHeight is the content height left once a screen's title block
// is drawn.
func (l Layout) ScreenBodyHeight() int {
	return max(l.ContentHeight-ScreenTitleHeight, 1)
}

func log() *slog.Logger {
	return logger.WithComponent("ui")
}
