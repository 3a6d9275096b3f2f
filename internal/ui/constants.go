// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// ScreenTitleHeight is the title plus subtitle shown at the top of each screen
	ScreenTitleHeight = 2

	// TextareaHeight is the number of lines for the chat input textarea
	TextareaHeight = 3

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + BorderSize

	// ChatStatusHeight is the "Online" / "typing" line above the messages
	ChatStatusHeight = 1

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth and MinTerminalHeight clamp layout math on tiny terminals
	MinTerminalWidth  = 40
	MinTerminalHeight = 12
)

// Message bubbles
const (
	// BubbleWidthPercent is how much of the chat width a bubble may take
	BubbleWidthPercent = 80

	// TimestampFormat renders message times as HH:MM
	TimestampFormat = "15:04"
)

// Task cards
const (
	// ProgressBarWidth is the number of cells in a running task's bar
	ProgressBarWidth = 20
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 56

	// SearchInputCharLimit caps the capabilities search box
	SearchInputCharLimit = 64
)
