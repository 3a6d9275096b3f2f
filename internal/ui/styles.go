package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/manus/internal/tasks"
)

// Styles holds every lipgloss style the screens render with. It is rebuilt
// from a Palette whenever the theme changes.
type Styles struct {
	Palette Palette

	ColorPrimary   color.Color
	ColorBg        color.Color
	ColorSurface   color.Color
	ColorBorder    color.Color
	ColorText      color.Color
	ColorTextMuted color.Color
	ColorSuccess   color.Color
	ColorWarning   color.Color
	ColorError     color.Color
	ColorInfo      color.Color

	// Header
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	ScreenTitle    lipgloss.Style
	ScreenSubtitle lipgloss.Style
	SectionTitle   lipgloss.Style
	OnlineDot      lipgloss.Style
	TypingDot      lipgloss.Style

	// Footer
	Footer     lipgloss.Style
	FooterKey  lipgloss.Style
	FooterDesc lipgloss.Style
	FooterSep  lipgloss.Style

	// Chat
	UserBubble       lipgloss.Style
	BotBubble        lipgloss.Style
	Avatar           lipgloss.Style
	UserAvatar       lipgloss.Style
	Timestamp        lipgloss.Style
	UserTimestamp    lipgloss.Style
	ChatInput        lipgloss.Style
	ChatInputFocus   lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	// Lists and cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardBody     lipgloss.Style
	Muted        lipgloss.Style
	Chip         lipgloss.Style
	ChipActive   lipgloss.Style
	ProgressFill lipgloss.Style
	ProgressRest lipgloss.Style
	Toggle       lipgloss.Style
	ToggleOn     lipgloss.Style
	Danger       lipgloss.Style
	Empty        lipgloss.Style

	// Modals
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	ModalHelp  lipgloss.Style

	// Status
	StatusLoading lipgloss.Style
	StatusError   lipgloss.Style

	// Markdown
	MarkdownH1         lipgloss.Style
	MarkdownH2         lipgloss.Style
	MarkdownH3         lipgloss.Style
	MarkdownBold       lipgloss.Style
	MarkdownItalic     lipgloss.Style
	MarkdownInlineCode lipgloss.Style
	MarkdownLink       lipgloss.Style
	MarkdownListBullet lipgloss.Style
	MarkdownBlockquote lipgloss.Style
	MarkdownHR         lipgloss.Style
}

// NewStyles derives the full style set from p.
func NewStyles(p Palette) *Styles {
	s := &Styles{
		Palette:        p,
		ColorPrimary:   lipgloss.Color(p.Primary),
		ColorBg:        lipgloss.Color(p.Bg),
		ColorSurface:   lipgloss.Color(p.Surface),
		ColorBorder:    lipgloss.Color(p.Border),
		ColorText:      lipgloss.Color(p.Text),
		ColorTextMuted: lipgloss.Color(p.TextMuted),
		ColorSuccess:   lipgloss.Color(p.Success),
		ColorWarning:   lipgloss.Color(p.Warning),
		ColorError:     lipgloss.Color(p.Error),
		ColorInfo:      lipgloss.Color(p.Info),
	}

	s.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorText)
	s.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)
	s.ScreenTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorPrimary)
	s.ScreenSubtitle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Italic(true)
	s.SectionTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorText).
		MarginTop(1)
	s.OnlineDot = lipgloss.NewStyle().Foreground(lipgloss.Color(p.OnlineIndicator))
	s.TypingDot = lipgloss.NewStyle().Foreground(lipgloss.Color(p.TypingIndicator))

	s.Footer = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Padding(0, 1)
	s.FooterKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorPrimary)
	s.FooterDesc = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)
	s.FooterSep = lipgloss.NewStyle().
		Foreground(s.ColorBorder)

	s.UserBubble = lipgloss.NewStyle().
		Background(lipgloss.Color(p.UserBubble)).
		Foreground(lipgloss.Color(p.UserBubbleText)).
		Padding(0, 1)
	s.BotBubble = lipgloss.NewStyle().
		Background(lipgloss.Color(p.BotBubble)).
		Foreground(lipgloss.Color(p.BotBubbleText)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorBorder).
		Padding(0, 1)
	s.Avatar = lipgloss.NewStyle().
		Background(lipgloss.Color(p.AvatarBg)).
		Foreground(s.ColorPrimary).
		Bold(true).
		Padding(0, 1)
	s.UserAvatar = lipgloss.NewStyle().
		Background(lipgloss.Color(p.UserBubble)).
		Foreground(lipgloss.Color(p.UserBubbleText)).
		Padding(0, 1)
	s.Timestamp = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)
	s.UserTimestamp = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.UserBubbleText)).
		Faint(true)
	s.ChatInput = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorBorder).
		Padding(0, 1)
	s.ChatInputFocus = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorPrimary).
		Padding(0, 1)
	s.InputText = lipgloss.NewStyle().Foreground(lipgloss.Color(p.InputText))
	s.InputPlaceholder = lipgloss.NewStyle().Foreground(lipgloss.Color(p.InputPlaceholder))

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorBorder).
		Padding(0, 1)
	s.CardSelected = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(s.ColorPrimary).
		Padding(0, 1)
	s.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorText)
	s.CardBody = lipgloss.NewStyle().
		Foreground(s.ColorText)
	s.Muted = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)
	s.Chip = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Padding(0, 1)
	s.ChipActive = lipgloss.NewStyle().
		Background(s.ColorPrimary).
		Foreground(lipgloss.Color(p.TextInverse)).
		Bold(true).
		Padding(0, 1)
	s.ProgressFill = lipgloss.NewStyle().Foreground(s.ColorWarning)
	s.ProgressRest = lipgloss.NewStyle().Foreground(s.ColorBorder)
	s.Toggle = lipgloss.NewStyle().Foreground(s.ColorTextMuted)
	s.ToggleOn = lipgloss.NewStyle().Foreground(s.ColorSuccess).Bold(true)
	s.Danger = lipgloss.NewStyle().Foreground(s.ColorError).Bold(true)
	s.Empty = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Italic(true)

	s.Modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorPrimary).
		Background(s.ColorSurface).
		Padding(1, 2).
		Width(ModalWidth)
	s.ModalTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorPrimary).
		MarginBottom(1)
	s.ModalHelp = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Italic(true).
		MarginTop(1)

	s.StatusLoading = lipgloss.NewStyle().
		Foreground(s.ColorPrimary).
		Italic(true)
	s.StatusError = lipgloss.NewStyle().
		Foreground(s.ColorError).
		Bold(true)

	s.MarkdownH1 = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(p.MarkdownHeading))
	s.MarkdownH2 = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.MarkdownHeading))
	s.MarkdownH3 = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorText)
	s.MarkdownBold = lipgloss.NewStyle().Bold(true)
	s.MarkdownItalic = lipgloss.NewStyle().Italic(true)
	s.MarkdownInlineCode = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.MarkdownCode)).
		Background(lipgloss.Color(p.MarkdownCodeBg))
	s.MarkdownLink = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.MarkdownLink)).
		Underline(true)
	s.MarkdownListBullet = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.MarkdownListItem))
	s.MarkdownBlockquote = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Italic(true).
		PaddingLeft(2)
	s.MarkdownHR = lipgloss.NewStyle().
		Foreground(s.ColorBorder)

	return s
}

// StatusColor is the icon color for a task status.
func (s *Styles) StatusColor(st tasks.Status) color.Color {
	switch st {
	case tasks.StatusRunning:
		return s.ColorWarning
	case tasks.StatusCompleted:
		return s.ColorSuccess
	case tasks.StatusPaused:
		return lipgloss.Color(s.Palette.Paused)
	case tasks.StatusFailed:
		return s.ColorError
	}
	return s.ColorTextMuted
}

// StatusBackground is the badge background for a task status.
func (s *Styles) StatusBackground(st tasks.Status) color.Color {
	switch st {
	case tasks.StatusRunning:
		return lipgloss.Color(s.Palette.RunningBg)
	case tasks.StatusCompleted:
		return lipgloss.Color(s.Palette.CompletedBg)
	case tasks.StatusPaused:
		return lipgloss.Color(s.Palette.PausedBg)
	case tasks.StatusFailed:
		return lipgloss.Color(s.Palette.FailedBg)
	}
	return s.ColorSurface
}

// TypeColor is the accent for a task type.
func (s *Styles) TypeColor(t tasks.Type) color.Color {
	switch t {
	case tasks.TypeResearch:
		return lipgloss.Color(s.Palette.TypeResearch)
	case tasks.TypeCoding:
		return lipgloss.Color(s.Palette.TypeCoding)
	case tasks.TypeWriting:
		return lipgloss.Color(s.Palette.TypeWriting)
	case tasks.TypeAnalysis:
		return lipgloss.Color(s.Palette.TypeAnalysis)
	}
	return lipgloss.Color(s.Palette.TypeGeneral)
}
