// Package ui provides the palettes used to paint the screens.
// A palette is chosen from the active theme.Theme and every style in
// Styles is derived from it, so a theme switch is a single NewStyles call.
package ui

import "github.com/zhubert/manus/internal/theme"

// Palette defines the colors of one theme.
type Palette struct {
	// Name is the theme this palette renders
	Name theme.Theme

	// Primary is the accent used for headers, focus and the user bubble
	Primary string

	// Background colors
	Bg      string // Screen background
	Surface string // Cards, assistant bubbles
	Border  string

	// Text colors
	Text        string
	TextMuted   string
	TextInverse string // Text on Primary

	// Chat input
	InputBg          string
	InputText        string
	InputPlaceholder string

	// Bubbles
	UserBubble      string
	UserBubbleText  string
	BotBubble       string
	BotBubbleText   string
	AvatarBg        string
	OnlineIndicator string
	TypingIndicator string

	// Semantic colors
	Success string
	Info    string
	Warning string
	Error   string
	Accent  string // Secondary stat color

	// Task type accents
	TypeResearch string
	TypeCoding   string
	TypeWriting  string
	TypeAnalysis string
	TypeGeneral  string

	// Status badge backgrounds
	RunningBg   string
	CompletedBg string
	PausedBg    string
	FailedBg    string
	Paused      string

	// Markdown colors
	MarkdownHeading  string
	MarkdownCode     string
	MarkdownCodeBg   string
	MarkdownLink     string
	MarkdownListItem string

	// CodeStyle is the chroma style used for fenced code blocks
	CodeStyle string
}

// LightPalette is the palette for the light theme.
var LightPalette = Palette{
	Name:             theme.Light,
	Primary:          "#1E40AF",
	Bg:               "#F8FAFC",
	Surface:          "#FFFFFF",
	Border:           "#E2E8F0",
	Text:             "#0F172A",
	TextMuted:        "#64748B",
	TextInverse:      "#FFFFFF",
	InputBg:          "#F1F5F9",
	InputText:        "#0F172A",
	InputPlaceholder: "#94A3B8",
	UserBubble:       "#1E40AF",
	UserBubbleText:   "#FFFFFF",
	BotBubble:        "#FFFFFF",
	BotBubbleText:    "#0F172A",
	AvatarBg:         "#E2E8F0",
	OnlineIndicator:  "#10B981",
	TypingIndicator:  "#F59E0B",
	Success:          "#10B981",
	Info:             "#3B82F6",
	Warning:          "#F59E0B",
	Error:            "#EF4444",
	Accent:           "#8B5CF6",
	TypeResearch:     "#1E40AF",
	TypeCoding:       "#7C3AED",
	TypeWriting:      "#059669",
	TypeAnalysis:     "#DC2626",
	TypeGeneral:      "#64748B",
	RunningBg:        "#FEF3C7",
	CompletedBg:      "#D1FAE5",
	PausedBg:         "#F3F4F6",
	FailedBg:         "#FEE2E2",
	Paused:           "#6B7280",
	MarkdownHeading:  "#1E40AF",
	MarkdownCode:     "#7C3AED",
	MarkdownCodeBg:   "#F1F5F9",
	MarkdownLink:     "#2563EB",
	MarkdownListItem: "#1E40AF",
	CodeStyle:        "github",
}

// DarkPalette is the palette for the dark theme.
var DarkPalette = Palette{
	Name:             theme.Dark,
	Primary:          "#A5B4FC",
	Bg:               "#0F172A",
	Surface:          "#1E293B",
	Border:           "#334155",
	Text:             "#F1F5F9",
	TextMuted:        "#94A3B8",
	TextInverse:      "#0F172A",
	InputBg:          "#0F172A",
	InputText:        "#E2E8F0",
	InputPlaceholder: "#64748B",
	UserBubble:       "#1E40AF",
	UserBubbleText:   "#FFFFFF",
	BotBubble:        "#1E293B",
	BotBubbleText:    "#F1F5F9",
	AvatarBg:         "#334155",
	OnlineIndicator:  "#10B981",
	TypingIndicator:  "#F59E0B",
	Success:          "#10B981",
	Info:             "#3B82F6",
	Warning:          "#F59E0B",
	Error:            "#EF4444",
	Accent:           "#8B5CF6",
	TypeResearch:     "#60A5FA",
	TypeCoding:       "#A78BFA",
	TypeWriting:      "#34D399",
	TypeAnalysis:     "#F87171",
	TypeGeneral:      "#94A3B8",
	RunningBg:        "#78350F",
	CompletedBg:      "#064E3B",
	PausedBg:         "#374151",
	FailedBg:         "#7F1D1D",
	Paused:           "#9CA3AF",
	MarkdownHeading:  "#A5B4FC",
	MarkdownCode:     "#67E8F9",
	MarkdownCodeBg:   "#1E1E2E",
	MarkdownLink:     "#93C5FD",
	MarkdownListItem: "#A5B4FC",
	CodeStyle:        "monokai",
}

// PaletteFor returns the palette for t, defaulting to light.
func PaletteFor(t theme.Theme) Palette {
	if t == theme.Dark {
		return DarkPalette
	}
	return LightPalette
}
