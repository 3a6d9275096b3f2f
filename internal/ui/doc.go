// Package ui provides the user interface components for the Manus TUI.
//
// # Overview
//
// The ui package implements the four screens of the assistant using the
// Bubble Tea framework and Lipgloss styling library. Components are plain
// values owned by the app model; none of them keep package-level state.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header: title and tab bar (1 line)                  │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Active screen: Chat | Tasks | Capabilities |      │
//	│   Profile                                           │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Footer: key hints or flash message (1 line)         │
//	└─────────────────────────────────────────────────────┘
//
// Layout computes the content area for a terminal size; every screen is
// sized from it.
//
// # Themes and direction
//
// Palette holds the light and dark colors. NewStyles derives every style
// from a palette, and the app swaps the *Styles pointer on each component
// when the theme changes. Components also take an i18n.Direction: in RTL
// rows are emitted in reverse visual order and text is aligned to the
// right, so Arabic is laid out natively rather than mirrored.
//
// # Components
//
// RenderMessageBubble and RenderTaskCard are pure render functions. ChatView,
// TasksView, CapabilitiesView and ProfileView are the screens. Header draws
// the tab bar with a gradient, Footer shows key hints and flash messages,
// and Modal hosts a modals.ModalState over the current screen.
package ui
