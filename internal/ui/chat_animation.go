package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// StopwatchTickMsg is sent to update the animated waiting display
type StopwatchTickMsg time.Time

// spinnerFrames are the characters used for the shimmering spinner animation
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// StopwatchInterval is the delay between spinner frames.
const StopwatchInterval = 200 * time.Millisecond

// StopwatchTick returns a command that sends a tick message after a delay
func StopwatchTick() tea.Cmd {
	return tea.Tick(StopwatchInterval, func(t time.Time) tea.Msg {
		return StopwatchTickMsg(t)
	})
}

// Spinner cycles through spinnerFrames while something is in progress.
// The zero value is stopped.
type Spinner struct {
	frame   int
	running bool
}

// Start begins animating and returns the first tick, or nil if the spinner
// was already running (its tick loop is still alive).
func (s *Spinner) Start() tea.Cmd {
	if s.running {
		return nil
	}
	s.running = true
	s.frame = 0
	return StopwatchTick()
}

// Stop halts the animation; the pending tick is dropped by Advance.
func (s *Spinner) Stop() {
	s.running = false
}

// Running reports whether the spinner is animating.
func (s *Spinner) Running() bool {
	return s.running
}

// Advance moves to the next frame and schedules the next tick.
func (s *Spinner) Advance() tea.Cmd {
	if !s.running {
		return nil
	}
	s.frame = (s.frame + 1) % len(spinnerFrames)
	return StopwatchTick()
}

// View returns the current frame.
func (s *Spinner) View() string {
	return spinnerFrames[s.frame]
}
