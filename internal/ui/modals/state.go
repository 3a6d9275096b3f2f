// Package modals provides the dialog states shown over the screens.
// Each dialog implements ModalState with its own struct so the app can
// read dialog-specific results with a type switch.
package modals

import (
	tea "charm.land/bubbletea/v2"
)

// ModalState is a discriminated union interface for dialog-specific state.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// SubmitMsg is sent when a dialog finishes on its own, for example when a
// confirm is answered with y or n instead of Enter. The app treats it the
// same as Enter.
type SubmitMsg struct{}

func submit() tea.Msg { return SubmitMsg{} }
