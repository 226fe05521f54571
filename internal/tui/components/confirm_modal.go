// Package components holds small reusable TUI widgets.
package components

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/fixdesk/internal/core/styles"
)

// ConfirmModal is a two-button confirmation dialog.
type ConfirmModal struct {
	title           string
	message         string
	confirmLabel    string
	cancelLabel     string
	confirmSelected bool
	confirmed       bool
	cancelled       bool
}

// NewConfirmModal creates a confirmation modal. The cancel button is selected
// by default so a reflexive enter keeps the user where they are.
func NewConfirmModal(title, message, confirmLabel, cancelLabel string) ConfirmModal {
	return ConfirmModal{
		title:        title,
		message:      message,
		confirmLabel: confirmLabel,
		cancelLabel:  cancelLabel,
	}
}

// Update handles input for the confirmation modal.
func (m ConfirmModal) Update(msg tea.Msg) (ConfirmModal, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "right", "tab":
		m.confirmSelected = !m.confirmSelected
	case "y", "Y":
		m.confirmed = true
	case "n", "N", "esc":
		m.cancelled = true
	case "enter":
		if m.confirmSelected {
			m.confirmed = true
		} else {
			m.cancelled = true
		}
	}

	return m, nil
}

// View renders the confirmation modal content.
func (m ConfirmModal) View() string {
	confirmBtn := styles.ModalButtonStyle.Render(m.confirmLabel)
	cancelBtn := styles.ModalButtonSelectedStyle.Render(m.cancelLabel)
	if m.confirmSelected {
		confirmBtn = styles.ModalButtonSelectedStyle.Render(m.confirmLabel)
		cancelBtn = styles.ModalButtonStyle.Render(m.cancelLabel)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, confirmBtn, "  ", cancelBtn)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(m.title),
		"",
		styles.TextForegroundStyle.Render(m.message),
		lipgloss.NewStyle().MarginTop(1).Render(buttons),
		styles.ModalHelpStyle.Render("←/→ select  enter choose  y/n shortcut"),
	)
}

// Confirmed returns true if user confirmed.
func (m ConfirmModal) Confirmed() bool {
	return m.confirmed
}

// Cancelled returns true if user cancelled.
func (m ConfirmModal) Cancelled() bool {
	return m.cancelled
}
