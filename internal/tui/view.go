package tui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/fixdesk/internal/core/orders"
	"github.com/colonyops/fixdesk/internal/core/styles"
)

// View renders the TUI.
func (m *Model) View() tea.View {
	mainView := m.viewBrowsing()

	// Ensure we have dimensions for modals
	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	content := mainView
	switch m.state {
	case stateEditing:
		content = m.modalOverlay(mainView, m.dialog.Title, m.dialog.View(), w, h)
	case stateConfirmingExit, stateConfirmingDelete:
		content = m.modalOverlay(mainView, "", m.confirm.View(), w, h)
	case stateChecklist:
		content = m.modalOverlay(mainView, "", m.checklist.View(), w, h)
	}

	return tea.NewView(m.toastView.Overlay(content, w, h))
}

func (m *Model) viewBrowsing() string {
	title := styles.CommandHeaderStyle.Render(styles.IconWrench + " " + m.service.Config.Shop.Name)
	count := styles.TextMutedStyle.Render(fmt.Sprintf("%d orders", m.list.Len()))
	header := lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", count)

	help := styles.TextMutedStyle.Render(
		"n: new  enter: edit  d: delete  /: filter  r: reload  q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.list.View(), help)
}

// modalOverlay composites modal content centered over the background.
func (m *Model) modalOverlay(background, title, content string, w, h int) string {
	if title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left,
			styles.ModalTitleStyle.Render(title), "", content)
	}

	modal := styles.ModalStyle.Render(content)

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	modalW := lipgloss.Width(modal)
	modalH := lipgloss.Height(modal)
	modalLayer.X(max((w-modalW)/2, 0)).Y(max((h-modalH)/2, 0)).Z(1)

	compositor := lipgloss.NewCompositor(bgLayer, modalLayer)
	return compositor.Render()
}

func deleteMessage(o orders.Order, clientName string) string {
	if clientName == "" {
		clientName = "unknown client"
	}
	return fmt.Sprintf("Delete order #%04d (%s, %s)? This cannot be undone.",
		o.Number, clientName, o.Defect)
}

func formatETA(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
