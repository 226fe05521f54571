package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/fixdesk/internal/core/checklist"
	"github.com/colonyops/fixdesk/internal/core/styles"
)

// ChecklistModal walks the operator through the device inspection: pick the
// device category, then judge every item in that category's fixed set.
// Leaving the item step discards all progress; there is no partial resume.
type ChecklistModal struct {
	flow   *checklist.Flow
	cursor int

	done     bool
	closed   bool
	snapshot checklist.Snapshot
}

// NewChecklistModal creates a modal at the category-selection step.
func NewChecklistModal() *ChecklistModal {
	return &ChecklistModal{
		flow: checklist.NewFlow(),
	}
}

// Update handles key input for the active step.
func (m *ChecklistModal) Update(msg tea.Msg) (*ChecklistModal, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	if m.flow.Step() == checklist.StepSelectCategory {
		return m.updateCategoryStep(keyMsg)
	}
	return m.updateItemStep(keyMsg)
}

func (m *ChecklistModal) updateCategoryStep(keyMsg tea.KeyPressMsg) (*ChecklistModal, tea.Cmd) {
	categories := checklist.Categories()

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(categories)-1 {
			m.cursor++
		}
	case "enter":
		if err := m.flow.SelectCategory(categories[m.cursor]); err == nil {
			m.cursor = 0
		}
	case "esc":
		m.closed = true
	}

	return m, nil
}

func (m *ChecklistModal) updateItemStep(keyMsg tea.KeyPressMsg) (*ChecklistModal, tea.Cmd) {
	items := checklist.Items(m.flow.Category())

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "1", "w":
		m.setStatus(items, checklist.StatusWorking)
	case "2", "x":
		m.setStatus(items, checklist.StatusDefective)
	case "3", "t":
		m.setStatus(items, checklist.StatusNotTested)
	case "4", "a":
		m.setStatus(items, checklist.StatusNotAvailable)
	case "enter":
		if snap, err := m.flow.Complete(); err == nil {
			m.snapshot = snap
			m.done = true
		}
	case "esc":
		// Back to category selection; every judgment is discarded.
		_ = m.flow.GoBack()
		m.cursor = 0
	}

	return m, nil
}

func (m *ChecklistModal) setStatus(items []checklist.Item, status checklist.ItemStatus) {
	if m.cursor < len(items) {
		_ = m.flow.SetItemStatus(items[m.cursor].ID, status)

		// Auto-advance so a full inspection is one keypress per item.
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	}
}

// View renders the active step.
func (m *ChecklistModal) View() string {
	if m.flow.Step() == checklist.StepSelectCategory {
		return m.viewCategoryStep()
	}
	return m.viewItemStep()
}

func (m *ChecklistModal) viewCategoryStep() string {
	parts := []string{styles.ModalTitleStyle.Render("Inspection — device type"), ""}

	for i, c := range checklist.Categories() {
		cursor := "  "
		style := styles.TextForegroundStyle
		if i == m.cursor {
			cursor = "> "
			style = styles.PickItemSelectedStyle
		}
		parts = append(parts, cursor+style.Render(c.Label()))
	}

	parts = append(parts, styles.ModalHelpStyle.Render("↑/↓ move  enter select  esc close"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *ChecklistModal) viewItemStep() string {
	items := checklist.Items(m.flow.Category())
	judged := 0
	for _, item := range items {
		if m.flow.Status(item.ID) != checklist.StatusUnset {
			judged++
		}
	}

	title := fmt.Sprintf("Inspection — %s (%d/%d)", m.flow.Category().Label(), judged, len(items))
	parts := []string{styles.ModalTitleStyle.Render(title), ""}

	// Window the list around the cursor so long item sets stay on screen.
	const maxVisible = 12
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(items))

	for i := start; i < end; i++ {
		item := items[i]
		status := m.flow.Status(item.ID)

		cursor := "  "
		nameStyle := styles.TextForegroundStyle
		if i == m.cursor {
			cursor = "> "
			nameStyle = styles.PickItemSelectedStyle
		}

		parts = append(parts, cursor+nameStyle.Render(item.Label)+"  "+renderItemStatus(status))
	}

	parts = append(parts,
		styles.ModalHelpStyle.Render("1 working  2 defective  3 not tested  4 n/a  enter finish  esc back"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderItemStatus(status checklist.ItemStatus) string {
	switch status {
	case checklist.StatusWorking:
		return styles.ChecklistWorkingStyle.Render(status.Label())
	case checklist.StatusDefective:
		return styles.ChecklistDefectiveStyle.Render(status.Label())
	case checklist.StatusNotTested:
		return styles.ChecklistNotTestedStyle.Render(status.Label())
	case checklist.StatusNotAvailable:
		return styles.ChecklistNotAvailableStyle.Render(status.Label())
	default:
		return styles.ChecklistUnsetStyle.Render("—")
	}
}

// Done reports whether the flow completed; Snapshot returns the result.
func (m *ChecklistModal) Done() bool { return m.done }

// Closed reports whether the modal was dismissed from the category step.
func (m *ChecklistModal) Closed() bool { return m.closed }

// Snapshot returns the emitted inspection result. Valid only after Done.
func (m *ChecklistModal) Snapshot() checklist.Snapshot { return m.snapshot }
