package form

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/fixdesk/internal/core/guard"
	"github.com/colonyops/fixdesk/internal/core/styles"
)

// filterer is an optional interface for fields that support list filtering.
type filterer interface {
	IsFiltering() bool
}

// enterConsumer is an optional interface for fields that need the enter key
// for their own protocol before the dialog may advance focus.
type enterConsumer interface {
	WantsEnter() bool
}

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields. Every dialog carries a dirty
// guard seeded from the fields' opening values: closing a dialog with edits
// suspends the close behind a confirmation instead of dropping the input.
type Dialog struct {
	fields       []Field
	variables    []string // parallel slice: variable name for each field
	guard        *guard.Guard
	focusedField int
	submitted    bool
	Title        string
}

// NewDialog creates a form dialog with the given fields and variable names.
// The first field is focused automatically.
func NewDialog(title string, fields []Field, variables []string) *Dialog {
	d := &Dialog{
		fields:    fields,
		variables: variables,
		Title:     title,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}

	snapshot := make(map[string]string, len(fields))
	for i, field := range fields {
		snapshot[variables[i]] = fieldString(field.Value())
	}
	d.guard = guard.New(snapshot)

	return d
}

// Update handles key input for the dialog, managing focus cycling and submit/cancel.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab":
		return d.advanceFocus()
	case "shift+tab":
		return d.retreatFocus()
	case "enter":
		if d.focusedFieldWantsEnter() {
			dialog, cmd := d.updateFocusedField(msg)
			d.syncGuard()
			return dialog, cmd
		}
		return d.advanceFocus()
	case "esc":
		if d.isFocusedFieldFiltering() {
			// Let the field handle esc to exit filter mode
			return d.updateFocusedField(msg)
		}
		d.RequestClose()
		return d, nil
	}

	dialog, cmd := d.updateFocusedField(msg)
	d.syncGuard()
	return dialog, cmd
}

// RequestClose routes a deliberate close attempt through the dirty guard.
func (d *Dialog) RequestClose() guard.Decision {
	d.syncGuard()
	return d.guard.RequestClose()
}

// Guard exposes the dialog's dirty guard, for binding a navigation
// interceptor to the same confirmation machine.
func (d *Dialog) Guard() *guard.Guard {
	return d.guard
}

// ConfirmingClose reports whether a close is suspended pending confirmation.
func (d *Dialog) ConfirmingClose() bool {
	return d.guard.State() == guard.StateConfirming
}

// DiscardAndClose resolves a pending confirmation by abandoning edits.
func (d *Dialog) DiscardAndClose() {
	d.guard.ConfirmClose()
}

// KeepEditing resolves a pending confirmation by returning to the form with
// every edit intact.
func (d *Dialog) KeepEditing() {
	d.guard.CancelClose()
}

// Cancelled returns whether the dialog is closed without submission.
func (d *Dialog) Cancelled() bool {
	return !d.submitted && d.guard.State() == guard.StateClosed
}

// Dirty reports whether any field differs from its opening value.
func (d *Dialog) Dirty() bool {
	d.syncGuard()
	return d.guard.Dirty()
}

// MarkSaved re-baselines the dirty guard after a successful save.
func (d *Dialog) MarkSaved() {
	d.syncGuard()
	d.guard.Commit()
	d.submitted = false
}

// View renders all fields vertically with spacing and help text.
func (d *Dialog) View() string {
	var parts []string
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	help := styles.TextMutedStyle.Render("tab: next  shift+tab: prev  enter: submit  esc: cancel")
	parts = append(parts, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FormValues returns a map of variable names to field values.
func (d *Dialog) FormValues() map[string]any {
	result := make(map[string]any, len(d.fields))
	for i, field := range d.fields {
		result[d.variables[i]] = field.Value()
	}
	return result
}

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// ResetSubmitted clears the submitted flag so the dialog can stay open after
// a rejected save.
func (d *Dialog) ResetSubmitted() { d.submitted = false }

func (d *Dialog) advanceFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	next := d.focusedField + 1
	if next >= len(d.fields) {
		// Past the last field — submit
		d.submitted = true
		return d, nil
	}

	d.fields[d.focusedField].Blur()
	d.focusedField = next
	cmd := d.fields[d.focusedField].Focus()
	return d, cmd
}

func (d *Dialog) retreatFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 || d.focusedField == 0 {
		return d, nil
	}

	d.fields[d.focusedField].Blur()
	d.focusedField--
	cmd := d.fields[d.focusedField].Focus()
	return d, cmd
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

func (d *Dialog) syncGuard() {
	for i, field := range d.fields {
		d.guard.SetField(d.variables[i], fieldString(field.Value()))
	}
}

func (d *Dialog) focusedFieldWantsEnter() bool {
	if len(d.fields) == 0 {
		return false
	}
	if f, ok := d.fields[d.focusedField].(enterConsumer); ok {
		return f.WantsEnter()
	}
	return false
}

func (d *Dialog) isFocusedFieldFiltering() bool {
	if len(d.fields) == 0 {
		return false
	}
	if f, ok := d.fields[d.focusedField].(filterer); ok {
		return f.IsFiltering()
	}
	return false
}

func fieldString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
