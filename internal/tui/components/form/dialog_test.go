package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/fixdesk/internal/core/guard"
)

func TestDialog(t *testing.T) {
	t.Run("creation focuses first field", func(t *testing.T) {
		f1 := NewTextField("Name", "", "")
		f2 := NewTextField("Email", "", "")
		d := NewDialog("Test", []Field{f1, f2}, []string{"name", "email"})

		assert.True(t, f1.Focused())
		assert.False(t, f2.Focused())
		assert.False(t, d.Submitted())
		assert.False(t, d.Cancelled())
	})

	t.Run("tab advances focus", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		f2 := NewTextField("B", "", "")
		d := NewDialog("Test", []Field{f1, f2}, []string{"a", "b"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
		assert.False(t, f1.Focused())
		assert.True(t, f2.Focused())
	})

	t.Run("tab past last field submits", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		d := NewDialog("Test", []Field{f1}, []string{"a"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
		assert.True(t, d.Submitted())
	})

	t.Run("esc on clean form closes immediately", func(t *testing.T) {
		f1 := NewTextField("A", "", "unchanged")
		d := NewDialog("Test", []Field{f1}, []string{"a"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
		assert.True(t, d.Cancelled())
		assert.False(t, d.ConfirmingClose())
	})

	t.Run("esc on dirty form suspends the close", func(t *testing.T) {
		f1 := NewTextField("A", "", "before")
		d := NewDialog("Test", []Field{f1}, []string{"a"})
		f1.SetValue("after")

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
		assert.False(t, d.Cancelled())
		assert.True(t, d.ConfirmingClose())
	})

	t.Run("keep editing preserves every edit", func(t *testing.T) {
		f1 := NewTextField("A", "", "before")
		d := NewDialog("Test", []Field{f1}, []string{"a"})
		f1.SetValue("after")

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
		require.True(t, d.ConfirmingClose())

		d.KeepEditing()
		assert.False(t, d.Cancelled())
		assert.Equal(t, "after", d.FormValues()["a"])

		// A second close attempt must go through confirmation again.
		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
		assert.True(t, d.ConfirmingClose())
	})

	t.Run("discard resolves the pending close", func(t *testing.T) {
		f1 := NewTextField("A", "", "before")
		d := NewDialog("Test", []Field{f1}, []string{"a"})
		f1.SetValue("after")

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
		require.True(t, d.ConfirmingClose())

		d.DiscardAndClose()
		assert.True(t, d.Cancelled())
	})

	t.Run("mark saved re-baselines the guard", func(t *testing.T) {
		f1 := NewTextField("A", "", "before")
		d := NewDialog("Test", []Field{f1}, []string{"a"})
		f1.SetValue("after")
		require.True(t, d.Dirty())

		d.MarkSaved()
		assert.False(t, d.Dirty())

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
		assert.True(t, d.Cancelled(), "saved form must close without confirmation")
	})

	t.Run("guard is shared with interceptors", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		d := NewDialog("Test", []Field{f1}, []string{"a"})

		assert.Equal(t, guard.StateIdle, d.Guard().State())
	})

	t.Run("pick field consumes enter until resolved", func(t *testing.T) {
		pf := NewPickField("Brand", "", brandOptions(), false)
		tf := NewTextField("Defect", "", "")
		d := NewDialog("Test", []Field{pf, tf}, []string{"brand", "defect"})

		// Two activations commit the highlighted brand without leaving the field.
		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
		assert.True(t, pf.Focused())
		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
		assert.True(t, pf.Focused())
		require.True(t, pf.Resolved())

		// Now enter advances focus.
		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
		assert.False(t, pf.Focused())
		assert.True(t, tf.Focused())
	})
}
