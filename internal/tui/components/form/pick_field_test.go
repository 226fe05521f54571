package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/fixdesk/internal/core/pick"
)

func brandOptions() []pick.Option {
	return []pick.Option{
		{ID: "b-samsung", Label: "Samsung"},
		{ID: "b-motorola", Label: "Motorola"},
		{ID: "b-apple", Label: "Apple"},
	}
}

func pressEnter(f *PickField) {
	f.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
}

func pressDown(f *PickField) {
	f.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyDown}))
}

func typeRune(f *PickField, r rune) {
	f.Update(tea.KeyPressMsg(tea.Key{Code: r, Text: string(r)}))
}

func TestPickField(t *testing.T) {
	t.Run("first activation arms, second commits", func(t *testing.T) {
		f := NewPickField("Brand", "", brandOptions(), false)
		f.Focus()

		pressEnter(f)
		assert.False(t, f.Resolved(), "single activation must not commit")

		pressEnter(f)
		require.True(t, f.Resolved())
		assert.Equal(t, "b-samsung", f.Value())
		assert.False(t, f.Custom())
	})

	t.Run("activating a different candidate re-arms", func(t *testing.T) {
		f := NewPickField("Brand", "", brandOptions(), false)
		f.Focus()

		pressEnter(f) // arm Samsung
		pressDown(f)
		pressEnter(f) // arm Motorola instead
		assert.False(t, f.Resolved())

		pressEnter(f)
		require.True(t, f.Resolved())
		assert.Equal(t, "b-motorola", f.Value())
	})

	t.Run("typing clears pending confirmation", func(t *testing.T) {
		f := NewPickField("Brand", "", brandOptions(), false)
		f.Focus()

		pressEnter(f) // arm Samsung
		typeRune(f, 'o')

		assert.False(t, f.Resolved())
		pressEnter(f)
		assert.False(t, f.Resolved(), "arm must not survive a filter change")
	})

	t.Run("free text commits when custom allowed", func(t *testing.T) {
		f := NewPickField("Model", "", brandOptions(), true)
		f.Focus()

		for _, r := range "zzz" {
			typeRune(f, r)
		}

		pressEnter(f)
		require.True(t, f.Resolved())
		assert.Equal(t, "zzz", f.Value())
		assert.True(t, f.Custom())
	})

	t.Run("free text rejected when custom disallowed", func(t *testing.T) {
		f := NewPickField("Brand", "", brandOptions(), false)
		f.Focus()

		for _, r := range "zzz" {
			typeRune(f, r)
		}

		pressEnter(f)
		assert.False(t, f.Resolved())
		assert.Equal(t, "", f.Value())
	})

	t.Run("preselect seeds a committed value", func(t *testing.T) {
		f := NewPickField("Brand", "", brandOptions(), false)
		f.Preselect("b-apple", false)

		assert.True(t, f.Resolved())
		assert.Equal(t, "b-apple", f.Value())
		assert.False(t, f.WantsEnter())
	})

	t.Run("typing after preselect invalidates the value", func(t *testing.T) {
		f := NewPickField("Brand", "", brandOptions(), false)
		f.Preselect("b-apple", false)
		f.Focus()

		typeRune(f, 'x')
		assert.False(t, f.Resolved())
		assert.Equal(t, "", f.Value())
		assert.True(t, f.WantsEnter())
	})
}
