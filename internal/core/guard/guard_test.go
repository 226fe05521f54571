package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard_CleanCloseIsImmediate(t *testing.T) {
	g := New(map[string]string{"name": "A"})

	assert.False(t, g.Dirty())
	assert.Equal(t, DecisionClose, g.RequestClose())
	assert.Equal(t, StateClosed, g.State())
}

func TestGuard_DirtyCloseSuspends(t *testing.T) {
	g := New(map[string]string{"name": "A"})
	g.SetField("name", "B")

	assert.True(t, g.Dirty())
	assert.Equal(t, DecisionConfirm, g.RequestClose())
	assert.Equal(t, StateConfirming, g.State())
}

func TestGuard_CancelKeepsEdits(t *testing.T) {
	g := New(map[string]string{"name": "A"})
	g.SetField("name", "B")
	g.RequestClose()

	assert.True(t, g.CancelClose())
	assert.Equal(t, StateIdle, g.State())
	assert.Equal(t, "B", g.Field("name"), "cancel must not revert working values")
	assert.True(t, g.Dirty())
}

func TestGuard_ConfirmCloses(t *testing.T) {
	g := New(map[string]string{"name": "A"})
	g.SetField("name", "B")
	g.RequestClose()

	assert.True(t, g.ConfirmClose())
	assert.Equal(t, StateClosed, g.State())

	// Closed is terminal.
	assert.Equal(t, DecisionNone, g.RequestClose())
	assert.False(t, g.CancelClose())
}

func TestGuard_ConfirmOutsidePendingIsNoop(t *testing.T) {
	g := New(map[string]string{"name": "A"})

	assert.False(t, g.ConfirmClose())
	assert.False(t, g.CancelClose())
	assert.Equal(t, StateIdle, g.State())
}

func TestGuard_RepeatedRequestsDoNotStack(t *testing.T) {
	g := New(map[string]string{"name": "A"})
	g.SetField("name", "B")

	assert.Equal(t, DecisionConfirm, g.RequestClose())
	assert.Equal(t, DecisionConfirm, g.RequestClose())
	assert.Equal(t, StateConfirming, g.State())

	assert.True(t, g.CancelClose())
	assert.Equal(t, StateIdle, g.State())
}

func TestGuard_DismissVetoedWhileDirty(t *testing.T) {
	g := New(map[string]string{"name": "A"})
	g.SetField("name", "B")

	assert.Equal(t, DecisionNone, g.Dismiss(), "outside click is ignored while dirty")
	assert.Equal(t, StateIdle, g.State(), "dismissal must not open the confirmation")
}

func TestGuard_DismissClosesWhenClean(t *testing.T) {
	g := New(map[string]string{"name": "A"})

	assert.Equal(t, DecisionClose, g.Dismiss())
	assert.Equal(t, StateClosed, g.State())
}

func TestGuard_CommitRebaselines(t *testing.T) {
	g := New(map[string]string{"name": "A", "phone": "123"})
	g.SetField("name", "B")
	assert.True(t, g.Dirty())

	g.Commit()
	assert.False(t, g.Dirty(), "commit replaces the baseline with current values")
	assert.Equal(t, "B", g.Field("name"))

	// Further edits are dirty against the new baseline.
	g.SetField("phone", "456")
	assert.True(t, g.Dirty())
}

func TestGuard_NewFieldMakesDirty(t *testing.T) {
	g := New(map[string]string{"name": "A"})
	g.SetField("notes", "broken screen")

	assert.True(t, g.Dirty())
}

func TestGuard_FreshGuardResetsBaseline(t *testing.T) {
	g := New(map[string]string{"name": "A"})
	g.SetField("name", "B")
	g.RequestClose()
	g.ConfirmClose()

	// Opening again creates a fresh instance seeded from the new snapshot.
	g2 := New(map[string]string{"name": "C"})
	assert.False(t, g2.Dirty())
	assert.Equal(t, "C", g2.Field("name"))
}
