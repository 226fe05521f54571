package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/fixdesk/internal/tui/components"
	"github.com/colonyops/fixdesk/pkg/tuitest"
)

func TestConfirmModalRender(t *testing.T) {
	m := components.NewConfirmModal("Discard changes",
		"This order has unsaved changes. Discard them?", "Discard", "Keep editing")

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "Discard changes")
	assert.Contains(t, out, "unsaved changes")
	assert.Contains(t, out, "Keep editing")
}

func TestChecklistModalRender(t *testing.T) {
	m := NewChecklistModal()

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "Android")
	assert.Contains(t, out, "iOS")

	m, _ = m.Update(tuitest.KeyEnter())
	out = tuitest.StripANSI(m.View())
	assert.Contains(t, out, "1 working")
}

func TestBrowsingViewRender(t *testing.T) {
	m := newTestModel()

	out := tuitest.StripANSI(m.viewBrowsing())
	assert.Contains(t, out, "testshop")
	assert.Contains(t, out, "0 orders")
	assert.Contains(t, out, "n: new")
}
