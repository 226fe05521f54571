package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/fixdesk/internal/core/config"
	"github.com/colonyops/fixdesk/internal/core/orders"
	"github.com/colonyops/fixdesk/internal/tui/notify"
)

func newTestModel() *Model {
	cfg := &config.Config{}
	cfg.Shop.Name = "testshop"
	service := NewService(cfg, nil, nil, nil)
	return NewModel(service, notify.NewBus(nil))
}

func sendKey(t *testing.T, m *Model, key tea.Key) *Model {
	t.Helper()

	updated, _ := m.Update(tea.KeyPressMsg(key))
	model, ok := updated.(*Model)
	require.True(t, ok)
	return model
}

func TestModelExitGuard(t *testing.T) {
	t.Run("esc on a clean dialog closes it", func(t *testing.T) {
		m := newTestModel()
		m.openDialog(orders.Order{}, false)
		require.Equal(t, stateEditing, m.state)

		m = sendKey(t, m, tea.Key{Code: tea.KeyEscape})
		assert.Equal(t, stateBrowsing, m.state)
		assert.Nil(t, m.dialog)
	})

	t.Run("esc on a dirty dialog raises the confirmation", func(t *testing.T) {
		m := newTestModel()
		m.openDialog(orders.Order{}, false)
		m = sendKey(t, m, tea.Key{Code: 'x', Text: "x"})

		m = sendKey(t, m, tea.Key{Code: tea.KeyEscape})
		assert.Equal(t, stateConfirmingExit, m.state)
		assert.NotNil(t, m.dialog, "the form must survive the close request")
	})

	t.Run("cancel returns to editing with input intact", func(t *testing.T) {
		m := newTestModel()
		m.openDialog(orders.Order{}, false)
		m = sendKey(t, m, tea.Key{Code: 'x', Text: "x"})
		m = sendKey(t, m, tea.Key{Code: tea.KeyEscape})

		m = sendKey(t, m, tea.Key{Code: 'n', Text: "n"})
		assert.Equal(t, stateEditing, m.state)

		// A second exit attempt must confirm again, not slip through.
		m = sendKey(t, m, tea.Key{Code: tea.KeyEscape})
		assert.Equal(t, stateConfirmingExit, m.state)
	})

	t.Run("confirm discards and closes", func(t *testing.T) {
		m := newTestModel()
		m.openDialog(orders.Order{}, false)
		m = sendKey(t, m, tea.Key{Code: 'x', Text: "x"})
		m = sendKey(t, m, tea.Key{Code: tea.KeyEscape})

		m = sendKey(t, m, tea.Key{Code: 'y', Text: "y"})
		assert.Equal(t, stateBrowsing, m.state)
		assert.Nil(t, m.dialog)
	})

	t.Run("interceptor releases its capture on close", func(t *testing.T) {
		m := newTestModel()
		m.openDialog(orders.Order{}, false)
		history := m.history
		assert.Equal(t, 1, history.depth, "opening the dialog arms one capture entry")

		m = sendKey(t, m, tea.Key{Code: tea.KeyEscape})
		assert.Equal(t, stateBrowsing, m.state)
		assert.Equal(t, 1, history.depth, "the firing back signal re-armed before release")
	})
}

func TestModelChecklistFlow(t *testing.T) {
	t.Run("checklist snapshot attaches to the open form", func(t *testing.T) {
		m := newTestModel()
		m.openDialog(orders.Order{}, false)

		m = sendKey(t, m, tea.Key{Code: 'k', Mod: tea.ModCtrl})
		require.Equal(t, stateChecklist, m.state)

		m = sendKey(t, m, tea.Key{Code: tea.KeyEnter}) // android
		m = sendKey(t, m, tea.Key{Code: '1', Text: "1"})
		m = sendKey(t, m, tea.Key{Code: tea.KeyEnter}) // finish, incomplete

		assert.Equal(t, stateEditing, m.state)
		require.NotNil(t, m.pendingSnapshot)
		assert.False(t, m.pendingSnapshot.Complete())
	})

	t.Run("closing the checklist keeps the form unchanged", func(t *testing.T) {
		m := newTestModel()
		m.openDialog(orders.Order{}, false)
		m = sendKey(t, m, tea.Key{Code: 'k', Mod: tea.ModCtrl})

		m = sendKey(t, m, tea.Key{Code: tea.KeyEscape})
		assert.Equal(t, stateEditing, m.state)
		assert.Nil(t, m.pendingSnapshot)
	})
}
