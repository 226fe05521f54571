package tui

import (
	"context"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/fixdesk/internal/core/catalog"
	"github.com/colonyops/fixdesk/internal/core/checklist"
	"github.com/colonyops/fixdesk/internal/core/guard"
	corenotify "github.com/colonyops/fixdesk/internal/core/notify"
	"github.com/colonyops/fixdesk/internal/core/orders"
	"github.com/colonyops/fixdesk/internal/core/pick"
	"github.com/colonyops/fixdesk/internal/tui/components"
	"github.com/colonyops/fixdesk/internal/tui/components/form"
	"github.com/colonyops/fixdesk/internal/tui/notify"
)

// UIState is the model's interaction mode. Key handling is gated on it so a
// modal state never leaks input to the surface beneath it.
type UIState int

const (
	stateBrowsing UIState = iota
	stateEditing
	stateConfirmingExit
	stateChecklist
	stateConfirmingDelete
)

type modelsLoadedMsg struct {
	options []pick.Option
}

// backStack is the in-process stand-in for a host navigation stack; it only
// tracks depth so the interceptor's push/pop discipline stays observable.
type backStack struct {
	depth int
}

func (b *backStack) Push() { b.depth++ }
func (b *backStack) Pop() {
	if b.depth > 0 {
		b.depth--
	}
}

// Model is the root bubbletea model.
type Model struct {
	service   *Service
	bus       *notify.Bus
	toasts    *ToastController
	toastView *ToastView
	keys      keyMap

	state  UIState
	width  int
	height int

	list        listModel
	clientNames map[string]string
	clientOpts  []pick.Option
	brandOpts   []pick.Option

	// Editing surface.
	dialog          *form.Dialog
	editing         orders.Order
	editingExisting bool
	pendingSnapshot *checklist.Snapshot
	interceptor     *guard.Interceptor
	history         *backStack
	clientField     *form.PickField
	brandField      *form.PickField
	modelField      *form.PickField
	statusField     *form.SelectFormField
	lastBrandID     string

	checklist *ChecklistModal
	confirm   components.ConfirmModal
	delTarget orders.Order
}

// NewModel creates the root TUI model.
func NewModel(service *Service, bus *notify.Bus) *Model {
	toasts := NewToastController()
	m := &Model{
		service:     service,
		bus:         bus,
		toasts:      toasts,
		toastView:   NewToastView(toasts),
		keys:        defaultKeyMap(),
		list:        newListModel(),
		clientNames: map[string]string{},
	}

	bus.Subscribe(func(n corenotify.Notification) {
		toasts.Push(n)
	})

	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.service.LoadCmd(), scheduleToastTick())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-4, 1))
		return m, nil

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toasts.SetTicking(false)
		return m, nil

	case ordersLoadedMsg:
		m.clientNames = msg.clientNames
		m.clientOpts = msg.clientOpts
		m.brandOpts = msg.brandOpts
		m.list.SetOrders(msg.orders, msg.clientNames)
		return m, nil

	case modelsLoadedMsg:
		if m.modelField != nil {
			m.modelField.SetOptions(msg.options)
		}
		return m, nil

	case orderSavedMsg:
		m.bus.Infof("order #%04d saved", msg.number)
		m.closeDialog()
		return m, tea.Batch(m.service.LoadCmd(), m.ensureToastTick())

	case orderDeletedMsg:
		m.bus.Infof("order #%04d deleted", msg.number)
		m.state = stateBrowsing
		return m, tea.Batch(m.service.LoadCmd(), m.ensureToastTick())

	case errMsg:
		log.Error().Err(msg.err).Str("cmp", "tui").Msg("operation failed")
		m.bus.Errorf("%v", msg.err)
		if m.dialog != nil {
			// Keep the form open so the operator can correct and retry.
			m.dialog.ResetSubmitted()
			m.state = stateEditing
		}
		return m, m.ensureToastTick()

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case stateBrowsing:
		return m.handleBrowsingKey(msg)
	case stateEditing:
		return m.handleEditingKey(msg)
	case stateConfirmingExit:
		return m.handleConfirmExitKey(msg)
	case stateChecklist:
		return m.handleChecklistKey(msg)
	case stateConfirmingDelete:
		return m.handleConfirmDeleteKey(msg)
	}

	return m, nil
}

func (m *Model) handleBrowsingKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.list.Filtering() {
		return m, m.list.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reload):
		return m, m.service.LoadCmd()

	case key.Matches(msg, m.keys.New):
		m.openDialog(orders.Order{}, false)
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if o, ok := m.list.Selected(); ok {
			return m, m.openDialog(o, true)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if o, ok := m.list.Selected(); ok {
			m.delTarget = o
			m.confirm = components.NewConfirmModal(
				"Delete order",
				deleteMessage(o, m.clientNames[o.ClientID]),
				"Delete", "Keep",
			)
			m.state = stateConfirmingDelete
		}
		return m, nil
	}

	return m, m.list.Update(msg)
}

func (m *Model) handleEditingKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Checklist) {
		m.checklist = NewChecklistModal()
		m.state = stateChecklist
		return m, nil
	}

	if msg.String() == "esc" && !m.dialogFiltering() {
		// The back signal goes through the interceptor so repeated presses
		// hit the same confirmation machine instead of stacking exits.
		switch m.interceptor.HandleBack() {
		case guard.DecisionClose:
			m.closeDialog()
		case guard.DecisionConfirm:
			m.confirm = components.NewConfirmModal(
				"Discard changes",
				"This order has unsaved changes. Discard them?",
				"Discard", "Keep editing",
			)
			m.state = stateConfirmingExit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)

	if m.dialog.Submitted() {
		return m, m.submitDialog()
	}

	return m, tea.Batch(cmd, m.maybeLoadModels())
}

func (m *Model) handleConfirmExitKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)

	switch {
	case m.confirm.Confirmed():
		m.dialog.DiscardAndClose()
		m.closeDialog()
	case m.confirm.Cancelled():
		m.dialog.KeepEditing()
		m.state = stateEditing
	}

	return m, cmd
}

func (m *Model) handleChecklistKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.checklist, cmd = m.checklist.Update(msg)

	switch {
	case m.checklist.Done():
		snap := m.checklist.Snapshot()
		m.pendingSnapshot = &snap
		if snap.Complete() {
			m.bus.Infof("inspection complete (%s)", snap.Category.Label())
		} else {
			m.bus.Warnf("inspection incomplete; order cannot be saved yet")
		}
		m.checklist = nil
		m.state = stateEditing
		return m, m.ensureToastTick()
	case m.checklist.Closed():
		m.checklist = nil
		m.state = stateEditing
	}

	return m, cmd
}

func (m *Model) handleConfirmDeleteKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)

	switch {
	case m.confirm.Confirmed():
		return m, m.service.DeleteCmd(m.delTarget)
	case m.confirm.Cancelled():
		m.state = stateBrowsing
	}

	return m, cmd
}

// openDialog builds the order form, seeds the dirty guard from the opening
// values, and arms the navigation interceptor.
func (m *Model) openDialog(o orders.Order, existing bool) tea.Cmd {
	m.editing = o
	m.editingExisting = existing
	m.pendingSnapshot = nil
	m.lastBrandID = ""

	m.clientField = form.NewPickField("Client", "type to search, enter twice to pick", m.clientOpts, true)
	m.brandField = form.NewPickField("Brand", "type to search", m.brandOpts, true)
	m.modelField = form.NewPickField("Model", "pick a brand first", nil, true)
	defectField := form.NewTextField("Defect", "what is broken", o.Defect)
	notesField := form.NewTextField("Notes", "", o.Notes)
	etaField := form.NewTextField("Estimated delivery", "YYYY-MM-DD", formatETA(o.EstimatedDelivery))

	statusLabels := make([]string, 0, len(orders.AllStatuses()))
	for _, s := range orders.AllStatuses() {
		statusLabels = append(statusLabels, s.Label())
	}
	defaultStatus := orders.StatusInProgress.Label()
	if existing {
		defaultStatus = o.Status.Label()
	}
	m.statusField = form.NewSelectFormField("Status", statusLabels, defaultStatus)

	var cmd tea.Cmd
	if existing {
		m.clientField.Preselect(o.ClientID, false)
		m.brandField.Preselect(o.BrandID, o.BrandCustom)
		m.modelField.Preselect(o.ModelID, o.ModelCustom)
		if !o.BrandCustom {
			m.lastBrandID = o.BrandID
			cmd = m.loadModelsCmd(o.BrandID)
		}
	}

	title := "New order"
	if existing {
		title = "Edit order"
	}
	m.dialog = form.NewDialog(title, []form.Field{
		m.clientField, m.brandField, m.modelField,
		defectField, notesField, etaField, m.statusField,
	}, []string{"client", "brand", "model", "defect", "notes", "eta", "status"})

	m.history = &backStack{}
	m.interceptor = guard.NewInterceptor(m.history, m.dialog.Guard())
	m.interceptor.Enable()

	m.state = stateEditing
	return cmd
}

func (m *Model) closeDialog() {
	if m.interceptor != nil {
		m.interceptor.Disable()
	}
	m.dialog = nil
	m.interceptor = nil
	m.pendingSnapshot = nil
	m.state = stateBrowsing
}

// submitDialog turns the form values into a draft and hands it to the service.
func (m *Model) submitDialog() tea.Cmd {
	values := m.dialog.FormValues()

	draft := OrderDraft{
		ClientValue:  values["client"].(string),
		ClientCustom: m.clientField.Custom(),
		BrandValue:   values["brand"].(string),
		BrandCustom:  m.brandField.Custom(),
		ModelValue:   values["model"].(string),
		ModelCustom:  m.modelField.Custom(),
		Defect:       values["defect"].(string),
		Notes:        values["notes"].(string),
		ETA:          values["eta"].(string),
		Status:       statusFromLabel(values["status"].(string)),
		Snapshot:     m.pendingSnapshot,
	}

	if m.editingExisting {
		draft.ID = m.editing.ID
		draft.Number = m.editing.Number
		draft.EntryDate = m.editing.EntryDate
		draft.CreatedAt = m.editing.CreatedAt
	}

	return m.service.SaveCmd(draft)
}

// maybeLoadModels refreshes the model picker when the brand selection
// resolves to a new catalog entry.
func (m *Model) maybeLoadModels() tea.Cmd {
	if m.brandField == nil || !m.brandField.Resolved() || m.brandField.Custom() {
		return nil
	}

	brandID, _ := m.brandField.Value().(string)
	if brandID == "" || brandID == m.lastBrandID {
		return nil
	}

	m.lastBrandID = brandID
	return m.loadModelsCmd(brandID)
}

func (m *Model) loadModelsCmd(brandID string) tea.Cmd {
	return func() tea.Msg {
		models, err := m.service.Catalog.ListModels(context.Background(), brandID)
		if err != nil {
			return errMsg{err}
		}
		return modelsLoadedMsg{options: catalog.ModelOptions(models)}
	}
}

func (m *Model) dialogFiltering() bool {
	if m.statusField == nil {
		return false
	}
	return m.statusField.Focused() && m.statusField.IsFiltering()
}

func (m *Model) ensureToastTick() tea.Cmd {
	if m.toasts.Ticking() || !m.toasts.HasToasts() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

func statusFromLabel(label string) orders.Status {
	for _, s := range orders.AllStatuses() {
		if s.Label() == label {
			return s
		}
	}
	return ""
}
