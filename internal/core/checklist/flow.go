// Package checklist implements the two-stage device-inspection flow: pick a
// device category, then capture a status for every item in that category's
// fixed set. The flow itself never enforces completion; the order-save guard
// checks the emitted snapshot instead.
package checklist

import "errors"

var (
	// ErrInvalidStep is returned when an operation is called outside the
	// step it belongs to.
	ErrInvalidStep = errors.New("checklist: operation not valid in current step")
	// ErrUnknownCategory is returned for a category with no item set.
	ErrUnknownCategory = errors.New("checklist: unknown category")
	// ErrUnknownItem is returned for an item outside the active category's set.
	ErrUnknownItem = errors.New("checklist: item not in active category")
	// ErrInvalidStatus is returned for a status outside the assignable set.
	ErrInvalidStatus = errors.New("checklist: invalid item status")
)

// Step is the flow's current stage.
type Step int

const (
	StepSelectCategory Step = iota
	StepFillItems
)

// Snapshot is the flow's emitted result: the chosen category and every item's
// captured status, including unset ones.
type Snapshot struct {
	Category Category
	Statuses map[string]ItemStatus
}

// Complete reports whether every item in the category's set has a status
// other than unset.
func (s Snapshot) Complete() bool {
	items := Items(s.Category)
	if items == nil {
		return false
	}
	for _, item := range items {
		if s.Statuses[item.ID] == StatusUnset {
			return false
		}
	}
	return true
}

// Flow is one in-progress inspection. It is created when the checklist
// surface opens and discarded when it closes; nothing is persisted here.
type Flow struct {
	step     Step
	category Category
	statuses map[string]ItemStatus
}

// NewFlow creates a flow at the category-selection step.
func NewFlow() *Flow {
	return &Flow{step: StepSelectCategory}
}

// Step returns the current stage.
func (f *Flow) Step() Step {
	return f.step
}

// Category returns the active category, or empty string before selection.
func (f *Flow) Category() Category {
	return f.category
}

// Status returns the captured status for an item of the active category.
func (f *Flow) Status(itemID string) ItemStatus {
	return f.statuses[itemID]
}

// SelectCategory fixes the item set and seeds every item unset, moving to
// the fill-items step.
func (f *Flow) SelectCategory(c Category) error {
	if f.step != StepSelectCategory {
		return ErrInvalidStep
	}

	items := Items(c)
	if items == nil {
		return ErrUnknownCategory
	}

	f.category = c
	f.statuses = make(map[string]ItemStatus, len(items))
	for _, item := range items {
		f.statuses[item.ID] = StatusUnset
	}
	f.step = StepFillItems
	return nil
}

// SetItemStatus overwrites one item's judgment. Valid only while filling
// items and only for items of the active category; anything else is rejected
// without mutating the flow.
func (f *Flow) SetItemStatus(itemID string, status ItemStatus) error {
	if f.step != StepFillItems {
		return ErrInvalidStep
	}
	if _, ok := f.statuses[itemID]; !ok {
		return ErrUnknownItem
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}

	f.statuses[itemID] = status
	return nil
}

// GoBack abandons the active category and every captured status, returning
// to category selection. Re-selecting the same category starts fully unset;
// partial progress never survives.
func (f *Flow) GoBack() error {
	if f.step != StepFillItems {
		return ErrInvalidStep
	}

	f.category = ""
	f.statuses = nil
	f.step = StepSelectCategory
	return nil
}

// Complete emits the full snapshot, complete or not, and resets the flow to
// its initial state. Completion enforcement belongs to the order-save guard.
func (f *Flow) Complete() (Snapshot, error) {
	if f.step != StepFillItems {
		return Snapshot{}, ErrInvalidStep
	}

	snap := Snapshot{
		Category: f.category,
		Statuses: make(map[string]ItemStatus, len(f.statuses)),
	}
	for id, st := range f.statuses {
		snap.Statuses[id] = st
	}

	f.category = ""
	f.statuses = nil
	f.step = StepSelectCategory
	return snap, nil
}
