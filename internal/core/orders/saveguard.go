package orders

import (
	"errors"

	"github.com/colonyops/fixdesk/internal/core/checklist"
)

var (
	// ErrChecklistRequired is returned when an order save is attempted
	// before any inspection checklist was captured.
	ErrChecklistRequired = errors.New("orders: inspection checklist required before saving")
	// ErrChecklistIncomplete is returned when the captured checklist still
	// has unset items.
	ErrChecklistIncomplete = errors.New("orders: inspection checklist has unassessed items")
)

// CheckSaveable is the save-side precondition on the checklist flow's last
// emitted snapshot. The flow's Complete() succeeds unconditionally; this is
// where an absent or incomplete checklist is rejected, before anything
// reaches the store.
func CheckSaveable(snap *checklist.Snapshot) error {
	if snap == nil {
		return ErrChecklistRequired
	}
	if !snap.Complete() {
		return ErrChecklistIncomplete
	}
	return nil
}
