// Package orders holds the service-order domain: the lifecycle status enum,
// the read-time display-status resolution, and the checklist save guard.
package orders

import (
	"fmt"
	"time"
)

// Status is a service order's persisted lifecycle status.
type Status string

const (
	StatusWaitingPart Status = "waiting_part"
	StatusQuote       Status = "quote"
	StatusInProgress  Status = "in_progress"
	StatusDelayed     Status = "delayed"
	StatusWarranty    Status = "warranty"
	StatusCompleted   Status = "completed"
	StatusDelivered   Status = "delivered"
)

// AllStatuses returns the lifecycle statuses in display order.
func AllStatuses() []Status {
	return []Status{
		StatusWaitingPart,
		StatusQuote,
		StatusInProgress,
		StatusDelayed,
		StatusWarranty,
		StatusCompleted,
		StatusDelivered,
	}
}

// ParseStatus validates a stored status string.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return st, nil
}

// Valid reports whether s is a known lifecycle status.
func (s Status) Valid() bool {
	switch s {
	case StatusWaitingPart, StatusQuote, StatusInProgress, StatusDelayed,
		StatusWarranty, StatusCompleted, StatusDelivered:
		return true
	}
	return false
}

// Terminal reports whether s is exempt from overdue recoloring.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusDelivered
}

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusWaitingPart:
		return "Waiting Part"
	case StatusQuote:
		return "Quote"
	case StatusInProgress:
		return "In Progress"
	case StatusDelayed:
		return "Delayed"
	case StatusWarranty:
		return "Warranty"
	case StatusCompleted:
		return "Completed"
	case StatusDelivered:
		return "Delivered"
	default:
		return string(s)
	}
}

// Order is one service order record. BrandID and ModelID hold either a
// catalog id or, when the matching Custom flag is set, the literal free-text
// value the operator typed.
type Order struct {
	ID                 string
	Number             int64
	ClientID           string
	BrandID            string
	BrandCustom        bool
	ModelID            string
	ModelCustom        bool
	Defect             string
	Notes              string
	Status             Status
	EntryDate          time.Time
	EstimatedDelivery  *time.Time
	ChecklistCompleted bool
	ChecklistCategory  string
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Resolution is the display projection of a stored status. It is computed at
// render time and never written back to storage.
type Resolution struct {
	Status  Status
	Overdue bool
}

// Resolve maps a stored status plus the estimated-delivery comparison to the
// status actually displayed. Terminal statuses are shown verbatim and are
// never overdue. Otherwise the order is overdue, and displayed as delayed,
// when today's calendar date is strictly after the estimated date; on the
// due date itself it is not yet overdue.
func Resolve(o Order, now time.Time) Resolution {
	if o.Status.Terminal() || o.EstimatedDelivery == nil {
		return Resolution{Status: o.Status}
	}

	if dayOf(now).After(dayOf(*o.EstimatedDelivery)) {
		return Resolution{Status: StatusDelayed, Overdue: true}
	}

	return Resolution{Status: o.Status}
}

// dayOf strips time-of-day, leaving a comparable calendar date.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
