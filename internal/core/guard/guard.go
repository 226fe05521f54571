// Package guard tracks unsaved form input and gates destructive navigation
// behind an explicit confirmation. A Guard compares the form's working values
// against the snapshot taken when the surface opened (or last committed); an
// Interceptor binds the same confirmation machine to the host's
// back-navigation signal so a guarded screen cannot be left by accident.
package guard

// State is the guard's position in its close-confirmation machine.
type State int

const (
	// StateIdle means the surface is editable and no close is pending.
	StateIdle State = iota
	// StateConfirming means a close was requested while dirty and is
	// suspended until the user confirms or cancels.
	StateConfirming
	// StateClosed is terminal; a fresh Guard is created on the next open.
	StateClosed
)

// Decision is the outcome of a close request.
type Decision int

const (
	// DecisionNone means the request was ignored (already closed, or a
	// dismissal vetoed while dirty).
	DecisionNone Decision = iota
	// DecisionClose means the surface should close now.
	DecisionClose
	// DecisionConfirm means the close is suspended pending confirmation.
	DecisionConfirm
)

// Guard is the dirty-state close guard for one opened surface.
type Guard struct {
	original map[string]string
	current  map[string]string
	state    State
}

// New creates a guard seeded with the surface's opening field values.
// Both snapshots start equal, so a freshly opened surface is clean.
func New(snapshot map[string]string) *Guard {
	g := &Guard{
		original: make(map[string]string, len(snapshot)),
		current:  make(map[string]string, len(snapshot)),
	}
	for name, val := range snapshot {
		g.original[name] = val
		g.current[name] = val
	}
	return g
}

// SetField records a field mutation into the working snapshot.
func (g *Guard) SetField(name, value string) {
	if g.state == StateClosed {
		return
	}
	g.current[name] = value
}

// Field returns the working value of a field.
func (g *Guard) Field(name string) string {
	return g.current[name]
}

// Dirty reports whether any working value differs from the baseline.
func (g *Guard) Dirty() bool {
	if len(g.current) != len(g.original) {
		return true
	}
	for name, val := range g.current {
		if g.original[name] != val {
			return true
		}
	}
	return false
}

// State returns the guard's current state.
func (g *Guard) State() State {
	return g.state
}

// RequestClose is a deliberate close attempt (close button, back signal).
// A clean surface closes immediately; a dirty one suspends the close and
// waits for ConfirmClose or CancelClose. Repeated requests while confirming
// keep the confirmation open rather than stacking.
func (g *Guard) RequestClose() Decision {
	switch g.state {
	case StateClosed:
		return DecisionNone
	case StateConfirming:
		return DecisionConfirm
	}

	if !g.Dirty() {
		g.state = StateClosed
		return DecisionClose
	}

	g.state = StateConfirming
	return DecisionConfirm
}

// Dismiss is a non-deliberate dismissal attempt (clicking outside the modal).
// While dirty it is vetoed silently without opening the confirmation, since
// an outside click is treated as accidental. A clean surface closes.
func (g *Guard) Dismiss() Decision {
	if g.state != StateIdle {
		return DecisionNone
	}
	if g.Dirty() {
		return DecisionNone
	}
	g.state = StateClosed
	return DecisionClose
}

// ConfirmClose resolves a pending confirmation by discarding changes and
// closing. Returns false when no confirmation is pending.
func (g *Guard) ConfirmClose() bool {
	if g.state != StateConfirming {
		return false
	}
	g.state = StateClosed
	return true
}

// CancelClose resolves a pending confirmation by returning to editing.
// Working values are untouched; nothing is reverted.
func (g *Guard) CancelClose() bool {
	if g.state != StateConfirming {
		return false
	}
	g.state = StateIdle
	return true
}

// Commit re-baselines the guard after a successful save: the baseline is
// replaced with the working values in one step, never partially. The surface
// is clean afterwards.
func (g *Guard) Commit() {
	if g.state == StateClosed {
		return
	}
	next := make(map[string]string, len(g.current))
	for name, val := range g.current {
		next[name] = val
	}
	g.original = next
}
