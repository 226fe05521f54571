package guard

// History abstracts the host's back-navigation stack. Push inserts one
// capture entry so the next back signal lands on the interceptor instead of
// leaving the screen; Pop releases it.
type History interface {
	Push()
	Pop()
}

// Interceptor routes the host's back signal through a Guard's close
// machinery. It is a second trigger source for the same state machine as
// RequestClose, not a separate one.
type Interceptor struct {
	history History
	guard   *Guard
	enabled bool
}

// NewInterceptor binds a guard to the host history.
func NewInterceptor(history History, g *Guard) *Interceptor {
	return &Interceptor{
		history: history,
		guard:   g,
	}
}

// Enable pre-empts one level of back history. Idempotent: repeated calls
// never stack multiple capture entries.
func (i *Interceptor) Enable() {
	if i.enabled {
		return
	}
	i.history.Push()
	i.enabled = true
}

// Disable releases the capture so normal back navigation resumes. Idempotent.
func (i *Interceptor) Disable() {
	if !i.enabled {
		return
	}
	i.history.Pop()
	i.enabled = false
}

// Enabled reports whether the capture is currently in place.
func (i *Interceptor) Enabled() bool {
	return i.enabled
}

// HandleBack processes one captured back signal. The firing signal consumed
// the capture entry, so it is re-armed first; a third or fourth back press
// while a confirmation is pending therefore cannot slip through. The guard
// decides whether the exit proceeds.
func (i *Interceptor) HandleBack() Decision {
	if !i.enabled {
		return DecisionNone
	}
	i.history.Push()
	return i.guard.RequestClose()
}
