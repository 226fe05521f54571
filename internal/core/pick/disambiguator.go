// Package pick implements the two-phase "arm then confirm" selection protocol
// used by every searchable picker in the TUI. The first activation of a
// candidate arms it; a second activation of the same candidate confirms it.
// The protocol prevents a single stray interaction from committing a
// selection while still allowing a fast double-activation to commit.
package pick

// Option is a single selectable candidate. Identity is the ID; the label is
// what the picker renders and filters against.
type Option struct {
	ID    string
	Label string
}

// Disambiguator tracks which candidate, if any, is currently armed.
// It owns no rendering and no timers; callers drive it from their event loop.
type Disambiguator struct {
	options []Option
	armedID string
}

// NewDisambiguator creates a disambiguator over the given candidate list.
func NewDisambiguator(options []Option) *Disambiguator {
	d := &Disambiguator{}
	d.SetOptions(options)
	return d
}

// SetOptions replaces the candidate list. If the armed candidate is no longer
// present the armed state is cleared, so a stale id can never silently
// confirm after the list changes underneath the picker.
func (d *Disambiguator) SetOptions(options []Option) {
	d.options = options
	if d.armedID != "" && !d.has(d.armedID) {
		d.armedID = ""
	}
}

// Options returns the current candidate list.
func (d *Disambiguator) Options() []Option {
	return d.options
}

// Activate processes one interaction with the candidate identified by id.
// It returns (id, true) exactly when this activation confirms an already
// armed candidate; every other activation arms and returns ("", false).
// Activating an id that is not in the candidate list is a no-op.
func (d *Disambiguator) Activate(id string) (string, bool) {
	if !d.has(id) {
		return "", false
	}

	if d.armedID == id {
		d.armedID = ""
		return id, true
	}

	d.armedID = id
	return "", false
}

// ArmedID returns the currently armed candidate id, or empty string.
func (d *Disambiguator) ArmedID() string {
	return d.armedID
}

// Armed reports whether id is the currently armed candidate.
func (d *Disambiguator) Armed(id string) bool {
	return id != "" && d.armedID == id
}

// Reset clears the armed state. Called when the owning picker opens or closes.
func (d *Disambiguator) Reset() {
	d.armedID = ""
}

func (d *Disambiguator) has(id string) bool {
	for _, opt := range d.options {
		if opt.ID == id {
			return true
		}
	}
	return false
}
