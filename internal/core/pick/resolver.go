package pick

import "strings"

// Resolver layers free-text entry on top of a Disambiguator for pickers that
// accept values not present in the option set (new clients, brands, models).
// Typing filters the option list and always de-arms; submitting resolves the
// typed text to an existing option when it matches a label exactly, or to the
// literal text when custom values are allowed.
type Resolver struct {
	// AllowCustom permits submitting text that matches no option. The
	// resulting selection is the literal text, signalling a novel record
	// to the caller.
	AllowCustom bool

	all   []Option
	d     *Disambiguator
	input string
}

// NewResolver creates a resolver over the full option set.
func NewResolver(options []Option, allowCustom bool) *Resolver {
	return &Resolver{
		AllowCustom: allowCustom,
		all:         options,
		d:           NewDisambiguator(options),
	}
}

// SetOptions replaces the full option set and re-applies the current filter.
func (r *Resolver) SetOptions(options []Option) {
	r.all = options
	r.d.SetOptions(filter(options, r.input))
}

// SetInput updates the typed filter text. Typing always clears armed state:
// the candidate list shifts under the user, so a pending confirmation on the
// old list must not carry over.
func (r *Resolver) SetInput(text string) {
	r.input = text
	r.d.SetOptions(filter(r.all, text))
	r.d.Reset()
}

// Input returns the current typed filter text.
func (r *Resolver) Input() string {
	return r.input
}

// Filtered returns the options matching the current filter text.
func (r *Resolver) Filtered() []Option {
	return r.d.Options()
}

// Activate forwards one interaction to the two-phase protocol over the
// filtered candidate set.
func (r *Resolver) Activate(id string) (string, bool) {
	return r.d.Activate(id)
}

// ArmedID returns the armed candidate id, or empty string.
func (r *Resolver) ArmedID() string {
	return r.d.ArmedID()
}

// Submit resolves the typed text as an explicit commit. Resolution order:
// an exact case-insensitive label match wins and yields that option's id;
// otherwise the literal trimmed text is returned when custom values are
// allowed. Empty input, or no match without AllowCustom, yields no selection
// and the picker stays open.
func (r *Resolver) Submit() (string, bool) {
	text := strings.TrimSpace(r.input)
	if text == "" {
		return "", false
	}

	for _, opt := range r.all {
		if strings.EqualFold(opt.Label, text) {
			return opt.ID, true
		}
	}

	if r.AllowCustom {
		return text, true
	}

	return "", false
}

// DisplayValue maps a committed value back to a renderable label: the
// matching option's label when the value is a known id, otherwise the value
// itself (a custom, not-yet-persisted entry).
func (r *Resolver) DisplayValue(value string) string {
	for _, opt := range r.all {
		if opt.ID == value {
			return opt.Label
		}
	}
	return value
}

// Reset clears the filter text and armed state. Called when the picker closes.
func (r *Resolver) Reset() {
	r.input = ""
	r.d.SetOptions(r.all)
	r.d.Reset()
}

func filter(options []Option, text string) []Option {
	if text == "" {
		return options
	}

	needle := strings.ToLower(text)
	matched := make([]Option, 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Label), needle) {
			matched = append(matched, opt)
		}
	}
	return matched
}
