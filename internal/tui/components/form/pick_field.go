package form

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/fixdesk/internal/core/pick"
	"github.com/colonyops/fixdesk/internal/core/styles"
)

const pickMaxVisible = 6

// PickField is a combo field over an open or closed option set. Typing
// filters the candidate list; a highlighted candidate must be activated twice
// before it commits (the first press arms it, the second confirms), so a
// slip of the finger never selects. Submitting typed text resolves it to an
// exact label match, or to the literal text when the field allows custom
// values.
type PickField struct {
	input    textinput.Model
	resolver *pick.Resolver
	label    string
	focused  bool
	cursor   int

	value    string // committed selection, empty until resolved
	custom   bool   // committed value is free text, not an option id
	resolved bool
}

// NewPickField creates a pick field over the given options. allowCustom
// permits committing text that matches no option.
func NewPickField(label, placeholder string, options []pick.Option, allowCustom bool) *PickField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetWidth(40)

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	return &PickField{
		input:    ti,
		resolver: pick.NewResolver(options, allowCustom),
		label:    label,
	}
}

// SetOptions replaces the candidate set, keeping the current filter text.
func (f *PickField) SetOptions(options []pick.Option) {
	f.resolver.SetOptions(options)
	f.clampCursor()
}

// Preselect seeds a committed value without interaction, for editing an
// existing record. custom marks the value as free text.
func (f *PickField) Preselect(value string, custom bool) {
	f.value = value
	f.custom = custom
	f.resolved = value != ""
	f.input.SetValue(f.resolver.DisplayValue(value))
}

func (f *PickField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return f, cmd
	}

	switch keyMsg.String() {
	case "up":
		if f.cursor > 0 {
			f.cursor--
		}
		return f, nil
	case "down":
		if f.cursor < len(f.resolver.Filtered())-1 {
			f.cursor++
		}
		return f, nil
	case "enter":
		f.activate()
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)

	// Typing invalidates any committed value and any pending confirmation;
	// the candidate list has shifted under the user.
	if f.input.Value() != f.resolver.Input() {
		f.resolver.SetInput(f.input.Value())
		f.value = ""
		f.custom = false
		f.resolved = false
		f.clampCursor()
	}

	return f, cmd
}

// activate advances the two-phase protocol on the highlighted candidate, or
// resolves the typed text when no candidate matches the filter.
func (f *PickField) activate() {
	filtered := f.resolver.Filtered()

	if f.cursor < len(filtered) {
		id, confirmed := f.resolver.Activate(filtered[f.cursor].ID)
		if confirmed {
			f.commit(id, false)
		}
		return
	}

	if value, ok := f.resolver.Submit(); ok {
		f.commit(value, !f.isOptionID(value))
	}
}

func (f *PickField) commit(value string, custom bool) {
	f.value = value
	f.custom = custom
	f.resolved = true
	f.input.SetValue(f.resolver.DisplayValue(value))
}

func (f *PickField) isOptionID(value string) bool {
	return f.resolver.DisplayValue(value) != value
}

func (f *PickField) View() string {
	titleStyle := styles.TextMutedStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}
	parts := []string{titleStyle.Render(f.label), f.input.View()}

	if f.focused && !f.resolved {
		filtered := f.resolver.Filtered()
		visible := min(len(filtered), pickMaxVisible)
		for i := 0; i < visible; i++ {
			opt := filtered[i]

			style := styles.PickItemStyle
			cursor := "  "
			switch {
			case opt.ID == f.resolver.ArmedID():
				style = styles.PickItemArmedStyle
				cursor = "! "
			case i == f.cursor:
				style = styles.PickItemSelectedStyle
				cursor = "> "
			}

			parts = append(parts, cursor+style.Render(opt.Label))
		}

		if len(filtered) == 0 && f.resolver.AllowCustom && f.resolver.Input() != "" {
			parts = append(parts, styles.PickCustomHintStyle.Render("enter: use \""+f.resolver.Input()+"\""))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}

func (f *PickField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *PickField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *PickField) Focused() bool { return f.focused }
func (f *PickField) Value() any    { return f.value }
func (f *PickField) Label() string { return f.label }

// Resolved reports whether the field holds a committed selection.
func (f *PickField) Resolved() bool { return f.resolved }

// Custom reports whether the committed value is free text rather than an
// option id.
func (f *PickField) Custom() bool { return f.custom }

// WantsEnter reports whether the field still needs the enter key for its own
// selection protocol. The containing dialog only advances focus on enter once
// the field holds a committed value.
func (f *PickField) WantsEnter() bool { return !f.resolved }

func (f *PickField) clampCursor() {
	if n := len(f.resolver.Filtered()); f.cursor >= n {
		f.cursor = max(n-1, 0)
	}
}
