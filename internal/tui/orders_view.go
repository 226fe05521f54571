package tui

import (
	"fmt"
	"io"
	"time"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/fixdesk/internal/core/orders"
	"github.com/colonyops/fixdesk/internal/core/styles"
)

const maxDefectWidth = 32

// orderItem adapts an order for the browsing list.
type orderItem struct {
	order      orders.Order
	clientName string
}

func (i orderItem) FilterValue() string {
	return fmt.Sprintf("%d %s %s %s", i.order.Number, i.clientName, i.order.ModelID, i.order.Defect)
}

// orderDelegate renders one order row: number, client, device, defect, and
// the resolved status badge. The badge reflects the display status, never
// the stored one: an order past its estimated delivery shows as delayed.
type orderDelegate struct{}

func (d orderDelegate) Height() int                             { return 1 }
func (d orderDelegate) Spacing() int                            { return 0 }
func (d orderDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d orderDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(orderItem)
	if !ok {
		return
	}

	o := item.order
	isSelected := index == m.Index()

	cursor := "  "
	numberStyle := styles.TextMutedStyle
	if isSelected {
		cursor = "> "
		numberStyle = styles.ViewSelectedStyle
	}

	number := numberStyle.Render(fmt.Sprintf("#%04d", o.Number))
	client := styles.TextForegroundStyle.Render(padRight(item.clientName, 20))
	defect := styles.TextMutedStyle.Render(ansi.Truncate(o.Defect, maxDefectWidth, "…"))

	check := " "
	if o.ChecklistCompleted {
		check = styles.StatusOKStyle.Render(styles.IconCheckList)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Left,
		cursor, number, "  ", client, "  ", renderStatusBadge(o), "  ", check, " ", defect)
	_, _ = io.WriteString(w, row)
}

// renderStatusBadge renders the display status for an order as of now.
func renderStatusBadge(o orders.Order) string {
	res := orders.Resolve(o, time.Now())

	label := padRight(res.Status.Label(), 12)
	if res.Overdue {
		return styles.StatusOverdueStyle.Render(label)
	}

	switch res.Status {
	case orders.StatusCompleted, orders.StatusDelivered:
		return styles.StatusTerminalStyle.Render(label)
	case orders.StatusWaitingPart, orders.StatusQuote:
		return styles.StatusWarnStyle.Render(label)
	case orders.StatusDelayed:
		return styles.StatusOverdueStyle.Render(label)
	default:
		return styles.StatusNeutralStyle.Render(label)
	}
}

func padRight(s string, width int) string {
	if len(s) > width {
		return ansi.Truncate(s, width, "…")
	}
	for len(s) < width {
		s += " "
	}
	return s
}

// listModel wraps the browsing list with order-aware accessors.
type listModel struct {
	inner list.Model
}

func newListModel() listModel {
	l := list.New(nil, orderDelegate{}, 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	return listModel{inner: l}
}

func (l *listModel) SetSize(width, height int) {
	l.inner.SetSize(width, height)
}

// SetOrders replaces the list contents, keeping the cursor position when
// possible.
func (l *listModel) SetOrders(os []orders.Order, clientNames map[string]string) {
	items := make([]list.Item, 0, len(os))
	for _, o := range os {
		items = append(items, orderItem{order: o, clientName: clientNames[o.ClientID]})
	}

	selected := l.inner.Index()
	l.inner.SetItems(items)
	if selected < len(items) {
		l.inner.Select(selected)
	}
}

func (l *listModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.inner, cmd = l.inner.Update(msg)
	return cmd
}

// Selected returns the order under the cursor.
func (l *listModel) Selected() (orders.Order, bool) {
	item, ok := l.inner.SelectedItem().(orderItem)
	if !ok {
		return orders.Order{}, false
	}
	return item.order, true
}

func (l *listModel) Filtering() bool {
	return l.inner.SettingFilter()
}

func (l *listModel) View() string {
	return l.inner.View()
}

func (l *listModel) Len() int {
	return len(l.inner.Items())
}
