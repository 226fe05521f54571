package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/fixdesk/internal/core/checklist"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestResolve(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name        string
		status      Status
		estimated   *time.Time
		wantStatus  Status
		wantOverdue bool
	}{
		{"past due forces delayed", StatusInProgress, datePtr(yesterday), StatusDelayed, true},
		{"terminal exempt from overdue", StatusCompleted, datePtr(yesterday), StatusCompleted, false},
		{"delivered exempt from overdue", StatusDelivered, datePtr(yesterday), StatusDelivered, false},
		{"nil estimate passes through", StatusDelayed, nil, StatusDelayed, false},
		{"due today is not overdue", StatusQuote, datePtr(now), StatusQuote, false},
		{"future estimate passes through", StatusWaitingPart, datePtr(tomorrow), StatusWaitingPart, false},
		{"already delayed stays delayed", StatusDelayed, datePtr(yesterday), StatusDelayed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(Order{Status: tt.status, EstimatedDelivery: tt.estimated}, now)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantOverdue, res.Overdue)
		})
	}
}

func TestResolve_TimeOfDayStripped(t *testing.T) {
	// Estimated late yesterday evening, checked early today: one calendar
	// day apart, so overdue even though less than 24h passed.
	estimated := time.Date(2026, 8, 31, 23, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 1, 0, 0, 0, time.Local)

	res := Resolve(Order{Status: StatusInProgress, EstimatedDelivery: &estimated}, now)
	assert.Equal(t, StatusDelayed, res.Status)
	assert.True(t, res.Overdue)
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("waiting_part")
	require.NoError(t, err)
	assert.Equal(t, StatusWaitingPart, st)

	_, err = ParseStatus("lost")
	assert.Error(t, err)
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusDelivered.Terminal())
	assert.False(t, StatusDelayed.Terminal())
	assert.False(t, StatusWarranty.Terminal())
}

func TestCheckSaveable(t *testing.T) {
	assert.ErrorIs(t, CheckSaveable(nil), ErrChecklistRequired)

	flow := checklist.NewFlow()
	require.NoError(t, flow.SelectCategory(checklist.CategoryAndroid))
	snap, err := flow.Complete()
	require.NoError(t, err)
	assert.ErrorIs(t, CheckSaveable(&snap), ErrChecklistIncomplete)

	flow = checklist.NewFlow()
	require.NoError(t, flow.SelectCategory(checklist.CategoryAndroid))
	for _, item := range checklist.Items(checklist.CategoryAndroid) {
		require.NoError(t, flow.SetItemStatus(item.ID, checklist.StatusWorking))
	}
	snap, err = flow.Complete()
	require.NoError(t, err)
	assert.NoError(t, CheckSaveable(&snap))
}
