// Package tui implements the interactive service-order manager.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/fixdesk/internal/core/catalog"
	"github.com/colonyops/fixdesk/internal/core/checklist"
	"github.com/colonyops/fixdesk/internal/core/clients"
	"github.com/colonyops/fixdesk/internal/core/config"
	"github.com/colonyops/fixdesk/internal/core/logging"
	"github.com/colonyops/fixdesk/internal/core/orders"
	"github.com/colonyops/fixdesk/internal/core/pick"
	"github.com/colonyops/fixdesk/internal/core/validate"
	"github.com/colonyops/fixdesk/pkg/randid"
)

// Service bundles the stores and configuration the TUI operates on.
type Service struct {
	Config  *config.Config
	Orders  orders.Store
	Clients clients.Store
	Catalog catalog.Store
}

// NewService creates a TUI service.
func NewService(cfg *config.Config, orderStore orders.Store, clientStore clients.Store, catalogStore catalog.Store) *Service {
	return &Service{
		Config:  cfg,
		Orders:  orderStore,
		Clients: clientStore,
		Catalog: catalogStore,
	}
}

// OrderDraft carries one edited form's values from the dialog to the store.
// Client/Brand/Model values hold a record id, or free text when the matching
// Custom flag is set.
type OrderDraft struct {
	ID           string // empty for a new order
	Number       int64  // 0 for a new order
	ClientValue  string
	ClientCustom bool
	BrandValue   string
	BrandCustom  bool
	ModelValue   string
	ModelCustom  bool
	Defect       string
	Notes        string
	ETA          string // YYYY-MM-DD, empty for none
	Status       orders.Status
	EntryDate    time.Time
	CreatedAt    time.Time
	Snapshot     *checklist.Snapshot
}

type ordersLoadedMsg struct {
	orders      []orders.Order
	clientNames map[string]string
	brandOpts   []pick.Option
	clientOpts  []pick.Option
}

type orderSavedMsg struct {
	number int64
}

type orderDeletedMsg struct {
	number int64
}

type errMsg struct {
	err error
}

// LoadCmd reads everything the browsing view needs in one pass.
func (s *Service) LoadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		orderList, err := s.Orders.List(ctx)
		if err != nil {
			return errMsg{err}
		}

		clientList, err := s.Clients.List(ctx)
		if err != nil {
			return errMsg{err}
		}

		names := make(map[string]string, len(clientList))
		clientOpts := make([]pick.Option, 0, len(clientList))
		for _, c := range clientList {
			names[c.ID] = c.Name
			clientOpts = append(clientOpts, pick.Option{ID: c.ID, Label: c.Name})
		}

		brands, err := s.Catalog.ListBrands(ctx)
		if err != nil {
			return errMsg{err}
		}

		return ordersLoadedMsg{
			orders:      orderList,
			clientNames: names,
			brandOpts:   catalog.BrandOptions(brands),
			clientOpts:  clientOpts,
		}
	}
}

// SaveCmd validates a draft and persists it, creating referenced records for
// free-text client values as needed.
func (s *Service) SaveCmd(draft OrderDraft) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		if err := criterio.ValidateStruct(
			validate.RequiredField("client", draft.ClientValue),
			validate.RequiredField("defect", draft.Defect),
			validate.DateYMDField("eta", draft.ETA),
		); err != nil {
			return errMsg{err}
		}

		if !draft.Status.Valid() {
			return errMsg{fmt.Errorf("invalid order status %q", draft.Status)}
		}

		if s.Config.Orders.RequireChecklistEnabled() && draft.ID == "" {
			if err := orders.CheckSaveable(draft.Snapshot); err != nil {
				return errMsg{err}
			}
		}

		var estimated *time.Time
		if draft.ETA != "" {
			t, err := time.ParseInLocation("2006-01-02", draft.ETA, time.Local)
			if err != nil {
				return errMsg{fmt.Errorf("invalid delivery date %q (want YYYY-MM-DD)", draft.ETA)}
			}
			estimated = &t
		}

		clientID := draft.ClientValue
		if draft.ClientCustom {
			client := clients.Client{
				ID:        "cli-" + randid.Generate(8),
				Name:      draft.ClientValue,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := s.Clients.Save(ctx, client); err != nil {
				return errMsg{fmt.Errorf("create client: %w", err)}
			}
			clientID = client.ID
			log.Debug().Str("cmp", "tui").Str("client", client.ID).Msg("created client from free-text entry")
		}

		o := orders.Order{
			ID:                draft.ID,
			Number:            draft.Number,
			ClientID:          clientID,
			BrandID:           draft.BrandValue,
			BrandCustom:       draft.BrandCustom,
			ModelID:           draft.ModelValue,
			ModelCustom:       draft.ModelCustom,
			Defect:            draft.Defect,
			Notes:             draft.Notes,
			Status:            draft.Status,
			EntryDate:         draft.EntryDate,
			EstimatedDelivery: estimated,
			CreatedBy:         s.Config.Shop.Operator,
			CreatedAt:         draft.CreatedAt,
			UpdatedAt:         now,
		}

		if o.ID == "" {
			o.ID = "ord-" + randid.Generate(8)
			o.EntryDate = now
			o.CreatedAt = now

			number, err := s.Orders.NextNumber(ctx)
			if err != nil {
				return errMsg{err}
			}
			o.Number = number
		}

		if draft.Snapshot != nil {
			o.ChecklistCategory = string(draft.Snapshot.Category)
			o.ChecklistCompleted = draft.Snapshot.Complete()
		}

		if err := s.Orders.Save(ctx, o, draft.Snapshot); err != nil {
			return errMsg{err}
		}

		saveCtx := logging.WithOrderID(logging.WithOperator(ctx, o.CreatedBy), o.ID)
		log.Info().Ctx(saveCtx).Str("cmp", "tui").Int64("number", o.Number).Str("status", string(o.Status)).Msg("order saved")
		return orderSavedMsg{number: o.Number}
	}
}

// DeleteCmd removes an order.
func (s *Service) DeleteCmd(o orders.Order) tea.Cmd {
	return func() tea.Msg {
		if err := s.Orders.Delete(context.Background(), o.ID); err != nil {
			return errMsg{err}
		}
		log.Info().Str("cmp", "tui").Int64("number", o.Number).Msg("order deleted")
		return orderDeletedMsg{number: o.Number}
	}
}
