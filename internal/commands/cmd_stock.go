package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/fixdesk/internal/core/stock"
	"github.com/colonyops/fixdesk/pkg/iojson"
	"github.com/colonyops/fixdesk/pkg/randid"
)

type StockCmd struct {
	flags *Flags
	app   *App

	// flags
	jsonOutput bool
	name       string
	sku        string
	quantity   int
	unitCost   int
}

// NewStockCmd creates a new stock command
func NewStockCmd(flags *Flags, app *App) *StockCmd {
	return &StockCmd{flags: flags, app: app}
}

// Register adds the stock command to the application
func (cmd *StockCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "stock",
		Usage: "Manage the spare-part inventory",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List stock items",
				UsageText: "fixdesk stock ls [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON lines",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runLs,
			},
			{
				Name:      "add",
				Usage:     "Add a stock item",
				UsageText: "fixdesk stock add --name NAME [--sku SKU] [--qty N] [--cost CENTS]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "name",
						Usage:       "item name",
						Required:    true,
						Destination: &cmd.name,
					},
					&cli.StringFlag{
						Name:        "sku",
						Usage:       "stock keeping unit",
						Destination: &cmd.sku,
					},
					&cli.IntFlag{
						Name:        "qty",
						Usage:       "initial quantity",
						Destination: &cmd.quantity,
					},
					&cli.IntFlag{
						Name:        "cost",
						Usage:       "unit cost in cents",
						Destination: &cmd.unitCost,
					},
				},
				Action: cmd.runAdd,
			},
			{
				Name:      "adjust",
				Usage:     "Adjust a stock item's quantity",
				UsageText: "fixdesk stock adjust ITEM_ID DELTA",
				Description: `Applies a signed delta to an item's quantity. Adjustments that would
take the quantity below zero are rejected.`,
				Action: cmd.runAdjust,
			},
		},
	})

	return app
}

// stockInfo is the JSON output format for fixdesk stock ls --json.
type stockInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku,omitempty"`
	Quantity int64  `json:"quantity"`
	UnitCost int64  `json:"unit_cost_cents"`
}

func (cmd *StockCmd) runLs(ctx context.Context, c *cli.Command) error {
	items, err := cmd.app.Stock.List(ctx)
	if err != nil {
		return fmt.Errorf("list stock: %w", err)
	}

	if len(items) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No stock items found\n")
		}
		return nil
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, it := range items {
			info := stockInfo{ID: it.ID, Name: it.Name, SKU: it.SKU, Quantity: it.Quantity, UnitCost: it.UnitCost}
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode stock item: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tSKU\tQTY\tUNIT COST")
	for _, it := range items {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			it.ID, it.Name, it.SKU, it.Quantity, formatCents(it.UnitCost))
	}

	return w.Flush()
}

func (cmd *StockCmd) runAdd(ctx context.Context, c *cli.Command) error {
	now := time.Now()
	item := stock.Item{
		ID:        "stk-" + randid.Generate(8),
		Name:      cmd.name,
		SKU:       cmd.sku,
		Quantity:  int64(cmd.quantity),
		UnitCost:  int64(cmd.unitCost),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := cmd.app.Stock.Save(ctx, item); err != nil {
		return fmt.Errorf("save stock item: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Added %s (%s)\n", item.Name, item.ID)
	return nil
}

func (cmd *StockCmd) runAdjust(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected ITEM_ID and DELTA arguments")
	}

	id := c.Args().Get(0)
	delta, err := strconv.ParseInt(c.Args().Get(1), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid delta %q", c.Args().Get(1))
	}

	item, err := cmd.app.Stock.Adjust(ctx, id, delta)
	if err != nil {
		if errors.Is(err, stock.ErrNotFound) {
			return fmt.Errorf("no stock item with id %q", id)
		}
		return fmt.Errorf("adjust stock: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "%s: quantity now %d\n", item.Name, item.Quantity)
	return nil
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
