package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/fixdesk/internal/core/catalog"
	"github.com/colonyops/fixdesk/internal/core/clients"
	"github.com/colonyops/fixdesk/internal/core/logging"
	"github.com/colonyops/fixdesk/internal/core/orders"
	"github.com/colonyops/fixdesk/internal/core/validate"
	"github.com/colonyops/fixdesk/pkg/iojson"
	"github.com/colonyops/fixdesk/pkg/randid"
)

type OrdersCmd struct {
	flags *Flags
	app   *App

	// flags
	jsonOutput  bool
	statusOnly  string
	overdueOnly bool
	importInput iojson.FileReader[[]orderImport]
}

// NewOrdersCmd creates a new orders command
func NewOrdersCmd(flags *Flags, app *App) *OrdersCmd {
	return &OrdersCmd{flags: flags, app: app}
}

// Register adds the orders command to the application
func (cmd *OrdersCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "orders",
		Usage: "Inspect and import service orders",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List service orders",
				UsageText: "fixdesk orders ls [--json] [--status STATUS] [--overdue]",
				Description: `Displays a table of all service orders, newest first.

The STATUS column shows the display status: orders past their estimated
delivery date are surfaced as delayed regardless of the stored status, unless
they are already completed or delivered.`,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON lines",
						Destination: &cmd.jsonOutput,
					},
					&cli.StringFlag{
						Name:        "status",
						Usage:       "only show orders with this display status",
						Destination: &cmd.statusOnly,
					},
					&cli.BoolFlag{
						Name:        "overdue",
						Usage:       "only show orders past their estimated delivery",
						Destination: &cmd.overdueOnly,
					},
				},
				Action: cmd.runLs,
			},
			{
				Name:      "import",
				Usage:     "Import service orders from JSON",
				UsageText: "fixdesk orders import [-f file.json]",
				Description: `Reads an array of order records from a JSON file or stdin and creates
a service order for each. Client names are matched case-insensitively against
existing clients; unmatched names create new client records. Brand and model
labels that don't match the catalog are stored as free-text values.`,
				Flags: []cli.Flag{
					cmd.importInput.Flag(),
				},
				Action: cmd.runImport,
			},
		},
	})

	return app
}

func (cmd *OrdersCmd) runLs(ctx context.Context, c *cli.Command) error {
	orderList, err := cmd.app.Orders.List(ctx)
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}

	if len(orderList) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No orders found\n")
		}
		return nil
	}

	clientNames, err := cmd.clientNames(ctx)
	if err != nil {
		return err
	}
	deviceLabels, err := cmd.deviceLabels(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	filtered := orderList[:0]
	for _, o := range orderList {
		res := orders.Resolve(o, now)
		if cmd.overdueOnly && !res.Overdue {
			continue
		}
		if cmd.statusOnly != "" && string(res.Status) != cmd.statusOnly {
			continue
		}
		filtered = append(filtered, o)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, o := range filtered {
			if err := iojson.WriteLine(out, cmd.buildOrderInfo(o, clientNames, deviceLabels, now)); err != nil {
				return fmt.Errorf("encode order: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NUMBER\tCLIENT\tDEVICE\tSTATUS\tETA")

	for _, o := range filtered {
		res := orders.Resolve(o, now)
		status := res.Status.Label()
		if res.Overdue {
			status += " !"
		}
		eta := ""
		if o.EstimatedDelivery != nil {
			eta = o.EstimatedDelivery.Format("2006-01-02")
		}
		_, _ = fmt.Fprintf(w, "#%04d\t%s\t%s\t%s\t%s\n",
			o.Number, clientNames[o.ClientID], deviceLabel(o, deviceLabels), status, eta)
	}

	return w.Flush()
}

// orderInfo is the JSON output format for fixdesk orders ls --json.
type orderInfo struct {
	ID      string `json:"id"`
	Number  int64  `json:"number"`
	Client  string `json:"client"`
	Device  string `json:"device"`
	Defect  string `json:"defect"`
	Status  string `json:"status"`
	Overdue bool   `json:"overdue"`
	ETA     string `json:"eta,omitempty"`
}

func (cmd *OrdersCmd) buildOrderInfo(o orders.Order, clientNames, deviceLabels map[string]string, now time.Time) orderInfo {
	res := orders.Resolve(o, now)
	info := orderInfo{
		ID:      o.ID,
		Number:  o.Number,
		Client:  clientNames[o.ClientID],
		Device:  deviceLabel(o, deviceLabels),
		Defect:  o.Defect,
		Status:  string(res.Status),
		Overdue: res.Overdue,
	}
	if o.EstimatedDelivery != nil {
		info.ETA = o.EstimatedDelivery.Format("2006-01-02")
	}
	return info
}

func (cmd *OrdersCmd) clientNames(ctx context.Context) (map[string]string, error) {
	clientList, err := cmd.app.Clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	names := make(map[string]string, len(clientList))
	for _, c := range clientList {
		names[c.ID] = c.Name
	}
	return names, nil
}

// deviceLabels maps every catalog brand and model id to its label.
func (cmd *OrdersCmd) deviceLabels(ctx context.Context) (map[string]string, error) {
	brands, err := cmd.app.Catalog.ListBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}

	labels := make(map[string]string, len(brands)*2)
	for _, b := range brands {
		labels[b.ID] = b.Label

		models, err := cmd.app.Catalog.ListModels(ctx, b.ID)
		if err != nil {
			return nil, fmt.Errorf("list models for %s: %w", b.Label, err)
		}
		for _, m := range models {
			labels[m.ID] = m.Label
		}
	}
	return labels, nil
}

// deviceLabel renders "brand model" resolving catalog ids to labels; free-text
// values are shown verbatim.
func deviceLabel(o orders.Order, labels map[string]string) string {
	brand := o.BrandID
	if !o.BrandCustom {
		if l, ok := labels[o.BrandID]; ok {
			brand = l
		}
	}
	model := o.ModelID
	if !o.ModelCustom {
		if l, ok := labels[o.ModelID]; ok {
			model = l
		}
	}
	return strings.TrimSpace(brand + " " + model)
}

// orderImport is one record in the import payload.
type orderImport struct {
	Client string `json:"client"`
	Brand  string `json:"brand"`
	Model  string `json:"model"`
	Defect string `json:"defect"`
	Notes  string `json:"notes"`
	Status string `json:"status"`
	ETA    string `json:"eta"`
}

func (cmd *OrdersCmd) runImport(ctx context.Context, c *cli.Command) error {
	records, err := cmd.importInput.Read()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no records in input")
	}

	clientList, err := cmd.app.Clients.List(ctx)
	if err != nil {
		return fmt.Errorf("list clients: %w", err)
	}
	brands, err := cmd.app.Catalog.ListBrands(ctx)
	if err != nil {
		return fmt.Errorf("list brands: %w", err)
	}

	now := time.Now()
	created := 0
	logger := logging.Component("import")

	for i, rec := range records {
		if err := validate.Required(rec.Client); err != nil {
			return fmt.Errorf("record %d: client %w", i+1, err)
		}
		if err := validate.Required(rec.Defect); err != nil {
			return fmt.Errorf("record %d: defect %w", i+1, err)
		}

		status := orders.StatusInProgress
		if rec.Status != "" {
			status, err = orders.ParseStatus(rec.Status)
			if err != nil {
				return fmt.Errorf("record %d: %w", i+1, err)
			}
		}

		var estimated *time.Time
		if rec.ETA != "" {
			t, err := time.ParseInLocation("2006-01-02", rec.ETA, time.Local)
			if err != nil {
				return fmt.Errorf("record %d: invalid eta %q (want YYYY-MM-DD)", i+1, rec.ETA)
			}
			estimated = &t
		}

		clientID, err := cmd.resolveClient(ctx, &clientList, rec.Client, now)
		if err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}

		brandID, brandCustom, err := cmd.resolveBrand(ctx, &brands, rec.Brand, now)
		if err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}

		modelID, modelCustom, err := cmd.resolveModel(ctx, brandID, brandCustom, rec.Model)
		if err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}

		number, err := cmd.app.Orders.NextNumber(ctx)
		if err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}

		o := orders.Order{
			ID:                "ord-" + randid.Generate(8),
			Number:            number,
			ClientID:          clientID,
			BrandID:           brandID,
			BrandCustom:       brandCustom,
			ModelID:           modelID,
			ModelCustom:       modelCustom,
			Defect:            rec.Defect,
			Notes:             rec.Notes,
			Status:            status,
			EntryDate:         now,
			EstimatedDelivery: estimated,
			CreatedBy:         cmd.flags.Config.Shop.Operator,
			CreatedAt:         now,
			UpdatedAt:         now,
		}

		if err := cmd.app.Orders.Save(ctx, o, nil); err != nil {
			return fmt.Errorf("record %d: save order: %w", i+1, err)
		}
		created++
		logger.Info().Ctx(logging.WithOrderID(ctx, o.ID)).Int64("number", o.Number).Msg("order imported")
	}

	fmt.Fprintf(c.Root().Writer, "Imported %d order(s)\n", created)
	return nil
}

// resolveClient matches a client name case-insensitively, creating a new
// client record when nothing matches. The list is updated in place so later
// records in the same import reuse the created client.
func (cmd *OrdersCmd) resolveClient(ctx context.Context, list *[]clients.Client, name string, now time.Time) (string, error) {
	for _, c := range *list {
		if strings.EqualFold(c.Name, name) {
			return c.ID, nil
		}
	}

	client := clients.Client{
		ID:        "cli-" + randid.Generate(8),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := cmd.app.Clients.Save(ctx, client); err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}
	*list = append(*list, client)
	return client.ID, nil
}

func (cmd *OrdersCmd) resolveBrand(_ context.Context, brands *[]catalog.Brand, label string, _ time.Time) (string, bool, error) {
	if label == "" {
		return "", false, nil
	}
	for _, b := range *brands {
		if strings.EqualFold(b.Label, label) {
			return b.ID, false, nil
		}
	}
	// Unknown brands stay free text rather than polluting the catalog.
	return label, true, nil
}

func (cmd *OrdersCmd) resolveModel(ctx context.Context, brandID string, brandCustom bool, label string) (string, bool, error) {
	if label == "" {
		return "", false, nil
	}
	if brandCustom || brandID == "" {
		return label, true, nil
	}

	models, err := cmd.app.Catalog.ListModels(ctx, brandID)
	if err != nil {
		return "", false, fmt.Errorf("list models: %w", err)
	}
	for _, m := range models {
		if strings.EqualFold(m.Label, label) {
			return m.ID, false, nil
		}
	}
	return label, true, nil
}
