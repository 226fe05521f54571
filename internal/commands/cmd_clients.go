package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/fixdesk/pkg/iojson"
)

type ClientsCmd struct {
	flags *Flags
	app   *App

	// flags
	jsonOutput bool
}

// NewClientsCmd creates a new clients command
func NewClientsCmd(flags *Flags, app *App) *ClientsCmd {
	return &ClientsCmd{flags: flags, app: app}
}

// Register adds the clients command to the application
func (cmd *ClientsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "clients",
		Usage: "Inspect the client register",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List clients",
				UsageText: "fixdesk clients ls [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON lines",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runLs,
			},
		},
	})

	return app
}

// clientInfo is the JSON output format for fixdesk clients ls --json.
type clientInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

func (cmd *ClientsCmd) runLs(ctx context.Context, c *cli.Command) error {
	clientList, err := cmd.app.Clients.List(ctx)
	if err != nil {
		return fmt.Errorf("list clients: %w", err)
	}

	if len(clientList) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No clients found\n")
		}
		return nil
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, cl := range clientList {
			info := clientInfo{ID: cl.ID, Name: cl.Name, Phone: cl.Phone, Email: cl.Email}
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode client: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tPHONE\tEMAIL")
	for _, cl := range clientList {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", cl.Name, cl.Phone, cl.Email)
	}

	return w.Flush()
}
