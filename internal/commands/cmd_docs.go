package commands

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/fixdesk/internal/core/styles"
)

//go:embed docs/manual.md
var manualMarkdown string

type DocsCmd struct {
	flags *Flags

	// flags
	raw bool
}

func NewDocsCmd(flags *Flags) *DocsCmd {
	return &DocsCmd{flags: flags}
}

func (cmd *DocsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "docs",
		Usage:     "Show the fixdesk manual",
		UsageText: "fixdesk docs [--raw]",
		Description: `Renders the built-in manual to the terminal.

Use --raw to print the markdown source, e.g. for piping to a pager.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print raw markdown without terminal styling",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DocsCmd) run(_ context.Context, c *cli.Command) error {
	out := c.Root().Writer

	if cmd.raw {
		_, err := fmt.Fprintln(out, manualMarkdown)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	rendered, err := r.Render(manualMarkdown)
	if err != nil {
		return fmt.Errorf("render manual: %w", err)
	}

	_, err = fmt.Fprint(out, rendered)
	return err
}
