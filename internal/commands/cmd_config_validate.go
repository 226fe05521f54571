package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/fixdesk/internal/core/config"
)

type ConfigCmd struct {
	flags *Flags
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "fixdesk config validate",
				Description: "Loads and validates the configuration file, reporting every invalid field.",
				Action:      cmd.runValidate,
			},
			{
				Name:      "show",
				Usage:     "Show the effective configuration",
				UsageText: "fixdesk config show",
				Action:    cmd.runShow,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runValidate(_ context.Context, c *cli.Command) error {
	// Re-load from disk so this validates the file, not the already-merged
	// in-memory config.
	if _, err := config.Load(cmd.flags.ConfigPath, cmd.flags.DataDir); err != nil {
		fmt.Fprintf(c.Root().Writer, "Configuration is invalid:\n  %v\n", err)
		return cli.Exit("", 1)
	}

	fmt.Fprintln(c.Root().Writer, "Configuration is valid")
	return nil
}

func (cmd *ConfigCmd) runShow(_ context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	out := c.Root().Writer

	fmt.Fprintf(out, "config:    %s\n", cmd.flags.ConfigPath)
	fmt.Fprintf(out, "data dir:  %s\n", cfg.DataDir)
	fmt.Fprintf(out, "shop:      %s\n", cfg.Shop.Name)
	fmt.Fprintf(out, "operator:  %s\n", cfg.Shop.Operator)
	fmt.Fprintf(out, "theme:     %s\n", cfg.TUI.Theme)
	fmt.Fprintf(out, "checklist: required=%v\n", cfg.Orders.RequireChecklistEnabled())
	return nil
}
