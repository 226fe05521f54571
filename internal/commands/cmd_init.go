package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/fixdesk/internal/core/config"
	"github.com/colonyops/fixdesk/internal/core/styles"
)

type InitCmd struct {
	flags *Flags
	yes   bool
	force bool
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Initialize fixdesk configuration with an interactive wizard",
		UsageText: "fixdesk init [options]",
		Description: `Sets up fixdesk for first-time use with an interactive wizard.

The wizard asks for the shop name, the operator name stamped onto new
orders, the color theme, and whether new orders require a completed
inspection checklist, then writes the config file.

Use --yes to accept all defaults without prompts.
Use --force to overwrite existing configuration.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(_ context.Context, c *cli.Command) error {
	configPath := cmd.flags.ConfigPath

	if _, err := os.Stat(configPath); err == nil && !cmd.force {
		if cmd.yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", configPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(configPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(c.Root().Writer, "Init cancelled")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	requireChecklist := true

	if !cmd.yes {
		themeOpts := make([]huh.Option[string], 0, len(styles.ThemeNames()))
		for _, name := range styles.ThemeNames() {
			themeOpts = append(themeOpts, huh.NewOption(name, name))
		}

		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Shop name").
				Description("Shown in the TUI header").
				Value(&cfg.Shop.Name),
			huh.NewInput().
				Title("Operator name").
				Description("Stamped onto new service orders").
				Value(&cfg.Shop.Operator),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.TUI.Theme),
			huh.NewConfirm().
				Title("Require inspection checklist?").
				Description("New orders must carry a completed device inspection").
				Value(&requireChecklist),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	cfg.Orders.RequireChecklist = &requireChecklist

	if err := cmd.writeConfig(&cfg, configPath); err != nil {
		return err
	}

	fmt.Fprintf(c.Root().Writer, "Created config: %s\n", configPath)
	fmt.Fprintln(c.Root().Writer, "Run 'fixdesk' to open the order manager")
	return nil
}

func (cmd *InitCmd) writeConfig(cfg *config.Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	// Keep the previous config around rather than silently clobbering it.
	if _, err := os.Stat(path); err == nil {
		backup := fmt.Sprintf("%s.%s.bak", path, time.Now().Format("20060102-150405"))
		if err := os.Rename(path, backup); err != nil {
			return fmt.Errorf("backup config: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
