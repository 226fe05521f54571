package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
)

type NotificationsCmd struct {
	flags *Flags
	app   *App
}

// NewNotificationsCmd creates a new notifications command
func NewNotificationsCmd(flags *Flags, app *App) *NotificationsCmd {
	return &NotificationsCmd{flags: flags, app: app}
}

// Register adds the notifications command to the application
func (cmd *NotificationsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "notifications",
		Usage: "Inspect the notification history",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List past notifications, newest first",
				UsageText: "fixdesk notifications ls",
				Action:    cmd.runLs,
			},
			{
				Name:      "clear",
				Usage:     "Delete the notification history",
				UsageText: "fixdesk notifications clear",
				Action:    cmd.runClear,
			},
		},
	})

	return app
}

func (cmd *NotificationsCmd) runLs(_ context.Context, c *cli.Command) error {
	history, err := cmd.app.Bus.History()
	if err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}

	if len(history) == 0 {
		fmt.Fprintf(os.Stderr, "No notifications\n")
		return nil
	}

	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "WHEN\tLEVEL\tMESSAGE")
	for _, n := range history {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n",
			n.CreatedAt.Format("2006-01-02 15:04"), n.Level, n.Message)
	}

	return w.Flush()
}

func (cmd *NotificationsCmd) runClear(_ context.Context, c *cli.Command) error {
	if err := cmd.app.Bus.Clear(); err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}

	fmt.Fprintln(c.Root().Writer, "Notification history cleared")
	return nil
}
