package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roksva123/go-breeze-dashboard/internal/api/handlers"
)

// App holds what the commands need from main.
type App struct {
	LoadConfig handlers.ConfigLoader
	NewAPI     handlers.APIFactory

	Out io.Writer

	// IsTerminal reports whether Out is an interactive terminal.
	IsTerminal func() bool
}

func (a *App) out() io.Writer {
	if a.Out == nil {
		return os.Stdout
	}
	return a.Out
}

func (a *App) apiFactory() handlers.APIFactory {
	if a.NewAPI == nil {
		return handlers.NewBreezeAPI
	}
	return a.NewAPI
}

// NewRootCmd creates the top-level "breezedash" command.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "breezedash",
		Short:         "Breeze time-tracking dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(app),
		newSnapshotCmd(app),
	)

	return root
}
