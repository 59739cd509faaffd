package cli

import (
	"github.com/spf13/cobra"

	"github.com/roksva123/go-breeze-dashboard/internal/api"
	"github.com/roksva123/go-breeze-dashboard/internal/api/handlers"
	"github.com/roksva123/go-breeze-dashboard/internal/logger"
)

func newServeCmd(app *App) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if port == "" {
				port = cfg.Port
			}

			dashboard := handlers.NewDashboardHandler(app.LoadConfig)
			dashboard.NewAPI = app.apiFactory()
			r := api.NewRouter(app.LoadConfig, dashboard)

			logger.Info("server running", "port", port)
			return r.Run(":" + port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen port (defaults to PORT)")

	return cmd
}
