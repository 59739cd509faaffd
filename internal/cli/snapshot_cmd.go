package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roksva123/go-breeze-dashboard/internal/logger"
	"github.com/roksva123/go-breeze-dashboard/internal/model"
	"github.com/roksva123/go-breeze-dashboard/internal/service"
)

var errNoAPIKey = errors.New("API key not configured. Please set BREEZE_API_KEY in the environment or config file")

func newSnapshotCmd(app *App) *cobra.Command {
	var (
		chart  bool
		output string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Build the dashboard once and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if !cfg.HasAPIKey() {
				return errNoAPIKey
			}

			svc := service.NewDashboardService(app.apiFactory()(cfg), cfg, logger.Logger)
			res := svc.Build(cmd.Context())

			w := app.out()
			toTerminal := app.IsTerminal != nil && app.IsTerminal()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				w = f
				toTerminal = false
			}

			if err := writeSnapshot(w, res, pretty || toTerminal); err != nil {
				return err
			}
			if chart {
				_, err := io.WriteString(app.out(), RenderEarningsCharts(res))
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&chart, "chart", false, "Also draw weekly and monthly earnings charts")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the JSON to a file instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON even when not on a terminal")

	return cmd
}

func writeSnapshot(w io.Writer, res *model.DashboardResult, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}
