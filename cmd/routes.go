package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/takaraplatform/apiparity/core/config"
	"github.com/takaraplatform/apiparity/core/logger"
	"github.com/takaraplatform/apiparity/core/report"
	"github.com/takaraplatform/apiparity/core/scanner"
)

var routesPlain bool

// routesCmd prints the backend inventory without running any checks.
var routesCmd = &cobra.Command{
	Use:   "routes [dir]",
	Short: "Print the backend route inventory",
	Long: `Scans the backend route files and prints the grouped route inventory.
With no argument the directory comes from the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("routes called")
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		dir := cfg.Backend.RoutesDir
		if len(args) == 1 {
			dir = args[0]
		}

		groups, err := scanner.New().Routes(dir, cfg.Backend.RouteSuffix)
		if err != nil {
			return err
		}

		style := report.DefaultStyle()
		if routesPlain {
			style = report.PlainStyle()
		}
		total := 0
		for _, g := range groups {
			total += len(g.Routes)
		}
		fmt.Printf("%s Backend routes found: %d\n", style.Good.Sprint(style.Check), total)
		return report.NewText(style).RenderInventory(os.Stdout, groups)
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)

	routesCmd.Flags().BoolVar(&routesPlain, "plain", false, "Disable colored output")
}
