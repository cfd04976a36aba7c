/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/takaraplatform/apiparity/core/config"
	"github.com/takaraplatform/apiparity/core/logger"
	"github.com/takaraplatform/apiparity/core/report"
	"github.com/takaraplatform/apiparity/core/verify"
)

var (
	backendDir   string
	frontendFile string
	matchPolicy  string
	format       string
	plain        bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check frontend API calls against backend routes",
	Long: `Scans the backend route files and the frontend API client, then reports
frontend calls with no backend implementation and expected feature
routes missing on either side. Exits 1 when anything is out of sync.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("verify called")
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyOverrides(cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		checker := verify.New(cfg)
		res, err := checker.Run()
		if err != nil {
			return err
		}

		style := report.DefaultStyle()
		if plain {
			style = report.PlainStyle()
		}
		renderer, err := report.ForFormat(format, style)
		if err != nil {
			return err
		}
		if err := renderer.Render(os.Stdout, res); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}

		if !res.Passed {
			os.Exit(1)
		}
		return nil
	},
}

// applyOverrides layers the verify flags over the loaded config.
func applyOverrides(cfg *config.Config) {
	if backendDir != "" {
		cfg.Backend.RoutesDir = backendDir
	}
	if frontendFile != "" {
		cfg.Frontend.ClientFile = frontendFile
	}
	if matchPolicy != "" {
		cfg.Match = matchPolicy
	}
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&backendDir, "backend", "", "Backend routes directory (overrides config)")
	verifyCmd.Flags().StringVar(&frontendFile, "frontend", "", "Frontend API client file (overrides config)")
	verifyCmd.Flags().StringVar(&matchPolicy, "match", "", "Route matching policy, exact or fuzzy (overrides config)")
	verifyCmd.Flags().StringVar(&format, "format", "text", "Report format, text or json")
	verifyCmd.Flags().BoolVar(&plain, "plain", false, "Disable colored output")
}
