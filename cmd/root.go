/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/takaraplatform/apiparity/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "apiparity",
	Short: "A static consistency checker for frontend API calls and backend routes.",
	Long: `Apiparity cross-checks the HTTP routes a backend declares against the
calls its frontend API client makes, without running either side.
One pass over the source, exit 0 on parity, exit 1 on any discrepancy.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		if logfile != "" {
			f, err := os.OpenFile(logfile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("failed to open logfile: %w", err)
			}
			logger.AddOutput(f)
		}
		return nil
	},
}

var logfile string
var verbose bool

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}
