package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/takaraplatform/apiparity/core/config"
	"github.com/takaraplatform/apiparity/core/logger"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the scan inputs exist",
	Long:  "Resolves the config and reports whether the backend routes directory and frontend client file are readable, without running the comparison.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("doctor called")
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if _, err := os.Stat(config.FileName); err == nil {
			fmt.Printf("✅ Config: %s\n", config.FileName)
		} else {
			fmt.Printf("✅ Config: built-in defaults (no %s)\n", config.FileName)
		}

		healthy := true

		entries, err := os.ReadDir(cfg.Backend.RoutesDir)
		if err != nil {
			fmt.Printf("❌ Backend routes dir not readable: %s\n", cfg.Backend.RoutesDir)
			healthy = false
		} else {
			count := 0
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), cfg.Backend.RouteSuffix) {
					count++
				}
			}
			fmt.Printf("✅ Backend routes dir: %s (%d %s files)\n", cfg.Backend.RoutesDir, count, cfg.Backend.RouteSuffix)
			if count == 0 {
				fmt.Printf("   No route files found, verify would see an empty backend\n")
			}
		}

		if info, err := os.Stat(cfg.Frontend.ClientFile); err != nil || info.IsDir() {
			fmt.Printf("❌ Frontend client file not readable: %s\n", cfg.Frontend.ClientFile)
			healthy = false
		} else {
			fmt.Printf("✅ Frontend client file: %s\n", cfg.Frontend.ClientFile)
		}

		if !healthy {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
