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
	"gopkg.in/yaml.v3"
)

var (
	force bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter apiparity config",
	Long:  `Creates apiparity.yaml in the current directory with the default paths, matching policy, and feature expectations.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger.Debug("init called")
		if _, err := os.Stat(config.FileName); err == nil {
			if !force {
				fmt.Printf("%s already exists. Use --force to overwrite.\n", config.FileName)
				return
			}
			logger.Debug("%s already exists. Overwriting.", config.FileName)
		}
		data, err := yaml.Marshal(config.Default())
		if err != nil {
			fmt.Printf("Failed to encode default config: %v\n", err)
			return
		}
		if err := os.WriteFile(config.FileName, data, 0o644); err != nil {
			fmt.Printf("Failed to write %s: %v\n", config.FileName, err)
			return
		}
		fmt.Printf("Successfully wrote %s\n", config.FileName)

		fmt.Printf("Next Steps:\n")
		fmt.Printf("  - edit the paths and feature routes to match your project\n")
		fmt.Printf("  - apiparity verify\n")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite existing files")
}
