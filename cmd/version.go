/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/takaraplatform/apiparity/core/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of apiparity",
	Long:  `Displays the version of apiparity.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("apiparity %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
