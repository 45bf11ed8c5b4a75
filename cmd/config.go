package cmd

import (
	"github.com/spf13/cobra"
)

// configCmd groups configuration-related subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the Minta configuration",
}

func init() {
	rootCmd.AddCommand(configCmd)
}
