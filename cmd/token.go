package cmd

import (
	"github.com/spf13/cobra"
)

// tokenCmd groups token-related subcommands.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Work with signed tokens",
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
