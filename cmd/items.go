package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// itemsCmd groups item-related subcommands.
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Work with stored items",
}

// flags shared by the create and update commands
var (
	itemName        string
	itemDescription string
)

func bindItemFlags(flags *pflag.FlagSet) {
	flags.StringVar(&itemName, "name", "", "Name of the item")
	flags.StringVar(&itemDescription, "description", "", "Description of the item")
}

func init() {
	rootCmd.AddCommand(itemsCmd)
}
