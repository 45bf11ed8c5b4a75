package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var itemsDeleteID int64

var itemsDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete an item",
	Example: `  minta items delete --id 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := getClient()
		if err != nil {
			return err
		}

		if err := cli.DeleteItem(cmd.Context(), itemsDeleteID); err != nil {
			return fmt.Errorf("deleting item: %w", err)
		}

		log.Info().Msgf("Deleted item %d", itemsDeleteID)
		return nil
	},
}

func init() {
	itemsCmd.AddCommand(itemsDeleteCmd)

	itemsDeleteCmd.Flags().Int64Var(&itemsDeleteID, "id", 0, "ID of the item")
	_ = itemsDeleteCmd.MarkFlagRequired("id")
}
