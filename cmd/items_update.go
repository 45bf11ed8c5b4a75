package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var itemsUpdateID int64

var itemsUpdateCmd = &cobra.Command{
	Use:     "update",
	Short:   "Update an existing item",
	Example: `  minta items update --id 1 --name widget --description "an updated widget"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := getClient()
		if err != nil {
			return err
		}

		item, err := cli.UpdateItem(cmd.Context(), itemsUpdateID, itemName, itemDescription)
		if err != nil {
			return fmt.Errorf("updating item: %w", err)
		}

		log.Info().Msgf("Updated item %s (id %d)", bold(item.Name), item.ID)
		return nil
	},
}

func init() {
	itemsCmd.AddCommand(itemsUpdateCmd)

	itemsUpdateCmd.Flags().Int64Var(&itemsUpdateID, "id", 0, "ID of the item")
	bindItemFlags(itemsUpdateCmd.Flags())

	_ = itemsUpdateCmd.MarkFlagRequired("id")
	_ = itemsUpdateCmd.MarkFlagRequired("name")
}
