package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var itemsCreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create a new item",
	Example: `  minta items create --name widget --description "a widget"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := getClient()
		if err != nil {
			return err
		}

		item, err := cli.CreateItem(cmd.Context(), itemName, itemDescription)
		if err != nil {
			return fmt.Errorf("creating item: %w", err)
		}

		log.Info().Msgf("Created item %s (id %d)", bold(item.Name), item.ID)
		return nil
	},
}

func init() {
	itemsCmd.AddCommand(itemsCreateCmd)

	bindItemFlags(itemsCreateCmd.Flags())
	_ = itemsCreateCmd.MarkFlagRequired("name")
}
