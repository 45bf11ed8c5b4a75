package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var itemsListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List stored items",
	Example: `  minta items list --server http://localhost:8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := getClient()
		if err != nil {
			return err
		}

		log.Debug().Msg("Fetching items...")
		items, err := cli.ListItems(cmd.Context())
		if err != nil {
			return err
		}

		if len(items) == 0 {
			log.Info().Msg("No items found")
			return nil
		}
		log.Debug().Msgf("Retrieved %d item(s)", len(items))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Name", "Description"})

		for _, item := range items {
			t.AppendRow(table.Row{
				item.ID,
				bold(item.Name),
				faint(truncate(item.Description, 64)),
			})
		}

		s := table.StyleRounded
		s.Format.Header = text.FormatDefault
		t.SetStyle(s)
		t.Render()
		return nil
	},
}

func init() {
	itemsCmd.AddCommand(itemsListCmd)
}
