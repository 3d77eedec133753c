package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func itemsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List the collectable items catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := opts.client.FetchCatalogItems(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tIMAGE")
			for _, item := range items {
				fmt.Fprintf(w, "%d\t%s\t%s\n", item.ID, item.Label, item.IconRef)
			}
			return w.Flush()
		},
	}
}
