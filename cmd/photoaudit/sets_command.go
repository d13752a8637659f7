package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"photoaudit/internal/catalog"
)

func newSetsCommand(cmdCtx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sets",
		Short: "List the published Flickr sets found in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.openStore(cmd.Context(), func(store *catalog.Store) error {
				sets, err := store.Sets(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if asJSON {
					return writeJSON(cmd, sets)
				}
				if len(sets) == 0 {
					fmt.Fprintln(out, "No published Flickr sets found in the catalog.")
					return nil
				}
				rows := make([][]string, 0, len(sets))
				total := 0
				for _, set := range sets {
					rows = append(rows, []string{set.ID, strconv.Itoa(set.PhotoCount)})
					total += set.PhotoCount
				}
				fmt.Fprintln(out, renderTable([]string{"Set", "Photos"}, rows, 2))
				fmt.Fprintf(out, "%d sets, %d published photos\n", len(sets), total)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit machine-readable JSON")
	return cmd
}
