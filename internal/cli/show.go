package cli

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one listing in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, database, err := newListingRepo()
			if err != nil {
				return err
			}
			defer closeDB(database)

			l, err := repo.GetByID(args[0])
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(l)
			}

			printListingDetail(l)
			return nil
		},
	}
}
