package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, database, err := newListingRepo()
			if err != nil {
				return err
			}
			defer closeDB(database)

			if err := repo.Clear(); err != nil {
				return err
			}

			fmt.Println("All listings removed.")
			return nil
		},
	}
}
