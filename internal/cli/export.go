package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flipscout/flipscout/internal/listing"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored listings as a report CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func runExport(output string) error {
	repo, database, err := newListingRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	listings, err := repo.List(listing.ListOptions{})
	if err != nil {
		return err
	}

	if output == "" {
		return listing.ExportCSV(os.Stdout, listings)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}

	if err := listing.ExportCSV(f, listings); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return fmt.Errorf("%w (also failed to close: %v)", err, closeErr)
		}
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", output, err)
	}

	fmt.Printf("Exported %d listings to %s\n", len(listings), output)
	return nil
}
