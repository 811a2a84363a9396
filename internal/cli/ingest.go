package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/flipscout/flipscout/internal/ingest"
	"github.com/flipscout/flipscout/internal/score"
)

func newIngestCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "ingest <file.csv>",
		Short: "Ingest an MLS CSV export",
		Long:  "Parse an MLS CSV export, normalize and score every listing against its zip-code market, and store the batch.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(args[0], dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and score without storing")

	return cmd
}

func runIngest(path string, dryRun bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	result := ingest.Parse(string(data))
	score.EnrichAll(result.Listings)

	if !dryRun && len(result.Listings) > 0 {
		repo, database, err := newListingRepo()
		if err != nil {
			return err
		}
		defer closeDB(database)

		batchID := uuid.NewString()
		if err := repo.InsertBatch(batchID, result.Listings); err != nil {
			return fmt.Errorf("storing batch: %w", err)
		}
	}

	if isJSON() {
		return printJSON(result)
	}

	fmt.Printf("Accepted %d listings", len(result.Listings))
	if dryRun {
		fmt.Print(" (dry run, not stored)")
	}
	fmt.Println()

	if high := score.HighPotential(result.Listings, 7); len(high) > 0 {
		fmt.Printf("High potential (score ≥ 7): %d\n", len(high))
	}

	if len(result.Errors) > 0 {
		fmt.Printf("\n%d problems:\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	return nil
}
