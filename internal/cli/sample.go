package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flipscout/flipscout/internal/ingest"
)

func newSampleCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a demo MLS CSV export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			csv := ingest.SampleCSV()

			if output == "" {
				fmt.Print(csv)
				return nil
			}

			if err := os.WriteFile(output, []byte(csv), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Printf("Wrote sample CSV to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
