// Package cli defines the cobra command tree for flipscout.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flipscout/flipscout/internal/db"
	"github.com/flipscout/flipscout/internal/listing"
	"github.com/flipscout/flipscout/internal/logging"
)

var (
	flagFormat  string
	flagDB      string
	flagVerbose bool
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "flipscout",
		Short:         "Find flip opportunities in MLS CSV exports",
		Long:          "Ingest MLS CSV exports, score each listing against its local market, run deal-economics and ARV calculations, and export the results.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(flagVerbose)
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.config/flipscout/listings.db)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newIngestCmd(),
		newListCmd(),
		newShowCmd(),
		newStatsCmd(),
		newDealCmd(),
		newARVCmd(),
		newEstimateCmd(),
		newExportCmd(),
		newSampleCmd(),
		newClearCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// dbPath resolves the database path: --db flag, FLIPSCOUT_DB env var,
// config file, then the default.
func dbPath() (string, error) {
	if flagDB != "" {
		return flagDB, nil
	}
	if v := os.Getenv("FLIPSCOUT_DB"); v != "" {
		return v, nil
	}
	cfg, err := loadConfig()
	if err == nil && cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return db.DefaultPath()
}

// newListingRepo opens the database and wraps it in a listing repository.
// Callers must closeDB the returned handle.
func newListingRepo() (*listing.Repository, *sql.DB, error) {
	path, err := dbPath()
	if err != nil {
		return nil, nil, err
	}

	database, err := db.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return listing.NewRepository(database), database, nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
