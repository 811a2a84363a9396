package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flipscout/flipscout/internal/deal"
)

func newEstimateCmd() *cobra.Command {
	var a deal.Assumptions

	cmd := &cobra.Command{
		Use:   "estimate <id>",
		Short: "Run a deal analysis for a stored listing",
		Long:  "Run a deal analysis for a stored listing using its price as the purchase price, and persist the resulting profit and ROI estimates onto it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyFinancingDefaults(cmd, &a)
			return runEstimate(args[0], a)
		},
	}

	cmd.Flags().Float64Var(&a.RenovationBudget, "renovation", 0, "renovation budget")
	cmd.Flags().Float64Var(&a.EstimatedARV, "arv", 0, "estimated after-repair value")
	addFinancingFlags(cmd, &a)

	return cmd
}

func runEstimate(id string, a deal.Assumptions) error {
	repo, database, err := newListingRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	l, err := repo.GetByID(id)
	if err != nil {
		return err
	}

	a.PurchasePrice = l.Price
	analysis := deal.Analyze(a, deal.DefaultConstants)

	if err := repo.UpdateEstimates(id, analysis.NetProfit, analysis.ROI); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(analysis)
	}

	fmt.Printf("Saved estimates for %s (%s)\n\n", l.ID, l.Address)
	printDealAnalysis(analysis)
	return nil
}
