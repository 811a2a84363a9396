package cli

import (
	"github.com/spf13/cobra"

	"github.com/flipscout/flipscout/internal/deal"
)

func newDealCmd() *cobra.Command {
	var a deal.Assumptions

	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Run a deal analysis",
		Long:  "Compute the full cost/profit/ROI breakdown for a purchase-renovate-resell deal. Financing flags default to the saved config values.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyFinancingDefaults(cmd, &a)

			analysis := deal.Analyze(a, deal.DefaultConstants)

			if isJSON() {
				return printJSON(analysis)
			}

			printDealAnalysis(analysis)
			return nil
		},
	}

	cmd.Flags().Float64Var(&a.PurchasePrice, "price", 0, "purchase price")
	cmd.Flags().Float64Var(&a.RenovationBudget, "renovation", 0, "renovation budget")
	cmd.Flags().Float64Var(&a.EstimatedARV, "arv", 0, "estimated after-repair value")
	addFinancingFlags(cmd, &a)

	return cmd
}

// addFinancingFlags registers the shared financing flags on a command.
func addFinancingFlags(cmd *cobra.Command, a *deal.Assumptions) {
	cmd.Flags().IntVar(&a.HoldingPeriodMonths, "months", 0, "holding period in months (default from config)")
	cmd.Flags().Float64Var(&a.DownPaymentPercent, "down", 0, "down payment percent (default from config)")
	cmd.Flags().Float64Var(&a.InterestRate, "rate", 0, "annual interest rate percent (default from config)")
}

// applyFinancingDefaults fills unset financing flags from the saved config.
func applyFinancingDefaults(cmd *cobra.Command, a *deal.Assumptions) {
	cfg, err := loadConfig()
	if err != nil {
		cfg = defaultConfig
	}

	if !cmd.Flags().Changed("months") {
		a.HoldingPeriodMonths = cfg.HoldingMonths
	}
	if !cmd.Flags().Changed("down") {
		a.DownPaymentPercent = cfg.DownPaymentPercent
	}
	if !cmd.Flags().Changed("rate") {
		a.InterestRate = cfg.InterestRate
	}
}
