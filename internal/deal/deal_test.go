package deal

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestAnalyze(t *testing.T) {
	a := Assumptions{
		PurchasePrice:       800_000,
		RenovationBudget:    700_000,
		EstimatedARV:        1_800_000,
		HoldingPeriodMonths: 12,
		DownPaymentPercent:  20,
		InterestRate:        8,
	}

	got := Analyze(a, DefaultConstants)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"downPayment", got.DownPayment, 160_000},
		{"loanAmount", got.LoanAmount, 640_000},
		{"acquisitionCosts", got.AcquisitionCosts, 24_000},
		// 1000 tax + 333.33 insurance + 4266.67 interest + 500 utilities
		{"monthlyHoldingCosts", got.MonthlyHoldingCosts, 6_100},
		{"totalHoldingCosts", got.TotalHoldingCosts, 73_200},
		{"totalInvestment", got.TotalInvestment, 1_597_200},
		{"sellingCosts", got.SellingCosts, 144_000},
		{"grossProfit", got.GrossProfit, 202_800},
		{"netProfit", got.NetProfit, 58_800},
		{"totalCashInvested", got.TotalCashInvested, 933_200},
		{"roi", got.ROI, 58_800.0 / 933_200.0 * 100},
	}

	for _, c := range checks {
		if !almostEqual(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := Assumptions{
		PurchasePrice:       523_417,
		RenovationBudget:    87_250,
		EstimatedARV:        799_999,
		HoldingPeriodMonths: 7,
		DownPaymentPercent:  12.5,
		InterestRate:        7.25,
	}

	first := Analyze(a, DefaultConstants)
	second := Analyze(a, DefaultConstants)

	if first != second {
		t.Errorf("identical inputs produced different outputs:\n%+v\n%+v", first, second)
	}
}

func TestAnalyzeZeroCashInvested(t *testing.T) {
	// 100% financed with no renovation and no holding: ROI is 0 exactly,
	// everything else is still computed.
	a := Assumptions{
		PurchasePrice:       500_000,
		EstimatedARV:        600_000,
		HoldingPeriodMonths: 0,
		DownPaymentPercent:  0,
		InterestRate:        8,
	}

	got := Analyze(a, DefaultConstants)

	if got.ROI != 0 {
		t.Errorf("roi = %v, want exactly 0", got.ROI)
	}
	if got.TotalCashInvested != 0 {
		t.Errorf("totalCashInvested = %v, want 0", got.TotalCashInvested)
	}
	if !almostEqual(got.AcquisitionCosts, 15_000) {
		t.Errorf("acquisitionCosts = %v, want 15000", got.AcquisitionCosts)
	}
}

func TestAnalyzeLosingDeal(t *testing.T) {
	a := Assumptions{
		PurchasePrice:       1_000_000,
		RenovationBudget:    500_000,
		EstimatedARV:        900_000,
		HoldingPeriodMonths: 12,
		DownPaymentPercent:  20,
		InterestRate:        8,
	}

	got := Analyze(a, DefaultConstants)

	if got.NetProfit >= 0 {
		t.Errorf("netProfit = %v, want negative for a losing deal", got.NetProfit)
	}
	if got.ROI >= 0 {
		t.Errorf("roi = %v, want negative for a losing deal", got.ROI)
	}
}

func TestQuickHelpers(t *testing.T) {
	want := Analyze(Assumptions{
		PurchasePrice:       800_000,
		RenovationBudget:    100_000,
		EstimatedARV:        1_100_000,
		HoldingPeriodMonths: 12,
		DownPaymentPercent:  20,
		InterestRate:        8,
	}, DefaultConstants)

	if got := QuickROI(800_000, 100_000, 1_100_000, 12); !almostEqual(got, want.ROI) {
		t.Errorf("QuickROI = %v, want %v", got, want.ROI)
	}
	if got := QuickProfit(800_000, 100_000, 1_100_000, 12); !almostEqual(got, want.NetProfit) {
		t.Errorf("QuickProfit = %v, want %v", got, want.NetProfit)
	}
}
