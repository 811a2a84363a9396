// Package deal computes purchase-renovate-resell economics.
package deal

// Constants are the fixed cost rates threaded into every analysis.
type Constants struct {
	PropertyTaxRate  float64 // annual, fraction of purchase price
	InsuranceRate    float64 // annual, fraction of purchase price
	MonthlyUtilities float64 // flat dollars per month
	AcquisitionRate  float64 // fraction of purchase price
	SellingRate      float64 // fraction of ARV (commission + closing)
}

// DefaultConstants: 1.5%/yr tax, 0.5%/yr insurance, $500/mo utilities,
// 3% acquisition, 8% selling.
var DefaultConstants = Constants{
	PropertyTaxRate:  0.015,
	InsuranceRate:    0.005,
	MonthlyUtilities: 500,
	AcquisitionRate:  0.03,
	SellingRate:      0.08,
}

// Assumptions are the user-edited inputs to an analysis.
type Assumptions struct {
	PurchasePrice       float64 `json:"purchase_price"`
	RenovationBudget    float64 `json:"renovation_budget"`
	EstimatedARV        float64 `json:"estimated_arv"`
	HoldingPeriodMonths int     `json:"holding_period_months"`
	DownPaymentPercent  float64 `json:"down_payment_percent"`
	InterestRate        float64 `json:"interest_rate"`
}

// Analysis is the full cost/profit/ROI breakdown for one set of assumptions.
type Analysis struct {
	Assumptions

	DownPayment         float64 `json:"down_payment"`
	LoanAmount          float64 `json:"loan_amount"`
	AcquisitionCosts    float64 `json:"acquisition_costs"`
	MonthlyHoldingCosts float64 `json:"monthly_holding_costs"`
	TotalHoldingCosts   float64 `json:"total_holding_costs"`
	TotalInvestment     float64 `json:"total_investment"`
	GrossProfit         float64 `json:"gross_profit"`
	SellingCosts        float64 `json:"selling_costs"`
	NetProfit           float64 `json:"net_profit"`
	TotalCashInvested   float64 `json:"total_cash_invested"`
	ROI                 float64 `json:"roi"`
}

// Analyze is a pure function of assumptions and constants: identical inputs
// yield bit-identical outputs. Out-of-range inputs produce out-of-range
// outputs (a losing deal shows a negative profit); nothing is validated.
func Analyze(a Assumptions, c Constants) Analysis {
	downPayment := a.PurchasePrice * (a.DownPaymentPercent / 100)
	loanAmount := a.PurchasePrice - downPayment

	acquisitionCosts := a.PurchasePrice * c.AcquisitionRate

	monthlyTax := a.PurchasePrice * c.PropertyTaxRate / 12
	monthlyInsurance := a.PurchasePrice * c.InsuranceRate / 12
	monthlyInterest := loanAmount * (a.InterestRate / 100) / 12
	monthlyHolding := monthlyTax + monthlyInsurance + monthlyInterest + c.MonthlyUtilities

	totalHolding := monthlyHolding * float64(a.HoldingPeriodMonths)
	totalInvestment := a.PurchasePrice + a.RenovationBudget + totalHolding + acquisitionCosts

	sellingCosts := a.EstimatedARV * c.SellingRate
	grossProfit := a.EstimatedARV - totalInvestment
	netProfit := grossProfit - sellingCosts

	totalCash := downPayment + a.RenovationBudget + totalHolding

	// Zero or negative cash invested yields ROI 0 exactly, avoiding a
	// division by zero or a sign flip from a negative divisor.
	roi := 0.0
	if totalCash > 0 {
		roi = netProfit / totalCash * 100
	}

	return Analysis{
		Assumptions:         a,
		DownPayment:         downPayment,
		LoanAmount:          loanAmount,
		AcquisitionCosts:    acquisitionCosts,
		MonthlyHoldingCosts: monthlyHolding,
		TotalHoldingCosts:   totalHolding,
		TotalInvestment:     totalInvestment,
		GrossProfit:         grossProfit,
		SellingCosts:        sellingCosts,
		NetProfit:           netProfit,
		TotalCashInvested:   totalCash,
		ROI:                 roi,
	}
}

// QuickROI runs an analysis with stock financing assumptions
// (20% down, 8% interest) and returns only the ROI.
func QuickROI(purchasePrice, renovationBudget, estimatedARV float64, holdingMonths int) float64 {
	return quick(purchasePrice, renovationBudget, estimatedARV, holdingMonths).ROI
}

// QuickProfit runs an analysis with stock financing assumptions and returns
// only the net profit.
func QuickProfit(purchasePrice, renovationBudget, estimatedARV float64, holdingMonths int) float64 {
	return quick(purchasePrice, renovationBudget, estimatedARV, holdingMonths).NetProfit
}

func quick(purchasePrice, renovationBudget, estimatedARV float64, holdingMonths int) Analysis {
	return Analyze(Assumptions{
		PurchasePrice:       purchasePrice,
		RenovationBudget:    renovationBudget,
		EstimatedARV:        estimatedARV,
		HoldingPeriodMonths: holdingMonths,
		DownPaymentPercent:  20,
		InterestRate:        8,
	}, DefaultConstants)
}
