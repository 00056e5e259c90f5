package service

import (
	"math"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// AffordabilityCalculator – domain service for EMI affordability checks
// ---------------------------------------------------------------------------

// AffordabilityInputs are the monthly rupee figures the calculator works on.
// Callers coerce absent or non-numeric fields to zero before invoking; the
// calculator itself never fails.
type AffordabilityInputs struct {
	MonthlyIncome   decimal.Decimal
	ExistingEMIs    decimal.Decimal
	MonthlyExpenses decimal.Decimal
	RequestedEMI    decimal.Decimal
}

// AffordabilityResult is the affordability verdict for a requested EMI.
type AffordabilityResult struct {
	RecommendedMaxEMI         decimal.Decimal
	TotalEMIAfterLoan         decimal.Decimal
	DisposableIncome          decimal.Decimal
	DisposableIncomeAfterLoan decimal.Decimal
	Affordable                bool
	Warning                   string
}

// AffordabilityCalculator derives a recommended maximum EMI and a
// disposable-income verdict. The recommended ceiling is 40% of monthly
// income; the comfort floor for post-loan disposable income is ₹10,000.
type AffordabilityCalculator struct {
	minDisposable decimal.Decimal
}

// NewAffordabilityCalculator returns a calculator with the standard
// disposable-income floor.
func NewAffordabilityCalculator() *AffordabilityCalculator {
	return &AffordabilityCalculator{
		minDisposable: decimal.NewFromInt(10_000),
	}
}

var maxEMIShare = decimal.NewFromFloat(0.4)

const (
	warnExceedsMax    = "total EMI after loan exceeds the recommended 40% of monthly income"
	warnLowDisposable = "disposable income after the new EMI falls below the comfort threshold"
)

// Evaluate computes the affordability verdict. It always returns a result:
// zero inputs simply produce a zero-valued, non-affordable verdict.
func (c *AffordabilityCalculator) Evaluate(in AffordabilityInputs) AffordabilityResult {
	recommendedMax := in.MonthlyIncome.Mul(maxEMIShare).Round(0)
	totalAfterLoan := in.ExistingEMIs.Add(in.RequestedEMI)
	disposable := in.MonthlyIncome.Sub(in.ExistingEMIs.Add(in.MonthlyExpenses))
	disposableAfterLoan := in.MonthlyIncome.Sub(totalAfterLoan.Add(in.MonthlyExpenses))

	withinMax := totalAfterLoan.LessThanOrEqual(recommendedMax)
	enoughDisposable := disposableAfterLoan.GreaterThanOrEqual(c.minDisposable)

	// The exceeds-max warning takes precedence over low disposable income.
	warning := ""
	switch {
	case !withinMax:
		warning = warnExceedsMax
	case !enoughDisposable:
		warning = warnLowDisposable
	}

	return AffordabilityResult{
		RecommendedMaxEMI:         recommendedMax,
		TotalEMIAfterLoan:         totalAfterLoan,
		DisposableIncome:          disposable,
		DisposableIncomeAfterLoan: disposableAfterLoan,
		Affordable:                withinMax && enoughDisposable,
		Warning:                   warning,
	}
}

// MonthlyInstallment computes the fixed monthly payment for a reducing-balance
// loan: P * r * (1+r)^n / ((1+r)^n - 1), where r is the monthly rate.
//
// The power term is computed in float64 and the result converted back to
// decimal for monetary arithmetic, rounded to the nearest rupee. A zero rate
// is an even split; non-positive principal or tenure yields zero.
func MonthlyInstallment(principal decimal.Decimal, annualRatePct decimal.Decimal, tenureMonths int) decimal.Decimal {
	if tenureMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	monthlyRate := annualRatePct.InexactFloat64() / 100.0 / 12.0
	if monthlyRate == 0 {
		return principal.Div(decimal.NewFromInt(int64(tenureMonths))).Round(0)
	}

	factor := math.Pow(1+monthlyRate, float64(tenureMonths))
	payment := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(payment).Round(0)
}
