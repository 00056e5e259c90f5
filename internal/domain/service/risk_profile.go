package service

import (
	"github.com/shopspring/decimal"

	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RiskProfiler – domain service for prescreening risk assessment
// ---------------------------------------------------------------------------

// RiskInputs carries everything the risk profiler scores. Identity validity
// flags come from the external verification collaborator; amounts are
// monthly rupee figures.
type RiskInputs struct {
	PANValid      bool
	AadhaarValid  bool
	CreditScore   int
	MonthlyIncome decimal.Decimal
	ExistingEMIs  decimal.Decimal
	Bank          valueobject.BankSignal
	Employment    valueobject.EmploymentType
}

// RiskProfileResult is the outcome of risk profiling.
type RiskProfileResult struct {
	Score     int
	Category  valueobject.RiskCategory
	Breakdown valueobject.ScoreBreakdown
}

// RiskProfiler computes an additive 0-100 risk score across ten weighted
// bands. The category maxima sum to exactly 100, so no clamping is applied.
type RiskProfiler struct{}

// NewRiskProfiler returns a new profiler instance.
func NewRiskProfiler() *RiskProfiler {
	return &RiskProfiler{}
}

var (
	riskIncomeHigh = decimal.NewFromInt(100_000)
	riskIncomeMid  = decimal.NewFromInt(50_000)
	riskIncomeLow  = decimal.NewFromInt(25_000)

	riskBalanceHigh = decimal.NewFromInt(50_000)
	riskBalanceMid  = decimal.NewFromInt(20_000)

	emiRatioLow  = decimal.NewFromFloat(0.2)
	emiRatioHigh = decimal.NewFromFloat(0.4)
)

// Score evaluates the inputs and returns the score, category and a named
// breakdown of each band's contribution.
//
// Category mapping: score >= 55 -> Low risk, >= 35 -> Medium, else High.
func (p *RiskProfiler) Score(in RiskInputs) RiskProfileResult {
	var b valueobject.ScoreBreakdown

	b.Add("pan_verified", boolPoints(in.PANValid, 10), 10)
	b.Add("aadhaar_verified", boolPoints(in.AadhaarValid, 10), 10)
	b.Add("credit_score", creditBandPoints(in.CreditScore), 20)
	b.Add("income", incomeBandPoints(in.MonthlyIncome), 10)
	b.Add("emi_ratio", emiRatioPoints(in.ExistingEMIs, in.MonthlyIncome), 10)
	b.Add("bounced_cheques", bouncedChequePoints(in.Bank.BouncedCheques), 10)
	b.Add("inflow_trend", boolPoints(in.Bank.Trend.IsStableOrRising(), 5), 5)
	b.Add("employment", employmentPoints(in.Employment), 5)
	b.Add("salary_credits", salaryCreditPoints(in.Bank.SalaryCredits), 10)
	b.Add("average_balance", balancePoints(in.Bank.AverageBalance), 10)

	score := b.Total()

	return RiskProfileResult{
		Score:     score,
		Category:  riskCategory(score),
		Breakdown: b,
	}
}

func riskCategory(score int) valueobject.RiskCategory {
	switch {
	case score >= 55:
		return valueobject.RiskLow
	case score >= 35:
		return valueobject.RiskMedium
	default:
		return valueobject.RiskHigh
	}
}

func boolPoints(ok bool, points int) int {
	if ok {
		return points
	}
	return 0
}

func creditBandPoints(score int) int {
	switch {
	case score >= 750:
		return 20
	case score >= 700:
		return 15
	case score >= 650:
		return 10
	default:
		return 0
	}
}

func incomeBandPoints(income decimal.Decimal) int {
	switch {
	case income.GreaterThanOrEqual(riskIncomeHigh):
		return 10
	case income.GreaterThanOrEqual(riskIncomeMid):
		return 7
	case income.GreaterThanOrEqual(riskIncomeLow):
		return 4
	default:
		return 0
	}
}

// emiRatioPoints scores the existing-EMI-to-income ratio. Zero or missing
// income with no EMIs counts as a zero ratio; income of zero with EMIs
// outstanding lands in the worst band.
func emiRatioPoints(existingEMIs, income decimal.Decimal) int {
	var ratio decimal.Decimal
	switch {
	case income.GreaterThan(decimal.Zero):
		ratio = existingEMIs.Div(income)
	case existingEMIs.LessThanOrEqual(decimal.Zero):
		ratio = decimal.Zero
	default:
		return 0
	}

	switch {
	case ratio.LessThan(emiRatioLow):
		return 10
	case ratio.LessThan(emiRatioHigh):
		return 5
	default:
		return 0
	}
}

func bouncedChequePoints(count int) int {
	switch {
	case count == 0:
		return 10
	case count <= 2:
		return 5
	default:
		return 0
	}
}

func employmentPoints(et valueobject.EmploymentType) int {
	switch et {
	case valueobject.EmploymentSalaried:
		return 5
	case valueobject.EmploymentSelfEmployed:
		return 3
	default:
		return 0
	}
}

func salaryCreditPoints(count int) int {
	switch {
	case count >= 2:
		return 10
	case count >= 1:
		return 5
	default:
		return 0
	}
}

func balancePoints(balance decimal.Decimal) int {
	switch {
	case balance.GreaterThanOrEqual(riskBalanceHigh):
		return 10
	case balance.GreaterThanOrEqual(riskBalanceMid):
		return 5
	default:
		return 0
	}
}
