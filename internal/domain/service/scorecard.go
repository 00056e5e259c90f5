package service

import (
	"github.com/shopspring/decimal"

	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// CreditScorecard – domain service for the dealer-portal credit scorecard
// ---------------------------------------------------------------------------
//
// The scorecard is a second, independently weighted scoring system. It looks
// similar to the risk profiler but serves a different screen with different
// weights; the two are deliberately kept as separate services.

// ScorecardInputs carries everything the scorecard weighs.
type ScorecardInputs struct {
	PANValid       bool
	AadhaarValid   bool
	BureauScore    int
	Bank           valueobject.BankSignal
	Affordability  AffordabilityResult
	Employment     valueobject.EmploymentType
	MonthlyIncome  decimal.Decimal
	PastDefaults   int
	PastRejections int
}

// ScorecardResult is the outcome of scorecard evaluation.
type ScorecardResult struct {
	Score     int
	Tier      valueobject.CreditTier
	Breakdown valueobject.ScoreBreakdown
}

// CreditScorecard computes a weighted 0-100 score. The raw sum can in theory
// drift past the bounds, so the final score is clamped to [0, 100].
type CreditScorecard struct{}

// NewCreditScorecard returns a new scorecard instance.
func NewCreditScorecard() *CreditScorecard {
	return &CreditScorecard{}
}

// Score evaluates the inputs.
//
// Tier mapping: score >= 80 -> Gold, >= 60 -> Silver, >= 40 -> Bronze,
// else High Risk.
func (s *CreditScorecard) Score(in ScorecardInputs) ScorecardResult {
	var b valueobject.ScoreBreakdown

	identity := boolPoints(in.PANValid, 5) + boolPoints(in.AadhaarValid, 5)
	b.Add("identity", identity, 10)

	b.Add("bureau_score", bureauBandPoints(in.BureauScore), 25)
	b.Add("bank_health", bankHealthPoints(in.Bank), 20)
	b.Add("affordability", affordabilityPoints(in.Affordability), 15)
	b.Add("employment_income", employmentIncomePoints(in.Employment, in.MonthlyIncome), 15)

	history := boolPoints(in.PastDefaults == 0, 5) + boolPoints(in.PastRejections == 0, 5)
	b.Add("history", history, 10)

	score := clampScore(b.Total())

	return ScorecardResult{
		Score:     score,
		Tier:      creditTier(score),
		Breakdown: b,
	}
}

func creditTier(score int) valueobject.CreditTier {
	switch {
	case score >= 80:
		return valueobject.TierGold
	case score >= 60:
		return valueobject.TierSilver
	case score >= 40:
		return valueobject.TierBronze
	default:
		return valueobject.TierHighRisk
	}
}

func clampScore(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

func bureauBandPoints(score int) int {
	switch {
	case score >= 750:
		return 25
	case score >= 700:
		return 20
	case score >= 650:
		return 15
	default:
		return 5
	}
}

// bankHealthPoints scores statement health out of 20: bounced cheques,
// inflow trend and a monthly surplus.
func bankHealthPoints(bank valueobject.BankSignal) int {
	points := 0
	switch {
	case bank.BouncedCheques == 0:
		points += 10
	case bank.BouncedCheques <= 2:
		points += 5
	}
	if bank.Trend.IsStableOrRising() {
		points += 5
	}
	if bank.InflowExceedsOutflow() {
		points += 5
	}
	return points
}

func affordabilityPoints(a AffordabilityResult) int {
	points := 0
	if a.Affordable {
		points += 10
	}
	if a.DisposableIncome.GreaterThan(decimal.NewFromInt(10_000)) {
		points += 5
	}
	return points
}

func employmentIncomePoints(et valueobject.EmploymentType, income decimal.Decimal) int {
	points := 0
	switch et {
	case valueobject.EmploymentSalaried:
		points += 5
	case valueobject.EmploymentSelfEmployed:
		points += 3
	}

	switch {
	case income.GreaterThan(riskIncomeHigh):
		points += 10
	case income.GreaterThanOrEqual(riskIncomeMid):
		points += 7
	default:
		points += 3
	}
	return points
}
