package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// InsurancePricer – domain service for loan-linked insurance premiums
// ---------------------------------------------------------------------------

// ProviderLimits are one insurance provider's pricing constraints.
type ProviderLimits struct {
	MinPremium     decimal.Decimal
	MaxCoverage    decimal.Decimal
	CommissionRate decimal.Decimal
}

// InsuranceConfig holds the static pricing tables injected at startup.
type InsuranceConfig struct {
	// BaseRates maps coverage type to the premium rate on coverage amount.
	BaseRates map[valueobject.CoverageType]decimal.Decimal
	// Providers maps provider ID to its limits.
	Providers map[string]ProviderLimits
	// DefaultLimits applies when a provider ID is not in the table.
	DefaultLimits ProviderLimits
}

// DefaultInsuranceConfig returns the compiled-in provider and rate tables.
func DefaultInsuranceConfig() InsuranceConfig {
	return InsuranceConfig{
		BaseRates: map[valueobject.CoverageType]decimal.Decimal{
			valueobject.CoverageLoanProtection:  decimal.NewFromFloat(0.025),
			valueobject.CoverageJobLoss:         decimal.NewFromFloat(0.015),
			valueobject.CoverageCriticalIllness: decimal.NewFromFloat(0.020),
			valueobject.CoverageAssetProtection: decimal.NewFromFloat(0.030),
		},
		Providers: map[string]ProviderLimits{
			"icici_lombard": {
				MinPremium:     decimal.NewFromInt(3_000),
				MaxCoverage:    decimal.NewFromInt(7_500_000),
				CommissionRate: decimal.NewFromFloat(0.15),
			},
			"hdfc_ergo": {
				MinPremium:     decimal.NewFromInt(2_500),
				MaxCoverage:    decimal.NewFromInt(5_000_000),
				CommissionRate: decimal.NewFromFloat(0.12),
			},
			"bajaj_allianz": {
				MinPremium:     decimal.NewFromInt(3_500),
				MaxCoverage:    decimal.NewFromInt(10_000_000),
				CommissionRate: decimal.NewFromFloat(0.18),
			},
			"tata_aig": {
				MinPremium:     decimal.NewFromInt(2_800),
				MaxCoverage:    decimal.NewFromInt(6_000_000),
				CommissionRate: decimal.NewFromFloat(0.14),
			},
		},
		DefaultLimits: ProviderLimits{
			MinPremium:     decimal.NewFromInt(3_000),
			MaxCoverage:    decimal.NewFromInt(5_000_000),
			CommissionRate: decimal.NewFromFloat(0.12),
		},
	}
}

// RiskAttributes is the borrower snapshot the pricer derives its risk
// multiplier from.
type RiskAttributes struct {
	CreditScore   int
	Employment    valueobject.EmploymentType
	Age           int
	MonthlyIncome decimal.Decimal
	ExistingEMIs  decimal.Decimal
	LoanAmount    decimal.Decimal
	TenureMonths  int
}

// InsuranceQuote is a priced premium for one provider and coverage type.
type InsuranceQuote struct {
	ProviderID          string
	Coverage            valueobject.CoverageType
	CoverageAmount      decimal.Decimal
	BasePremium         decimal.Decimal
	RiskMultiplier      decimal.Decimal
	VolumeDiscount      decimal.Decimal
	Premium             decimal.Decimal
	ProviderCommission  decimal.Decimal
	UsedDefaultProvider bool
}

// InsurancePricer computes premium quotes from injected pricing tables. The
// monthly policy count used for volume discounts is external state supplied
// by the caller, so the pricer itself stays side-effect-free.
type InsurancePricer struct {
	cfg InsuranceConfig
}

// NewInsurancePricer wires the pricer with its tables.
func NewInsurancePricer(cfg InsuranceConfig) *InsurancePricer {
	return &InsurancePricer{cfg: cfg}
}

var (
	multiplierFloor = decimal.NewFromFloat(0.5)
	multiplierCeil  = decimal.NewFromFloat(2.0)

	emiBurdenMid  = decimal.NewFromFloat(0.3)
	emiBurdenHigh = decimal.NewFromFloat(0.5)
)

// RiskMultiplier multiplies four independent band factors (credit score,
// employment type, age, income), penalises heavy EMI burdens and clamps the
// result to [0.5, 2.0].
func (p *InsurancePricer) RiskMultiplier(attrs RiskAttributes) decimal.Decimal {
	m := creditFactor(attrs.CreditScore).
		Mul(employmentFactor(attrs.Employment)).
		Mul(ageFactor(attrs.Age)).
		Mul(incomeFactor(attrs.MonthlyIncome))

	if attrs.MonthlyIncome.GreaterThan(decimal.Zero) {
		burden := attrs.ExistingEMIs.Div(attrs.MonthlyIncome)
		switch {
		case burden.GreaterThan(emiBurdenHigh):
			m = m.Mul(decimal.NewFromFloat(1.3))
		case burden.GreaterThan(emiBurdenMid):
			m = m.Mul(decimal.NewFromFloat(1.1))
		}
	}

	if m.LessThan(multiplierFloor) {
		return multiplierFloor
	}
	if m.GreaterThan(multiplierCeil) {
		return multiplierCeil
	}
	return m
}

// VolumeDiscount maps the provider's policies-this-month count to a
// discount factor.
func (p *InsurancePricer) VolumeDiscount(monthlyPolicyCount int) decimal.Decimal {
	switch {
	case monthlyPolicyCount >= 1000:
		return decimal.NewFromFloat(0.8)
	case monthlyPolicyCount >= 500:
		return decimal.NewFromFloat(0.85)
	case monthlyPolicyCount >= 100:
		return decimal.NewFromFloat(0.9)
	default:
		return decimal.NewFromInt(1)
	}
}

// Quote prices a premium for the given provider and coverage type.
//
// The covered amount is the loan amount capped at the provider's maximum
// coverage; the premium is recomputed on the capped amount, discounted,
// risk-adjusted, and floored at the provider's minimum premium. An unknown
// provider falls back to default limits, surfaced via UsedDefaultProvider.
func (p *InsurancePricer) Quote(
	providerID string,
	coverage valueobject.CoverageType,
	attrs RiskAttributes,
	monthlyPolicyCount int,
) InsuranceQuote {
	limits, ok := p.cfg.Providers[strings.ToLower(strings.TrimSpace(providerID))]
	if !ok {
		limits = p.cfg.DefaultLimits
	}

	baseRate, rateOK := p.cfg.BaseRates[coverage]
	if !rateOK {
		baseRate = p.cfg.BaseRates[valueobject.CoverageLoanProtection]
	}

	covered := attrs.LoanAmount
	if covered.GreaterThan(limits.MaxCoverage) {
		covered = limits.MaxCoverage
	}

	basePremium := covered.Mul(baseRate)
	multiplier := p.RiskMultiplier(attrs)
	discount := p.VolumeDiscount(monthlyPolicyCount)

	premium := basePremium.Mul(multiplier).Mul(discount)
	if premium.LessThan(limits.MinPremium) {
		premium = limits.MinPremium
	}

	return InsuranceQuote{
		ProviderID:          providerID,
		Coverage:            coverage,
		CoverageAmount:      covered,
		BasePremium:         basePremium,
		RiskMultiplier:      multiplier,
		VolumeDiscount:      discount,
		Premium:             premium,
		ProviderCommission:  premium.Mul(limits.CommissionRate),
		UsedDefaultProvider: !ok,
	}
}

func creditFactor(score int) decimal.Decimal {
	switch {
	case score >= 750:
		return decimal.NewFromFloat(0.8)
	case score >= 700:
		return decimal.NewFromFloat(0.9)
	case score >= 650:
		return decimal.NewFromFloat(1.0)
	case score >= 600:
		return decimal.NewFromFloat(1.15)
	default:
		return decimal.NewFromFloat(1.3)
	}
}

func employmentFactor(et valueobject.EmploymentType) decimal.Decimal {
	switch et {
	case valueobject.EmploymentSalaried:
		return decimal.NewFromFloat(0.9)
	case valueobject.EmploymentBusinessOwner:
		return decimal.NewFromFloat(1.0)
	case valueobject.EmploymentSelfEmployed:
		return decimal.NewFromFloat(1.05)
	default:
		return decimal.NewFromFloat(1.2)
	}
}

func ageFactor(age int) decimal.Decimal {
	switch {
	case age < 25:
		return decimal.NewFromFloat(1.2)
	case age <= 35:
		return decimal.NewFromFloat(0.95)
	case age <= 50:
		return decimal.NewFromFloat(0.9)
	case age <= 60:
		return decimal.NewFromFloat(1.05)
	default:
		return decimal.NewFromFloat(1.25)
	}
}

func incomeFactor(income decimal.Decimal) decimal.Decimal {
	switch {
	case income.GreaterThanOrEqual(riskIncomeHigh):
		return decimal.NewFromFloat(0.85)
	case income.GreaterThanOrEqual(riskIncomeMid):
		return decimal.NewFromFloat(0.95)
	case income.GreaterThanOrEqual(riskIncomeLow):
		return decimal.NewFromFloat(1.05)
	default:
		return decimal.NewFromFloat(1.2)
	}
}
