package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

func lowRiskAttrs() RiskAttributes {
	return RiskAttributes{
		CreditScore:   800,
		Employment:    valueobject.EmploymentSalaried,
		Age:           40,
		MonthlyIncome: decimal.NewFromInt(150_000),
	}
}

func TestInsurancePricer_RiskMultiplierBestCase(t *testing.T) {
	pricer := NewInsurancePricer(DefaultInsuranceConfig())

	// 0.8 * 0.9 * 0.9 * 0.85, no EMI burden penalty.
	m := pricer.RiskMultiplier(lowRiskAttrs())
	assertDecimalEqual(t, "0.5508", m)
}

func TestInsurancePricer_RiskMultiplierClampedAtCeiling(t *testing.T) {
	pricer := NewInsurancePricer(DefaultInsuranceConfig())

	m := pricer.RiskMultiplier(RiskAttributes{
		CreditScore: 550,
		Employment:  valueobject.EmploymentUnemployed,
		Age:         70,
	})
	assertDecimalEqual(t, "2.0", m)
}

func TestInsurancePricer_RiskMultiplierNeverBelowFloor(t *testing.T) {
	pricer := NewInsurancePricer(DefaultInsuranceConfig())
	floor := decimal.NewFromFloat(0.5)

	// The best attainable factor product (0.8 * 0.9 * 0.9 * 0.85 = 0.5508)
	// already sits above the floor, so no profile can reach it; sweep the
	// lowest-factor bands to pin the clamp down anyway.
	profiles := []RiskAttributes{
		lowRiskAttrs(),
		{CreditScore: 900, Employment: valueobject.EmploymentSalaried, Age: 36, MonthlyIncome: decimal.NewFromInt(10_000_000)},
		{CreditScore: 750, Employment: valueobject.EmploymentSalaried, Age: 50, MonthlyIncome: decimal.NewFromInt(100_000)},
	}
	for _, attrs := range profiles {
		m := pricer.RiskMultiplier(attrs)
		assert.True(t, m.GreaterThanOrEqual(floor), "multiplier %s below floor", m)
		assertDecimalEqual(t, "0.5508", m)
	}
}

func TestInsurancePricer_EMIBurdenPenalty(t *testing.T) {
	pricer := NewInsurancePricer(DefaultInsuranceConfig())

	base := lowRiskAttrs()

	heavy := base
	heavy.ExistingEMIs = decimal.NewFromInt(90_000)
	assertDecimalEqual(t, "0.71604", pricer.RiskMultiplier(heavy)) // 0.5508 * 1.3

	moderate := base
	moderate.ExistingEMIs = decimal.NewFromInt(60_000)
	assertDecimalEqual(t, "0.60588", pricer.RiskMultiplier(moderate)) // 0.5508 * 1.1

	// A burden of exactly 30% stays unpenalized.
	atEdge := base
	atEdge.ExistingEMIs = decimal.NewFromInt(45_000)
	assertDecimalEqual(t, "0.5508", pricer.RiskMultiplier(atEdge))
}

func TestInsurancePricer_VolumeDiscountBands(t *testing.T) {
	pricer := NewInsurancePricer(DefaultInsuranceConfig())

	assertDecimalEqual(t, "1", pricer.VolumeDiscount(0))
	assertDecimalEqual(t, "1", pricer.VolumeDiscount(99))
	assertDecimalEqual(t, "0.9", pricer.VolumeDiscount(100))
	assertDecimalEqual(t, "0.85", pricer.VolumeDiscount(500))
	assertDecimalEqual(t, "0.8", pricer.VolumeDiscount(1000))
}

func TestInsurancePricer_QuoteAboveMinimumPremium(t *testing.T) {
	pricer := NewInsurancePricer(DefaultInsuranceConfig())

	attrs := lowRiskAttrs()
	attrs.LoanAmount = decimal.NewFromInt(2_000_000)

	q := pricer.Quote("icici_lombard", valueobject.CoverageLoanProtection, attrs, 0)

	assert.False(t, q.UsedDefaultProvider)
	assertDecimalEqual(t, "2000000", q.CoverageAmount)
	assertDecimalEqual(t, "50000", q.BasePremium)
	assertDecimalEqual(t, "27540", q.Premium) // 50000 * 0.5508
	assertDecimalEqual(t, "4131", q.ProviderCommission)
}

func TestInsurancePricer_QuoteFlooredAtMinimumPremium(t *testing.T) {
	pricer := NewInsurancePricer(DefaultInsuranceConfig())

	attrs := lowRiskAttrs()
	attrs.LoanAmount = decimal.NewFromInt(50_000)

	q := pricer.Quote("hdfc_ergo", valueobject.CoverageLoanProtection, attrs, 0)

	assertDecimalEqual(t, "2500", q.Premium)
	assertDecimalEqual(t, "300", q.ProviderCommission)
}

func TestInsurancePricer_CoverageCappedAtProviderMax(t *testing.T) {
	pricer := NewInsurancePricer(DefaultInsuranceConfig())

	attrs := lowRiskAttrs()
	attrs.LoanAmount = decimal.NewFromInt(8_000_000)

	q := pricer.Quote("hdfc_ergo", valueobject.CoverageLoanProtection, attrs, 0)

	assertDecimalEqual(t, "5000000", q.CoverageAmount)
	assertDecimalEqual(t, "125000", q.BasePremium)
}

func TestInsurancePricer_UnknownProviderUsesDefaults(t *testing.T) {
	pricer := NewInsurancePricer(DefaultInsuranceConfig())

	attrs := lowRiskAttrs()
	attrs.LoanAmount = decimal.NewFromInt(10_000)

	q := pricer.Quote("acme_insure", valueobject.CoverageJobLoss, attrs, 0)

	assert.True(t, q.UsedDefaultProvider)
	// Default minimum premium applies.
	assertDecimalEqual(t, "3000", q.Premium)
}

func TestInsurancePricer_VolumeDiscountLowersPremium(t *testing.T) {
	pricer := NewInsurancePricer(DefaultInsuranceConfig())

	attrs := lowRiskAttrs()
	attrs.LoanAmount = decimal.NewFromInt(2_000_000)

	full := pricer.Quote("bajaj_allianz", valueobject.CoverageAssetProtection, attrs, 0)
	discounted := pricer.Quote("bajaj_allianz", valueobject.CoverageAssetProtection, attrs, 1200)

	assert.True(t, discounted.Premium.LessThan(full.Premium))
	assertDecimalEqual(t, "0.8", discounted.VolumeDiscount)
}
