package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

func TestRiskProfiler_StrongSalariedApplicant(t *testing.T) {
	profiler := NewRiskProfiler()

	result := profiler.Score(RiskInputs{
		PANValid:      true,
		AadhaarValid:  true,
		CreditScore:   760,
		MonthlyIncome: decimal.NewFromInt(120_000),
		ExistingEMIs:  decimal.Zero,
		Bank: valueobject.BankSignal{
			BouncedCheques: 0,
			Trend:          valueobject.InflowStable,
		},
		Employment: valueobject.EmploymentSalaried,
	})

	// pan 10 + aadhaar 10 + credit 20 + income 10 + emi ratio 10 +
	// bounced 10 + trend 5 + salaried 5, no salary credits or balance data.
	assert.Equal(t, 80, result.Score)
	assert.Equal(t, valueobject.RiskLow, result.Category)
	assert.Equal(t, result.Score, result.Breakdown.Total())
}

func TestRiskProfiler_BandMaximaSumToHundred(t *testing.T) {
	profiler := NewRiskProfiler()

	result := profiler.Score(RiskInputs{
		PANValid:      true,
		AadhaarValid:  true,
		CreditScore:   800,
		MonthlyIncome: decimal.NewFromInt(150_000),
		ExistingEMIs:  decimal.Zero,
		Bank: valueobject.BankSignal{
			AverageBalance: decimal.NewFromInt(75_000),
			BouncedCheques: 0,
			Trend:          valueobject.InflowIncreasing,
			SalaryCredits:  3,
		},
		Employment: valueobject.EmploymentSalaried,
	})

	assert.Equal(t, 100, result.Breakdown.MaxTotal())
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, valueobject.RiskLow, result.Category)
}

func TestRiskProfiler_ZeroSignalApplicantScoresZero(t *testing.T) {
	profiler := NewRiskProfiler()

	result := profiler.Score(RiskInputs{
		CreditScore: 500,
		Bank: valueobject.BankSignal{
			BouncedCheques: 5,
			Trend:          valueobject.InflowDecreasing,
		},
		Employment: valueobject.EmploymentUnemployed,
	})

	// Zero income with no EMIs still earns the best EMI ratio band.
	assert.Equal(t, 10, result.Score)
	assert.Equal(t, valueobject.RiskHigh, result.Category)
}

func TestRiskProfiler_CategoryBoundaries(t *testing.T) {
	assert.Equal(t, valueobject.RiskLow, riskCategory(55))
	assert.Equal(t, valueobject.RiskMedium, riskCategory(54))
	assert.Equal(t, valueobject.RiskMedium, riskCategory(35))
	assert.Equal(t, valueobject.RiskHigh, riskCategory(34))
	assert.Equal(t, valueobject.RiskHigh, riskCategory(0))
	assert.Equal(t, valueobject.RiskLow, riskCategory(100))
}

func TestRiskProfiler_EMIRatioBands(t *testing.T) {
	income := decimal.NewFromInt(100_000)

	assert.Equal(t, 10, emiRatioPoints(decimal.NewFromInt(19_999), income))
	assert.Equal(t, 5, emiRatioPoints(decimal.NewFromInt(20_000), income))
	assert.Equal(t, 5, emiRatioPoints(decimal.NewFromInt(39_999), income))
	assert.Equal(t, 0, emiRatioPoints(decimal.NewFromInt(40_000), income))

	// Zero income with EMIs outstanding is the worst possible ratio.
	assert.Equal(t, 0, emiRatioPoints(decimal.NewFromInt(5_000), decimal.Zero))
	assert.Equal(t, 10, emiRatioPoints(decimal.Zero, decimal.Zero))
}

func TestRiskProfiler_CreditScoreBands(t *testing.T) {
	assert.Equal(t, 20, creditBandPoints(750))
	assert.Equal(t, 15, creditBandPoints(749))
	assert.Equal(t, 15, creditBandPoints(700))
	assert.Equal(t, 10, creditBandPoints(699))
	assert.Equal(t, 10, creditBandPoints(650))
	assert.Equal(t, 0, creditBandPoints(649))
}

func TestRiskProfiler_BreakdownNamesEveryBand(t *testing.T) {
	profiler := NewRiskProfiler()

	result := profiler.Score(RiskInputs{Employment: valueobject.EmploymentSalaried})

	names := make([]string, 0, len(result.Breakdown.Components))
	for _, c := range result.Breakdown.Components {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"pan_verified", "aadhaar_verified", "credit_score", "income",
		"emi_ratio", "bounced_cheques", "inflow_trend", "employment",
		"salary_credits", "average_balance",
	}, names)
}
