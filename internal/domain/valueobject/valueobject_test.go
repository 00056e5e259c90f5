package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPANFormat(t *testing.T) {
	assert.True(t, ValidPANFormat("ABCDE1234F"))
	assert.False(t, ValidPANFormat("abcde1234f"))
	assert.False(t, ValidPANFormat("ABCD1234FX"))
	assert.False(t, ValidPANFormat("ABCDE1234FX"))
	assert.False(t, ValidPANFormat(""))
}

func TestValidAadhaarFormat(t *testing.T) {
	assert.True(t, ValidAadhaarFormat("123456789012"))
	assert.False(t, ValidAadhaarFormat("12345678901"))
	assert.False(t, ValidAadhaarFormat("12345678901a"))
	assert.False(t, ValidAadhaarFormat(""))
}

func TestParseEmploymentType(t *testing.T) {
	assert.Equal(t, EmploymentSalaried, ParseEmploymentType("salaried"))
	assert.Equal(t, EmploymentSelfEmployed, ParseEmploymentType("Self Employed"))
	assert.Equal(t, EmploymentBusinessOwner, ParseEmploymentType("business-owner"))
	assert.Equal(t, EmploymentUnemployed, ParseEmploymentType("gig economy"))
}

func TestParseInflowTrend(t *testing.T) {
	assert.Equal(t, InflowStable, ParseInflowTrend("stable"))
	assert.Equal(t, InflowIncreasing, ParseInflowTrend("INCREASING"))
	assert.Equal(t, InflowDecreasing, ParseInflowTrend("who knows"))

	assert.True(t, InflowStable.IsStableOrRising())
	assert.True(t, InflowIncreasing.IsStableOrRising())
	assert.False(t, InflowDecreasing.IsStableOrRising())
}

func TestNewLenderRule_RangeValidation(t *testing.T) {
	_, err := NewLenderRule("hdfc", "HDFC Bank", 700, 650,
		decimal.NewFromInt(100000), decimal.NewFromInt(5000000),
		[]string{"sedan"}, []EmploymentType{EmploymentSalaried}, true)
	assert.Error(t, err)

	_, err = NewLenderRule("hdfc", "HDFC Bank", 650, 900,
		decimal.NewFromInt(5000000), decimal.NewFromInt(100000),
		[]string{"sedan"}, []EmploymentType{EmploymentSalaried}, true)
	assert.Error(t, err)

	rule, err := NewLenderRule("hdfc", "HDFC Bank", 650, 900,
		decimal.NewFromInt(100000), decimal.NewFromInt(5000000),
		[]string{"sedan", "SUV"}, []EmploymentType{EmploymentSalaried}, true)
	require.NoError(t, err)

	assert.True(t, rule.SupportsVehicle("Sedan"))
	assert.True(t, rule.SupportsVehicle("suv"))
	assert.False(t, rule.SupportsVehicle("truck"))
	assert.True(t, rule.SupportsEmployment(EmploymentSalaried))
	assert.False(t, rule.SupportsEmployment(EmploymentSelfEmployed))
	assert.True(t, rule.AcceptsAmount(decimal.NewFromInt(600000)))
	assert.False(t, rule.AcceptsAmount(decimal.NewFromInt(6000000)))
}

func TestScoreBreakdown(t *testing.T) {
	var b ScoreBreakdown
	b.Add("pan", 10, 10)
	b.Add("credit_score", 15, 20)

	assert.Equal(t, 25, b.Total())
	assert.Equal(t, 30, b.MaxTotal())
}

func TestApplicationStatusTransitions(t *testing.T) {
	assert.True(t, ApplicationStatusDraft.CanTransitionTo(ApplicationStatusSubmitted))
	assert.True(t, ApplicationStatusSubmitted.CanTransitionTo(ApplicationStatusPrescreened))
	assert.True(t, ApplicationStatusPrescreened.CanTransitionTo(ApplicationStatusApproved))
	assert.True(t, ApplicationStatusApproved.CanTransitionTo(ApplicationStatusDisbursed))
	assert.False(t, ApplicationStatusRejected.CanTransitionTo(ApplicationStatusApproved))
	assert.False(t, ApplicationStatusDraft.CanTransitionTo(ApplicationStatusDisbursed))

	st, err := NewApplicationStatus("APPROVED")
	require.NoError(t, err)
	assert.Equal(t, ApplicationStatusApproved, st)

	_, err = NewApplicationStatus("bogus")
	assert.Error(t, err)
}

func TestBankSignal_InflowExceedsOutflow(t *testing.T) {
	b := BankSignal{
		MonthlyInflow:  decimal.NewFromInt(80000),
		MonthlyOutflow: decimal.NewFromInt(60000),
	}
	assert.True(t, b.InflowExceedsOutflow())

	b.MonthlyOutflow = decimal.NewFromInt(80000)
	assert.False(t, b.InflowExceedsOutflow())
}
