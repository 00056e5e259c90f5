package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vahanafin/vahana/internal/domain/event"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

func draftApplication(t *testing.T) LoanApplication {
	t.Helper()
	app, err := NewLoanApplication(
		"tenant-1", "dealer-1",
		valueobject.BorrowerProfile{
			PAN:           "ABCDE1234F",
			CreditScore:   720,
			Employment:    valueobject.EmploymentSalaried,
			MonthlyIncome: decimal.NewFromInt(80_000),
		},
		valueobject.VehicleRequest{
			Make:         "Maruti",
			Model:        "Swift",
			Category:     "hatchback",
			LoanAmount:   decimal.NewFromInt(600_000),
			TenureMonths: 48,
		},
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return app
}

func TestNewLoanApplication_StartsAsDraft(t *testing.T) {
	app := draftApplication(t)

	assert.NotEmpty(t, app.ID())
	assert.Equal(t, valueobject.ApplicationStatusDraft, app.Status())
	assert.Equal(t, 1, app.Version())
	assert.Empty(t, app.DomainEvents())
}

func TestNewLoanApplication_Validation(t *testing.T) {
	now := time.Now().UTC()
	vehicle := valueobject.VehicleRequest{
		LoanAmount:   decimal.NewFromInt(500_000),
		TenureMonths: 36,
	}

	_, err := NewLoanApplication("", "dealer-1", valueobject.BorrowerProfile{}, vehicle, now)
	assert.ErrorContains(t, err, "tenant ID")

	_, err = NewLoanApplication("tenant-1", "", valueobject.BorrowerProfile{}, vehicle, now)
	assert.ErrorContains(t, err, "dealer ID")

	zeroAmount := vehicle
	zeroAmount.LoanAmount = decimal.Zero
	_, err = NewLoanApplication("tenant-1", "dealer-1", valueobject.BorrowerProfile{}, zeroAmount, now)
	assert.ErrorContains(t, err, "loan amount")

	zeroTenure := vehicle
	zeroTenure.TenureMonths = 0
	_, err = NewLoanApplication("tenant-1", "dealer-1", valueobject.BorrowerProfile{}, zeroTenure, now)
	assert.ErrorContains(t, err, "tenure")
}

func TestLoanApplication_FullLifecycle(t *testing.T) {
	now := time.Now().UTC()
	app := draftApplication(t)

	submitted, err := app.Submit(now)
	require.NoError(t, err)
	assert.Equal(t, valueobject.ApplicationStatusSubmitted, submitted.Status())

	prescreened, err := submitted.RecordPrescreen(PrescreenOutcome{
		RiskScore:      72,
		RiskCategory:   valueobject.RiskLow,
		CreditScore:    68,
		CreditTier:     valueobject.TierSilver,
		MatchedLenders: []string{"hdfc", "icici"},
	}, now)
	require.NoError(t, err)
	assert.Equal(t, valueobject.ApplicationStatusPrescreened, prescreened.Status())
	require.NotNil(t, prescreened.Prescreen())
	assert.Equal(t, 72, prescreened.Prescreen().RiskScore)

	approved, err := prescreened.Approve("hdfc", "within policy", now)
	require.NoError(t, err)
	assert.Equal(t, "hdfc", approved.LenderID())

	disbursed, err := approved.MarkDisbursed(decimal.NewFromInt(580_000), now)
	require.NoError(t, err)
	assert.Equal(t, valueobject.ApplicationStatusDisbursed, disbursed.Status())
	assert.True(t, disbursed.DisbursedAmount().Equal(decimal.NewFromInt(580_000)))

	types := make([]string, 0, len(disbursed.DomainEvents()))
	for _, e := range disbursed.DomainEvents() {
		types = append(types, e.EventType())
	}
	assert.Equal(t, []string{
		event.TypeApplicationSubmitted,
		event.TypeApplicationPrescreened,
		event.TypeApplicationApproved,
		event.TypeLoanDisbursed,
	}, types)
}

func TestLoanApplication_TransitionsAreImmutable(t *testing.T) {
	now := time.Now().UTC()
	app := draftApplication(t)

	submitted, err := app.Submit(now)
	require.NoError(t, err)

	// The original copy is untouched.
	assert.Equal(t, valueobject.ApplicationStatusDraft, app.Status())
	assert.Empty(t, app.DomainEvents())
	assert.Len(t, submitted.DomainEvents(), 1)
}

func TestLoanApplication_IllegalTransitionsRejected(t *testing.T) {
	now := time.Now().UTC()
	app := draftApplication(t)

	_, err := app.Approve("hdfc", "", now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)

	_, err = app.MarkDisbursed(decimal.NewFromInt(100_000), now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)

	// A draft cannot be rejected before submission.
	_, err = app.Reject("incomplete", now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}

func TestLoanApplication_RejectFromSubmitted(t *testing.T) {
	now := time.Now().UTC()
	app := draftApplication(t)

	submitted, err := app.Submit(now)
	require.NoError(t, err)

	rejected, err := submitted.Reject("failed identity check", now)
	require.NoError(t, err)
	assert.Equal(t, valueobject.ApplicationStatusRejected, rejected.Status())
	assert.Equal(t, "failed identity check", rejected.DecisionNote())

	_, err = rejected.Submit(now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}

func TestLoanApplication_ClearEvents(t *testing.T) {
	now := time.Now().UTC()
	app := draftApplication(t)

	submitted, err := app.Submit(now)
	require.NoError(t, err)

	cleared := submitted.ClearEvents()
	assert.Empty(t, cleared.DomainEvents())
	assert.Equal(t, submitted.Status(), cleared.Status())
}
