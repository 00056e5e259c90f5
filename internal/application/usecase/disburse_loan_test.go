package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vahanafin/vahana/internal/application/dto"
	"github.com/vahanafin/vahana/internal/application/usecase"
	"github.com/vahanafin/vahana/internal/domain/event"
	"github.com/vahanafin/vahana/internal/domain/model"
	"github.com/vahanafin/vahana/internal/domain/port"
	"github.com/vahanafin/vahana/internal/domain/service"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

func approvedApplication(t *testing.T) model.LoanApplication {
	t.Helper()
	now := time.Now().UTC()
	app := submittedApplication(t)
	app, err := app.RecordPrescreen(model.PrescreenOutcome{
		RiskScore:      80,
		RiskCategory:   valueobject.RiskLow,
		MatchedLenders: []string{"hdfc"},
	}, now)
	require.NoError(t, err)
	app, err = app.Approve("hdfc", "ok", now)
	require.NoError(t, err)
	return app.ClearEvents()
}

func TestDisburseLoan_ComputesCommission(t *testing.T) {
	app := approvedApplication(t)
	repo := &mockApplicationRepository{
		findByIDFunc: func(_ context.Context, _, _ string) (model.LoanApplication, error) {
			return app, nil
		},
	}
	commissions := &mockCommissionRepository{}
	publisher := &mockEventPublisher{}
	uc := usecase.NewDisburseLoanUseCase(
		repo, commissions, publisher,
		service.NewCommissionEngine(service.DefaultCommissionConfig()),
	)

	resp, err := uc.Execute(context.Background(), dto.DisburseLoanRequest{
		TenantID:        "tenant-1",
		ApplicationID:   app.ID(),
		DisbursedAmount: decimal.NewFromInt(850_000),
		DealerPlan:      "basic",
	})
	require.NoError(t, err)

	assert.Equal(t, "hdfc", resp.LenderID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.True(t, resp.TotalCommission.Equal(decimal.NewFromInt(12_750)))
	assert.True(t, resp.DealerNet.Equal(decimal.RequireFromString("3123.75")))
	assert.True(t, resp.PlatformNet.Equal(decimal.RequireFromString("9084.375")))
	// GST at 18% on the platform net share.
	assert.True(t, resp.GST.Equal(decimal.RequireFromString("1635.1875")))

	require.Len(t, repo.savedApps, 1)
	require.Len(t, commissions.savedStatements, 1)

	types := make([]string, 0, len(publisher.publishedEvents))
	for _, e := range publisher.publishedEvents {
		types = append(types, e.EventType())
	}
	assert.Equal(t, []string{event.TypeLoanDisbursed, event.TypeCommissionComputed}, types)
}

func TestDisburseLoan_BonusFromDealerStats(t *testing.T) {
	app := approvedApplication(t)
	repo := &mockApplicationRepository{
		findByIDFunc: func(_ context.Context, _, _ string) (model.LoanApplication, error) {
			return app, nil
		},
		statsFunc: func(_ context.Context, _, _ string, _ time.Time) (port.DealerStats, error) {
			return port.DealerStats{
				TotalApplications:    120,
				ApprovedApplications: 105, // 87.5% approval
				DisbursedVolume:      decimal.NewFromInt(6_000_000),
			}, nil
		},
	}
	uc := usecase.NewDisburseLoanUseCase(
		repo, &mockCommissionRepository{}, &mockEventPublisher{},
		service.NewCommissionEngine(service.DefaultCommissionConfig()),
	)

	resp, err := uc.Execute(context.Background(), dto.DisburseLoanRequest{
		TenantID:        "tenant-1",
		ApplicationID:   app.ID(),
		DisbursedAmount: decimal.NewFromInt(850_000),
		DealerPlan:      "basic",
	})
	require.NoError(t, err)

	// 15% total bonus rate on the dealer net of 3123.75.
	assert.True(t, resp.Bonus.Equal(decimal.RequireFromString("468.5625")), "got %s", resp.Bonus)
	assert.True(t, resp.DealerPayout.Equal(decimal.RequireFromString("3592.3125")))
}

func TestDisburseLoan_RequiresApprovedStatus(t *testing.T) {
	app := submittedApplication(t)
	repo := &mockApplicationRepository{
		findByIDFunc: func(_ context.Context, _, _ string) (model.LoanApplication, error) {
			return app, nil
		},
	}
	uc := usecase.NewDisburseLoanUseCase(
		repo, &mockCommissionRepository{}, &mockEventPublisher{},
		service.NewCommissionEngine(service.DefaultCommissionConfig()),
	)

	_, err := uc.Execute(context.Background(), dto.DisburseLoanRequest{
		TenantID:        "tenant-1",
		ApplicationID:   app.ID(),
		DisbursedAmount: decimal.NewFromInt(850_000),
		DealerPlan:      "basic",
	})
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}
