package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vahanafin/vahana/internal/application/dto"
	"github.com/vahanafin/vahana/internal/application/usecase"
	"github.com/vahanafin/vahana/internal/domain/model"
	"github.com/vahanafin/vahana/internal/domain/service"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

func pendingStatement(t *testing.T) model.CommissionStatement {
	t.Helper()
	engine := service.NewCommissionEngine(service.DefaultCommissionConfig())
	breakdown := engine.Compute(decimal.NewFromInt(850_000), "hdfc", valueobject.PlanBasic)
	st, err := model.NewCommissionStatement(
		"tenant-1", "app-1", "dealer-1",
		breakdown, decimal.Zero, time.Now().UTC(),
	)
	require.NoError(t, err)
	return st.ClearEvents()
}

func TestPayCommission_MarksPaid(t *testing.T) {
	st := pendingStatement(t)
	repo := &mockCommissionRepository{
		findByIDFunc: func(_ context.Context, _, _ string) (model.CommissionStatement, error) {
			return st, nil
		},
	}
	publisher := &mockEventPublisher{}
	uc := usecase.NewPayCommissionUseCase(repo, publisher)

	resp, err := uc.Execute(context.Background(), dto.PayCommissionRequest{
		TenantID:    "tenant-1",
		StatementID: st.ID(),
	})
	require.NoError(t, err)

	assert.Equal(t, "PAID", resp.Status)
	require.NotNil(t, resp.PaidAt)
	require.Len(t, repo.savedStatements, 1)
	assert.Equal(t, "PAID", repo.savedStatements[0].Status())
}

func TestPayCommission_AlreadyPaid(t *testing.T) {
	st := pendingStatement(t)
	st, err := st.MarkPaid(time.Now().UTC())
	require.NoError(t, err)

	repo := &mockCommissionRepository{
		findByIDFunc: func(_ context.Context, _, _ string) (model.CommissionStatement, error) {
			return st, nil
		},
	}
	uc := usecase.NewPayCommissionUseCase(repo, &mockEventPublisher{})

	_, err = uc.Execute(context.Background(), dto.PayCommissionRequest{
		TenantID:    "tenant-1",
		StatementID: st.ID(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	assert.Empty(t, repo.savedStatements)
}

func TestPayCommission_NotFound(t *testing.T) {
	repo := &mockCommissionRepository{
		findByIDFunc: func(_ context.Context, _, _ string) (model.CommissionStatement, error) {
			return model.CommissionStatement{}, errors.New("statement not found")
		},
	}
	uc := usecase.NewPayCommissionUseCase(repo, &mockEventPublisher{})

	_, err := uc.Execute(context.Background(), dto.PayCommissionRequest{
		TenantID:    "tenant-1",
		StatementID: "missing",
	})
	assert.Error(t, err)
}

func TestGetApplication_ReturnsApplication(t *testing.T) {
	app := prescreenedApplication(t)
	repo := &mockApplicationRepository{
		findByIDFunc: func(_ context.Context, tenantID, id string) (model.LoanApplication, error) {
			assert.Equal(t, "tenant-1", tenantID)
			assert.Equal(t, app.ID(), id)
			return app, nil
		},
	}
	uc := usecase.NewGetApplicationUseCase(repo)

	resp, err := uc.Execute(context.Background(), dto.GetApplicationRequest{
		TenantID:      "tenant-1",
		ApplicationID: app.ID(),
	})
	require.NoError(t, err)

	assert.Equal(t, app.ID(), resp.ID)
	assert.Equal(t, "PRESCREENED", resp.Status)
	require.NotNil(t, resp.Prescreen)
	assert.Equal(t, 72, resp.Prescreen.RiskScore)
}

func TestListApplications_ReturnsDealerApplications(t *testing.T) {
	first := submittedApplication(t)
	second := prescreenedApplication(t)
	repo := &mockApplicationRepository{
		findByDealerIDFunc: func(_ context.Context, tenantID, dealerID string) ([]model.LoanApplication, error) {
			assert.Equal(t, "tenant-1", tenantID)
			assert.Equal(t, "dealer-1", dealerID)
			return []model.LoanApplication{second, first}, nil
		},
	}
	uc := usecase.NewListApplicationsUseCase(repo)

	resp, err := uc.Execute(context.Background(), dto.ListApplicationsRequest{
		TenantID: "tenant-1",
		DealerID: "dealer-1",
	})
	require.NoError(t, err)

	require.Len(t, resp.Applications, 2)
	assert.Equal(t, "PRESCREENED", resp.Applications[0].Status)
	assert.Equal(t, "SUBMITTED", resp.Applications[1].Status)
}

func TestGetQuotes_ReturnsPolicies(t *testing.T) {
	pricer := service.NewInsurancePricer(service.DefaultInsuranceConfig())
	quote := pricer.Quote(
		"icici_lombard",
		valueobject.CoverageLoanProtection,
		service.RiskAttributes{
			CreditScore:   760,
			Employment:    valueobject.EmploymentSalaried,
			Age:           34,
			MonthlyIncome: decimal.NewFromInt(120_000),
			LoanAmount:    decimal.NewFromInt(800_000),
			TenureMonths:  60,
		},
		0,
	)
	policy, err := model.NewInsurancePolicy("tenant-1", "app-1", quote, time.Now().UTC())
	require.NoError(t, err)

	repo := &mockPolicyRepository{
		findByApplicationIDFunc: func(_ context.Context, _, applicationID string) ([]model.InsurancePolicy, error) {
			assert.Equal(t, "app-1", applicationID)
			return []model.InsurancePolicy{policy}, nil
		},
	}
	uc := usecase.NewGetQuotesUseCase(repo)

	resp, err := uc.Execute(context.Background(), dto.GetQuotesRequest{
		TenantID:      "tenant-1",
		ApplicationID: "app-1",
	})
	require.NoError(t, err)

	require.Len(t, resp.Policies, 1)
	assert.Equal(t, "icici_lombard", resp.Policies[0].ProviderID)
	assert.Equal(t, "QUOTED", resp.Policies[0].Status)
}

func TestGetCommission_ReturnsStatement(t *testing.T) {
	st := pendingStatement(t)
	repo := &mockCommissionRepository{
		findByApplicationIDFunc: func(_ context.Context, _, applicationID string) (model.CommissionStatement, error) {
			assert.Equal(t, "app-1", applicationID)
			return st, nil
		},
	}
	uc := usecase.NewGetCommissionUseCase(repo)

	resp, err := uc.Execute(context.Background(), dto.GetCommissionRequest{
		TenantID:      "tenant-1",
		ApplicationID: "app-1",
	})
	require.NoError(t, err)

	assert.Equal(t, st.ID(), resp.ID)
	assert.True(t, resp.TotalCommission.Equal(decimal.NewFromInt(12_750)))
	assert.True(t, resp.DealerPayout.Equal(decimal.RequireFromString("3123.75")))
}
