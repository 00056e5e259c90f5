package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vahanafin/vahana/internal/application/dto"
	"github.com/vahanafin/vahana/internal/application/usecase"
	"github.com/vahanafin/vahana/internal/domain/event"
	"github.com/vahanafin/vahana/internal/domain/model"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

func prescreenedApplication(t *testing.T) model.LoanApplication {
	t.Helper()
	app := submittedApplication(t)
	app, err := app.RecordPrescreen(model.PrescreenOutcome{
		RiskScore:      72,
		RiskCategory:   valueobject.RiskLow,
		MatchedLenders: []string{"hdfc", "icici"},
	}, time.Now().UTC())
	require.NoError(t, err)
	return app.ClearEvents()
}

func TestDecideApplication_Approve(t *testing.T) {
	app := prescreenedApplication(t)
	repo := &mockApplicationRepository{
		findByIDFunc: func(_ context.Context, _, _ string) (model.LoanApplication, error) {
			return app, nil
		},
	}
	publisher := &mockEventPublisher{}
	uc := usecase.NewDecideApplicationUseCase(repo, publisher)

	resp, err := uc.Execute(context.Background(), dto.DecideApplicationRequest{
		TenantID:      "tenant-1",
		ApplicationID: app.ID(),
		Approve:       true,
		LenderID:      "hdfc",
		Note:          "within lender appetite",
	})
	require.NoError(t, err)

	assert.Equal(t, "APPROVED", resp.Status)
	assert.Equal(t, "hdfc", resp.LenderID)
	assert.Equal(t, "within lender appetite", resp.DecisionNote)

	require.Len(t, repo.savedApps, 1)
	require.Len(t, publisher.publishedEvents, 1)
	assert.Equal(t, event.TypeApplicationApproved, publisher.publishedEvents[0].EventType())
}

func TestDecideApplication_Reject(t *testing.T) {
	app := prescreenedApplication(t)
	repo := &mockApplicationRepository{
		findByIDFunc: func(_ context.Context, _, _ string) (model.LoanApplication, error) {
			return app, nil
		},
	}
	publisher := &mockEventPublisher{}
	uc := usecase.NewDecideApplicationUseCase(repo, publisher)

	resp, err := uc.Execute(context.Background(), dto.DecideApplicationRequest{
		TenantID:      "tenant-1",
		ApplicationID: app.ID(),
		Approve:       false,
		Note:          "income documents inconsistent",
	})
	require.NoError(t, err)

	assert.Equal(t, "REJECTED", resp.Status)
	require.Len(t, publisher.publishedEvents, 1)
	assert.Equal(t, event.TypeApplicationRejected, publisher.publishedEvents[0].EventType())
}

func TestDecideApplication_RequiresPrescreenedStatus(t *testing.T) {
	app := submittedApplication(t)
	repo := &mockApplicationRepository{
		findByIDFunc: func(_ context.Context, _, _ string) (model.LoanApplication, error) {
			return app, nil
		},
	}
	uc := usecase.NewDecideApplicationUseCase(repo, &mockEventPublisher{})

	_, err := uc.Execute(context.Background(), dto.DecideApplicationRequest{
		TenantID:      "tenant-1",
		ApplicationID: app.ID(),
		Approve:       true,
		LenderID:      "hdfc",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	assert.Empty(t, repo.savedApps)
}

func TestDecideApplication_NotFound(t *testing.T) {
	repo := &mockApplicationRepository{
		findByIDFunc: func(_ context.Context, _, _ string) (model.LoanApplication, error) {
			return model.LoanApplication{}, errors.New("application not found")
		},
	}
	uc := usecase.NewDecideApplicationUseCase(repo, &mockEventPublisher{})

	_, err := uc.Execute(context.Background(), dto.DecideApplicationRequest{
		TenantID:      "tenant-1",
		ApplicationID: "missing",
		Approve:       true,
	})
	assert.Error(t, err)
}
