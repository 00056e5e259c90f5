package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vahanafin/vahana/internal/application/dto"
	"github.com/vahanafin/vahana/internal/application/usecase"
	"github.com/vahanafin/vahana/internal/domain/event"
	"github.com/vahanafin/vahana/internal/domain/model"
)

func submitRequest() dto.SubmitApplicationRequest {
	return dto.SubmitApplicationRequest{
		TenantID: "tenant-1",
		DealerID: "dealer-1",
		Borrower: dto.BorrowerRequest{
			PAN:             "ABCDE1234F",
			Aadhaar:         "123456789012",
			Employment:      "salaried",
			MonthlyIncome:   decimal.NewFromInt(80_000),
			ExistingEMIs:    decimal.NewFromInt(5_000),
			MonthlyExpenses: decimal.NewFromInt(20_000),
			Age:             32,
		},
		Vehicle: dto.VehicleRequest{
			Make:         "Tata",
			Model:        "Nexon",
			Category:     "suv",
			LoanAmount:   decimal.NewFromInt(900_000),
			DownPayment:  decimal.NewFromInt(150_000),
			TenureMonths: 60,
		},
	}
}

func TestSubmitApplication_Success(t *testing.T) {
	repo := &mockApplicationRepository{}
	publisher := &mockEventPublisher{}
	uc := usecase.NewSubmitApplicationUseCase(repo, publisher)

	resp, err := uc.Execute(context.Background(), submitRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "SUBMITTED", resp.Status)
	assert.Equal(t, "dealer-1", resp.DealerID)

	require.Len(t, repo.savedApps, 1)
	require.Len(t, publisher.publishedEvents, 1)
	assert.Equal(t, event.TypeApplicationSubmitted, publisher.publishedEvents[0].EventType())
}

func TestSubmitApplication_InvalidInput(t *testing.T) {
	uc := usecase.NewSubmitApplicationUseCase(&mockApplicationRepository{}, &mockEventPublisher{})

	req := submitRequest()
	req.Vehicle.LoanAmount = decimal.Zero

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorContains(t, err, "loan amount")
}

func TestSubmitApplication_RepositoryFailure(t *testing.T) {
	repo := &mockApplicationRepository{
		saveFunc: func(_ context.Context, _ model.LoanApplication) error {
			return errors.New("connection refused")
		},
	}
	uc := usecase.NewSubmitApplicationUseCase(repo, &mockEventPublisher{})

	_, err := uc.Execute(context.Background(), submitRequest())
	assert.ErrorContains(t, err, "save application")
}

func TestSubmitApplication_NormalizesEmployment(t *testing.T) {
	repo := &mockApplicationRepository{}
	uc := usecase.NewSubmitApplicationUseCase(repo, &mockEventPublisher{})

	req := submitRequest()
	req.Borrower.Employment = "Self Employed"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, repo.savedApps, 1)
	assert.Equal(t, "SELF_EMPLOYED", string(repo.savedApps[0].Borrower().Employment))
}
