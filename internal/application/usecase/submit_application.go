package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vahanafin/vahana/internal/application/dto"
	"github.com/vahanafin/vahana/internal/domain/model"
	"github.com/vahanafin/vahana/internal/domain/port"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

// SubmitApplicationUseCase creates a new loan application and moves it into
// the pipeline.
type SubmitApplicationUseCase struct {
	appRepo   port.ApplicationRepository
	publisher port.EventPublisher
}

// NewSubmitApplicationUseCase wires dependencies.
func NewSubmitApplicationUseCase(
	appRepo port.ApplicationRepository,
	publisher port.EventPublisher,
) *SubmitApplicationUseCase {
	return &SubmitApplicationUseCase{appRepo: appRepo, publisher: publisher}
}

// Execute creates and submits an application.
func (uc *SubmitApplicationUseCase) Execute(
	ctx context.Context,
	req dto.SubmitApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	borrower := valueobject.BorrowerProfile{
		PAN:               req.Borrower.PAN,
		Aadhaar:           req.Borrower.Aadhaar,
		Employment:        valueobject.ParseEmploymentType(req.Borrower.Employment),
		MonthlyIncome:     req.Borrower.MonthlyIncome,
		ExistingEMIs:      req.Borrower.ExistingEMIs,
		MonthlyExpenses:   req.Borrower.MonthlyExpenses,
		YearsOfExperience: req.Borrower.YearsOfExperience,
		Age:               req.Borrower.Age,
		PastDefaults:      req.Borrower.PastDefaults,
		PastRejections:    req.Borrower.PastRejections,
	}
	vehicle := valueobject.VehicleRequest{
		Make:         req.Vehicle.Make,
		Model:        req.Vehicle.Model,
		Category:     req.Vehicle.Category,
		LoanAmount:   req.Vehicle.LoanAmount,
		DownPayment:  req.Vehicle.DownPayment,
		TenureMonths: req.Vehicle.TenureMonths,
	}

	app, err := model.NewLoanApplication(req.TenantID, req.DealerID, borrower, vehicle, now)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("create application: %w", err)
	}

	app, err = app.Submit(now)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("submit application: %w", err)
	}

	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}

	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toApplicationResponse(app), nil
}

func toApplicationResponse(app model.LoanApplication) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:       app.ID(),
		TenantID: app.TenantID(),
		DealerID: app.DealerID(),
		Status:   app.Status().String(),
		Vehicle: dto.VehicleRequest{
			Make:         app.Vehicle().Make,
			Model:        app.Vehicle().Model,
			Category:     app.Vehicle().Category,
			LoanAmount:   app.Vehicle().LoanAmount,
			DownPayment:  app.Vehicle().DownPayment,
			TenureMonths: app.Vehicle().TenureMonths,
		},
		LenderID:        app.LenderID(),
		DecisionNote:    app.DecisionNote(),
		DisbursedAmount: app.DisbursedAmount(),
		CreatedAt:       app.CreatedAt(),
		UpdatedAt:       app.UpdatedAt(),
	}
	if p := app.Prescreen(); p != nil {
		resp.Prescreen = &dto.PrescreenResponse{
			RiskScore:      p.RiskScore,
			RiskCategory:   string(p.RiskCategory),
			CreditScore:    p.CreditScore,
			CreditTier:     string(p.CreditTier),
			MatchedLenders: p.MatchedLenders,
		}
	}
	return resp
}
