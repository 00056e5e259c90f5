package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vahanafin/vahana/internal/application/dto"
	"github.com/vahanafin/vahana/internal/domain/model"
	"github.com/vahanafin/vahana/internal/domain/port"
	"github.com/vahanafin/vahana/internal/domain/service"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

// QuoteInsuranceUseCase prices a loan-linked insurance policy for an
// application and stores it in QUOTED state.
type QuoteInsuranceUseCase struct {
	appRepo    port.ApplicationRepository
	policyRepo port.PolicyRepository
	counter    port.PolicyCounter
	publisher  port.EventPublisher
	pricer     *service.InsurancePricer
}

// NewQuoteInsuranceUseCase wires dependencies.
func NewQuoteInsuranceUseCase(
	appRepo port.ApplicationRepository,
	policyRepo port.PolicyRepository,
	counter port.PolicyCounter,
	publisher port.EventPublisher,
	pricer *service.InsurancePricer,
) *QuoteInsuranceUseCase {
	return &QuoteInsuranceUseCase{
		appRepo:    appRepo,
		policyRepo: policyRepo,
		counter:    counter,
		publisher:  publisher,
		pricer:     pricer,
	}
}

// Execute prices and records a quote.
func (uc *QuoteInsuranceUseCase) Execute(
	ctx context.Context,
	req dto.QuoteInsuranceRequest,
) (dto.InsurancePolicyResponse, error) {
	now := time.Now().UTC()

	app, err := uc.appRepo.FindByID(ctx, req.TenantID, req.ApplicationID)
	if err != nil {
		return dto.InsurancePolicyResponse{}, fmt.Errorf("find application: %w", err)
	}

	monthlyCount, err := uc.counter.MonthlyCount(ctx, req.ProviderID, now)
	if err != nil {
		return dto.InsurancePolicyResponse{}, fmt.Errorf("load monthly policy count: %w", err)
	}

	borrower := app.Borrower()
	quote := uc.pricer.Quote(
		req.ProviderID,
		valueobject.ParseCoverageType(req.Coverage),
		service.RiskAttributes{
			CreditScore:   borrower.CreditScore,
			Employment:    borrower.Employment,
			Age:           borrower.Age,
			MonthlyIncome: borrower.MonthlyIncome,
			ExistingEMIs:  borrower.ExistingEMIs,
			LoanAmount:    app.Vehicle().LoanAmount,
			TenureMonths:  app.Vehicle().TenureMonths,
		},
		monthlyCount,
	)

	policy, err := model.NewInsurancePolicy(req.TenantID, app.ID(), quote, now)
	if err != nil {
		return dto.InsurancePolicyResponse{}, fmt.Errorf("create policy: %w", err)
	}

	if err := uc.policyRepo.Save(ctx, policy); err != nil {
		return dto.InsurancePolicyResponse{}, fmt.Errorf("save policy: %w", err)
	}
	if err := uc.counter.Increment(ctx, req.ProviderID, now); err != nil {
		return dto.InsurancePolicyResponse{}, fmt.Errorf("increment policy count: %w", err)
	}
	if err := uc.publisher.Publish(ctx, policy.DomainEvents()...); err != nil {
		return dto.InsurancePolicyResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toPolicyResponse(policy), nil
}

func toPolicyResponse(p model.InsurancePolicy) dto.InsurancePolicyResponse {
	q := p.Quote()
	return dto.InsurancePolicyResponse{
		ID:                  p.ID(),
		TenantID:            p.TenantID(),
		ApplicationID:       p.ApplicationID(),
		ProviderID:          q.ProviderID,
		Coverage:            string(q.Coverage),
		CoverageAmount:      q.CoverageAmount,
		BasePremium:         q.BasePremium,
		RiskMultiplier:      q.RiskMultiplier,
		VolumeDiscount:      q.VolumeDiscount,
		Premium:             q.Premium,
		ProviderCommission:  q.ProviderCommission,
		UsedDefaultProvider: q.UsedDefaultProvider,
		Status:              p.Status(),
		BoundAt:             p.BoundAt(),
		CreatedAt:           p.CreatedAt(),
	}
}
