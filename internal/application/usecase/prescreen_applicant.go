package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/vahanafin/vahana/internal/application/dto"
	"github.com/vahanafin/vahana/internal/domain/model"
	"github.com/vahanafin/vahana/internal/domain/port"
	"github.com/vahanafin/vahana/internal/domain/service"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

// PrescreenApplicantUseCase runs identity verification, bureau pull, risk
// profiling, credit scoring, affordability and lender matching on a
// submitted application.
type PrescreenApplicantUseCase struct {
	appRepo    port.ApplicationRepository
	ruleRepo   port.LenderRuleRepository
	publisher  port.EventPublisher
	identity   port.IdentityVerifier
	bureau     port.CreditBureauClient
	profiler   *service.RiskProfiler
	scorecard  *service.CreditScorecard
	afford     *service.AffordabilityCalculator
	filter     *service.EligibilityFilter
	annualRate decimal.Decimal
}

// NewPrescreenApplicantUseCase wires dependencies. annualRate is the nominal
// annual interest rate used to estimate the requested EMI.
func NewPrescreenApplicantUseCase(
	appRepo port.ApplicationRepository,
	ruleRepo port.LenderRuleRepository,
	publisher port.EventPublisher,
	identity port.IdentityVerifier,
	bureau port.CreditBureauClient,
	profiler *service.RiskProfiler,
	scorecard *service.CreditScorecard,
	afford *service.AffordabilityCalculator,
	filter *service.EligibilityFilter,
	annualRate decimal.Decimal,
) *PrescreenApplicantUseCase {
	return &PrescreenApplicantUseCase{
		appRepo:    appRepo,
		ruleRepo:   ruleRepo,
		publisher:  publisher,
		identity:   identity,
		bureau:     bureau,
		profiler:   profiler,
		scorecard:  scorecard,
		afford:     afford,
		filter:     filter,
		annualRate: annualRate,
	}
}

// Execute prescreens a submitted application. External lookups (PAN,
// Aadhaar, bureau) run concurrently; a failure in any of them fails the
// whole prescreen rather than scoring on partial data.
func (uc *PrescreenApplicantUseCase) Execute(
	ctx context.Context,
	req dto.PrescreenApplicantRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	app, err := uc.appRepo.FindByID(ctx, req.TenantID, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}

	borrower := app.Borrower()

	var (
		panValid, aadhaarValid bool
		bureauScore            int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var verr error
		panValid, verr = uc.identity.VerifyPAN(gctx, borrower.PAN)
		if verr != nil {
			return fmt.Errorf("verify PAN: %w", verr)
		}
		return nil
	})
	g.Go(func() error {
		var verr error
		aadhaarValid, verr = uc.identity.VerifyAadhaar(gctx, borrower.Aadhaar)
		if verr != nil {
			return fmt.Errorf("verify aadhaar: %w", verr)
		}
		return nil
	})
	g.Go(func() error {
		var berr error
		bureauScore, berr = uc.bureau.GetCreditScore(gctx, borrower.PAN)
		if berr != nil {
			return fmt.Errorf("fetch bureau score: %w", berr)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.ApplicationResponse{}, err
	}

	bank := valueobject.BankSignal{
		MonthlyInflow:  req.BankStatement.MonthlyInflow,
		MonthlyOutflow: req.BankStatement.MonthlyOutflow,
		AverageBalance: req.BankStatement.AverageBalance,
		BouncedCheques: req.BankStatement.BouncedCheques,
		Trend:          valueobject.ParseInflowTrend(req.BankStatement.InflowTrend),
		SalaryCredits:  req.BankStatement.SalaryCredits,
	}

	risk := uc.profiler.Score(service.RiskInputs{
		PANValid:      panValid,
		AadhaarValid:  aadhaarValid,
		CreditScore:   bureauScore,
		MonthlyIncome: borrower.MonthlyIncome,
		ExistingEMIs:  borrower.ExistingEMIs,
		Bank:          bank,
		Employment:    borrower.Employment,
	})

	estimatedEMI := service.MonthlyInstallment(app.Vehicle().LoanAmount, uc.annualRate, app.Vehicle().TenureMonths)
	affordability := uc.afford.Evaluate(service.AffordabilityInputs{
		MonthlyIncome:   borrower.MonthlyIncome,
		ExistingEMIs:    borrower.ExistingEMIs,
		MonthlyExpenses: borrower.MonthlyExpenses,
		RequestedEMI:    estimatedEMI,
	})

	credit := uc.scorecard.Score(service.ScorecardInputs{
		PANValid:       panValid,
		AadhaarValid:   aadhaarValid,
		BureauScore:    bureauScore,
		Bank:           bank,
		Affordability:  affordability,
		Employment:     borrower.Employment,
		MonthlyIncome:  borrower.MonthlyIncome,
		PastDefaults:   borrower.PastDefaults,
		PastRejections: borrower.PastRejections,
	})

	rules, err := uc.ruleRepo.FindActive(ctx, req.TenantID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("load lender rules: %w", err)
	}

	scored := borrower
	scored.CreditScore = bureauScore
	matched := uc.filter.Match(rules, scored, app.Vehicle(), app.Vehicle().LoanAmount)
	lenderIDs := make([]string, 0, len(matched))
	for _, rule := range matched {
		lenderIDs = append(lenderIDs, rule.LenderID)
	}

	if !panValid || !aadhaarValid {
		app, err = app.Reject("identity verification failed", now)
	} else if risk.Category == valueobject.RiskHigh && len(lenderIDs) == 0 {
		app, err = app.Reject("high risk profile with no eligible lenders", now)
	} else {
		app, err = app.RecordPrescreen(model.PrescreenOutcome{
			RiskScore:      risk.Score,
			RiskCategory:   risk.Category,
			CreditScore:    credit.Score,
			CreditTier:     credit.Tier,
			MatchedLenders: lenderIDs,
		}, now)
	}
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("apply prescreen outcome: %w", err)
	}

	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}
	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	resp := toApplicationResponse(app)
	resp.Prescreen = &dto.PrescreenResponse{
		RiskScore:       risk.Score,
		RiskCategory:    string(risk.Category),
		RiskBreakdown:   toComponentResponses(risk.Breakdown),
		CreditScore:     credit.Score,
		CreditTier:      string(credit.Tier),
		CreditBreakdown: toComponentResponses(credit.Breakdown),
		BureauScore:     bureauScore,
		Affordability: dto.AffordabilityResponse{
			RecommendedMaxEMI:         affordability.RecommendedMaxEMI,
			EstimatedEMI:              estimatedEMI,
			TotalEMIAfterLoan:         affordability.TotalEMIAfterLoan,
			DisposableIncome:          affordability.DisposableIncome,
			DisposableIncomeAfterLoan: affordability.DisposableIncomeAfterLoan,
			Affordable:                affordability.Affordable,
			Warning:                   affordability.Warning,
		},
		MatchedLenders: lenderIDs,
	}
	return resp, nil
}

func toComponentResponses(b valueobject.ScoreBreakdown) []dto.ScoreComponentResponse {
	out := make([]dto.ScoreComponentResponse, 0, len(b.Components))
	for _, c := range b.Components {
		out = append(out, dto.ScoreComponentResponse{Name: c.Name, Points: c.Points, Max: c.Max})
	}
	return out
}
