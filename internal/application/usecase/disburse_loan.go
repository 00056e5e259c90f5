package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vahanafin/vahana/internal/application/dto"
	"github.com/vahanafin/vahana/internal/domain/model"
	"github.com/vahanafin/vahana/internal/domain/port"
	"github.com/vahanafin/vahana/internal/domain/service"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

// DisburseLoanUseCase marks an approved application as disbursed and
// produces the commission statement for the disbursal, including the
// dealer's monthly performance bonus.
type DisburseLoanUseCase struct {
	appRepo        port.ApplicationRepository
	commissionRepo port.CommissionRepository
	publisher      port.EventPublisher
	engine         *service.CommissionEngine
}

// NewDisburseLoanUseCase wires dependencies.
func NewDisburseLoanUseCase(
	appRepo port.ApplicationRepository,
	commissionRepo port.CommissionRepository,
	publisher port.EventPublisher,
	engine *service.CommissionEngine,
) *DisburseLoanUseCase {
	return &DisburseLoanUseCase{
		appRepo:        appRepo,
		commissionRepo: commissionRepo,
		publisher:      publisher,
		engine:         engine,
	}
}

// Execute disburses the loan and computes commission.
func (uc *DisburseLoanUseCase) Execute(
	ctx context.Context,
	req dto.DisburseLoanRequest,
) (dto.CommissionStatementResponse, error) {
	now := time.Now().UTC()

	app, err := uc.appRepo.FindByID(ctx, req.TenantID, req.ApplicationID)
	if err != nil {
		return dto.CommissionStatementResponse{}, fmt.Errorf("find application: %w", err)
	}

	app, err = app.MarkDisbursed(req.DisbursedAmount, now)
	if err != nil {
		return dto.CommissionStatementResponse{}, fmt.Errorf("mark disbursed: %w", err)
	}

	tier := valueobject.ParsePlanTier(req.DealerPlan)
	breakdown := uc.engine.Compute(req.DisbursedAmount, app.LenderID(), tier)

	// Monthly performance bonus over the dealer's current calendar month.
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	stats, err := uc.appRepo.CountDealerStats(ctx, req.TenantID, app.DealerID(), monthStart)
	if err != nil {
		return dto.CommissionStatementResponse{}, fmt.Errorf("load dealer stats: %w", err)
	}
	bonus := uc.engine.PerformanceBonus(service.BonusInputs{
		MonthlyApplications: stats.TotalApplications,
		ApprovalRate:        approvalRate(stats),
		LoanVolume:          stats.DisbursedVolume,
	}).BonusAmount(breakdown.DealerNet)

	statement, err := model.NewCommissionStatement(
		req.TenantID, app.ID(), app.DealerID(), breakdown, bonus, now,
	)
	if err != nil {
		return dto.CommissionStatementResponse{}, fmt.Errorf("create statement: %w", err)
	}

	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.CommissionStatementResponse{}, fmt.Errorf("save application: %w", err)
	}
	if err := uc.commissionRepo.Save(ctx, statement); err != nil {
		return dto.CommissionStatementResponse{}, fmt.Errorf("save statement: %w", err)
	}

	evts := append(app.DomainEvents(), statement.DomainEvents()...)
	if err := uc.publisher.Publish(ctx, evts...); err != nil {
		return dto.CommissionStatementResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toStatementResponse(statement), nil
}

func approvalRate(stats port.DealerStats) decimal.Decimal {
	if stats.TotalApplications == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(stats.ApprovedApplications)).
		Div(decimal.NewFromInt(int64(stats.TotalApplications)))
}

func toStatementResponse(st model.CommissionStatement) dto.CommissionStatementResponse {
	b := st.Breakdown()
	return dto.CommissionStatementResponse{
		ID:              st.ID(),
		TenantID:        st.TenantID(),
		ApplicationID:   st.ApplicationID(),
		DealerID:        st.DealerID(),
		LenderID:        b.LenderID,
		PlanTier:        string(b.PlanTier),
		Rate:            b.Rate,
		UsedDefaultRate: b.UsedDefaultRate,
		TotalCommission: b.TotalCommission,
		DealerGross:     b.DealerGross,
		DealerFee:       b.DealerFee,
		DealerNet:       b.DealerNet,
		PlatformGross:   b.PlatformGross,
		PlatformFee:     b.PlatformFee,
		PlatformNet:     b.PlatformNet,
		Bonus:           st.Bonus(),
		GST:             st.GST(),
		DealerPayout:    st.DealerPayout(),
		PlatformPayable: st.PlatformPayable(),
		Status:          st.Status(),
		PaidAt:          st.PaidAt(),
		CreatedAt:       st.CreatedAt(),
	}
}
