package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vahanafin/vahana/internal/application/dto"
	"github.com/vahanafin/vahana/internal/domain/port"
)

// PayCommissionUseCase settles a pending commission statement.
type PayCommissionUseCase struct {
	commissionRepo port.CommissionRepository
	publisher      port.EventPublisher
}

// NewPayCommissionUseCase wires dependencies.
func NewPayCommissionUseCase(
	commissionRepo port.CommissionRepository,
	publisher port.EventPublisher,
) *PayCommissionUseCase {
	return &PayCommissionUseCase{commissionRepo: commissionRepo, publisher: publisher}
}

// Execute marks the statement paid.
func (uc *PayCommissionUseCase) Execute(
	ctx context.Context,
	req dto.PayCommissionRequest,
) (dto.CommissionStatementResponse, error) {
	now := time.Now().UTC()

	st, err := uc.commissionRepo.FindByID(ctx, req.TenantID, req.StatementID)
	if err != nil {
		return dto.CommissionStatementResponse{}, fmt.Errorf("find statement: %w", err)
	}

	st, err = st.MarkPaid(now)
	if err != nil {
		return dto.CommissionStatementResponse{}, fmt.Errorf("mark paid: %w", err)
	}

	if err := uc.commissionRepo.Save(ctx, st); err != nil {
		return dto.CommissionStatementResponse{}, fmt.Errorf("save statement: %w", err)
	}
	if err := uc.publisher.Publish(ctx, st.DomainEvents()...); err != nil {
		return dto.CommissionStatementResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toStatementResponse(st), nil
}
