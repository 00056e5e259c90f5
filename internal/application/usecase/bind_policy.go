package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vahanafin/vahana/internal/application/dto"
	"github.com/vahanafin/vahana/internal/domain/port"
)

// BindPolicyUseCase purchases a quoted insurance policy.
type BindPolicyUseCase struct {
	policyRepo port.PolicyRepository
	publisher  port.EventPublisher
}

// NewBindPolicyUseCase wires dependencies.
func NewBindPolicyUseCase(
	policyRepo port.PolicyRepository,
	publisher port.EventPublisher,
) *BindPolicyUseCase {
	return &BindPolicyUseCase{policyRepo: policyRepo, publisher: publisher}
}

// Execute binds the policy.
func (uc *BindPolicyUseCase) Execute(
	ctx context.Context,
	req dto.BindPolicyRequest,
) (dto.InsurancePolicyResponse, error) {
	now := time.Now().UTC()

	policy, err := uc.policyRepo.FindByID(ctx, req.TenantID, req.PolicyID)
	if err != nil {
		return dto.InsurancePolicyResponse{}, fmt.Errorf("find policy: %w", err)
	}

	policy, err = policy.Bind(now)
	if err != nil {
		return dto.InsurancePolicyResponse{}, fmt.Errorf("bind policy: %w", err)
	}

	if err := uc.policyRepo.Save(ctx, policy); err != nil {
		return dto.InsurancePolicyResponse{}, fmt.Errorf("save policy: %w", err)
	}
	if err := uc.publisher.Publish(ctx, policy.DomainEvents()...); err != nil {
		return dto.InsurancePolicyResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toPolicyResponse(policy), nil
}
