package usecase

import (
	"context"
	"fmt"

	"github.com/vahanafin/vahana/internal/application/dto"
	"github.com/vahanafin/vahana/internal/domain/port"
)

// GetApplicationUseCase retrieves a single application.
type GetApplicationUseCase struct {
	appRepo port.ApplicationRepository
}

// NewGetApplicationUseCase wires dependencies.
func NewGetApplicationUseCase(appRepo port.ApplicationRepository) *GetApplicationUseCase {
	return &GetApplicationUseCase{appRepo: appRepo}
}

// Execute loads the application.
func (uc *GetApplicationUseCase) Execute(
	ctx context.Context,
	req dto.GetApplicationRequest,
) (dto.ApplicationResponse, error) {
	app, err := uc.appRepo.FindByID(ctx, req.TenantID, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	return toApplicationResponse(app), nil
}

// ListApplicationsUseCase lists a dealer's applications, newest first.
type ListApplicationsUseCase struct {
	appRepo port.ApplicationRepository
}

// NewListApplicationsUseCase wires dependencies.
func NewListApplicationsUseCase(appRepo port.ApplicationRepository) *ListApplicationsUseCase {
	return &ListApplicationsUseCase{appRepo: appRepo}
}

// Execute loads the dealer's applications.
func (uc *ListApplicationsUseCase) Execute(
	ctx context.Context,
	req dto.ListApplicationsRequest,
) (dto.ListApplicationsResponse, error) {
	apps, err := uc.appRepo.FindByDealerID(ctx, req.TenantID, req.DealerID)
	if err != nil {
		return dto.ListApplicationsResponse{}, fmt.Errorf("list applications: %w", err)
	}

	resp := dto.ListApplicationsResponse{
		Applications: make([]dto.ApplicationResponse, 0, len(apps)),
	}
	for _, app := range apps {
		resp.Applications = append(resp.Applications, toApplicationResponse(app))
	}
	return resp, nil
}

// GetQuotesUseCase lists the policies quoted for an application.
type GetQuotesUseCase struct {
	policyRepo port.PolicyRepository
}

// NewGetQuotesUseCase wires dependencies.
func NewGetQuotesUseCase(policyRepo port.PolicyRepository) *GetQuotesUseCase {
	return &GetQuotesUseCase{policyRepo: policyRepo}
}

// Execute loads the application's quoted policies.
func (uc *GetQuotesUseCase) Execute(
	ctx context.Context,
	req dto.GetQuotesRequest,
) (dto.GetQuotesResponse, error) {
	policies, err := uc.policyRepo.FindByApplicationID(ctx, req.TenantID, req.ApplicationID)
	if err != nil {
		return dto.GetQuotesResponse{}, fmt.Errorf("list quotes: %w", err)
	}

	resp := dto.GetQuotesResponse{
		Policies: make([]dto.InsurancePolicyResponse, 0, len(policies)),
	}
	for _, p := range policies {
		resp.Policies = append(resp.Policies, toPolicyResponse(p))
	}
	return resp, nil
}

// GetCommissionUseCase retrieves the statement for a disbursed application.
type GetCommissionUseCase struct {
	commissionRepo port.CommissionRepository
}

// NewGetCommissionUseCase wires dependencies.
func NewGetCommissionUseCase(commissionRepo port.CommissionRepository) *GetCommissionUseCase {
	return &GetCommissionUseCase{commissionRepo: commissionRepo}
}

// Execute loads the statement by application ID.
func (uc *GetCommissionUseCase) Execute(
	ctx context.Context,
	req dto.GetCommissionRequest,
) (dto.CommissionStatementResponse, error) {
	st, err := uc.commissionRepo.FindByApplicationID(ctx, req.TenantID, req.ApplicationID)
	if err != nil {
		return dto.CommissionStatementResponse{}, fmt.Errorf("find statement: %w", err)
	}
	return toStatementResponse(st), nil
}
