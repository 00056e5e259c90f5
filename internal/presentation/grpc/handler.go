package grpc

import (
	"context"

	"github.com/vahanafin/vahana/internal/application/usecase"
)

// OriginationHandler exposes the origination operations over gRPC. Each
// method delegates to one application use case.
type OriginationHandler struct {
	UnimplementedOriginationServiceServer

	submitApp     *usecase.SubmitApplicationUseCase
	prescreen     *usecase.PrescreenApplicantUseCase
	decide        *usecase.DecideApplicationUseCase
	disburse      *usecase.DisburseLoanUseCase
	quote         *usecase.QuoteInsuranceUseCase
	bind          *usecase.BindPolicyUseCase
	payCommission *usecase.PayCommissionUseCase
	getApp        *usecase.GetApplicationUseCase
	getCommission *usecase.GetCommissionUseCase
	listApps      *usecase.ListApplicationsUseCase
	getQuotes     *usecase.GetQuotesUseCase
}

// NewOriginationHandler creates a handler with all use-case dependencies.
func NewOriginationHandler(
	submitApp *usecase.SubmitApplicationUseCase,
	prescreen *usecase.PrescreenApplicantUseCase,
	decide *usecase.DecideApplicationUseCase,
	disburse *usecase.DisburseLoanUseCase,
	quote *usecase.QuoteInsuranceUseCase,
	bind *usecase.BindPolicyUseCase,
	payCommission *usecase.PayCommissionUseCase,
	getApp *usecase.GetApplicationUseCase,
	getCommission *usecase.GetCommissionUseCase,
	listApps *usecase.ListApplicationsUseCase,
	getQuotes *usecase.GetQuotesUseCase,
) *OriginationHandler {
	return &OriginationHandler{
		submitApp:     submitApp,
		prescreen:     prescreen,
		decide:        decide,
		disburse:      disburse,
		quote:         quote,
		bind:          bind,
		payCommission: payCommission,
		getApp:        getApp,
		getCommission: getCommission,
		listApps:      listApps,
		getQuotes:     getQuotes,
	}
}

// SubmitApplication registers a new loan application in DRAFT and submits it.
func (h *OriginationHandler) SubmitApplication(ctx context.Context, req *SubmitApplicationRequest) (*SubmitApplicationResponse, error) {
	resp, err := h.submitApp.Execute(ctx, *req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// PrescreenApplicant runs identity, risk, scorecard, affordability and
// lender-eligibility checks on a submitted application.
func (h *OriginationHandler) PrescreenApplicant(ctx context.Context, req *PrescreenApplicantRequest) (*PrescreenApplicantResponse, error) {
	resp, err := h.prescreen.Execute(ctx, *req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DecideApplication records an approve or reject decision on a prescreened
// application.
func (h *OriginationHandler) DecideApplication(ctx context.Context, req *DecideApplicationRequest) (*DecideApplicationResponse, error) {
	resp, err := h.decide.Execute(ctx, *req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DisburseLoan marks an approved application disbursed and computes the
// dealer commission statement.
func (h *OriginationHandler) DisburseLoan(ctx context.Context, req *DisburseLoanRequest) (*DisburseLoanResponse, error) {
	resp, err := h.disburse.Execute(ctx, *req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// QuoteInsurance prices a loan-linked insurance policy.
func (h *OriginationHandler) QuoteInsurance(ctx context.Context, req *QuoteInsuranceRequest) (*QuoteInsuranceResponse, error) {
	resp, err := h.quote.Execute(ctx, *req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// BindPolicy purchases a quoted policy.
func (h *OriginationHandler) BindPolicy(ctx context.Context, req *BindPolicyRequest) (*BindPolicyResponse, error) {
	resp, err := h.bind.Execute(ctx, *req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// PayCommission settles a pending commission statement.
func (h *OriginationHandler) PayCommission(ctx context.Context, req *PayCommissionRequest) (*PayCommissionResponse, error) {
	resp, err := h.payCommission.Execute(ctx, *req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetApplication retrieves an application by ID.
func (h *OriginationHandler) GetApplication(ctx context.Context, req *GetApplicationRequest) (*GetApplicationResponse, error) {
	resp, err := h.getApp.Execute(ctx, *req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCommission retrieves the commission statement for an application.
func (h *OriginationHandler) GetCommission(ctx context.Context, req *GetCommissionRequest) (*GetCommissionResponse, error) {
	resp, err := h.getCommission.Execute(ctx, *req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListApplications lists a dealer's applications.
func (h *OriginationHandler) ListApplications(ctx context.Context, req *ListApplicationsRequest) (*ListApplicationsResponse, error) {
	resp, err := h.listApps.Execute(ctx, *req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetQuotes lists the policies quoted for an application.
func (h *OriginationHandler) GetQuotes(ctx context.Context, req *GetQuotesRequest) (*GetQuotesResponse, error) {
	resp, err := h.getQuotes.Execute(ctx, *req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
