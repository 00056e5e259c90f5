package event

import (
	"github.com/shopspring/decimal"

	"github.com/vahanafin/vahana/internal/domain/valueobject"
	"github.com/vahanafin/vahana/pkg/events"
)

// Aggregate type names used for event routing.
const (
	AggregateLoanApplication     = "LoanApplication"
	AggregateCommissionStatement = "CommissionStatement"
	AggregateInsurancePolicy     = "InsurancePolicy"
)

// Event type names.
const (
	TypeApplicationSubmitted   = "application.submitted"
	TypeApplicationPrescreened = "application.prescreened"
	TypeApplicationApproved    = "application.approved"
	TypeApplicationRejected    = "application.rejected"
	TypeLoanDisbursed          = "loan.disbursed"
	TypeCommissionComputed     = "commission.computed"
	TypeInsuranceQuoted        = "insurance.quoted"
	TypeInsurancePolicyBound   = "insurance.policy_bound"
)

// ApplicationSubmitted fires when a draft application enters the pipeline.
type ApplicationSubmitted struct {
	events.BaseEvent
	DealerID   string          `json:"dealer_id"`
	LoanAmount decimal.Decimal `json:"loan_amount"`
	Vehicle    string          `json:"vehicle"`
}

// NewApplicationSubmitted constructs the event.
func NewApplicationSubmitted(applicationID, tenantID, dealerID string, loanAmount decimal.Decimal, vehicle string) ApplicationSubmitted {
	return ApplicationSubmitted{
		BaseEvent:  events.NewBaseEvent(TypeApplicationSubmitted, applicationID, AggregateLoanApplication, tenantID),
		DealerID:   dealerID,
		LoanAmount: loanAmount,
		Vehicle:    vehicle,
	}
}

// ApplicationPrescreened fires after the risk profiler and eligibility
// filter have run.
type ApplicationPrescreened struct {
	events.BaseEvent
	RiskScore      int                      `json:"risk_score"`
	RiskCategory   valueobject.RiskCategory `json:"risk_category"`
	MatchedLenders []string                 `json:"matched_lenders"`
}

// NewApplicationPrescreened constructs the event.
func NewApplicationPrescreened(applicationID, tenantID string, riskScore int, category valueobject.RiskCategory, lenders []string) ApplicationPrescreened {
	return ApplicationPrescreened{
		BaseEvent:      events.NewBaseEvent(TypeApplicationPrescreened, applicationID, AggregateLoanApplication, tenantID),
		RiskScore:      riskScore,
		RiskCategory:   category,
		MatchedLenders: lenders,
	}
}

// ApplicationApproved fires when lender ops approve an application.
type ApplicationApproved struct {
	events.BaseEvent
	LenderID       string          `json:"lender_id"`
	ApprovedAmount decimal.Decimal `json:"approved_amount"`
}

// NewApplicationApproved constructs the event.
func NewApplicationApproved(applicationID, tenantID, lenderID string, approvedAmount decimal.Decimal) ApplicationApproved {
	return ApplicationApproved{
		BaseEvent:      events.NewBaseEvent(TypeApplicationApproved, applicationID, AggregateLoanApplication, tenantID),
		LenderID:       lenderID,
		ApprovedAmount: approvedAmount,
	}
}

// ApplicationRejected fires when an application is declined.
type ApplicationRejected struct {
	events.BaseEvent
	Reason string `json:"reason"`
}

// NewApplicationRejected constructs the event.
func NewApplicationRejected(applicationID, tenantID, reason string) ApplicationRejected {
	return ApplicationRejected{
		BaseEvent: events.NewBaseEvent(TypeApplicationRejected, applicationID, AggregateLoanApplication, tenantID),
		Reason:    reason,
	}
}

// LoanDisbursed fires when the lender confirms disbursement. Commission
// computation keys off this event.
type LoanDisbursed struct {
	events.BaseEvent
	LenderID        string          `json:"lender_id"`
	DealerID        string          `json:"dealer_id"`
	DisbursedAmount decimal.Decimal `json:"disbursed_amount"`
}

// NewLoanDisbursed constructs the event.
func NewLoanDisbursed(applicationID, tenantID, lenderID, dealerID string, amount decimal.Decimal) LoanDisbursed {
	return LoanDisbursed{
		BaseEvent:       events.NewBaseEvent(TypeLoanDisbursed, applicationID, AggregateLoanApplication, tenantID),
		LenderID:        lenderID,
		DealerID:        dealerID,
		DisbursedAmount: amount,
	}
}

// CommissionComputed fires when a commission statement is produced for a
// disbursed loan.
type CommissionComputed struct {
	events.BaseEvent
	ApplicationID   string          `json:"application_id"`
	LenderID        string          `json:"lender_id"`
	DealerID        string          `json:"dealer_id"`
	TotalCommission decimal.Decimal `json:"total_commission"`
	DealerNet       decimal.Decimal `json:"dealer_net"`
	PlatformNet     decimal.Decimal `json:"platform_net"`
}

// NewCommissionComputed constructs the event.
func NewCommissionComputed(statementID, tenantID, applicationID, lenderID, dealerID string, total, dealerNet, platformNet decimal.Decimal) CommissionComputed {
	return CommissionComputed{
		BaseEvent:       events.NewBaseEvent(TypeCommissionComputed, statementID, AggregateCommissionStatement, tenantID),
		ApplicationID:   applicationID,
		LenderID:        lenderID,
		DealerID:        dealerID,
		TotalCommission: total,
		DealerNet:       dealerNet,
		PlatformNet:     platformNet,
	}
}

// InsuranceQuoted fires when a premium quote is generated.
type InsuranceQuoted struct {
	events.BaseEvent
	ProviderID string                   `json:"provider_id"`
	Coverage   valueobject.CoverageType `json:"coverage"`
	Premium    decimal.Decimal          `json:"premium"`
}

// NewInsuranceQuoted constructs the event.
func NewInsuranceQuoted(policyID, tenantID, providerID string, coverage valueobject.CoverageType, premium decimal.Decimal) InsuranceQuoted {
	return InsuranceQuoted{
		BaseEvent:  events.NewBaseEvent(TypeInsuranceQuoted, policyID, AggregateInsurancePolicy, tenantID),
		ProviderID: providerID,
		Coverage:   coverage,
		Premium:    premium,
	}
}

// InsurancePolicyBound fires when a quoted policy is purchased.
type InsurancePolicyBound struct {
	events.BaseEvent
	ProviderID string          `json:"provider_id"`
	Premium    decimal.Decimal `json:"premium"`
}

// NewInsurancePolicyBound constructs the event.
func NewInsurancePolicyBound(policyID, tenantID, providerID string, premium decimal.Decimal) InsurancePolicyBound {
	return InsurancePolicyBound{
		BaseEvent:  events.NewBaseEvent(TypeInsurancePolicyBound, policyID, AggregateInsurancePolicy, tenantID),
		ProviderID: providerID,
		Premium:    premium,
	}
}
