package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// BorrowerRequest is the applicant snapshot supplied at submission.
type BorrowerRequest struct {
	PAN               string          `json:"pan"`
	Aadhaar           string          `json:"aadhaar"`
	Employment        string          `json:"employment"`
	MonthlyIncome     decimal.Decimal `json:"monthly_income"`
	ExistingEMIs      decimal.Decimal `json:"existing_emis"`
	MonthlyExpenses   decimal.Decimal `json:"monthly_expenses"`
	YearsOfExperience int             `json:"years_of_experience"`
	Age               int             `json:"age"`
	PastDefaults      int             `json:"past_defaults"`
	PastRejections    int             `json:"past_rejections"`
}

// VehicleRequest is the vehicle and financing ask supplied at submission.
type VehicleRequest struct {
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	Category     string          `json:"category"`
	LoanAmount   decimal.Decimal `json:"loan_amount"`
	DownPayment  decimal.Decimal `json:"down_payment"`
	TenureMonths int             `json:"tenure_months"`
}

// SubmitApplicationRequest carries the data needed to submit a new
// application.
type SubmitApplicationRequest struct {
	TenantID string          `json:"tenant_id"`
	DealerID string          `json:"dealer_id"`
	Borrower BorrowerRequest `json:"borrower"`
	Vehicle  VehicleRequest  `json:"vehicle"`
}

// PrescreenApplicantRequest identifies a submitted application to prescreen.
type PrescreenApplicantRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
	// BankStatement is the parsed statement summary for the applicant.
	BankStatement BankStatementRequest `json:"bank_statement"`
}

// BankStatementRequest is the parsed bank statement summary.
type BankStatementRequest struct {
	MonthlyInflow  decimal.Decimal `json:"monthly_inflow"`
	MonthlyOutflow decimal.Decimal `json:"monthly_outflow"`
	AverageBalance decimal.Decimal `json:"average_balance"`
	BouncedCheques int             `json:"bounced_cheques"`
	InflowTrend    string          `json:"inflow_trend"`
	SalaryCredits  int             `json:"salary_credits"`
}

// DecideApplicationRequest carries a lender-ops decision on a prescreened
// application.
type DecideApplicationRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
	Approve       bool   `json:"approve"`
	LenderID      string `json:"lender_id,omitempty"`
	Note          string `json:"note,omitempty"`
}

// DisburseLoanRequest confirms disbursement of an approved application.
type DisburseLoanRequest struct {
	TenantID        string          `json:"tenant_id"`
	ApplicationID   string          `json:"application_id"`
	DisbursedAmount decimal.Decimal `json:"disbursed_amount"`
	DealerPlan      string          `json:"dealer_plan"`
}

// QuoteInsuranceRequest prices a policy for an application.
type QuoteInsuranceRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
	ProviderID    string `json:"provider_id"`
	Coverage      string `json:"coverage"`
}

// BindPolicyRequest purchases a quoted policy.
type BindPolicyRequest struct {
	TenantID string `json:"tenant_id"`
	PolicyID string `json:"policy_id"`
}

// PayCommissionRequest settles a pending statement.
type PayCommissionRequest struct {
	TenantID    string `json:"tenant_id"`
	StatementID string `json:"statement_id"`
}

// GetApplicationRequest identifies an application to retrieve.
type GetApplicationRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
}

// GetCommissionRequest identifies a statement to retrieve by application.
type GetCommissionRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
}

// ListApplicationsRequest identifies a dealer whose applications to list.
type ListApplicationsRequest struct {
	TenantID string `json:"tenant_id"`
	DealerID string `json:"dealer_id"`
}

// GetQuotesRequest identifies an application whose policy quotes to list.
type GetQuotesRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ScoreComponentResponse is one named sub-score of a scoring model.
type ScoreComponentResponse struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Max    int    `json:"max"`
}

// AffordabilityResponse is the EMI affordability verdict.
type AffordabilityResponse struct {
	RecommendedMaxEMI         decimal.Decimal `json:"recommended_max_emi"`
	EstimatedEMI              decimal.Decimal `json:"estimated_emi"`
	TotalEMIAfterLoan         decimal.Decimal `json:"total_emi_after_loan"`
	DisposableIncome          decimal.Decimal `json:"disposable_income"`
	DisposableIncomeAfterLoan decimal.Decimal `json:"disposable_income_after_loan"`
	Affordable                bool            `json:"affordable"`
	Warning                   string          `json:"warning,omitempty"`
}

// PrescreenResponse is the full prescreening outcome.
type PrescreenResponse struct {
	RiskScore       int                      `json:"risk_score"`
	RiskCategory    string                   `json:"risk_category"`
	RiskBreakdown   []ScoreComponentResponse `json:"risk_breakdown"`
	CreditScore     int                      `json:"credit_score"`
	CreditTier      string                   `json:"credit_tier"`
	CreditBreakdown []ScoreComponentResponse `json:"credit_breakdown"`
	BureauScore     int                      `json:"bureau_score"`
	Affordability   AffordabilityResponse    `json:"affordability"`
	MatchedLenders  []string                 `json:"matched_lenders"`
}

// ApplicationResponse is the external representation of an application.
type ApplicationResponse struct {
	ID              string             `json:"id"`
	TenantID        string             `json:"tenant_id"`
	DealerID        string             `json:"dealer_id"`
	Status          string             `json:"status"`
	Vehicle         VehicleRequest     `json:"vehicle"`
	LenderID        string             `json:"lender_id,omitempty"`
	DecisionNote    string             `json:"decision_note,omitempty"`
	DisbursedAmount decimal.Decimal    `json:"disbursed_amount"`
	Prescreen       *PrescreenResponse `json:"prescreen,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// CommissionStatementResponse is the external representation of a statement.
type CommissionStatementResponse struct {
	ID              string          `json:"id"`
	TenantID        string          `json:"tenant_id"`
	ApplicationID   string          `json:"application_id"`
	DealerID        string          `json:"dealer_id"`
	LenderID        string          `json:"lender_id"`
	PlanTier        string          `json:"plan_tier"`
	Rate            decimal.Decimal `json:"rate"`
	UsedDefaultRate bool            `json:"used_default_rate"`
	TotalCommission decimal.Decimal `json:"total_commission"`
	DealerGross     decimal.Decimal `json:"dealer_gross"`
	DealerFee       decimal.Decimal `json:"dealer_fee"`
	DealerNet       decimal.Decimal `json:"dealer_net"`
	PlatformGross   decimal.Decimal `json:"platform_gross"`
	PlatformFee     decimal.Decimal `json:"platform_fee"`
	PlatformNet     decimal.Decimal `json:"platform_net"`
	Bonus           decimal.Decimal `json:"bonus"`
	GST             decimal.Decimal `json:"gst"`
	DealerPayout    decimal.Decimal `json:"dealer_payout"`
	PlatformPayable decimal.Decimal `json:"platform_payable"`
	Status          string          `json:"status"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ListApplicationsResponse is a dealer's applications, newest first.
type ListApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}

// GetQuotesResponse is the policies quoted for one application.
type GetQuotesResponse struct {
	Policies []InsurancePolicyResponse `json:"policies"`
}

// InsurancePolicyResponse is the external representation of a policy.
type InsurancePolicyResponse struct {
	ID                  string          `json:"id"`
	TenantID            string          `json:"tenant_id"`
	ApplicationID       string          `json:"application_id"`
	ProviderID          string          `json:"provider_id"`
	Coverage            string          `json:"coverage"`
	CoverageAmount      decimal.Decimal `json:"coverage_amount"`
	BasePremium         decimal.Decimal `json:"base_premium"`
	RiskMultiplier      decimal.Decimal `json:"risk_multiplier"`
	VolumeDiscount      decimal.Decimal `json:"volume_discount"`
	Premium             decimal.Decimal `json:"premium"`
	ProviderCommission  decimal.Decimal `json:"provider_commission"`
	UsedDefaultProvider bool            `json:"used_default_provider"`
	Status              string          `json:"status"`
	BoundAt             *time.Time      `json:"bound_at,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}
