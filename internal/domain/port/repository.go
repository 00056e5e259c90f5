package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vahanafin/vahana/internal/domain/model"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
	"github.com/vahanafin/vahana/pkg/events"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ApplicationRepository persists and retrieves loan applications.
type ApplicationRepository interface {
	Save(ctx context.Context, app model.LoanApplication) error
	FindByID(ctx context.Context, tenantID, id string) (model.LoanApplication, error)
	FindByDealerID(ctx context.Context, tenantID, dealerID string) ([]model.LoanApplication, error)
	// CountDealerStats returns total and approved application counts plus the
	// disbursed volume for a dealer since the given time.
	CountDealerStats(ctx context.Context, tenantID, dealerID string, since time.Time) (DealerStats, error)
}

// DealerStats is a dealer's aggregate performance over a period.
type DealerStats struct {
	TotalApplications    int
	ApprovedApplications int
	DisbursedVolume      decimal.Decimal
}

// CommissionRepository persists and retrieves commission statements.
type CommissionRepository interface {
	Save(ctx context.Context, st model.CommissionStatement) error
	FindByID(ctx context.Context, tenantID, id string) (model.CommissionStatement, error)
	FindByApplicationID(ctx context.Context, tenantID, applicationID string) (model.CommissionStatement, error)
	FindByDealerID(ctx context.Context, tenantID, dealerID string) ([]model.CommissionStatement, error)
}

// PolicyRepository persists and retrieves insurance policies.
type PolicyRepository interface {
	Save(ctx context.Context, p model.InsurancePolicy) error
	FindByID(ctx context.Context, tenantID, id string) (model.InsurancePolicy, error)
	FindByApplicationID(ctx context.Context, tenantID, applicationID string) ([]model.InsurancePolicy, error)
	// CountByProviderSince counts policies quoted for a provider since the
	// given time, used for volume discount tiers.
	CountByProviderSince(ctx context.Context, providerID string, since time.Time) (int, error)
}

// LenderRuleRepository retrieves the active lender rule set.
type LenderRuleRepository interface {
	FindActive(ctx context.Context, tenantID string) ([]valueobject.LenderRule, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// IdentityVerifier verifies PAN and Aadhaar numbers with the issuing
// authorities.
type IdentityVerifier interface {
	VerifyPAN(ctx context.Context, pan string) (bool, error)
	VerifyAadhaar(ctx context.Context, aadhaar string) (bool, error)
}

// CreditBureauClient fetches credit scores from an external bureau.
type CreditBureauClient interface {
	GetCreditScore(ctx context.Context, pan string) (int, error)
}

// PolicyCounter reports how many policies a provider has issued this month.
// Backed by a cache in front of the policy repository.
type PolicyCounter interface {
	MonthlyCount(ctx context.Context, providerID string, month time.Time) (int, error)
	Increment(ctx context.Context, providerID string, month time.Time) error
}
