package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vahanafin/vahana/internal/domain/event"
	"github.com/vahanafin/vahana/internal/domain/service"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
	"github.com/vahanafin/vahana/pkg/events"
)

// ---------------------------------------------------------------------------
// CommissionStatement aggregate root
// ---------------------------------------------------------------------------

// Statement statuses.
const (
	StatementPending = "PENDING"
	StatementPaid    = "PAID"
)

// gstRate is the GST charged on the platform's net commission share.
var gstRate = decimal.NewFromFloat(0.18)

// CommissionStatement records the commission split for one disbursed loan.
// It is an immutable aggregate; mutations return a new copy.
type CommissionStatement struct {
	id            string
	tenantID      string
	applicationID string
	dealerID      string
	breakdown     service.CommissionBreakdown
	bonus         decimal.Decimal
	gst           decimal.Decimal
	status        string
	paidAt        *time.Time
	version       int
	createdAt     time.Time
	updatedAt     time.Time
	domainEvents  []events.DomainEvent
}

// NewCommissionStatement creates a PENDING statement from a computed
// breakdown. GST is levied on the platform net share at statement time so
// the engine itself stays tax-free.
func NewCommissionStatement(
	tenantID, applicationID, dealerID string,
	breakdown service.CommissionBreakdown,
	bonus decimal.Decimal,
	now time.Time,
) (CommissionStatement, error) {
	if tenantID == "" {
		return CommissionStatement{}, errors.New("tenant ID is required")
	}
	if applicationID == "" {
		return CommissionStatement{}, errors.New("application ID is required")
	}
	if dealerID == "" {
		return CommissionStatement{}, errors.New("dealer ID is required")
	}

	id := uuid.New().String()
	st := CommissionStatement{
		id:            id,
		tenantID:      tenantID,
		applicationID: applicationID,
		dealerID:      dealerID,
		breakdown:     breakdown,
		bonus:         bonus,
		gst:           breakdown.PlatformNet.Mul(gstRate),
		status:        StatementPending,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}

	st.domainEvents = append(st.domainEvents, event.NewCommissionComputed(
		id, tenantID, applicationID, breakdown.LenderID, dealerID,
		breakdown.TotalCommission, breakdown.DealerNet, breakdown.PlatformNet,
	))
	return st, nil
}

// ReconstructCommissionStatement rebuilds an aggregate from persistence.
func ReconstructCommissionStatement(
	id, tenantID, applicationID, dealerID string,
	breakdown service.CommissionBreakdown,
	bonus, gst decimal.Decimal,
	status string,
	paidAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) CommissionStatement {
	return CommissionStatement{
		id:            id,
		tenantID:      tenantID,
		applicationID: applicationID,
		dealerID:      dealerID,
		breakdown:     breakdown,
		bonus:         bonus,
		gst:           gst,
		status:        status,
		paidAt:        paidAt,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// MarkPaid transitions PENDING -> PAID.
func (s CommissionStatement) MarkPaid(now time.Time) (CommissionStatement, error) {
	if s.status != StatementPending {
		return s, valueobject.ErrInvalidStatusTransition
	}
	next := s
	next.status = StatementPaid
	next.paidAt = &now
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	return next, nil
}

// DealerPayout is the dealer's net share plus any performance bonus.
func (s CommissionStatement) DealerPayout() decimal.Decimal {
	return s.breakdown.DealerNet.Add(s.bonus)
}

// PlatformPayable is the platform's net share plus the GST collected on it.
func (s CommissionStatement) PlatformPayable() decimal.Decimal {
	return s.breakdown.PlatformNet.Add(s.gst)
}

func (s CommissionStatement) ID() string                               { return s.id }
func (s CommissionStatement) TenantID() string                         { return s.tenantID }
func (s CommissionStatement) ApplicationID() string                    { return s.applicationID }
func (s CommissionStatement) DealerID() string                         { return s.dealerID }
func (s CommissionStatement) Breakdown() service.CommissionBreakdown   { return s.breakdown }
func (s CommissionStatement) Bonus() decimal.Decimal                   { return s.bonus }
func (s CommissionStatement) GST() decimal.Decimal                     { return s.gst }
func (s CommissionStatement) Status() string                           { return s.status }
func (s CommissionStatement) PaidAt() *time.Time                       { return s.paidAt }
func (s CommissionStatement) Version() int                             { return s.version }
func (s CommissionStatement) CreatedAt() time.Time                     { return s.createdAt }
func (s CommissionStatement) UpdatedAt() time.Time                     { return s.updatedAt }
func (s CommissionStatement) DomainEvents() []events.DomainEvent       { return s.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (s CommissionStatement) ClearEvents() CommissionStatement {
	next := s
	next.domainEvents = nil
	return next
}
