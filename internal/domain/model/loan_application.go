package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vahanafin/vahana/internal/domain/event"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
	"github.com/vahanafin/vahana/pkg/events"
)

// ---------------------------------------------------------------------------
// LoanApplication aggregate root
// ---------------------------------------------------------------------------

// PrescreenOutcome is the risk and eligibility snapshot recorded on the
// application after prescreening.
type PrescreenOutcome struct {
	RiskScore      int
	RiskCategory   valueobject.RiskCategory
	CreditScore    int
	CreditTier     valueobject.CreditTier
	MatchedLenders []string
}

// LoanApplication is an immutable aggregate. Every mutation returns a new copy.
type LoanApplication struct {
	id           string
	tenantID     string
	dealerID     string
	borrower     valueobject.BorrowerProfile
	vehicle      valueobject.VehicleRequest
	status       valueobject.ApplicationStatus
	prescreen    *PrescreenOutcome
	lenderID     string
	decisionNote string
	disbursedAmt decimal.Decimal
	version      int
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []events.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLoanApplication creates a brand-new application in DRAFT status.
func NewLoanApplication(
	tenantID, dealerID string,
	borrower valueobject.BorrowerProfile,
	vehicle valueobject.VehicleRequest,
	now time.Time,
) (LoanApplication, error) {
	if tenantID == "" {
		return LoanApplication{}, errors.New("tenant ID is required")
	}
	if dealerID == "" {
		return LoanApplication{}, errors.New("dealer ID is required")
	}
	if vehicle.LoanAmount.LessThanOrEqual(decimal.Zero) {
		return LoanApplication{}, errors.New("loan amount must be positive")
	}
	if vehicle.TenureMonths <= 0 {
		return LoanApplication{}, errors.New("tenure months must be positive")
	}

	return LoanApplication{
		id:        uuid.New().String(),
		tenantID:  tenantID,
		dealerID:  dealerID,
		borrower:  borrower,
		vehicle:   vehicle,
		status:    valueobject.ApplicationStatusDraft,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructLoanApplication rebuilds an aggregate from persistence without
// side-effects.
func ReconstructLoanApplication(
	id, tenantID, dealerID string,
	borrower valueobject.BorrowerProfile,
	vehicle valueobject.VehicleRequest,
	status valueobject.ApplicationStatus,
	prescreen *PrescreenOutcome,
	lenderID, decisionNote string,
	disbursedAmt decimal.Decimal,
	version int,
	createdAt, updatedAt time.Time,
) LoanApplication {
	return LoanApplication{
		id:           id,
		tenantID:     tenantID,
		dealerID:     dealerID,
		borrower:     borrower,
		vehicle:      vehicle,
		status:       status,
		prescreen:    prescreen,
		lenderID:     lenderID,
		decisionNote: decisionNote,
		disbursedAmt: disbursedAmt,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// Submit transitions DRAFT -> SUBMITTED and emits ApplicationSubmitted.
func (a LoanApplication) Submit(now time.Time) (LoanApplication, error) {
	if !a.status.CanTransitionTo(valueobject.ApplicationStatusSubmitted) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusSubmitted
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationSubmitted(
		a.id, a.tenantID, a.dealerID, a.vehicle.LoanAmount, a.vehicle.Make+" "+a.vehicle.Model,
	))
	return next, nil
}

// RecordPrescreen transitions SUBMITTED -> PRESCREENED, attaches the outcome
// and emits ApplicationPrescreened.
func (a LoanApplication) RecordPrescreen(outcome PrescreenOutcome, now time.Time) (LoanApplication, error) {
	if !a.status.CanTransitionTo(valueobject.ApplicationStatusPrescreened) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusPrescreened
	next.prescreen = &outcome
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationPrescreened(
		a.id, a.tenantID, outcome.RiskScore, outcome.RiskCategory, outcome.MatchedLenders,
	))
	return next, nil
}

// Approve transitions PRESCREENED -> APPROVED with the winning lender and
// emits ApplicationApproved.
func (a LoanApplication) Approve(lenderID, note string, now time.Time) (LoanApplication, error) {
	if lenderID == "" {
		return a, errors.New("lender ID is required")
	}
	if !a.status.CanTransitionTo(valueobject.ApplicationStatusApproved) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusApproved
	next.lenderID = lenderID
	next.decisionNote = note
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationApproved(
		a.id, a.tenantID, lenderID, a.vehicle.LoanAmount,
	))
	return next, nil
}

// Reject transitions SUBMITTED or PRESCREENED -> REJECTED and emits
// ApplicationRejected.
func (a LoanApplication) Reject(reason string, now time.Time) (LoanApplication, error) {
	if !a.status.CanTransitionTo(valueobject.ApplicationStatusRejected) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusRejected
	next.decisionNote = reason
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationRejected(
		a.id, a.tenantID, reason,
	))
	return next, nil
}

// MarkDisbursed transitions APPROVED -> DISBURSED with the confirmed amount
// and emits LoanDisbursed.
func (a LoanApplication) MarkDisbursed(amount decimal.Decimal, now time.Time) (LoanApplication, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return a, errors.New("disbursed amount must be positive")
	}
	if !a.status.CanTransitionTo(valueobject.ApplicationStatusDisbursed) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusDisbursed
	next.disbursedAmt = amount
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanDisbursed(
		a.id, a.tenantID, a.lenderID, a.dealerID, amount,
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a LoanApplication) ID() string                               { return a.id }
func (a LoanApplication) TenantID() string                         { return a.tenantID }
func (a LoanApplication) DealerID() string                         { return a.dealerID }
func (a LoanApplication) Borrower() valueobject.BorrowerProfile    { return a.borrower }
func (a LoanApplication) Vehicle() valueobject.VehicleRequest      { return a.vehicle }
func (a LoanApplication) Status() valueobject.ApplicationStatus    { return a.status }
func (a LoanApplication) Prescreen() *PrescreenOutcome             { return a.prescreen }
func (a LoanApplication) LenderID() string                         { return a.lenderID }
func (a LoanApplication) DecisionNote() string                     { return a.decisionNote }
func (a LoanApplication) DisbursedAmount() decimal.Decimal         { return a.disbursedAmt }
func (a LoanApplication) Version() int                             { return a.version }
func (a LoanApplication) CreatedAt() time.Time                     { return a.createdAt }
func (a LoanApplication) UpdatedAt() time.Time                     { return a.updatedAt }
func (a LoanApplication) DomainEvents() []events.DomainEvent       { return a.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (a LoanApplication) ClearEvents() LoanApplication {
	next := a
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []events.DomainEvent) []events.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]events.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
