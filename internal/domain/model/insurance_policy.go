package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vahanafin/vahana/internal/domain/event"
	"github.com/vahanafin/vahana/internal/domain/service"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
	"github.com/vahanafin/vahana/pkg/events"
)

// ---------------------------------------------------------------------------
// InsurancePolicy aggregate root
// ---------------------------------------------------------------------------

// Policy statuses.
const (
	PolicyQuoted = "QUOTED"
	PolicyBound  = "BOUND"
)

// InsurancePolicy is a quoted loan-linked insurance policy. It is an
// immutable aggregate; mutations return a new copy.
type InsurancePolicy struct {
	id            string
	tenantID      string
	applicationID string
	quote         service.InsuranceQuote
	status        string
	boundAt       *time.Time
	version       int
	createdAt     time.Time
	updatedAt     time.Time
	domainEvents  []events.DomainEvent
}

// NewInsurancePolicy creates a QUOTED policy from a priced quote.
func NewInsurancePolicy(
	tenantID, applicationID string,
	quote service.InsuranceQuote,
	now time.Time,
) (InsurancePolicy, error) {
	if tenantID == "" {
		return InsurancePolicy{}, errors.New("tenant ID is required")
	}
	if applicationID == "" {
		return InsurancePolicy{}, errors.New("application ID is required")
	}

	id := uuid.New().String()
	p := InsurancePolicy{
		id:            id,
		tenantID:      tenantID,
		applicationID: applicationID,
		quote:         quote,
		status:        PolicyQuoted,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}

	p.domainEvents = append(p.domainEvents, event.NewInsuranceQuoted(
		id, tenantID, quote.ProviderID, quote.Coverage, quote.Premium,
	))
	return p, nil
}

// ReconstructInsurancePolicy rebuilds an aggregate from persistence.
func ReconstructInsurancePolicy(
	id, tenantID, applicationID string,
	quote service.InsuranceQuote,
	status string,
	boundAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) InsurancePolicy {
	return InsurancePolicy{
		id:            id,
		tenantID:      tenantID,
		applicationID: applicationID,
		quote:         quote,
		status:        status,
		boundAt:       boundAt,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Bind transitions QUOTED -> BOUND and emits InsurancePolicyBound.
func (p InsurancePolicy) Bind(now time.Time) (InsurancePolicy, error) {
	if p.status != PolicyQuoted {
		return p, valueobject.ErrInvalidStatusTransition
	}
	next := p
	next.status = PolicyBound
	next.boundAt = &now
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewInsurancePolicyBound(
		p.id, p.tenantID, p.quote.ProviderID, p.quote.Premium,
	))
	return next, nil
}

func (p InsurancePolicy) ID() string                         { return p.id }
func (p InsurancePolicy) TenantID() string                   { return p.tenantID }
func (p InsurancePolicy) ApplicationID() string              { return p.applicationID }
func (p InsurancePolicy) Quote() service.InsuranceQuote      { return p.quote }
func (p InsurancePolicy) Status() string                     { return p.status }
func (p InsurancePolicy) BoundAt() *time.Time                { return p.boundAt }
func (p InsurancePolicy) Version() int                       { return p.version }
func (p InsurancePolicy) CreatedAt() time.Time               { return p.createdAt }
func (p InsurancePolicy) UpdatedAt() time.Time               { return p.updatedAt }
func (p InsurancePolicy) DomainEvents() []events.DomainEvent { return p.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (p InsurancePolicy) ClearEvents() InsurancePolicy {
	next := p
	next.domainEvents = nil
	return next
}
