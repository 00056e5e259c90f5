package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vahanafin/vahana/internal/domain/model"
	"github.com/vahanafin/vahana/internal/domain/port"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
	"github.com/vahanafin/vahana/pkg/events"
)

// --- Mock implementations ---

type mockApplicationRepository struct {
	saveFunc           func(ctx context.Context, app model.LoanApplication) error
	findByIDFunc       func(ctx context.Context, tenantID, id string) (model.LoanApplication, error)
	findByDealerIDFunc func(ctx context.Context, tenantID, dealerID string) ([]model.LoanApplication, error)
	statsFunc          func(ctx context.Context, tenantID, dealerID string, since time.Time) (port.DealerStats, error)
	savedApps          []model.LoanApplication
}

func (m *mockApplicationRepository) Save(ctx context.Context, app model.LoanApplication) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, app)
	}
	m.savedApps = append(m.savedApps, app)
	return nil
}

func (m *mockApplicationRepository) FindByID(ctx context.Context, tenantID, id string) (model.LoanApplication, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.LoanApplication{}, fmt.Errorf("application not found")
}

func (m *mockApplicationRepository) FindByDealerID(ctx context.Context, tenantID, dealerID string) ([]model.LoanApplication, error) {
	if m.findByDealerIDFunc != nil {
		return m.findByDealerIDFunc(ctx, tenantID, dealerID)
	}
	return nil, nil
}

func (m *mockApplicationRepository) CountDealerStats(ctx context.Context, tenantID, dealerID string, since time.Time) (port.DealerStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx, tenantID, dealerID, since)
	}
	return port.DealerStats{DisbursedVolume: decimal.Zero}, nil
}

type mockCommissionRepository struct {
	saveFunc                func(ctx context.Context, st model.CommissionStatement) error
	findByIDFunc            func(ctx context.Context, tenantID, id string) (model.CommissionStatement, error)
	findByApplicationIDFunc func(ctx context.Context, tenantID, applicationID string) (model.CommissionStatement, error)
	savedStatements         []model.CommissionStatement
}

func (m *mockCommissionRepository) Save(ctx context.Context, st model.CommissionStatement) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, st)
	}
	m.savedStatements = append(m.savedStatements, st)
	return nil
}

func (m *mockCommissionRepository) FindByID(ctx context.Context, tenantID, id string) (model.CommissionStatement, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.CommissionStatement{}, fmt.Errorf("statement not found")
}

func (m *mockCommissionRepository) FindByApplicationID(ctx context.Context, tenantID, applicationID string) (model.CommissionStatement, error) {
	if m.findByApplicationIDFunc != nil {
		return m.findByApplicationIDFunc(ctx, tenantID, applicationID)
	}
	return model.CommissionStatement{}, fmt.Errorf("statement not found")
}

func (m *mockCommissionRepository) FindByDealerID(_ context.Context, _, _ string) ([]model.CommissionStatement, error) {
	return nil, nil
}

type mockPolicyRepository struct {
	saveFunc                func(ctx context.Context, p model.InsurancePolicy) error
	findByIDFunc            func(ctx context.Context, tenantID, id string) (model.InsurancePolicy, error)
	findByApplicationIDFunc func(ctx context.Context, tenantID, applicationID string) ([]model.InsurancePolicy, error)
	savedPolicies           []model.InsurancePolicy
}

func (m *mockPolicyRepository) Save(ctx context.Context, p model.InsurancePolicy) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, p)
	}
	m.savedPolicies = append(m.savedPolicies, p)
	return nil
}

func (m *mockPolicyRepository) FindByID(ctx context.Context, tenantID, id string) (model.InsurancePolicy, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.InsurancePolicy{}, fmt.Errorf("policy not found")
}

func (m *mockPolicyRepository) FindByApplicationID(ctx context.Context, tenantID, applicationID string) ([]model.InsurancePolicy, error) {
	if m.findByApplicationIDFunc != nil {
		return m.findByApplicationIDFunc(ctx, tenantID, applicationID)
	}
	return nil, nil
}

func (m *mockPolicyRepository) CountByProviderSince(_ context.Context, _ string, _ time.Time) (int, error) {
	return 0, nil
}

type mockLenderRuleRepository struct {
	findActiveFunc func(ctx context.Context, tenantID string) ([]valueobject.LenderRule, error)
}

func (m *mockLenderRuleRepository) FindActive(ctx context.Context, tenantID string) ([]valueobject.LenderRule, error) {
	if m.findActiveFunc != nil {
		return m.findActiveFunc(ctx, tenantID)
	}
	return nil, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, evts ...events.DomainEvent) error
	publishedEvents []events.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockIdentityVerifier struct {
	panFunc     func(ctx context.Context, pan string) (bool, error)
	aadhaarFunc func(ctx context.Context, aadhaar string) (bool, error)
}

func (m *mockIdentityVerifier) VerifyPAN(ctx context.Context, pan string) (bool, error) {
	if m.panFunc != nil {
		return m.panFunc(ctx, pan)
	}
	return true, nil
}

func (m *mockIdentityVerifier) VerifyAadhaar(ctx context.Context, aadhaar string) (bool, error) {
	if m.aadhaarFunc != nil {
		return m.aadhaarFunc(ctx, aadhaar)
	}
	return true, nil
}

type mockCreditBureauClient struct {
	scoreFunc func(ctx context.Context, pan string) (int, error)
}

func (m *mockCreditBureauClient) GetCreditScore(ctx context.Context, pan string) (int, error) {
	if m.scoreFunc != nil {
		return m.scoreFunc(ctx, pan)
	}
	return 760, nil
}

type mockPolicyCounter struct {
	countFunc     func(ctx context.Context, providerID string, month time.Time) (int, error)
	incrementFunc func(ctx context.Context, providerID string, month time.Time) error
	increments    int
}

func (m *mockPolicyCounter) MonthlyCount(ctx context.Context, providerID string, month time.Time) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, providerID, month)
	}
	return 0, nil
}

func (m *mockPolicyCounter) Increment(ctx context.Context, providerID string, month time.Time) error {
	if m.incrementFunc != nil {
		return m.incrementFunc(ctx, providerID, month)
	}
	m.increments++
	return nil
}
