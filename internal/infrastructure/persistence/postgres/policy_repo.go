package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vahanafin/vahana/internal/domain/model"
	"github.com/vahanafin/vahana/internal/domain/service"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

// PolicyRepo implements port.PolicyRepository.
type PolicyRepo struct {
	pool *pgxpool.Pool
}

// NewPolicyRepo creates a new repository backed by PostgreSQL.
func NewPolicyRepo(pool *pgxpool.Pool) *PolicyRepo {
	return &PolicyRepo{pool: pool}
}

// Save persists a policy (upsert by ID with optimistic locking).
func (r *PolicyRepo) Save(ctx context.Context, p model.InsurancePolicy) error {
	q := p.Quote()
	query := `
		INSERT INTO insurance_policies (
			id, tenant_id, application_id, provider_id, coverage,
			coverage_amount, base_premium, risk_multiplier, volume_discount,
			premium, provider_commission, used_default_provider,
			status, bound_at, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (id) DO UPDATE SET
			status     = EXCLUDED.status,
			bound_at   = EXCLUDED.bound_at,
			version    = insurance_policies.version + 1,
			updated_at = EXCLUDED.updated_at
		WHERE insurance_policies.version = $15
	`
	tag, err := r.pool.Exec(ctx, query,
		p.ID(), p.TenantID(), p.ApplicationID(), q.ProviderID, string(q.Coverage),
		q.CoverageAmount, q.BasePremium, q.RiskMultiplier, q.VolumeDiscount,
		q.Premium, q.ProviderCommission, q.UsedDefaultProvider,
		p.Status(), p.BoundAt(), p.Version(), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save policy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on policy")
	}
	return nil
}

const policySelect = `
	SELECT id, tenant_id, application_id, provider_id, coverage,
	       coverage_amount, base_premium, risk_multiplier, volume_discount,
	       premium, provider_commission, used_default_provider,
	       status, bound_at, version, created_at, updated_at
	FROM insurance_policies`

// FindByID retrieves a single policy.
func (r *PolicyRepo) FindByID(ctx context.Context, tenantID, id string) (model.InsurancePolicy, error) {
	row := r.pool.QueryRow(ctx, policySelect+` WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	return scanPolicy(row)
}

// FindByApplicationID retrieves all policies quoted for an application.
func (r *PolicyRepo) FindByApplicationID(ctx context.Context, tenantID, applicationID string) ([]model.InsurancePolicy, error) {
	rows, err := r.pool.Query(ctx, policySelect+` WHERE tenant_id = $1 AND application_id = $2 ORDER BY created_at DESC`, tenantID, applicationID)
	if err != nil {
		return nil, fmt.Errorf("query policies: %w", err)
	}
	defer rows.Close()

	var result []model.InsurancePolicy
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// CountByProviderSince counts policies quoted for a provider since the given
// time, across tenants. Feeds the volume discount tiers.
func (r *PolicyRepo) CountByProviderSince(ctx context.Context, providerID string, since time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM insurance_policies WHERE provider_id = $1 AND created_at >= $2`,
		providerID, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count policies: %w", err)
	}
	return count, nil
}

func scanPolicy(s scannable) (model.InsurancePolicy, error) {
	var (
		id, tenantID, applicationID      string
		providerID, coverage             string
		coverageAmount, basePremium      decimal.Decimal
		riskMultiplier, volumeDiscount   decimal.Decimal
		premium, providerCommission      decimal.Decimal
		usedDefaultProvider              bool
		status                           string
		boundAt                          *time.Time
		version                          int
		createdAt, updatedAt             time.Time
	)

	err := s.Scan(
		&id, &tenantID, &applicationID, &providerID, &coverage,
		&coverageAmount, &basePremium, &riskMultiplier, &volumeDiscount,
		&premium, &providerCommission, &usedDefaultProvider,
		&status, &boundAt, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.InsurancePolicy{}, fmt.Errorf("scan policy: %w", err)
	}

	quote := service.InsuranceQuote{
		ProviderID:          providerID,
		Coverage:            valueobject.CoverageType(coverage),
		CoverageAmount:      coverageAmount,
		BasePremium:         basePremium,
		RiskMultiplier:      riskMultiplier,
		VolumeDiscount:      volumeDiscount,
		Premium:             premium,
		ProviderCommission:  providerCommission,
		UsedDefaultProvider: usedDefaultProvider,
	}

	return model.ReconstructInsurancePolicy(
		id, tenantID, applicationID, quote,
		status, boundAt, version, createdAt, updatedAt,
	), nil
}
