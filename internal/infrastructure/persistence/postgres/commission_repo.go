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

// CommissionRepo implements port.CommissionRepository.
type CommissionRepo struct {
	pool *pgxpool.Pool
}

// NewCommissionRepo creates a new repository backed by PostgreSQL.
func NewCommissionRepo(pool *pgxpool.Pool) *CommissionRepo {
	return &CommissionRepo{pool: pool}
}

// Save persists a statement (upsert by ID with optimistic locking).
func (r *CommissionRepo) Save(ctx context.Context, st model.CommissionStatement) error {
	b := st.Breakdown()
	query := `
		INSERT INTO commission_statements (
			id, tenant_id, application_id, dealer_id, lender_id, plan_tier,
			rate, used_default_rate, total_commission,
			dealer_gross, dealer_fee, dealer_net,
			platform_gross, platform_fee, platform_net,
			bonus, gst, status, paid_at,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
		ON CONFLICT (id) DO UPDATE SET
			status     = EXCLUDED.status,
			paid_at    = EXCLUDED.paid_at,
			version    = commission_statements.version + 1,
			updated_at = EXCLUDED.updated_at
		WHERE commission_statements.version = $20
	`
	tag, err := r.pool.Exec(ctx, query,
		st.ID(), st.TenantID(), st.ApplicationID(), st.DealerID(), b.LenderID, string(b.PlanTier),
		b.Rate, b.UsedDefaultRate, b.TotalCommission,
		b.DealerGross, b.DealerFee, b.DealerNet,
		b.PlatformGross, b.PlatformFee, b.PlatformNet,
		st.Bonus(), st.GST(), st.Status(), st.PaidAt(),
		st.Version(), st.CreatedAt(), st.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save statement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on statement")
	}
	return nil
}

const statementSelect = `
	SELECT id, tenant_id, application_id, dealer_id, lender_id, plan_tier,
	       rate, used_default_rate, total_commission,
	       dealer_gross, dealer_fee, dealer_net,
	       platform_gross, platform_fee, platform_net,
	       bonus, gst, status, paid_at,
	       version, created_at, updated_at
	FROM commission_statements`

// FindByID retrieves a single statement.
func (r *CommissionRepo) FindByID(ctx context.Context, tenantID, id string) (model.CommissionStatement, error) {
	row := r.pool.QueryRow(ctx, statementSelect+` WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	return scanStatement(row)
}

// FindByApplicationID retrieves the statement for a disbursed application.
func (r *CommissionRepo) FindByApplicationID(ctx context.Context, tenantID, applicationID string) (model.CommissionStatement, error) {
	row := r.pool.QueryRow(ctx, statementSelect+` WHERE tenant_id = $1 AND application_id = $2`, tenantID, applicationID)
	return scanStatement(row)
}

// FindByDealerID retrieves all statements for a dealer.
func (r *CommissionRepo) FindByDealerID(ctx context.Context, tenantID, dealerID string) ([]model.CommissionStatement, error) {
	rows, err := r.pool.Query(ctx, statementSelect+` WHERE tenant_id = $1 AND dealer_id = $2 ORDER BY created_at DESC`, tenantID, dealerID)
	if err != nil {
		return nil, fmt.Errorf("query statements: %w", err)
	}
	defer rows.Close()

	var result []model.CommissionStatement
	for rows.Next() {
		st, err := scanStatement(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, st)
	}
	return result, rows.Err()
}

func scanStatement(s scannable) (model.CommissionStatement, error) {
	var (
		id, tenantID, applicationID, dealerID string
		lenderID, planTier                    string
		rate                                  decimal.Decimal
		usedDefaultRate                       bool
		total, dealerGross, dealerFee         decimal.Decimal
		dealerNet, platformGross, platformFee decimal.Decimal
		platformNet, bonus, gst               decimal.Decimal
		status                                string
		paidAt                                *time.Time
		version                               int
		createdAt, updatedAt                  time.Time
	)

	err := s.Scan(
		&id, &tenantID, &applicationID, &dealerID, &lenderID, &planTier,
		&rate, &usedDefaultRate, &total,
		&dealerGross, &dealerFee, &dealerNet,
		&platformGross, &platformFee, &platformNet,
		&bonus, &gst, &status, &paidAt,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.CommissionStatement{}, fmt.Errorf("scan statement: %w", err)
	}

	breakdown := service.CommissionBreakdown{
		LenderID:        lenderID,
		PlanTier:        valueobject.PlanTier(planTier),
		Rate:            rate,
		UsedDefaultRate: usedDefaultRate,
		TotalCommission: total,
		DealerGross:     dealerGross,
		DealerFee:       dealerFee,
		DealerNet:       dealerNet,
		PlatformGross:   platformGross,
		PlatformFee:     platformFee,
		PlatformNet:     platformNet,
	}

	return model.ReconstructCommissionStatement(
		id, tenantID, applicationID, dealerID,
		breakdown, bonus, gst, status, paidAt,
		version, createdAt, updatedAt,
	), nil
}
