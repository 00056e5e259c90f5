package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

// LenderRuleRepo implements port.LenderRuleRepository.
type LenderRuleRepo struct {
	pool *pgxpool.Pool
}

// NewLenderRuleRepo creates a new repository backed by PostgreSQL.
func NewLenderRuleRepo(pool *pgxpool.Pool) *LenderRuleRepo {
	return &LenderRuleRepo{pool: pool}
}

// FindActive returns the tenant's active lender rules in display order.
func (r *LenderRuleRepo) FindActive(ctx context.Context, tenantID string) ([]valueobject.LenderRule, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT lender_id, name, min_credit_score, max_credit_score,
		       min_loan_amount, max_loan_amount, vehicle_types, employment_types
		FROM lender_rules
		WHERE tenant_id = $1 AND active
		ORDER BY display_order, lender_id`,
		tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("query lender rules: %w", err)
	}
	defer rows.Close()

	var rules []valueobject.LenderRule
	for rows.Next() {
		var (
			lenderID, name               string
			minScore, maxScore           int
			minAmount, maxAmount         decimal.Decimal
			vehicleTypes, employmentRaws []string
		)
		if err := rows.Scan(
			&lenderID, &name, &minScore, &maxScore,
			&minAmount, &maxAmount, &vehicleTypes, &employmentRaws,
		); err != nil {
			return nil, fmt.Errorf("scan lender rule: %w", err)
		}

		employments := make([]valueobject.EmploymentType, 0, len(employmentRaws))
		for _, raw := range employmentRaws {
			employments = append(employments, valueobject.EmploymentType(raw))
		}

		rule, err := valueobject.NewLenderRule(
			lenderID, name, minScore, maxScore,
			minAmount, maxAmount, vehicleTypes, employments, true,
		)
		if err != nil {
			return nil, fmt.Errorf("lender rule %s: %w", lenderID, err)
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}
