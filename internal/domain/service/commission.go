package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// CommissionEngine – domain service for lender commission splits
// ---------------------------------------------------------------------------

// CommissionConfig holds the static rate tables injected at startup. All
// rates are fractions (0.015 = 1.5%).
type CommissionConfig struct {
	// LenderRates maps lender ID to its commission rate on disbursed amount.
	LenderRates map[string]decimal.Decimal
	// DefaultRate applies when a lender ID is not in the table.
	DefaultRate decimal.Decimal
	// DealerShare maps plan tier to the dealer's share of total commission.
	DealerShare map[valueobject.PlanTier]decimal.Decimal
	// DealerFeeRate and PlatformFeeRate are processing fees deducted from
	// each share to arrive at net amounts.
	DealerFeeRate   decimal.Decimal
	PlatformFeeRate decimal.Decimal
}

// DefaultCommissionConfig returns the compiled-in bank/NBFC rate table.
func DefaultCommissionConfig() CommissionConfig {
	return CommissionConfig{
		LenderRates: map[string]decimal.Decimal{
			"hdfc":             decimal.NewFromFloat(0.015),
			"icici":            decimal.NewFromFloat(0.016),
			"axis":             decimal.NewFromFloat(0.014),
			"sbi":              decimal.NewFromFloat(0.012),
			"kotak":            decimal.NewFromFloat(0.017),
			"bajaj_finance":    decimal.NewFromFloat(0.020),
			"tata_capital":     decimal.NewFromFloat(0.018),
			"mahindra_finance": decimal.NewFromFloat(0.019),
			"cholamandalam":    decimal.NewFromFloat(0.021),
			"hero_fincorp":     decimal.NewFromFloat(0.022),
		},
		DefaultRate: decimal.NewFromFloat(0.015),
		DealerShare: map[valueobject.PlanTier]decimal.Decimal{
			valueobject.PlanBasic:        decimal.NewFromFloat(0.25),
			valueobject.PlanProfessional: decimal.NewFromFloat(0.30),
			valueobject.PlanEnterprise:   decimal.NewFromFloat(0.35),
		},
		DealerFeeRate:   decimal.NewFromFloat(0.02),
		PlatformFeeRate: decimal.NewFromFloat(0.05),
	}
}

// CommissionBreakdown is the split of one loan's commission. All nets are
// pre-GST; GST on the platform share is applied by the caller.
type CommissionBreakdown struct {
	LenderID        string
	PlanTier        valueobject.PlanTier
	Rate            decimal.Decimal
	UsedDefaultRate bool
	TotalCommission decimal.Decimal
	DealerGross     decimal.Decimal
	DealerFee       decimal.Decimal
	DealerNet       decimal.Decimal
	PlatformGross   decimal.Decimal
	PlatformFee     decimal.Decimal
	PlatformNet     decimal.Decimal
}

// CommissionEngine computes lender commission splits and performance bonuses
// from injected rate tables.
type CommissionEngine struct {
	cfg CommissionConfig
}

// NewCommissionEngine wires the engine with its rate tables.
func NewCommissionEngine(cfg CommissionConfig) *CommissionEngine {
	return &CommissionEngine{cfg: cfg}
}

// Compute splits the commission on a disbursed loan amount.
//
// An unknown lender ID falls back to the default rate rather than erroring;
// the fallback is surfaced via UsedDefaultRate so callers can flag
// misconfigured lender IDs instead of silently averaging them.
func (e *CommissionEngine) Compute(
	loanAmount decimal.Decimal,
	lenderID string,
	tier valueobject.PlanTier,
) CommissionBreakdown {
	rate, ok := e.cfg.LenderRates[strings.ToLower(strings.TrimSpace(lenderID))]
	if !ok {
		rate = e.cfg.DefaultRate
	}

	share, shareOK := e.cfg.DealerShare[tier]
	if !shareOK {
		share = e.cfg.DealerShare[valueobject.PlanBasic]
	}

	total := loanAmount.Mul(rate)
	dealerGross := total.Mul(share)
	platformGross := total.Sub(dealerGross)

	dealerFee := dealerGross.Mul(e.cfg.DealerFeeRate)
	platformFee := platformGross.Mul(e.cfg.PlatformFeeRate)

	return CommissionBreakdown{
		LenderID:        lenderID,
		PlanTier:        tier,
		Rate:            rate,
		UsedDefaultRate: !ok,
		TotalCommission: total,
		DealerGross:     dealerGross,
		DealerFee:       dealerFee,
		DealerNet:       dealerGross.Sub(dealerFee),
		PlatformGross:   platformGross,
		PlatformFee:     platformFee,
		PlatformNet:     platformGross.Sub(platformFee),
	}
}

// ---------------------------------------------------------------------------
// Performance bonus
// ---------------------------------------------------------------------------

// BonusInputs are a dealer's monthly performance figures.
type BonusInputs struct {
	MonthlyApplications int
	// ApprovalRate is a fraction in [0, 1].
	ApprovalRate decimal.Decimal
	// LoanVolume is the total disbursed amount for the month.
	LoanVolume decimal.Decimal
}

// BonusBreakdown holds the per-table bonus rates. Each table contributes at
// most its highest met tier; TotalRate is their sum.
type BonusBreakdown struct {
	ApplicationsRate decimal.Decimal
	ApprovalRate     decimal.Decimal
	VolumeRate       decimal.Decimal
	TotalRate        decimal.Decimal
}

var (
	approvalTier1 = decimal.NewFromFloat(0.80)
	approvalTier2 = decimal.NewFromFloat(0.85)
	approvalTier3 = decimal.NewFromFloat(0.90)

	volumeTier1 = decimal.NewFromInt(1_000_000)
	volumeTier2 = decimal.NewFromInt(5_000_000)
	volumeTier3 = decimal.NewFromInt(10_000_000)
)

// PerformanceBonus computes the additive bonus rate from the three
// independent threshold tables.
func (e *CommissionEngine) PerformanceBonus(in BonusInputs) BonusBreakdown {
	var b BonusBreakdown

	switch {
	case in.MonthlyApplications >= 200:
		b.ApplicationsRate = decimal.NewFromFloat(0.10)
	case in.MonthlyApplications >= 100:
		b.ApplicationsRate = decimal.NewFromFloat(0.05)
	case in.MonthlyApplications >= 50:
		b.ApplicationsRate = decimal.NewFromFloat(0.02)
	default:
		b.ApplicationsRate = decimal.Zero
	}

	switch {
	case in.ApprovalRate.GreaterThanOrEqual(approvalTier3):
		b.ApprovalRate = decimal.NewFromFloat(0.08)
	case in.ApprovalRate.GreaterThanOrEqual(approvalTier2):
		b.ApprovalRate = decimal.NewFromFloat(0.05)
	case in.ApprovalRate.GreaterThanOrEqual(approvalTier1):
		b.ApprovalRate = decimal.NewFromFloat(0.03)
	default:
		b.ApprovalRate = decimal.Zero
	}

	switch {
	case in.LoanVolume.GreaterThanOrEqual(volumeTier3):
		b.VolumeRate = decimal.NewFromFloat(0.10)
	case in.LoanVolume.GreaterThanOrEqual(volumeTier2):
		b.VolumeRate = decimal.NewFromFloat(0.05)
	case in.LoanVolume.GreaterThanOrEqual(volumeTier1):
		b.VolumeRate = decimal.NewFromFloat(0.02)
	default:
		b.VolumeRate = decimal.Zero
	}

	b.TotalRate = b.ApplicationsRate.Add(b.ApprovalRate).Add(b.VolumeRate)
	return b
}

// BonusAmount applies the total bonus rate to a base commission amount.
func (b BonusBreakdown) BonusAmount(baseCommission decimal.Decimal) decimal.Decimal {
	return baseCommission.Mul(b.TotalRate)
}
