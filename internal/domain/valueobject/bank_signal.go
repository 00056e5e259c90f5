package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// InflowTrend describes the direction of an account's monthly inflows as
// reported by bank-statement analysis.
type InflowTrend string

const (
	InflowIncreasing InflowTrend = "INCREASING"
	InflowDecreasing InflowTrend = "DECREASING"
	InflowStable     InflowTrend = "STABLE"
)

// ParseInflowTrend normalises a raw string to an InflowTrend. Unknown values
// map to InflowDecreasing, the band that earns no points.
func ParseInflowTrend(s string) InflowTrend {
	switch InflowTrend(strings.ToUpper(strings.TrimSpace(s))) {
	case InflowIncreasing:
		return InflowIncreasing
	case InflowStable:
		return InflowStable
	default:
		return InflowDecreasing
	}
}

// IsStableOrRising reports whether the trend is STABLE or INCREASING.
func (t InflowTrend) IsStableOrRising() bool {
	return t == InflowStable || t == InflowIncreasing
}

// BankSignal holds the bank-statement analysis results for an applicant.
// It is a plain immutable value record; amounts are monthly rupee figures.
type BankSignal struct {
	MonthlyInflow  decimal.Decimal
	MonthlyOutflow decimal.Decimal
	AverageBalance decimal.Decimal
	BouncedCheques int
	Trend          InflowTrend
	SalaryCredits  int
}

// InflowExceedsOutflow reports whether the account runs a monthly surplus.
func (b BankSignal) InflowExceedsOutflow() bool {
	return b.MonthlyInflow.GreaterThan(b.MonthlyOutflow)
}
