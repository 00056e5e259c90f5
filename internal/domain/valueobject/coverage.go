package valueobject

import "strings"

// CoverageType is a category of loan-linked insurance protection.
type CoverageType string

const (
	CoverageLoanProtection  CoverageType = "loan_protection"
	CoverageJobLoss         CoverageType = "job_loss"
	CoverageCriticalIllness CoverageType = "critical_illness"
	CoverageAssetProtection CoverageType = "asset_protection"
)

// ParseCoverageType normalises a raw string to a CoverageType. Unknown
// values map to CoverageLoanProtection, the default bundle.
func ParseCoverageType(s string) CoverageType {
	switch CoverageType(strings.ToLower(strings.TrimSpace(s))) {
	case CoverageJobLoss:
		return CoverageJobLoss
	case CoverageCriticalIllness:
		return CoverageCriticalIllness
	case CoverageAssetProtection:
		return CoverageAssetProtection
	default:
		return CoverageLoanProtection
	}
}
