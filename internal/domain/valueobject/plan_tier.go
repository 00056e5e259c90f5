package valueobject

import "strings"

// PlanTier is a dealer's subscription level, which determines the dealer's
// share of lender commission.
type PlanTier string

const (
	PlanBasic        PlanTier = "basic"
	PlanProfessional PlanTier = "professional"
	PlanEnterprise   PlanTier = "enterprise"
)

// ParsePlanTier normalises a raw string to a PlanTier. Unknown values map to
// PlanBasic, the lowest dealer share.
func ParsePlanTier(s string) PlanTier {
	switch PlanTier(strings.ToLower(strings.TrimSpace(s))) {
	case PlanProfessional:
		return PlanProfessional
	case PlanEnterprise:
		return PlanEnterprise
	default:
		return PlanBasic
	}
}
