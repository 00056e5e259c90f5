package valueobject

import "strings"

// EmploymentType identifies how an applicant earns their income.
type EmploymentType string

const (
	EmploymentSalaried      EmploymentType = "SALARIED"
	EmploymentSelfEmployed  EmploymentType = "SELF_EMPLOYED"
	EmploymentBusinessOwner EmploymentType = "BUSINESS_OWNER"
	EmploymentRetired       EmploymentType = "RETIRED"
	EmploymentUnemployed    EmploymentType = "UNEMPLOYED"
)

// ParseEmploymentType normalises a raw string (any case, spaces or dashes)
// to an EmploymentType. Unrecognised values map to EmploymentUnemployed so
// that scoring proceeds with the most conservative band instead of failing.
func ParseEmploymentType(s string) EmploymentType {
	normalized := strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_").Replace(strings.TrimSpace(s)))
	switch EmploymentType(normalized) {
	case EmploymentSalaried, EmploymentSelfEmployed, EmploymentBusinessOwner, EmploymentRetired, EmploymentUnemployed:
		return EmploymentType(normalized)
	default:
		return EmploymentUnemployed
	}
}
