package service

import (
	"github.com/shopspring/decimal"

	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// EligibilityFilter – domain service for lender matching
// ---------------------------------------------------------------------------

// EligibilityFilter narrows a lender list to those whose constraints match a
// borrower, vehicle and requested amount.
type EligibilityFilter struct{}

// NewEligibilityFilter returns a new filter instance.
func NewEligibilityFilter() *EligibilityFilter {
	return &EligibilityFilter{}
}

// Match returns the subset of lenders for which every constraint holds:
// the lender is active, the borrower's credit score meets the minimum, the
// requested amount is within the lender's range, the vehicle category is
// supported (case-insensitive) and the employment type is accepted.
//
// Input order is preserved and no further ranking is applied. An empty
// result is a valid outcome, returned as a non-nil empty slice so callers
// can distinguish "no matches" from a failure.
func (f *EligibilityFilter) Match(
	rules []valueobject.LenderRule,
	borrower valueobject.BorrowerProfile,
	vehicle valueobject.VehicleRequest,
	requested decimal.Decimal,
) []valueobject.LenderRule {
	matched := make([]valueobject.LenderRule, 0, len(rules))

	for _, rule := range rules {
		if !rule.Active {
			continue
		}
		if borrower.CreditScore < rule.MinCreditScore {
			continue
		}
		if !rule.AcceptsAmount(requested) {
			continue
		}
		if !rule.SupportsVehicle(vehicle.Category) {
			continue
		}
		if !rule.SupportsEmployment(borrower.Employment) {
			continue
		}
		matched = append(matched, rule)
	}

	return matched
}
