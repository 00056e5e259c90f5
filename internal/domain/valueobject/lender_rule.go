package valueobject

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// LenderRule captures one lender's (bank or NBFC) underwriting constraints.
// Rules are loaded from configuration or the lender table and treated as
// immutable for the duration of a request.
type LenderRule struct {
	LenderID        string
	Name            string
	MinCreditScore  int
	MaxCreditScore  int
	MinLoanAmount   decimal.Decimal
	MaxLoanAmount   decimal.Decimal
	VehicleTypes    []string
	EmploymentTypes []EmploymentType
	Active          bool
}

// NewLenderRule validates and constructs a LenderRule. The credit score and
// loan amount ranges must each satisfy min <= max.
func NewLenderRule(
	lenderID, name string,
	minCreditScore, maxCreditScore int,
	minLoanAmount, maxLoanAmount decimal.Decimal,
	vehicleTypes []string,
	employmentTypes []EmploymentType,
	active bool,
) (LenderRule, error) {
	if lenderID == "" {
		return LenderRule{}, fmt.Errorf("lender ID is required")
	}
	if minCreditScore > maxCreditScore {
		return LenderRule{}, fmt.Errorf("lender %s: credit score range inverted (%d > %d)", lenderID, minCreditScore, maxCreditScore)
	}
	if minLoanAmount.GreaterThan(maxLoanAmount) {
		return LenderRule{}, fmt.Errorf("lender %s: loan amount range inverted (%s > %s)", lenderID, minLoanAmount, maxLoanAmount)
	}

	return LenderRule{
		LenderID:        lenderID,
		Name:            name,
		MinCreditScore:  minCreditScore,
		MaxCreditScore:  maxCreditScore,
		MinLoanAmount:   minLoanAmount,
		MaxLoanAmount:   maxLoanAmount,
		VehicleTypes:    vehicleTypes,
		EmploymentTypes: employmentTypes,
		Active:          active,
	}, nil
}

// SupportsVehicle reports whether the lender finances the given vehicle
// category. Matching is case-insensitive.
func (r LenderRule) SupportsVehicle(category string) bool {
	for _, v := range r.VehicleTypes {
		if strings.EqualFold(v, category) {
			return true
		}
	}
	return false
}

// SupportsEmployment reports whether the lender accepts the employment type.
func (r LenderRule) SupportsEmployment(et EmploymentType) bool {
	for _, e := range r.EmploymentTypes {
		if e == et {
			return true
		}
	}
	return false
}

// AcceptsAmount reports whether the requested amount is within the lender's range.
func (r LenderRule) AcceptsAmount(requested decimal.Decimal) bool {
	return requested.GreaterThanOrEqual(r.MinLoanAmount) && requested.LessThanOrEqual(r.MaxLoanAmount)
}
