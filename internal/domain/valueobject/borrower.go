package valueobject

import "github.com/shopspring/decimal"

// BorrowerProfile is the applicant snapshot consumed by the scoring and
// pricing engines. All currency fields are monthly rupee amounts. The record
// is constructed fresh per request and never mutated.
type BorrowerProfile struct {
	PAN               string
	Aadhaar           string
	CreditScore       int // bureau score, 300-900
	Employment        EmploymentType
	MonthlyIncome     decimal.Decimal
	ExistingEMIs      decimal.Decimal
	MonthlyExpenses   decimal.Decimal
	YearsOfExperience int
	Age               int

	// Application history, filled from prior records.
	PastDefaults   int
	PastRejections int
}

// VehicleRequest describes the vehicle and financing ask attached to an
// application.
type VehicleRequest struct {
	Make         string
	Model        string
	Category     string // matched against lender vehicle-type lists
	LoanAmount   decimal.Decimal
	DownPayment  decimal.Decimal
	TenureMonths int
}
