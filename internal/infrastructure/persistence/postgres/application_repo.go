package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vahanafin/vahana/internal/domain/model"
	"github.com/vahanafin/vahana/internal/domain/port"
	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

// ApplicationRepo implements port.ApplicationRepository.
type ApplicationRepo struct {
	pool *pgxpool.Pool
}

// NewApplicationRepo creates a new repository backed by PostgreSQL.
func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

// borrowerRecord is the JSONB shape of the borrower snapshot.
type borrowerRecord struct {
	PAN               string          `json:"pan"`
	Aadhaar           string          `json:"aadhaar"`
	CreditScore       int             `json:"credit_score"`
	Employment        string          `json:"employment"`
	MonthlyIncome     decimal.Decimal `json:"monthly_income"`
	ExistingEMIs      decimal.Decimal `json:"existing_emis"`
	MonthlyExpenses   decimal.Decimal `json:"monthly_expenses"`
	YearsOfExperience int             `json:"years_of_experience"`
	Age               int             `json:"age"`
	PastDefaults      int             `json:"past_defaults"`
	PastRejections    int             `json:"past_rejections"`
}

// vehicleRecord is the JSONB shape of the vehicle request.
type vehicleRecord struct {
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	Category     string          `json:"category"`
	LoanAmount   decimal.Decimal `json:"loan_amount"`
	DownPayment  decimal.Decimal `json:"down_payment"`
	TenureMonths int             `json:"tenure_months"`
}

// prescreenRecord is the JSONB shape of the prescreen outcome.
type prescreenRecord struct {
	RiskScore      int      `json:"risk_score"`
	RiskCategory   string   `json:"risk_category"`
	CreditScore    int      `json:"credit_score"`
	CreditTier     string   `json:"credit_tier"`
	MatchedLenders []string `json:"matched_lenders"`
}

// Save persists an application (upsert by ID with optimistic locking).
func (r *ApplicationRepo) Save(ctx context.Context, app model.LoanApplication) error {
	borrower, err := json.Marshal(toBorrowerRecord(app.Borrower()))
	if err != nil {
		return fmt.Errorf("marshal borrower: %w", err)
	}
	vehicle, err := json.Marshal(toVehicleRecord(app.Vehicle()))
	if err != nil {
		return fmt.Errorf("marshal vehicle: %w", err)
	}
	var prescreen []byte
	if p := app.Prescreen(); p != nil {
		prescreen, err = json.Marshal(prescreenRecord{
			RiskScore:      p.RiskScore,
			RiskCategory:   string(p.RiskCategory),
			CreditScore:    p.CreditScore,
			CreditTier:     string(p.CreditTier),
			MatchedLenders: p.MatchedLenders,
		})
		if err != nil {
			return fmt.Errorf("marshal prescreen: %w", err)
		}
	}

	query := `
		INSERT INTO loan_applications (
			id, tenant_id, dealer_id, borrower, vehicle, status,
			prescreen, lender_id, decision_note, disbursed_amount,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (id) DO UPDATE SET
			status           = EXCLUDED.status,
			prescreen        = EXCLUDED.prescreen,
			lender_id        = EXCLUDED.lender_id,
			decision_note    = EXCLUDED.decision_note,
			disbursed_amount = EXCLUDED.disbursed_amount,
			version          = loan_applications.version + 1,
			updated_at       = EXCLUDED.updated_at
		WHERE loan_applications.version = $11
	`
	tag, err := r.pool.Exec(ctx, query,
		app.ID(), app.TenantID(), app.DealerID(),
		borrower, vehicle, app.Status().String(),
		prescreen, app.LenderID(), app.DecisionNote(), app.DisbursedAmount(),
		app.Version(), app.CreatedAt(), app.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on application")
	}
	return nil
}

// FindByID retrieves a single application.
func (r *ApplicationRepo) FindByID(ctx context.Context, tenantID, id string) (model.LoanApplication, error) {
	query := applicationSelect + ` WHERE tenant_id = $1 AND id = $2`
	row := r.pool.QueryRow(ctx, query, tenantID, id)
	return scanApplication(row)
}

// FindByDealerID retrieves all applications submitted by a dealer.
func (r *ApplicationRepo) FindByDealerID(ctx context.Context, tenantID, dealerID string) ([]model.LoanApplication, error) {
	query := applicationSelect + ` WHERE tenant_id = $1 AND dealer_id = $2 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, tenantID, dealerID)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	var result []model.LoanApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}

// CountDealerStats aggregates a dealer's monthly performance figures.
func (r *ApplicationRepo) CountDealerStats(ctx context.Context, tenantID, dealerID string, since time.Time) (port.DealerStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status IN ('APPROVED', 'DISBURSED')),
		       COALESCE(SUM(disbursed_amount), 0)
		FROM loan_applications
		WHERE tenant_id = $1 AND dealer_id = $2 AND created_at >= $3
	`
	var stats port.DealerStats
	err := r.pool.QueryRow(ctx, query, tenantID, dealerID, since).Scan(
		&stats.TotalApplications, &stats.ApprovedApplications, &stats.DisbursedVolume,
	)
	if err != nil {
		return port.DealerStats{}, fmt.Errorf("count dealer stats: %w", err)
	}
	return stats, nil
}

const applicationSelect = `
	SELECT id, tenant_id, dealer_id, borrower, vehicle, status,
	       prescreen, lender_id, decision_note, disbursed_amount,
	       version, created_at, updated_at
	FROM loan_applications`

type scannable interface {
	Scan(dest ...any) error
}

func scanApplication(s scannable) (model.LoanApplication, error) {
	var (
		id, tenantID, dealerID   string
		borrowerRaw, vehicleRaw  []byte
		statusStr                string
		prescreenRaw             []byte
		lenderID, decisionNote   string
		disbursedAmt             decimal.Decimal
		version                  int
		createdAt, updatedAt     time.Time
	)

	err := s.Scan(
		&id, &tenantID, &dealerID,
		&borrowerRaw, &vehicleRaw, &statusStr,
		&prescreenRaw, &lenderID, &decisionNote, &disbursedAmt,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.LoanApplication{}, fmt.Errorf("scan application: %w", err)
	}

	var br borrowerRecord
	if err := json.Unmarshal(borrowerRaw, &br); err != nil {
		return model.LoanApplication{}, fmt.Errorf("unmarshal borrower: %w", err)
	}
	var vr vehicleRecord
	if err := json.Unmarshal(vehicleRaw, &vr); err != nil {
		return model.LoanApplication{}, fmt.Errorf("unmarshal vehicle: %w", err)
	}
	var prescreen *model.PrescreenOutcome
	if len(prescreenRaw) > 0 {
		var pr prescreenRecord
		if err := json.Unmarshal(prescreenRaw, &pr); err != nil {
			return model.LoanApplication{}, fmt.Errorf("unmarshal prescreen: %w", err)
		}
		prescreen = &model.PrescreenOutcome{
			RiskScore:      pr.RiskScore,
			RiskCategory:   valueobject.RiskCategory(pr.RiskCategory),
			CreditScore:    pr.CreditScore,
			CreditTier:     valueobject.CreditTier(pr.CreditTier),
			MatchedLenders: pr.MatchedLenders,
		}
	}

	status, err := valueobject.NewApplicationStatus(statusStr)
	if err != nil {
		return model.LoanApplication{}, fmt.Errorf("parse status: %w", err)
	}

	return model.ReconstructLoanApplication(
		id, tenantID, dealerID,
		fromBorrowerRecord(br), fromVehicleRecord(vr),
		status, prescreen,
		lenderID, decisionNote, disbursedAmt,
		version, createdAt, updatedAt,
	), nil
}

func toBorrowerRecord(b valueobject.BorrowerProfile) borrowerRecord {
	return borrowerRecord{
		PAN:               b.PAN,
		Aadhaar:           b.Aadhaar,
		CreditScore:       b.CreditScore,
		Employment:        string(b.Employment),
		MonthlyIncome:     b.MonthlyIncome,
		ExistingEMIs:      b.ExistingEMIs,
		MonthlyExpenses:   b.MonthlyExpenses,
		YearsOfExperience: b.YearsOfExperience,
		Age:               b.Age,
		PastDefaults:      b.PastDefaults,
		PastRejections:    b.PastRejections,
	}
}

func fromBorrowerRecord(r borrowerRecord) valueobject.BorrowerProfile {
	return valueobject.BorrowerProfile{
		PAN:               r.PAN,
		Aadhaar:           r.Aadhaar,
		CreditScore:       r.CreditScore,
		Employment:        valueobject.ParseEmploymentType(r.Employment),
		MonthlyIncome:     r.MonthlyIncome,
		ExistingEMIs:      r.ExistingEMIs,
		MonthlyExpenses:   r.MonthlyExpenses,
		YearsOfExperience: r.YearsOfExperience,
		Age:               r.Age,
		PastDefaults:      r.PastDefaults,
		PastRejections:    r.PastRejections,
	}
}

func toVehicleRecord(v valueobject.VehicleRequest) vehicleRecord {
	return vehicleRecord{
		Make:         v.Make,
		Model:        v.Model,
		Category:     v.Category,
		LoanAmount:   v.LoanAmount,
		DownPayment:  v.DownPayment,
		TenureMonths: v.TenureMonths,
	}
}

func fromVehicleRecord(r vehicleRecord) valueobject.VehicleRequest {
	return valueobject.VehicleRequest{
		Make:         r.Make,
		Model:        r.Model,
		Category:     r.Category,
		LoanAmount:   r.LoanAmount,
		DownPayment:  r.DownPayment,
		TenureMonths: r.TenureMonths,
	}
}
