package valueobject

// RiskCategory is the three-tier label produced by the risk profile scorer.
type RiskCategory string

const (
	RiskLow    RiskCategory = "Low"
	RiskMedium RiskCategory = "Medium"
	RiskHigh   RiskCategory = "High"
)

// CreditTier is the four-tier label produced by the credit scorecard.
type CreditTier string

const (
	TierGold     CreditTier = "Gold"
	TierSilver   CreditTier = "Silver"
	TierBronze   CreditTier = "Bronze"
	TierHighRisk CreditTier = "High Risk"
)

// ScoreComponent is one named sub-score of a scoring model, bounded by the
// category's maximum weight.
type ScoreComponent struct {
	Name   string
	Points int
	Max    int
}

// ScoreBreakdown lists the named sub-scores contributing to a total score.
type ScoreBreakdown struct {
	Components []ScoreComponent
}

// Add appends a component to the breakdown.
func (b *ScoreBreakdown) Add(name string, points, max int) {
	b.Components = append(b.Components, ScoreComponent{Name: name, Points: points, Max: max})
}

// Total returns the sum of all component points.
func (b ScoreBreakdown) Total() int {
	total := 0
	for _, c := range b.Components {
		total += c.Points
	}
	return total
}

// MaxTotal returns the sum of all component maxima.
func (b ScoreBreakdown) MaxTotal() int {
	total := 0
	for _, c := range b.Components {
		total += c.Max
	}
	return total
}
