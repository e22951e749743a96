package matching

import (
	"time"

	"github.com/pantrysage/v2/internal/domain/recipe"
)

// ScoreConfig holds the tunable scoring policy. The defaults reflect the
// current product weighting; they are configuration so the ranking can be
// tuned without touching the pipeline.
type ScoreConfig struct {
	CoverageWeight float64 `mapstructure:"coverage_weight"`
	UrgencyWeight  float64 `mapstructure:"urgency_weight"`
	CostWeight     float64 `mapstructure:"cost_weight"`

	// UrgencyWindowDays is the horizon over which expiration urgency decays
	// to zero. Items expiring today score 1.0, items this many days out
	// score 0.
	UrgencyWindowDays float64 `mapstructure:"urgency_window_days"`

	// CostCap is the estimated recipe cost, in dollars, at which the
	// cost-savings component saturates.
	CostCap float64 `mapstructure:"cost_cap"`

	// FuzzyThreshold is the minimum similarity for a fuzzy name match.
	FuzzyThreshold float64 `mapstructure:"fuzzy_threshold"`
}

// DefaultScoreConfig returns the standard scoring policy.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		CoverageWeight:    0.6,
		UrgencyWeight:     0.25,
		CostWeight:        0.15,
		UrgencyWindowDays: 7,
		CostCap:           20,
		FuzzyThreshold:    DefaultFuzzyThreshold,
	}
}

// Scorer converts a feasibility report plus contextual signals into a
// single ranking score. Pure: identical inputs and the same now yield
// identical scores.
type Scorer struct {
	cfg ScoreConfig
}

// NewScorer builds a Scorer with the given policy.
func NewScorer(cfg ScoreConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score computes the weighted sum of the coverage, expiration-urgency, and
// cost-savings components. prioritizeExpiring doubles the urgency weight
// and renormalizes. The result is clipped at zero but not above one, so
// bonuses stay visible in the breakdown.
func (s *Scorer) Score(report FeasibilityReport, r *recipe.Recipe, now time.Time, prioritizeExpiring bool) (float64, ScoreBreakdown) {
	breakdown := ScoreBreakdown{
		Coverage:    s.coverage(report),
		Urgency:     s.urgency(report, now),
		CostSavings: s.costSavings(r),
	}

	wCoverage, wUrgency, wCost := s.cfg.CoverageWeight, s.cfg.UrgencyWeight, s.cfg.CostWeight
	if prioritizeExpiring {
		wUrgency *= 2
		total := wCoverage + wUrgency + wCost
		if total > 0 {
			wCoverage /= total
			wUrgency /= total
			wCost /= total
		}
	}
	breakdown.CoverageWeight = wCoverage
	breakdown.UrgencyWeight = wUrgency
	breakdown.CostWeight = wCost

	for _, m := range report.Matched {
		if m.QuantityUnknown {
			breakdown.LowConfidenceQuantities++
		}
	}

	final := wCoverage*breakdown.Coverage + wUrgency*breakdown.Urgency + wCost*breakdown.CostSavings
	if final < 0 {
		final = 0
	}
	breakdown.Final = final
	return final, breakdown
}

// coverage is the confidence-weighted match ratio over non-optional
// ingredients: each match contributes its confidence instead of a flat 1.
func (s *Scorer) coverage(report FeasibilityReport) float64 {
	total := 0
	sum := 0.0
	for _, m := range report.Matched {
		if m.Required.Optional {
			continue
		}
		total++
		sum += m.Confidence
	}
	for _, m := range report.Missing {
		if !m.Required.Optional {
			total++
		}
	}
	if total == 0 {
		return 0
	}
	return sum / float64(total)
}

// urgency averages per-item expiration urgency across matched inventory
// items that carry an expiration date. Urgency decays linearly from 1.0 at
// expiration to 0 at the window horizon; already-expired items clip at 1.0.
func (s *Scorer) urgency(report FeasibilityReport, now time.Time) float64 {
	count := 0
	sum := 0.0
	for _, m := range report.Matched {
		if m.Item == nil {
			continue
		}
		days, ok := m.Item.DaysUntilExpiration(now)
		if !ok {
			continue
		}
		u := 1 - days/s.cfg.UrgencyWindowDays
		if u < 0 {
			u = 0
		}
		if u > 1 {
			u = 1
		}
		count++
		sum += u
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// costSavings saturates at the configured cap; zero when the recipe carries
// no cost estimate.
func (s *Scorer) costSavings(r *recipe.Recipe) float64 {
	cost := r.EstimatedCost()
	if cost == nil || s.cfg.CostCap <= 0 {
		return 0
	}
	v := *cost / s.cfg.CostCap
	if v > 1 {
		v = 1
	}
	return v
}
