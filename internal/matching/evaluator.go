package matching

import (
	"time"

	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/domain/recipe"
)

// FeasibilityReport is the per-recipe outcome of running the matcher over
// every required ingredient.
type FeasibilityReport struct {
	Matched []IngredientMatch
	Missing []IngredientMatch

	// MatchPercentage is the fraction of non-optional ingredients that were
	// resolved. Optional ingredients are reported but never enter the
	// denominator.
	MatchPercentage float64
}

// Evaluator applies the matcher across a whole recipe.
type Evaluator struct {
	matcher *Matcher
}

// NewEvaluator builds an Evaluator over the given matcher.
func NewEvaluator(matcher *Matcher) *Evaluator {
	return &Evaluator{matcher: matcher}
}

// Evaluate matches every ingredient of the recipe against the inventory
// snapshot. Optional ingredients are matched for reporting completeness but
// excluded from the coverage ratio, and an absent optional ingredient never
// lands in Missing.
func (e *Evaluator) Evaluate(r *recipe.Recipe, inventory []pantry.InventoryItem, now time.Time) FeasibilityReport {
	var report FeasibilityReport

	requiredTotal := 0
	requiredMatched := 0
	for _, ing := range r.Ingredients() {
		match := e.matcher.Match(ing, inventory, now)

		if !ing.Optional {
			requiredTotal++
			if match.Type != MatchNone {
				requiredMatched++
			}
		}

		if match.Type == MatchNone && !ing.Optional {
			report.Missing = append(report.Missing, match)
			continue
		}
		report.Matched = append(report.Matched, match)
	}

	if requiredTotal > 0 {
		report.MatchPercentage = float64(requiredMatched) / float64(requiredTotal)
	}
	return report
}
