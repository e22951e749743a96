package matching

import (
	"sort"
	"time"

	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/domain/recipe"
)

// Engine is the full suggestion pipeline: feasibility evaluation, scoring,
// filtering, and deterministic ranking. Safe for concurrent use.
type Engine struct {
	evaluator *Evaluator
	scorer    *Scorer
}

// NewEngine wires the pipeline from a scoring policy and lookup tables.
func NewEngine(cfg ScoreConfig, tables *Tables) *Engine {
	matcher := NewMatcher(tables, cfg.FuzzyThreshold)
	return &Engine{
		evaluator: NewEvaluator(matcher),
		scorer:    NewScorer(cfg),
	}
}

// Suggest evaluates, scores, filters, and ranks the catalog against the
// inventory snapshot as of now. An empty result is valid, not an error.
func (e *Engine) Suggest(inventory []pantry.InventoryItem, catalog []*recipe.Recipe, filters FilterOptions, now time.Time) []SuggestionResult {
	results, _ := e.run(inventory, catalog, filters, now)
	return results
}

// SuggestDebug is Suggest plus per-stage wall-time measurement.
func (e *Engine) SuggestDebug(inventory []pantry.InventoryItem, catalog []*recipe.Recipe, filters FilterOptions, now time.Time) ([]SuggestionResult, StageTimings) {
	return e.run(inventory, catalog, filters, now)
}

func (e *Engine) run(inventory []pantry.InventoryItem, catalog []*recipe.Recipe, filters FilterOptions, now time.Time) ([]SuggestionResult, StageTimings) {
	var timings StageTimings

	stageStart := time.Now()
	results := make([]SuggestionResult, 0, len(catalog))
	for _, r := range catalog {
		report := e.evaluator.Evaluate(r, inventory, now)
		results = append(results, SuggestionResult{
			Recipe:          r,
			MatchPercentage: report.MatchPercentage,
			Matched:         report.Matched,
			Missing:         report.Missing,
		})
	}
	timings.Evaluate = time.Since(stageStart)

	stageStart = time.Now()
	for i := range results {
		report := FeasibilityReport{
			Matched:         results[i].Matched,
			Missing:         results[i].Missing,
			MatchPercentage: results[i].MatchPercentage,
		}
		results[i].FinalScore, results[i].Breakdown = e.scorer.Score(report, results[i].Recipe, now, filters.PrioritizeExpiring)
	}
	timings.Score = time.Since(stageStart)

	stageStart = time.Now()
	filtered := results[:0]
	for _, res := range results {
		if e.passes(res, filters) {
			filtered = append(filtered, res)
		}
	}
	results = filtered
	timings.Filter = time.Since(stageStart)

	stageStart = time.Now()
	sort.SliceStable(results, func(i, j int) bool {
		return lessResult(results[i], results[j])
	})
	max := filters.MaxSuggestions
	if max <= 0 {
		max = DefaultMaxSuggestions
	}
	if len(results) > max {
		results = results[:max]
	}
	timings.Sort = time.Since(stageStart)

	return results, timings
}

// passes applies every caller-supplied constraint. A recipe failing any
// filter is dropped outright, never scored down.
func (e *Engine) passes(res SuggestionResult, filters FilterOptions) bool {
	r := res.Recipe

	if filters.MinMatchPercentage != nil && res.MatchPercentage < *filters.MinMatchPercentage {
		return false
	}
	if filters.MaxPrepTime != nil && r.PrepTime() > *filters.MaxPrepTime {
		return false
	}
	if filters.MaxCookTime != nil && r.CookTime() > *filters.MaxCookTime {
		return false
	}

	if len(filters.Difficulties) > 0 && !containsDifficulty(filters.Difficulties, r.Difficulty()) {
		return false
	}

	if len(filters.MealTypes) > 0 {
		found := false
		for _, mt := range filters.MealTypes {
			if r.HasMealType(mt) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Dietary restrictions are conjunctive: the recipe must satisfy all.
	for _, tag := range filters.DietaryRestrictions {
		if !r.HasDietaryTag(tag) {
			return false
		}
	}

	if len(filters.ExcludeIngredients) > 0 && e.usesExcluded(r, filters.ExcludeIngredients) {
		return false
	}

	return true
}

// usesExcluded reports whether any required non-optional ingredient
// fuzzy-matches an excluded name.
func (e *Engine) usesExcluded(r *recipe.Recipe, excluded []string) bool {
	threshold := e.evaluator.matcher.fuzzyThreshold
	for _, ing := range r.Ingredients() {
		if ing.Optional {
			continue
		}
		name := normalizeName(ing.Name)
		for _, ex := range excluded {
			if similarity(name, normalizeName(ex)) >= threshold {
				return true
			}
		}
	}
	return false
}

func containsDifficulty(set []recipe.DifficultyLevel, d recipe.DifficultyLevel) bool {
	for _, v := range set {
		if v == d {
			return true
		}
	}
	return false
}

// lessResult is the documented ranking order: score descending, then raw
// match percentage descending, then total time ascending, then title.
func lessResult(a, b SuggestionResult) bool {
	if a.FinalScore != b.FinalScore {
		return a.FinalScore > b.FinalScore
	}
	if a.MatchPercentage != b.MatchPercentage {
		return a.MatchPercentage > b.MatchPercentage
	}
	if a.Recipe.TotalTime() != b.Recipe.TotalTime() {
		return a.Recipe.TotalTime() < b.Recipe.TotalTime()
	}
	return a.Recipe.Title() < b.Recipe.Title()
}
