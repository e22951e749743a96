package matching

import (
	"time"

	"github.com/pantrysage/v2/internal/domain/measurement"
	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/domain/recipe"
)

// Confidence assigned by each strategy. Exact and fuzzy carry the full or
// measured similarity; category and substitute are fixed policy values.
const (
	confidenceExact      = 1.0
	confidenceCategory   = 0.6
	confidenceSubstitute = 0.5

	// fuzzyCeiling keeps fuzzy confidence strictly below exact even when
	// token overlap reaches 1.0 on reordered names.
	fuzzyCeiling = 0.99
)

// DefaultFuzzyThreshold is the minimum normalized similarity for a fuzzy
// name match.
const DefaultFuzzyThreshold = 0.8

// Matcher resolves one required ingredient against an inventory snapshot.
// Strategies run in strict precedence order and the first success wins:
// exact, fuzzy, category, substitute.
type Matcher struct {
	tables         *Tables
	fuzzyThreshold float64
}

// NewMatcher builds a Matcher over the given lookup tables. A zero
// threshold falls back to DefaultFuzzyThreshold.
func NewMatcher(tables *Tables, fuzzyThreshold float64) *Matcher {
	if tables == nil {
		tables = DefaultTables()
	}
	if fuzzyThreshold <= 0 {
		fuzzyThreshold = DefaultFuzzyThreshold
	}
	return &Matcher{tables: tables, fuzzyThreshold: fuzzyThreshold}
}

// Match resolves a required ingredient against the inventory as of now.
// Optional ingredients that no strategy can satisfy short-circuit to a
// confident match with no inventory consumption.
func (m *Matcher) Match(required recipe.RequiredIngredient, inventory []pantry.InventoryItem, now time.Time) IngredientMatch {
	name := normalizeName(required.Name)

	if item := m.exactCandidate(name, inventory, now); item != nil {
		return m.withQuantity(required, item, MatchExact, confidenceExact)
	}
	if item, conf := m.fuzzyCandidate(name, inventory, now); item != nil {
		return m.withQuantity(required, item, MatchFuzzy, conf)
	}
	if item := m.categoryCandidate(name, inventory, now); item != nil {
		return m.withQuantity(required, item, MatchCategory, confidenceCategory)
	}
	if item := m.substituteCandidate(name, inventory, now); item != nil {
		return m.withQuantity(required, item, MatchSubstitute, confidenceSubstitute)
	}

	if required.Optional {
		return IngredientMatch{
			Required:           required,
			Type:               MatchNone,
			Confidence:         confidenceExact,
			QuantitySufficient: true,
		}
	}

	return IngredientMatch{
		Required:           required,
		Type:               MatchNone,
		Confidence:         0,
		QuantitySufficient: false,
	}
}

func (m *Matcher) exactCandidate(name string, inventory []pantry.InventoryItem, now time.Time) *pantry.InventoryItem {
	var best *pantry.InventoryItem
	for i := range inventory {
		item := &inventory[i]
		if normalizeName(item.Name) != name {
			continue
		}
		best = preferCandidate(best, item, now)
	}
	return best
}

func (m *Matcher) fuzzyCandidate(name string, inventory []pantry.InventoryItem, now time.Time) (*pantry.InventoryItem, float64) {
	var best *pantry.InventoryItem
	for i := range inventory {
		item := &inventory[i]
		if similarity(name, normalizeName(item.Name)) < m.fuzzyThreshold {
			continue
		}
		best = preferCandidate(best, item, now)
	}
	if best == nil {
		return nil, 0
	}
	conf := similarity(name, normalizeName(best.Name))
	if conf > fuzzyCeiling {
		conf = fuzzyCeiling
	}
	return best, conf
}

func (m *Matcher) categoryCandidate(name string, inventory []pantry.InventoryItem, now time.Time) *pantry.InventoryItem {
	category, ok := m.tables.CategoryFor(name)
	if !ok {
		return nil
	}
	var best *pantry.InventoryItem
	for i := range inventory {
		item := &inventory[i]
		if item.Category != category {
			continue
		}
		best = preferCandidate(best, item, now)
	}
	return best
}

func (m *Matcher) substituteCandidate(name string, inventory []pantry.InventoryItem, now time.Time) *pantry.InventoryItem {
	substitutes := m.tables.SubstitutesFor(name)
	if len(substitutes) == 0 {
		return nil
	}
	wanted := make(map[string]struct{}, len(substitutes))
	for _, s := range substitutes {
		wanted[s] = struct{}{}
	}
	var best *pantry.InventoryItem
	for i := range inventory {
		item := &inventory[i]
		if _, ok := wanted[normalizeName(item.Name)]; !ok {
			continue
		}
		best = preferCandidate(best, item, now)
	}
	return best
}

// preferCandidate keeps the candidate with the nearer expiration date,
// breaking ties by larger available quantity, then lexicographic name.
// Items without an expiration date rank after any that have one.
func preferCandidate(current, challenger *pantry.InventoryItem, now time.Time) *pantry.InventoryItem {
	if current == nil {
		return challenger
	}

	curDays, curHas := current.DaysUntilExpiration(now)
	chDays, chHas := challenger.DaysUntilExpiration(now)
	switch {
	case curHas && !chHas:
		return current
	case !curHas && chHas:
		return challenger
	case curHas && chHas && curDays != chDays:
		if chDays < curDays {
			return challenger
		}
		return current
	}

	if challenger.Quantity != current.Quantity {
		if challenger.Quantity > current.Quantity {
			return challenger
		}
		return current
	}
	if normalizeName(challenger.Name) < normalizeName(current.Name) {
		return challenger
	}
	return current
}

// withQuantity attaches the sufficiency verdict to a successful match.
// Sufficiency is only decided when both sides specify a quantity; a
// cross-dimension comparison gets the benefit of the doubt and is flagged.
func (m *Matcher) withQuantity(required recipe.RequiredIngredient, item *pantry.InventoryItem, matchType MatchType, confidence float64) IngredientMatch {
	match := IngredientMatch{
		Required:           required,
		Item:               item,
		Type:               matchType,
		Confidence:         confidence,
		QuantitySufficient: true,
	}

	if required.Quantity == nil || item.Quantity == 0 && item.Unit == "" {
		return match
	}

	need := measurement.Normalize(*required.Quantity, required.Unit)
	have := measurement.Normalize(item.Quantity, item.Unit)
	if !measurement.Comparable(need, have) {
		match.QuantityUnknown = true
		return match
	}

	match.QuantitySufficient = have.Value >= need.Value
	return match
}
