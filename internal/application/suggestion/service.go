// Package suggestion provides the application layer for recipe suggestions
// This implements the use cases defined in the inbound ports
package suggestion

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/matching"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// DefaultCacheTTL bounds how long a computed suggestion list stays valid.
const DefaultCacheTTL = 5 * time.Minute

// SuggestionService implements the suggestion use cases. It loads the
// snapshot from the repositories, delegates the matching and ranking to the
// engine, and caches serialized responses keyed by a request digest.
type SuggestionService struct {
	pantryRepo outbound.PantryRepository
	recipeRepo outbound.RecipeRepository
	cache      outbound.CacheRepository
	engine     *matching.Engine
	metrics    outbound.SuggestionMetrics
	logger     *zap.Logger
	cacheTTL   time.Duration

	// now is swapped in tests to pin scoring time.
	now func() time.Time
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(
	pantryRepo outbound.PantryRepository,
	recipeRepo outbound.RecipeRepository,
	cache outbound.CacheRepository,
	engine *matching.Engine,
	metrics outbound.SuggestionMetrics,
	logger *zap.Logger,
) inbound.SuggestionService {
	return &SuggestionService{
		pantryRepo: pantryRepo,
		recipeRepo: recipeRepo,
		cache:      cache,
		engine:     engine,
		metrics:    metrics,
		logger:     logger.Named("suggestion-service"),
		cacheTTL:   DefaultCacheTTL,
		now:        time.Now,
	}
}

// SuggestFromPantry ranks the catalog against the stored inventory snapshot.
func (s *SuggestionService) SuggestFromPantry(ctx context.Context, query inbound.SuggestQuery) (*inbound.SuggestionResponse, error) {
	inventory, err := s.pantryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("load inventory", err)
	}
	return s.suggest(ctx, inventory, query.Filters, query.Debug, "pantry")
}

// SuggestFromIngredients ranks the catalog against an explicit name list.
// Each name becomes a synthetic inventory item with unspecified quantity,
// unit, and expiration.
func (s *SuggestionService) SuggestFromIngredients(ctx context.Context, query inbound.CustomSuggestQuery) (*inbound.SuggestionResponse, error) {
	if len(query.Ingredients) == 0 {
		return nil, errors.NewAppError(errors.CodeInvalidSuggestQuery, "Ingredient list is empty", "")
	}

	inventory := make([]pantry.InventoryItem, 0, len(query.Ingredients))
	for _, name := range query.Ingredients {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		inventory = append(inventory, pantry.InventoryItem{Name: name})
	}
	return s.suggest(ctx, inventory, query.Filters, query.Debug, "custom")
}

func (s *SuggestionService) suggest(ctx context.Context, inventory []pantry.InventoryItem, filters inbound.SuggestFilters, debug bool, source string) (*inbound.SuggestionResponse, error) {
	started := time.Now()
	key := s.cacheKey(inventory, filters, debug, source)
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var resp inbound.SuggestionResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			s.logger.Debug("Suggestion cache hit", zap.String("key", key))
			if s.metrics != nil {
				s.metrics.ObserveSuggestion(time.Since(started), true)
			}
			return &resp, nil
		}
	}

	catalog, err := s.recipeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("load recipe catalog", err)
	}

	now := s.now()
	opts := toFilterOptions(filters)

	var results []matching.SuggestionResult
	var timings *matching.StageTimings
	if debug {
		var t matching.StageTimings
		results, t = s.engine.SuggestDebug(inventory, catalog, opts, now)
		timings = &t
	} else {
		results = s.engine.Suggest(inventory, catalog, opts, now)
	}

	s.logger.Info("Suggestions computed",
		zap.String("source", source),
		zap.Int("inventory_items", len(inventory)),
		zap.Int("catalog_size", len(catalog)),
		zap.Int("suggestions", len(results)),
	)

	resp := &inbound.SuggestionResponse{
		Suggestions: toSuggestionDTOs(results, debug),
		Filters:     filters,
		Timings:     timings,
		GeneratedAt: now,
	}

	if payload, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
			s.logger.Warn("Failed to cache suggestions", zap.Error(err))
		}
	}
	if s.metrics != nil {
		s.metrics.ObserveSuggestion(time.Since(started), false)
	}
	return resp, nil
}

// cacheKey digests the filters and the inventory snapshot so a pantry
// change invalidates the cached ranking naturally.
func (s *SuggestionService) cacheKey(inventory []pantry.InventoryItem, filters inbound.SuggestFilters, debug bool, source string) string {
	type itemDigest struct {
		Name       string     `json:"n"`
		Category   string     `json:"c,omitempty"`
		Quantity   float64    `json:"q"`
		Unit       string     `json:"u,omitempty"`
		Expiration *time.Time `json:"e,omitempty"`
	}
	items := make([]itemDigest, 0, len(inventory))
	for _, it := range inventory {
		items = append(items, itemDigest{
			Name:       it.Name,
			Category:   string(it.Category),
			Quantity:   it.Quantity,
			Unit:       it.Unit,
			Expiration: it.Expiration,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].Quantity < items[j].Quantity
	})

	payload, _ := json.Marshal(struct {
		Source  string                 `json:"s"`
		Debug   bool                   `json:"d"`
		Filters inbound.SuggestFilters `json:"f"`
		Items   []itemDigest           `json:"i"`
	}{source, debug, filters, items})

	sum := sha256.Sum256(payload)
	return "suggestions:" + hex.EncodeToString(sum[:16])
}

func toFilterOptions(f inbound.SuggestFilters) matching.FilterOptions {
	opts := matching.FilterOptions{
		MinMatchPercentage: f.MinMatchPercentage,
		MaxPrepTime:        f.MaxPrepTime,
		MaxCookTime:        f.MaxCookTime,
		ExcludeIngredients: f.ExcludeIngredients,
		MaxSuggestions:     f.MaxSuggestions,
		PrioritizeExpiring: f.PrioritizeExpiring,
	}
	for _, d := range f.Difficulty {
		opts.Difficulties = append(opts.Difficulties, recipe.DifficultyLevel(d))
	}
	for _, mt := range f.MealTypes {
		opts.MealTypes = append(opts.MealTypes, recipe.MealType(mt))
	}
	for _, tag := range f.DietaryRestrictions {
		opts.DietaryRestrictions = append(opts.DietaryRestrictions, recipe.DietaryTag(tag))
	}
	return opts
}

func toSuggestionDTOs(results []matching.SuggestionResult, debug bool) []inbound.SuggestionDTO {
	dtos := make([]inbound.SuggestionDTO, 0, len(results))
	for _, res := range results {
		dto := inbound.SuggestionDTO{
			RecipeID:              res.Recipe.ID(),
			Title:                 res.Recipe.Title(),
			MatchScore:            res.FinalScore,
			PantryUsagePercentage: int(res.MatchPercentage*100 + 0.5),
			PrepTime:              res.Recipe.PrepTime(),
			CookTime:              res.Recipe.CookTime(),
			Difficulty:            string(res.Recipe.Difficulty()),
			MatchedIngredients:    make([]inbound.MatchedIngredientDTO, 0, len(res.Matched)),
			MissingIngredients:    make([]inbound.MissingIngredientDTO, 0, len(res.Missing)),
		}
		for _, m := range res.Matched {
			md := inbound.MatchedIngredientDTO{
				Name:               m.Required.Name,
				MatchType:          string(m.Type),
				Confidence:         m.Confidence,
				RequiredQuantity:   m.Required.Quantity,
				RequiredUnit:       m.Required.Unit,
				QuantitySufficient: m.QuantitySufficient,
			}
			if m.Item != nil {
				md.MatchedWith = m.Item.Name
				available := m.Item.Quantity
				md.AvailableQuantity = &available
				md.AvailableUnit = m.Item.Unit
			}
			dto.MatchedIngredients = append(dto.MatchedIngredients, md)
		}
		for _, m := range res.Missing {
			dto.MissingIngredients = append(dto.MissingIngredients, inbound.MissingIngredientDTO{
				Name:             m.Required.Name,
				RequiredQuantity: m.Required.Quantity,
				RequiredUnit:     m.Required.Unit,
			})
		}
		if debug {
			breakdown := res.Breakdown
			dto.ScoreBreakdown = &breakdown
		}
		dtos = append(dtos, dto)
	}
	return dtos
}
