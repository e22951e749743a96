// Package handlers provides the HTTP request handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// APIHandlers bundles the REST handlers and their dependencies.
type APIHandlers struct {
	suggestions inbound.SuggestionService
	pantry      inbound.PantryService
	recipes     inbound.RecipeService
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewAPIHandlers creates the handler set.
func NewAPIHandlers(
	suggestions inbound.SuggestionService,
	pantry inbound.PantryService,
	recipes inbound.RecipeService,
	logger *zap.Logger,
) *APIHandlers {
	return &APIHandlers{
		suggestions: suggestions,
		pantry:      pantry,
		recipes:     recipes,
		validate:    validator.New(),
		logger:      logger.Named("api"),
	}
}

// Routes mounts the API routes on the given router.
func (h *APIHandlers) Routes(r chi.Router) {
	r.Route("/api/v2", func(r chi.Router) {
		r.Post("/suggestions", h.SuggestFromPantry)
		r.Post("/suggestions/custom", h.SuggestFromIngredients)

		r.Route("/pantry", func(r chi.Router) {
			r.Get("/", h.ListPantryItems)
			r.Post("/", h.AddPantryItem)
			r.Get("/expiring", h.ListExpiringItems)
			r.Get("/{id}", h.GetPantryItem)
			r.Put("/{id}", h.UpdatePantryItem)
			r.Delete("/{id}", h.RemovePantryItem)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", h.ListRecipes)
			r.Post("/", h.CreateRecipe)
			r.Get("/{id}", h.GetRecipe)
			r.Delete("/{id}", h.DeleteRecipe)
		})
	})
}

// Suggestion handlers

// SuggestFromPantry handles POST /api/v2/suggestions
func (h *APIHandlers) SuggestFromPantry(w http.ResponseWriter, r *http.Request) {
	var query inbound.SuggestQuery
	if err := h.decode(r, &query); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.validate.Struct(query.Filters); err != nil {
		h.writeError(w, r, errors.NewValidationError(err.Error()))
		return
	}

	resp, err := h.suggestions.SuggestFromPantry(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// SuggestFromIngredients handles POST /api/v2/suggestions/custom
func (h *APIHandlers) SuggestFromIngredients(w http.ResponseWriter, r *http.Request) {
	var query inbound.CustomSuggestQuery
	if err := h.decode(r, &query); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.validate.Struct(query); err != nil {
		h.writeError(w, r, errors.NewValidationError(err.Error()))
		return
	}

	resp, err := h.suggestions.SuggestFromIngredients(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// Pantry handlers

// ListPantryItems handles GET /api/v2/pantry
func (h *APIHandlers) ListPantryItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.pantry.ListItems(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// AddPantryItem handles POST /api/v2/pantry
func (h *APIHandlers) AddPantryItem(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.AddItemCommand
	if err := h.decode(r, &cmd); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.validate.Struct(cmd); err != nil {
		h.writeError(w, r, errors.NewValidationError(err.Error()))
		return
	}

	item, err := h.pantry.AddItem(r.Context(), cmd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, item)
}

// ListExpiringItems handles GET /api/v2/pantry/expiring?within_days=N
func (h *APIHandlers) ListExpiringItems(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("within_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.writeError(w, r, errors.NewBadRequestError("within_days must be a non-negative integer"))
			return
		}
		days = parsed
	}

	items, err := h.pantry.ListExpiring(r.Context(), time.Duration(days)*24*time.Hour)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"items": items, "within_days": days})
}

// GetPantryItem handles GET /api/v2/pantry/{id}
func (h *APIHandlers) GetPantryItem(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	item, err := h.pantry.GetItem(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, item)
}

// UpdatePantryItem handles PUT /api/v2/pantry/{id}
func (h *APIHandlers) UpdatePantryItem(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var cmd inbound.UpdateItemCommand
	if err := h.decode(r, &cmd); err != nil {
		h.writeError(w, r, err)
		return
	}
	cmd.ID = id
	if err := h.validate.Struct(cmd); err != nil {
		h.writeError(w, r, errors.NewValidationError(err.Error()))
		return
	}

	item, err := h.pantry.UpdateItem(r.Context(), cmd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, item)
}

// RemovePantryItem handles DELETE /api/v2/pantry/{id}
func (h *APIHandlers) RemovePantryItem(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.pantry.RemoveItem(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Recipe handlers

// ListRecipes handles GET /api/v2/recipes
func (h *APIHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.recipes.ListRecipes(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"recipes": recipes})
}

// CreateRecipe handles POST /api/v2/recipes
func (h *APIHandlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.CreateRecipeCommand
	if err := h.decode(r, &cmd); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.validate.Struct(cmd); err != nil {
		h.writeError(w, r, errors.NewValidationError(err.Error()))
		return
	}

	created, err := h.recipes.CreateRecipe(r.Context(), cmd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// GetRecipe handles GET /api/v2/recipes/{id}
func (h *APIHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	found, err := h.recipes.GetRecipe(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, found)
}

// DeleteRecipe handles DELETE /api/v2/recipes/{id}
func (h *APIHandlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.recipes.DeleteRecipe(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Helpers

func (h *APIHandlers) decode(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.NewBadRequestError("Invalid request body").WithCause(err)
	}
	return nil
}

func (h *APIHandlers) pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.NewBadRequestError("Invalid resource ID")
	}
	return id, nil
}

func (h *APIHandlers) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *APIHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := errors.Wrap(err, "Request failed")
	if appErr.StatusCode() >= 500 {
		h.logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.Error(appErr),
		)
	}
	resp := errors.ToErrorResponse(appErr, chimiddleware.GetReqID(r.Context()))
	h.writeJSON(w, appErr.StatusCode(), resp)
}
