package recipe

import "errors"

// Domain errors for recipe construction and mutation
var (
	ErrTitleTooShort         = errors.New("recipe title must be at least 3 characters")
	ErrTitleTooLong          = errors.New("recipe title must be at most 200 characters")
	ErrNoRequiredIngredients = errors.New("recipe must have at least one non-optional ingredient")
	ErrNegativeTime          = errors.New("prep and cook time cannot be negative")
	ErrInvalidDifficulty     = errors.New("unknown difficulty level")
	ErrNegativeEstimatedCost = errors.New("estimated cost cannot be negative")
)
